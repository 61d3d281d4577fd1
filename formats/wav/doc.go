// SPDX-License-Identifier: EPL-2.0

// Package wav validates RIFF WAVE input for MSU-1 conversion.
//
// MSU-1 audio is raw 16-bit little-endian stereo PCM at 44.1kHz, so the only
// thing needed from a WAV file is confirmation that it carries exactly that,
// and the length of its sample data.
//
// # Validation
//
// Validate reads the canonical 44-byte header at fixed offsets:
//
//	offset  size  field           required
//	0       4     signature       "RIFF"
//	20      2     format tag      1 (PCM)
//	22      2     channels        2
//	24      4     sample rate     44100
//	34      2     bits per sample 16
//	36      4     data marker     "data"
//	40      4     data length     returned
//
// The chunk sizes, the "WAVE" form type and the "fmt " marker are skipped
// without being checked. On success the reader is left at the first sample
// byte, ready to be copied:
//
//	size, err := wav.Validate(file)
//	if err != nil {
//	    // Handle error
//	}
//	io.Copy(out, file)
//
// # Seekable and Non-seekable Input
//
// Skipped fields are passed over with Seek when the reader supports it, or by
// reading and discarding the exact number of bytes otherwise, so standard
// input from a pipe validates the same way a file does. See Stream.
//
// # Error Handling
//
// Each check has its own error:
//   - ErrBadSignature: the file does not start with "RIFF"
//   - ErrNotPCM: the format tag is not 1
//   - ErrFormatMismatch: not 16-bit, 44.1kHz, 2 channels
//   - ErrDataMarkerMissing: the data chunk does not follow the fmt chunk
//
// They are returned inside a *FormatError holding the observed values:
//
//	var fe *wav.FormatError
//	if errors.As(err, &fe) && errors.Is(err, wav.ErrFormatMismatch) {
//	    fmt.Println(fe.SampleRate)
//	}
//
// A header that ends early is reported as an I/O error wrapping
// io.ErrUnexpectedEOF.
//
// # Inspecting Files
//
// Probe walks the full chunk list using github.com/go-audio/wav and reports
// the actual format and data size even when extra chunks break the canonical
// layout. It needs an io.ReadSeeker.
package wav
