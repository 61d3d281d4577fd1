// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	ErrBadSignature      = errors.New("incorrect header: invalid format or endianness")
	ErrNotPCM            = errors.New("not in PCM format")
	ErrFormatMismatch    = errors.New("not in 16bit 44.1kHz stereo")
	ErrDataMarkerMissing = errors.New("sample data not where expected")
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrNoDataChunk       = errors.New("no data chunk found")
)

// FormatError reports a failed header check together with the values that
// were actually read from the stream. Only the fields relevant to Err are set.
type FormatError struct {
	Err        error
	Signature  uint32
	Format     uint16
	Channels   uint16
	SampleRate uint32
	BitDepth   uint16
	Marker     uint32
}

func (e *FormatError) Error() string {
	switch e.Err {
	case ErrBadSignature:
		return fmt.Sprintf("%v (value was: 0x%x)", e.Err, e.Signature)
	case ErrNotPCM:
		return fmt.Sprintf("%v (format was: %d)", e.Err, int16(e.Format))
	case ErrFormatMismatch:
		return fmt.Sprintf("%v (got instead: %dbit, %dHz, %dch)",
			e.Err, e.BitDepth, e.SampleRate, e.Channels)
	case ErrDataMarkerMissing:
		return fmt.Sprintf("%v (marker was: 0x%x)", e.Err, e.Marker)
	}

	return e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }
