// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// RIFFSignature is "RIFF" read as a little-endian uint32.
	RIFFSignature uint32 = 0x46464952
	// DataSignature is "data" read as a little-endian uint32.
	DataSignature uint32 = 0x61746164

	// FormatPCM is the format tag of uncompressed linear PCM.
	FormatPCM uint16 = 1
	// RequiredChannels is the channel count MSU-1 expects (stereo).
	RequiredChannels uint16 = 2
	// RequiredSampleRate is the sample rate MSU-1 expects, in Hz.
	RequiredSampleRate uint32 = 44100
	// RequiredBitDepth is the bits per sample MSU-1 expects.
	RequiredBitDepth uint16 = 16

	// BytesPerFrame is the size of one sample instant across all channels.
	BytesPerFrame = int(RequiredChannels) * int(RequiredBitDepth) / 8

	// HeaderSize is the length of the canonical header; sample data follows it.
	HeaderSize = 44
)

// Field offsets in the canonical header.
const (
	offsetFormat   = 20
	offsetBitDepth = 34
)

// Validate checks that r holds a canonical RIFF WAVE header for 16-bit,
// 44.1kHz stereo PCM and returns the length of the sample data in bytes.
//
// Only the fields at fixed offsets are inspected; the chunk sizes and the
// WAVE/fmt markers are skipped. On success r is positioned at the first
// sample byte. Failed checks return a *FormatError matching one of
// ErrBadSignature, ErrNotPCM, ErrFormatMismatch or ErrDataMarkerMissing.
func Validate(r io.Reader) (uint32, error) {
	st := NewStream(r)

	var signature uint32
	if err := readField(st, "signature", &signature); err != nil {
		return 0, err
	}
	if signature != RIFFSignature {
		return 0, &FormatError{Err: ErrBadSignature, Signature: signature}
	}

	if err := st.SkipTo(offsetFormat); err != nil {
		return 0, err
	}

	var format uint16
	if err := readField(st, "format tag", &format); err != nil {
		return 0, err
	}
	if format != FormatPCM {
		return 0, &FormatError{Err: ErrNotPCM, Format: format}
	}

	var (
		channels   uint16
		sampleRate uint32
		bitDepth   uint16
	)
	if err := readField(st, "channel count", &channels); err != nil {
		return 0, err
	}
	if err := readField(st, "sample rate", &sampleRate); err != nil {
		return 0, err
	}

	if err := st.SkipTo(offsetBitDepth); err != nil {
		return 0, err
	}

	if err := readField(st, "bit depth", &bitDepth); err != nil {
		return 0, err
	}
	if channels != RequiredChannels || sampleRate != RequiredSampleRate || bitDepth != RequiredBitDepth {
		return 0, &FormatError{
			Err:        ErrFormatMismatch,
			Channels:   channels,
			SampleRate: sampleRate,
			BitDepth:   bitDepth,
		}
	}

	var marker uint32
	if err := readField(st, "data marker", &marker); err != nil {
		return 0, err
	}
	if marker != DataSignature {
		return 0, &FormatError{Err: ErrDataMarkerMissing, Marker: marker}
	}

	var dataSize uint32
	if err := readField(st, "data length", &dataSize); err != nil {
		return 0, err
	}

	return dataSize, nil
}

func readField(r io.Reader, name string, v any) error {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}
