// SPDX-License-Identifier: EPL-2.0

package msu

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// Magic opens every MSU1 audio file.
	Magic = "MSU1"
	// HeaderSize is the length of Magic plus the loop point.
	HeaderSize = 8
)

// Header is the fixed prefix of an MSU1 audio file.
type Header struct {
	// LoopPoint is the frame offset, from the first sample after the
	// header, where playback restarts once the end is reached.
	LoopPoint int32
}

// MarshalBinary encodes h as the 8-byte file header.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	copy(b[0:4], Magic)
	binary.LittleEndian.PutUint32(b[4:8], uint32(h.LoopPoint))
	return b, nil
}

// UnmarshalBinary decodes an 8-byte header, checking the MSU1 tag.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) != HeaderSize {
		return ErrShortHeader
	}
	if string(b[0:4]) != Magic {
		return fmt.Errorf("%w: tag was %q", ErrNotMSU, b[0:4])
	}
	h.LoopPoint = int32(binary.LittleEndian.Uint32(b[4:8]))
	return nil
}

// WriteHeader writes the 8-byte header for loopPoint to w.
func WriteHeader(w io.Writer, loopPoint int32) error {
	b, _ := Header{LoopPoint: loopPoint}.MarshalBinary()
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// ReadHeader reads and checks the header of an MSU1 file, leaving r at the
// first sample byte.
func ReadHeader(r io.Reader) (Header, error) {
	b := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, b); err != nil {
		return Header{}, fmt.Errorf("reading header: %w", err)
	}

	var h Header
	if err := h.UnmarshalBinary(b); err != nil {
		return Header{}, err
	}
	return h, nil
}
