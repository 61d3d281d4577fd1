// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds WAV fixtures and reader wrappers for tests.
package audiotest

import (
	"encoding/binary"
)

// Fixture describes a canonical 44-byte-header WAV file. The zero value of
// each header field is replaced by the MSU-1 compatible default, so tests
// only set what they want to break.
type Fixture struct {
	Signature  string
	Format     uint16
	Channels   uint16
	SampleRate uint32
	BitDepth   uint16
	DataMarker string
	// DataSize overrides the data length field when non-nil.
	DataSize *uint32
	Data     []byte
	// Extra is inserted as a chunk between fmt and data when non-empty.
	Extra []byte
}

// Size returns a pointer to v for Fixture.DataSize.
func Size(v uint32) *uint32 { return &v }

// Bytes lays the fixture out as a RIFF WAVE file.
func (f Fixture) Bytes() []byte {
	signature := defaultString(f.Signature, "RIFF")
	format := defaultU16(f.Format, 1)
	channels := defaultU16(f.Channels, 2)
	sampleRate := f.SampleRate
	if sampleRate == 0 {
		sampleRate = 44100
	}
	bitDepth := defaultU16(f.BitDepth, 16)
	marker := defaultString(f.DataMarker, "data")

	dataSize := uint32(len(f.Data))
	if f.DataSize != nil {
		dataSize = *f.DataSize
	}

	byteRate := sampleRate * uint32(channels) * uint32(bitDepth/8)
	blockAlign := channels * (bitDepth / 8)

	var extra []byte
	if len(f.Extra) > 0 {
		extra = make([]byte, 8+len(f.Extra))
		copy(extra[0:4], "JUNK")
		binary.LittleEndian.PutUint32(extra[4:8], uint32(len(f.Extra)))
		copy(extra[8:], f.Extra)
	}

	riffSize := 36 + uint32(len(extra)) + uint32(len(f.Data))

	header := make([]byte, 36)

	// RIFF header (12 bytes)
	copy(header[0:4], signature)
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], format)
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitDepth)

	// data chunk header (8 bytes)
	data := make([]byte, 8, 8+len(f.Data))
	copy(data[0:4], marker)
	binary.LittleEndian.PutUint32(data[4:8], dataSize)
	data = append(data, f.Data...)

	out := make([]byte, 0, len(header)+len(extra)+len(data))
	out = append(out, header...)
	out = append(out, extra...)
	out = append(out, data...)

	return out
}

// Samples returns n bytes of recognisable sample data starting at seed.
func Samples(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultU16(v, def uint16) uint16 {
	if v == 0 {
		return def
	}
	return v
}
