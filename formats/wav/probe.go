// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Info describes a WAV file as found by walking its chunk list, regardless of
// where the chunks sit.
type Info struct {
	Format      *goaudio.Format
	AudioFormat uint16
	BitDepth    uint16
	DataSize    int
}

// Frames returns the number of MSU-1 sized frames in the data chunk.
func (i Info) Frames() int { return i.DataSize / BytesPerFrame }

// Compatible reports whether the audio itself meets the MSU-1 requirements.
// A compatible file can still fail Validate when its layout is not canonical.
func (i Info) Compatible() bool {
	return i.Format != nil &&
		i.AudioFormat == FormatPCM &&
		i.Format.NumChannels == int(RequiredChannels) &&
		i.Format.SampleRate == int(RequiredSampleRate) &&
		i.BitDepth == RequiredBitDepth
}

func (i Info) String() string {
	if i.Format == nil {
		return "unknown format"
	}
	return fmt.Sprintf("format %d, %dbit, %dHz, %dch, %d data bytes (%d frames)",
		i.AudioFormat, i.BitDepth, i.Format.SampleRate, i.Format.NumChannels,
		i.DataSize, i.Frames())
}

// Probe reads the chunk structure of rs from its start using go-audio/wav.
// The position of rs is restored before returning.
func Probe(rs io.ReadSeeker) (Info, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}
	defer rs.Seek(start, io.SeekStart)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return Info{}, ErrNotWavFile
	}

	info := Info{
		Format:      dec.Format(),
		AudioFormat: dec.WavAudioFormat,
		BitDepth:    dec.BitDepth,
	}

	if err := dec.FwdToPCM(); err != nil {
		return info, fmt.Errorf("%w: %w", ErrNoDataChunk, err)
	}
	if dec.PCMChunk == nil {
		return info, ErrNoDataChunk
	}
	info.DataSize = dec.PCMSize

	return info, nil
}
