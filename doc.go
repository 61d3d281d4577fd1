// SPDX-License-Identifier: EPL-2.0

// Package wav2msu converts WAV files to MSU1 audio tracks.
//
// MSU1 playback add-ons for emulated consoles stream a headerless format:
// the tag "MSU1", a 32-bit loop point and raw 16-bit stereo PCM at 44.1kHz.
// Input must already be in that sample format; nothing is resampled.
//
// # Quick Start
//
//	in, _ := os.Open("track.wav")
//	out, _ := os.Create("track-1.pcm")
//	err := wav2msu.Convert(out, in, wav2msu.Options{})
//
// # Intro and Loop Point
//
// An intro is played once before the main input. The loop point is given
// relative to the main input; when an intro is present it is moved forward by
// the intro's frame count so the header addresses the same sample:
//
//	intro, _ := os.Open("intro.wav")
//	err := wav2msu.Convert(out, in, wav2msu.Options{
//	    LoopPoint: 1000,
//	    Intro:     intro,
//	})
//
// ParseLoopPoint accepts the decimal and 0x-prefixed hexadecimal forms used
// on the command line.
//
// # Validating Before Writing
//
// NewConversion validates both inputs without touching the output, which
// lets callers create the output file only once they know it will be valid:
//
//	c, err := wav2msu.NewConversion(in, opts)
//	if err != nil {
//	    // Nothing written
//	}
//	out, _ := os.Create("track-1.pcm")
//	c.WriteTo(out)
//
// See formats/wav for the accepted WAV layout and formats/msu for the output
// format.
package wav2msu
