// SPDX-License-Identifier: EPL-2.0

// Package msu writes and reads the MSU1 audio stream format.
//
// An MSU1 audio file is an 8-byte header followed by raw 16-bit
// little-endian stereo PCM at 44.1kHz:
//
//	offset  size  field
//	0       4     "MSU1"
//	4       4     loop point, signed little-endian, in sample frames
//	8       ...   samples
//
// Assemble produces a complete file from an optional intro and a main
// track, both already positioned at their sample data:
//
//	n, err := msu.Assemble(out, loopPoint, intro, main)
//
// ReadHeader reads the header back:
//
//	h, err := msu.ReadHeader(file)
//	fmt.Println(h.LoopPoint)
package msu
