// SPDX-License-Identifier: EPL-2.0

package msu

import (
	"fmt"
	"io"
)

// Assemble writes an MSU1 file to w: the header for loopPoint, then every
// remaining byte of intro (skipped when nil), then every remaining byte of
// main. Both readers are expected to be positioned at their sample data.
//
// It returns the number of bytes written. Output already written when an
// error occurs is not undone; callers should discard it.
func Assemble(w io.Writer, loopPoint int32, intro, main io.Reader) (int64, error) {
	if main == nil {
		return 0, ErrMissingInput
	}

	if err := WriteHeader(w, loopPoint); err != nil {
		return 0, err
	}
	written := int64(HeaderSize)

	if intro != nil {
		n, err := io.Copy(w, intro)
		written += n
		if err != nil {
			return written, fmt.Errorf("copying intro samples: %w", err)
		}
	}

	n, err := io.Copy(w, main)
	written += n
	if err != nil {
		return written, fmt.Errorf("copying input samples: %w", err)
	}

	return written, nil
}
