// SPDX-License-Identifier: EPL-2.0

package wav2msu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ik5/wav2msu/formats/wav"
)

// ParseLoopPoint parses a loop point given as a decimal number or as a
// hexadecimal number with a 0x prefix. A leading 0 selects octal, as with C's
// strtol. Go literal extensions (digit separators, 0b and 0o) are rejected.
func ParseLoopPoint(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidLoopPoint)
	}

	digits := strings.TrimLeft(s, "+-")
	if strings.Contains(s, "_") || hasPrefixFold(digits, "0b") || hasPrefixFold(digits, "0o") {
		return 0, fmt.Errorf("%w: %q: not a decimal or 0x hexadecimal number", ErrInvalidLoopPoint, s)
	}

	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidLoopPoint, s, err)
	}

	return v, nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// EffectiveLoopPoint moves base past the intro so the loop point addresses
// the same frame once the intro is prepended. introSize is the length of the
// intro's sample data in bytes; 0 means no intro. The sum is truncated to
// 32 bits the way the header stores it.
func EffectiveLoopPoint(base int64, introSize uint32) int32 {
	return int32(base + int64(introSize)/int64(wav.BytesPerFrame))
}
