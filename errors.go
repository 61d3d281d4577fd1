// SPDX-License-Identifier: EPL-2.0

package wav2msu

import "errors"

var (
	ErrInvalidLoopPoint = errors.New("invalid loop point")
	ErrIntroInvalid     = errors.New("intro file did not validate")
	ErrInputInvalid     = errors.New("input WAV data did not validate")
)
