// SPDX-License-Identifier: EPL-2.0

package msu

import "errors"

var (
	ErrNotMSU       = errors.New("not an MSU1 file")
	ErrShortHeader  = errors.New("MSU1 header must be 8 bytes")
	ErrMissingInput = errors.New("main input is required")
)
