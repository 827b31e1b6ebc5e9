// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hexconv

import (
	"errors"
	"fmt"
)

// FormatError reports input text that cannot be parsed: malformed hex,
// an unparseable number, or an unknown mode name. Token, when set, is the
// offending fragment of the input.
type FormatError struct {
	Reason string
	Token  string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Token)
	}
	return e.Reason
}

// RangeError reports a well-formed value that cannot be represented in the
// requested width and mode, or a width/group size outside the supported set.
type RangeError struct {
	Reason string
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return e.Reason
}

// IsFormatError reports whether err is (or wraps) a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsRangeError reports whether err is (or wraps) a *RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}
