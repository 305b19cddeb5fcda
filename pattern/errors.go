// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is wrapped by every error returned from Parse.
var ErrInvalidPattern = errors.New("invalid pattern")

// Error describes why a pattern could not be compiled.
type Error struct {
	Pattern string
	Segment string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid pattern '%s': %s in segment '%s'", e.Pattern, e.Reason, e.Segment)
}

// Unwrap makes errors.Is(err, ErrInvalidPattern) hold.
func (e *Error) Unwrap() error {
	return ErrInvalidPattern
}
