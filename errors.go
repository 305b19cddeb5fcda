package routefinder

import (
	"errors"

	"github.com/fasthttp/routefinder/pattern"
)

var (
	// ErrInvalidPattern is returned by Add when a pattern cannot be compiled.
	// The returned error is a *pattern.Error wrapping it.
	ErrInvalidPattern = pattern.ErrInvalidPattern

	// ErrDuplicateName is returned by AddNamed when the name is already taken.
	ErrDuplicateName = errors.New("duplicate route name")
)
