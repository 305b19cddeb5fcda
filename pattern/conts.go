// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

// Package pattern compiles route patterns into segment matchers and matches
// split request paths against them.
package pattern

const (
	// Separator delimits the segments of patterns and paths.
	Separator = '/'

	// ParamMarker prefixes a named single segment capture (":id").
	ParamMarker = ':'

	// WildcardMarker is an anonymous single segment ("*") or, as the last
	// segment, a catch-all ("*" or "*rest").
	WildcardMarker = '*'

	// DotMarker delimits the parts of a dotted segment (":file.:ext").
	DotMarker = '.'
)

const (
	// Exact matches a segment byte for byte.
	Exact Kind = iota

	// Param matches one non-empty segment and captures it under a name.
	Param

	// Wildcard matches one segment without capturing it.
	Wildcard

	// CatchAll matches every remaining segment. Only valid as the last segment.
	CatchAll

	// Dotted matches one segment made of '.' separated parts, at least one of
	// them a param. Parts are Exact or Param segments.
	Dotted
)
