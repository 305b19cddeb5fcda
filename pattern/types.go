// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

// Kind is the type of a compiled segment.
type Kind uint8

// Segment is one compiled unit of a pattern.
type Segment struct {
	Kind Kind

	// Text is the literal of an Exact segment or the capture name of a Param
	// or CatchAll segment. It is empty for Wildcard, Dotted and anonymous
	// CatchAll.
	Text string

	// Parts holds the parts of a Dotted segment.
	Parts []Segment
}

// Pattern is a compiled route pattern. It is immutable.
type Pattern struct {
	source      string
	segments    []Segment
	params      []string
	specificity Specificity
}

// Specificity summarises the structure of a pattern for ranking.
type Specificity struct {
	Exact     int
	Params    int
	Wildcards int
	Dots      int
	Segments  int
	CatchAll  bool
}

// Path is a request path split into segments. Every segment is a substring
// of the path, so captures never copy.
type Path struct {
	trimmed  string
	segments []string
	offsets  []int
}

// Splitter returns the index of the first separator in s, or -1 if there is none.
type Splitter func(s string) int
