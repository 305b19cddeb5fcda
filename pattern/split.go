// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

import "strings"

// ScanSplitter finds the next separator with a plain byte loop.
func ScanSplitter(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == Separator {
			return i
		}
	}

	return -1
}

// IndexSplitter finds the next separator with strings.IndexByte, which is
// assembly accelerated on most platforms.
func IndexSplitter(s string) int {
	return strings.IndexByte(s, Separator)
}

// DefaultSplitter returns the splitter selected at build time. Building with
// the routefinder_purego tag selects ScanSplitter, otherwise IndexSplitter.
func DefaultSplitter() Splitter {
	return defaultSplitter
}

// NewPath trims and splits path. Empty interior segments are kept and the
// root path yields a single empty segment. A nil split uses DefaultSplitter.
func NewPath(path string, split Splitter) Path {
	if split == nil {
		split = defaultSplitter
	}

	trimmed := trim(path)
	n := segmentCount(trimmed, split)

	p := Path{
		trimmed:  trimmed,
		segments: make([]string, 0, n),
		offsets:  make([]int, 0, n),
	}

	start := 0
	for {
		end := split(trimmed[start:])
		if end < 0 {
			p.segments = append(p.segments, trimmed[start:])
			p.offsets = append(p.offsets, start)

			return p
		}

		p.segments = append(p.segments, trimmed[start:start+end])
		p.offsets = append(p.offsets, start)
		start += end + 1
	}
}

// Split returns the segments of path, split the same way patterns are.
func Split(path string, split Splitter) []string {
	return NewPath(path, split).segments
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Segment returns the i-th segment.
func (p Path) Segment(i int) string {
	return p.segments[i]
}

// Segments returns all the segments. The slice must not be modified.
func (p Path) Segments() []string {
	return p.segments
}

// Rest returns the segments from i to the end joined by the separator,
// or the empty string if i is past the last segment.
func (p Path) Rest(i int) string {
	if i >= len(p.offsets) {
		return ""
	}

	return p.trimmed[p.offsets[i]:]
}

// String returns the trimmed path.
func (p Path) String() string {
	return p.trimmed
}
