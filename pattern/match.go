// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Match reports whether path matches the pattern. On success capture is
// called, in pattern order, for every Param and CatchAll segment and every
// param part of a Dotted segment with the captured value. It is never called
// for a failed match. capture may be nil.
//
// A catch-all consumes every remaining segment, including none at all, and
// captures them joined by the separator.
func (p *Pattern) Match(path Path, capture func(seg Segment, value string)) bool {
	if !p.accepts(path, false) {
		return false
	}

	if capture == nil {
		return true
	}

	for i, seg := range p.segments {
		switch seg.Kind {
		case Param:
			capture(seg, path.segments[i])
		case Dotted:
			seg.matchParts(path.segments[i], false, capture)
		case CatchAll:
			capture(seg, path.Rest(i))
		}
	}

	return true
}

// MatchString is a shortcut for Match(NewPath(path, nil), nil).
func (p *Pattern) MatchString(path string) bool {
	return p.Match(NewPath(path, nil), nil)
}

// FixPath reports whether path matches the pattern when exact segments and
// parts are compared case-insensitively. On success it writes to buf the
// path spelled with the pattern's literals and the values taken from path
// unchanged. buf is left untouched otherwise.
func (p *Pattern) FixPath(path Path, buf *bytebufferpool.ByteBuffer) bool {
	if !p.accepts(path, true) {
		return false
	}

	start := len(buf.B)

	for i, seg := range p.segments {
		switch seg.Kind {
		case Exact:
			buf.WriteByte(Separator)
			buf.WriteString(seg.Text)
		case Param, Wildcard:
			buf.WriteByte(Separator)
			buf.WriteString(path.segments[i])
		case Dotted:
			buf.WriteByte(Separator)
			seg.writeParts(path.segments[i], buf)
		case CatchAll:
			if i < path.Len() {
				buf.WriteByte(Separator)
				buf.WriteString(path.Rest(i))
			}
		}
	}

	if len(buf.B) == start {
		buf.WriteByte(Separator)
	}

	return true
}

// accepts walks the pattern against path without recording anything.
func (p *Pattern) accepts(path Path, fold bool) bool {
	n := path.Len()

	if p.specificity.CatchAll {
		if n < p.specificity.MinSegments() {
			return false
		}
	} else if n != len(p.segments) {
		return false
	}

	for i, seg := range p.segments {
		switch seg.Kind {
		case Exact:
			if !equal(path.segments[i], seg.Text, fold) {
				return false
			}
		case Param:
			if len(path.segments[i]) == 0 {
				return false
			}
		case Wildcard:
			// any single segment
		case Dotted:
			if !seg.matchParts(path.segments[i], fold, nil) {
				return false
			}
		case CatchAll:
			return true
		}
	}

	return true
}

// matchParts matches a path segment against the parts of a Dotted segment.
// capture is called for param parts as they are read, so it must only be
// given once the segment is known to match.
func (s Segment) matchParts(text string, fold bool, capture func(seg Segment, value string)) bool {
	last := len(s.Parts) - 1

	for i, part := range s.Parts {
		piece := text
		if i < last {
			end := strings.IndexByte(text, DotMarker)
			if end < 0 {
				return false
			}

			piece, text = text[:end], text[end+1:]
		}

		switch part.Kind {
		case Exact:
			if !equal(piece, part.Text, fold) {
				return false
			}
		case Param:
			if len(piece) == 0 {
				return false
			}

			if capture != nil {
				capture(part, piece)
			}
		}
	}

	return true
}

// writeParts writes text to buf with the exact parts of s replaced by their
// literals. text must match s.
func (s Segment) writeParts(text string, buf *bytebufferpool.ByteBuffer) {
	last := len(s.Parts) - 1

	for i, part := range s.Parts {
		piece := text
		if i < last {
			end := strings.IndexByte(text, DotMarker)
			piece, text = text[:end], text[end+1:]
		}

		if i > 0 {
			buf.WriteByte(DotMarker)
		}

		if part.Kind == Exact {
			buf.WriteString(part.Text)
		} else {
			buf.WriteString(piece)
		}
	}
}

func equal(a, b string, fold bool) bool {
	if fold {
		return strings.EqualFold(a, b)
	}

	return a == b
}
