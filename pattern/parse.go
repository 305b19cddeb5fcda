// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

import "strings"

// Parse compiles source into a Pattern.
//
// Segments are separated by '/'. One leading and one trailing separator are
// ignored, and the empty pattern is the root path. The vocabulary is:
//
//	users   exact segment
//	:id     named parameter, one non-empty segment
//	*       anonymous wildcard, one segment; as the last segment a catch-all
//	*rest   named catch-all, only as the last segment
//
// A segment may also be split by '.' into parts when one of them is a param,
// as in ":file.:ext" or ":name.json". Each part is an exact literal or a
// param; every part but the last ends at the next '.' of the path segment.
func Parse(source string) (*Pattern, error) {
	texts := NewPath(source, defaultSplitter).segments

	p := &Pattern{
		source:   source,
		segments: make([]Segment, 0, len(texts)),
	}

	for i, text := range texts {
		last := i == len(texts)-1

		seg, err := parseSegment(source, text, last)
		if err != nil {
			return nil, err
		}

		names := []string{seg.Text}
		switch {
		case seg.Kind == Dotted:
			names = names[:0]
			for _, part := range seg.Parts {
				if part.Kind == Param {
					names = append(names, part.Text)
				}
			}
		case seg.Kind != Param && (seg.Kind != CatchAll || seg.Text == ""):
			names = nil
		}

		for _, name := range names {
			for _, taken := range p.params {
				if name == taken {
					return nil, &Error{Pattern: source, Segment: text, Reason: "duplicate capture name"}
				}
			}

			if seg.Kind != CatchAll {
				p.params = append(p.params, name)
			}
		}

		p.segments = append(p.segments, seg)
	}

	p.specificity = computeSpecificity(p.segments)

	return p, nil
}

// MustParse is like Parse but panics if the pattern is invalid.
func MustParse(source string) *Pattern {
	p, err := Parse(source)
	if err != nil {
		panic(err.Error())
	}

	return p
}

func parseSegment(source, text string, last bool) (Segment, error) {
	if len(text) == 0 {
		return Segment{Kind: Exact}, nil
	}

	if isDotted(text) {
		return parseDotted(source, text)
	}

	switch text[0] {
	case ParamMarker:
		name := text[1:]
		if len(name) == 0 {
			return Segment{}, &Error{Pattern: source, Segment: text, Reason: "params must be named"}
		}

		if !validName(name) {
			return Segment{}, &Error{Pattern: source, Segment: text, Reason: "invalid character in param name"}
		}

		return Segment{Kind: Param, Text: name}, nil

	case WildcardMarker:
		name := text[1:]
		if len(name) == 0 {
			if last {
				return Segment{Kind: CatchAll}, nil
			}

			return Segment{Kind: Wildcard}, nil
		}

		if !validName(name) {
			return Segment{}, &Error{Pattern: source, Segment: text, Reason: "invalid character in catch-all name"}
		}

		if !last {
			return Segment{}, &Error{Pattern: source, Segment: text, Reason: "named catch-all must be the last segment"}
		}

		return Segment{Kind: CatchAll, Text: name}, nil
	}

	return Segment{Kind: Exact, Text: text}, nil
}

func parseDotted(source, text string) (Segment, error) {
	texts := strings.Split(text, string(DotMarker))
	seg := Segment{Kind: Dotted, Parts: make([]Segment, 0, len(texts))}

	for _, part := range texts {
		if len(part) > 0 && part[0] == WildcardMarker {
			return Segment{}, &Error{Pattern: source, Segment: text, Reason: "wildcards can not be part of a dotted segment"}
		}

		// a dotted part is never last: catch-alls are rejected above
		p, err := parseSegment(source, part, false)
		if err != nil {
			return Segment{}, err
		}

		seg.Parts = append(seg.Parts, p)
	}

	return seg, nil
}

// Source returns the text the pattern was compiled from.
func (p *Pattern) Source() string {
	return p.source
}

// Segments returns the compiled segments. The slice must not be modified.
func (p *Pattern) Segments() []Segment {
	return p.segments
}

// Params returns the names of the Param segments in order.
func (p *Pattern) Params() []string {
	return p.params
}

// Specificity returns the structural summary used for ranking.
func (p *Pattern) Specificity() Specificity {
	return p.specificity
}

// CatchAll returns the last segment if it is a catch-all.
func (p *Pattern) CatchAll() (Segment, bool) {
	if !p.specificity.CatchAll {
		return Segment{}, false
	}

	return p.segments[len(p.segments)-1], true
}

// String renders the pattern in canonical form, e.g. "/users/:id/*rest".
func (p *Pattern) String() string {
	var b strings.Builder

	for _, seg := range p.segments {
		b.WriteByte(Separator)
		b.WriteString(seg.String())
	}

	return b.String()
}

func (s Segment) String() string {
	switch s.Kind {
	case Param:
		return string(ParamMarker) + s.Text
	case Wildcard:
		return string(WildcardMarker)
	case CatchAll:
		return string(WildcardMarker) + s.Text
	case Dotted:
		var b strings.Builder
		for i, part := range s.Parts {
			if i > 0 {
				b.WriteByte(DotMarker)
			}
			b.WriteString(part.String())
		}
		return b.String()
	default:
		return s.Text
	}
}

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Param:
		return "param"
	case Wildcard:
		return "wildcard"
	case CatchAll:
		return "catch-all"
	case Dotted:
		return "dotted"
	default:
		return "unknown"
	}
}
