// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

func computeSpecificity(segments []Segment) Specificity {
	s := Specificity{Segments: len(segments)}

	for _, seg := range segments {
		switch seg.Kind {
		case Exact:
			s.Exact++
		case Param:
			s.Params++
		case Wildcard:
			s.Wildcards++
		case CatchAll:
			s.CatchAll = true
		case Dotted:
			s.Dots += len(seg.Parts) - 1

			for _, part := range seg.Parts {
				if part.Kind == Param {
					s.Params++
				} else {
					s.Exact++
				}
			}
		}
	}

	return s
}

// Compare returns a positive number if s is more specific than o, a negative
// number if it is less specific and 0 if both rank the same.
//
// Keys are compared in order: more exact segments, no catch-all, more named
// params, more dots, more segments. The exact parts and params of a dotted
// segment count like whole segments.
func (s Specificity) Compare(o Specificity) int {
	if s.Exact != o.Exact {
		return s.Exact - o.Exact
	}

	if s.CatchAll != o.CatchAll {
		if o.CatchAll {
			return 1
		}
		return -1
	}

	if s.Params != o.Params {
		return s.Params - o.Params
	}

	if s.Dots != o.Dots {
		return s.Dots - o.Dots
	}

	return s.Segments - o.Segments
}

// MinSegments returns the fewest path segments the pattern can match.
func (s Specificity) MinSegments() int {
	if s.CatchAll {
		return s.Segments - 1
	}

	return s.Segments
}
