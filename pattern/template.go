// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

import "github.com/valyala/bytebufferpool"

// Render builds a concrete path from the pattern. params holds one value per
// Param segment, in order, and rest is written in place of a catch-all.
// It returns false if the pattern has an anonymous single wildcard or if the
// number of values does not match the number of params.
func (p *Pattern) Render(params []string, rest string) (string, bool) {
	if p.specificity.Wildcards > 0 || len(params) != len(p.params) {
		return "", false
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	next := 0
	for _, seg := range p.segments {
		buf.WriteByte(Separator)

		switch seg.Kind {
		case Exact:
			buf.WriteString(seg.Text)
		case Param:
			buf.WriteString(params[next])
			next++
		case Dotted:
			for i, part := range seg.Parts {
				if i > 0 {
					buf.WriteByte(DotMarker)
				}

				if part.Kind == Param {
					buf.WriteString(params[next])
					next++
				} else {
					buf.WriteString(part.Text)
				}
			}
		case CatchAll:
			buf.WriteString(rest)
		}
	}

	return buf.String(), true
}
