package dispatch

import (
	"strings"

	"github.com/savsgio/gotils"
)

// isOptional reports whether seg is a param marked optional, as in ":name?".
func isOptional(seg string) bool {
	return len(seg) > 2 && seg[0] == ':' && seg[len(seg)-1] == '?'
}

// getOptionalPaths returns all possible paths when the original path
// has optional arguments. Each optional param adds the path up to it, the
// last entry is the full path without the '?' markers.
func getOptionalPaths(path string) []string {
	paths := make([]string, 0)

	if strings.IndexByte(path, '?') == -1 {
		return paths
	}

	var b strings.Builder
	optional := false

	for _, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if isOptional(seg) {
			optional = true

			prefix := b.String()
			if prefix == "" {
				prefix = "/"
			}

			// include the path without the optional param
			if !gotils.StringSliceInclude(paths, prefix) {
				paths = append(paths, prefix)
			}

			seg = seg[:len(seg)-1] // remove '?'
		}

		b.WriteByte('/')
		b.WriteString(seg)
	}

	if !optional {
		return paths
	}

	return append(paths, b.String())
}
