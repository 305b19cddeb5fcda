// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

import "strings"

// trim removes one leading and one trailing separator, so "/", "" and
// "/users/" compare like "", "" and "users".
func trim(path string) string {
	if len(path) > 0 && path[0] == Separator {
		path = path[1:]
	}

	if len(path) > 0 && path[len(path)-1] == Separator {
		path = path[:len(path)-1]
	}

	return path
}

// segmentCount returns how many segments the trimmed path splits into.
func segmentCount(trimmed string, split Splitter) int {
	n := 1
	for {
		i := split(trimmed)
		if i < 0 {
			return n
		}

		n++
		trimmed = trimmed[i+1:]
	}
}

// validName reports whether name can be used as a capture name.
func validName(name string) bool {
	if len(name) == 0 {
		return false
	}

	for i := 0; i < len(name); i++ {
		switch name[i] {
		case ParamMarker, WildcardMarker, Separator, DotMarker:
			return false
		}
	}

	return true
}

// isDotted reports whether text holds a param after a dot or before one, as
// in ":file.:ext", "v.:n" or ":name.json".
func isDotted(text string) bool {
	if strings.IndexByte(text, DotMarker) < 0 {
		return false
	}

	for _, part := range strings.Split(text, string(DotMarker)) {
		if len(part) > 0 && part[0] == ParamMarker {
			return true
		}
	}

	return false
}
