package dispatch

import "strings"

const filesSuffix = "/*filepath"

func validatePath(path string) {
	switch {
	case len(path) == 0 || !strings.HasPrefix(path, "/"):
		panic("path must begin with '/' in path '" + path + "'")
	}
}

// filesPrefix returns the part of a file serving path before its catch-all.
func filesPrefix(path string) string {
	if !strings.HasSuffix(path, filesSuffix) {
		panic("path must end with " + filesSuffix + " in path '" + path + "'")
	}

	return path[:len(path)-len(filesSuffix)]
}
