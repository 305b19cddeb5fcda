package dispatch

import (
	"reflect"
	"testing"
)

func Test_validatePath(t *testing.T) {
	if err := catchPanic(func() { validatePath("") }); err == nil {
		t.Error("an error was expected with an empty path")
	}

	if err := catchPanic(func() { validatePath("foo") }); err == nil {
		t.Error("an error was expected with a path without leading slash")
	}

	if err := catchPanic(func() { validatePath("/foo") }); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func Test_filesPrefix(t *testing.T) {
	if err := catchPanic(func() { filesPrefix("/static/*rest") }); err == nil {
		t.Error("an error was expected with a path not ending with *filepath")
	}

	if got := filesPrefix("/static/*filepath"); got != "/static" {
		t.Errorf("filesPrefix() == %q, want '/static'", got)
	}

	if got := filesPrefix("/*filepath"); got != "" {
		t.Errorf("filesPrefix() == %q, want ''", got)
	}
}

func Test_getOptionalPaths(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/plain", []string{}},
		{"/what?", []string{}},
		{"/show/:name?", []string{"/show", "/show/:name"}},
		{"/:id?", []string{"/", "/:id"}},
		{"/a/:b?/c/:d?", []string{"/a", "/a/:b/c", "/a/:b/c/:d"}},
		{"/a/:b?/:c?", []string{"/a", "/a/:b", "/a/:b/:c"}},
	}

	for _, test := range tests {
		if got := getOptionalPaths(test.path); !reflect.DeepEqual(got, test.want) {
			t.Errorf("getOptionalPaths(%q) == %v, want %v", test.path, got, test.want)
		}
	}
}
