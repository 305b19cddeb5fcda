package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var splitters = map[string]Splitter{
	"scan":  ScanSplitter,
	"index": IndexSplitter,
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "/", want: []string{""}},
		{path: "", want: []string{""}},
		{path: "//", want: []string{""}},
		{path: "/users", want: []string{"users"}},
		{path: "/users/", want: []string{"users"}},
		{path: "users/42", want: []string{"users", "42"}},
		{path: "/a//b", want: []string{"a", "", "b"}},
		{path: "/a//", want: []string{"a", ""}},
		{path: "/files/a/b/c", want: []string{"files", "a", "b", "c"}},
		{path: "/ünïcode/ø", want: []string{"ünïcode", "ø"}},
	}

	for name, split := range splitters {
		for _, test := range tests {
			assert.Equal(t, test.want, Split(test.path, split), "splitter %s, path %q", name, test.path)
		}
	}
}

func TestSplittersAgree(t *testing.T) {
	paths := []string{
		"/", "/a", "/a/b/c", "a/b/", "///", "/x//y///z", "/static/css/main.css",
	}

	for _, path := range paths {
		assert.Equal(t, Split(path, ScanSplitter), Split(path, IndexSplitter), path)
	}
}

func TestPathRest(t *testing.T) {
	p := NewPath("/files/a/b/c/", nil)

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, "files", p.Segment(0))
	assert.Equal(t, "files/a/b/c", p.Rest(0))
	assert.Equal(t, "a/b/c", p.Rest(1))
	assert.Equal(t, "c", p.Rest(3))
	assert.Equal(t, "", p.Rest(4))
	assert.Equal(t, "files/a/b/c", p.String())
}

func TestDefaultSplitter(t *testing.T) {
	assert.NotNil(t, DefaultSplitter())
	assert.Equal(t, Split("/a/b", nil), Split("/a/b", DefaultSplitter()))
}

func BenchmarkSplit(b *testing.B) {
	const path = "/repos/fasthttp/router/contents/some/deeply/nested/file.go"

	for name, split := range splitters {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				NewPath(path, split)
			}
		})
	}
}
