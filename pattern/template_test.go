package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		pattern string
		params  []string
		rest    string
		want    string
		ok      bool
	}{
		{pattern: "/", want: "/", ok: true},
		{pattern: "/users/:id", params: []string{"42"}, want: "/users/42", ok: true},
		{pattern: "/users/:user_id/posts/:post_id", params: []string{"1", "10"}, want: "/users/1/posts/10", ok: true},
		{pattern: "/files/*rest", rest: "a/b/c", want: "/files/a/b/c", ok: true},
		{pattern: "/deeply/nested/:world/*", params: []string{"mars"}, want: "/deeply/nested/mars/", ok: true},
		{pattern: "/*", rest: "hello/world", want: "/hello/world", ok: true},
		{pattern: "/users/:id", ok: false},
		{pattern: "/users", params: []string{"1"}, ok: false},
		{pattern: "/a/*/b", ok: false},
		{pattern: "/:file.:ext", params: []string{"archive", "tar.gz"}, want: "/archive.tar.gz", ok: true},
		{pattern: "/reports/:name.pdf", params: []string{"q3"}, want: "/reports/q3.pdf", ok: true},
	}

	for _, test := range tests {
		got, ok := MustParse(test.pattern).Render(test.params, test.rest)

		assert.Equal(t, test.ok, ok, test.pattern)
		assert.Equal(t, test.want, got, test.pattern)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	p := MustParse("/repos/:owner/:repo/*path")
	path := "/repos/fasthttp/router/radix/tree.go"

	var params []string
	var rest string

	ok := p.Match(NewPath(path, nil), func(seg Segment, value string) {
		if seg.Kind == CatchAll {
			rest = value
			return
		}
		params = append(params, value)
	})
	assert.True(t, ok)

	got, ok := p.Render(params, rest)
	assert.True(t, ok)
	assert.Equal(t, path, got)
}
