// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catchPanic(testFunc func()) (recv interface{}) {
	defer func() {
		recv = recover()
	}()

	testFunc()
	return
}

func TestParse(t *testing.T) {
	tests := []struct {
		source   string
		segments []Segment
		str      string
	}{
		{
			source:   "/",
			segments: []Segment{{Kind: Exact}},
			str:      "/",
		},
		{
			source:   "",
			segments: []Segment{{Kind: Exact}},
			str:      "/",
		},
		{
			source:   "/users/:id",
			segments: []Segment{{Kind: Exact, Text: "users"}, {Kind: Param, Text: "id"}},
			str:      "/users/:id",
		},
		{
			source:   "users/:id/",
			segments: []Segment{{Kind: Exact, Text: "users"}, {Kind: Param, Text: "id"}},
			str:      "/users/:id",
		},
		{
			source:   "/files/*rest",
			segments: []Segment{{Kind: Exact, Text: "files"}, {Kind: CatchAll, Text: "rest"}},
			str:      "/files/*rest",
		},
		{
			source:   "/*",
			segments: []Segment{{Kind: CatchAll}},
			str:      "/*",
		},
		{
			source:   "/a/*/b",
			segments: []Segment{{Kind: Exact, Text: "a"}, {Kind: Wildcard}, {Kind: Exact, Text: "b"}},
			str:      "/a/*/b",
		},
		{
			source:   "/a//b",
			segments: []Segment{{Kind: Exact, Text: "a"}, {Kind: Exact}, {Kind: Exact, Text: "b"}},
			str:      "/a//b",
		},
		{
			source: "/a/:b.:c",
			segments: []Segment{{Kind: Exact, Text: "a"}, {Kind: Dotted, Parts: []Segment{
				{Kind: Param, Text: "b"},
				{Kind: Param, Text: "c"},
			}}},
			str: "/a/:b.:c",
		},
		{
			source: "/:name.json",
			segments: []Segment{{Kind: Dotted, Parts: []Segment{
				{Kind: Param, Text: "name"},
				{Kind: Exact, Text: "json"},
			}}},
			str: "/:name.json",
		},
		{
			source:   "/favicon.ico",
			segments: []Segment{{Kind: Exact, Text: "favicon.ico"}},
			str:      "/favicon.ico",
		},
		{
			source:   "/v1:beta/x",
			segments: []Segment{{Kind: Exact, Text: "v1:beta"}, {Kind: Exact, Text: "x"}},
			str:      "/v1:beta/x",
		},
	}

	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			p, err := Parse(test.source)
			require.NoError(t, err)

			assert.Equal(t, test.segments, p.Segments())
			assert.Equal(t, test.str, p.String())
			assert.Equal(t, test.source, p.Source())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		source  string
		segment string
		reason  string
	}{
		{source: "/a/*name/b", segment: "*name", reason: "named catch-all must be the last segment"},
		{source: "/:", segment: ":", reason: "params must be named"},
		{source: "/users/:/posts", segment: ":", reason: "params must be named"},
		{source: "/:a:b", segment: ":a:b", reason: "invalid character in param name"},
		{source: "/**", segment: "**", reason: "invalid character in catch-all name"},
		{source: "/:id/:id", segment: ":id", reason: "duplicate capture name"},
		{source: "/:id/*id", segment: "*id", reason: "duplicate capture name"},
		{source: "/:a.:a", segment: ":a.:a", reason: "duplicate capture name"},
		{source: "/:id/:name.:id", segment: ":name.:id", reason: "duplicate capture name"},
		{source: "/:file.*", segment: ":file.*", reason: "wildcards can not be part of a dotted segment"},
		{source: "/:.json", segment: ":", reason: "params must be named"},
		{source: "/*file.txt", segment: "*file.txt", reason: "invalid character in catch-all name"},
	}

	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			p, err := Parse(test.source)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, ErrInvalidPattern))

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, test.source, perr.Pattern)
			assert.Equal(t, test.segment, perr.Segment)
			assert.Equal(t, test.reason, perr.Reason)
			assert.Contains(t, err.Error(), test.segment)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.NotNil(t, catchPanic(func() { MustParse("/a/*b/c") }))
	assert.Nil(t, catchPanic(func() { MustParse("/a/:b/c") }))
}

func TestPatternAccessors(t *testing.T) {
	p := MustParse("/repos/:owner/:repo/*path")

	assert.Equal(t, []string{"owner", "repo"}, p.Params())

	seg, ok := p.CatchAll()
	assert.True(t, ok)
	assert.Equal(t, Segment{Kind: CatchAll, Text: "path"}, seg)

	_, ok = MustParse("/repos/:owner").CatchAll()
	assert.False(t, ok)
}

func TestDottedParams(t *testing.T) {
	p := MustParse("/:id/:file.:ext/*")

	assert.Equal(t, []string{"id", "file", "ext"}, p.Params())
	assert.Equal(t, Specificity{Exact: 0, Params: 3, Dots: 1, Segments: 3, CatchAll: true}, p.Specificity())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "exact", Exact.String())
	assert.Equal(t, "param", Param.String())
	assert.Equal(t, "wildcard", Wildcard.String())
	assert.Equal(t, "catch-all", CatchAll.String())
	assert.Equal(t, "dotted", Dotted.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
