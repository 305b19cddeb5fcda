package routetable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fasthttp/routefinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "routes.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SplitterScan, table.Splitter)
	require.Len(t, table.Routes, 4)
	assert.Equal(t, Entry{Pattern: "/users/:id", Name: "user", Target: "users.show"}, table.Routes[0])
	assert.Equal(t, Entry{Pattern: "/*", Target: "fallback"}, table.Routes[3])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "does not exist")

	_, err = Load("testdata")
	assert.ErrorContains(t, err, "directory")

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("routes: ["), 0o600))

	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse route table")
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  string
	}{
		{"no routes", "routes: []", "no routes"},
		{"empty pattern", "routes:\n  - target: x", "route 0: pattern is empty"},
		{"unknown splitter", "splitter: simd\nroutes:\n  - pattern: /", "unknown splitter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorContains(t, err, tt.err)
		})
	}

	_, err := Parse([]byte("routes: []"))
	assert.ErrorIs(t, err, ErrNoRoutes)
}

func TestBuild(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "routes.yaml"))
	require.NoError(t, err)

	r, err := table.Build()
	require.NoError(t, err)
	require.NotNil(t, r.Splitter)

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []string{"/users/me", "/users/:id", "/files/*path", "/*"}, r.List())

	m, ok := r.BestMatch("/users/42")
	require.True(t, ok)
	assert.Equal(t, "users.show", m.Target().Target)
	id, ok := m.Param("id")
	require.True(t, ok)
	assert.Equal(t, "42", id)

	m, ok = r.BestMatch("/files/a/b.txt")
	require.True(t, ok)
	assert.Equal(t, "files.get", m.Target().Target)

	rest, ok := m.Wildcard()
	require.True(t, ok)
	assert.Equal(t, "a/b.txt", rest)

	route, ok := r.Named("user")
	require.True(t, ok)
	assert.Equal(t, "/users/:id", route.Source())
}

func TestBuildErrors(t *testing.T) {
	table, err := Parse([]byte("routes:\n  - pattern: /ok\n  - pattern: /a/*rest/b"))
	require.NoError(t, err)

	_, err = table.Build()
	assert.ErrorIs(t, err, routefinder.ErrInvalidPattern)
	assert.ErrorContains(t, err, "route 1")

	table, err = Parse([]byte("routes:\n  - pattern: /a\n    name: x\n  - pattern: /b\n    name: x"))
	require.NoError(t, err)

	_, err = table.Build()
	assert.ErrorIs(t, err, routefinder.ErrDuplicateName)
}
