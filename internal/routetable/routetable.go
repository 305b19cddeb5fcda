// Package routetable loads route tables from YAML and builds routers from them.
//
// A table looks like:
//
//	splitter: index
//	routes:
//	  - pattern: /users/:id
//	    name: user
//	    target: users.show
//	  - pattern: /*
//	    target: fallback
package routetable

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fasthttp/routefinder"
	"github.com/fasthttp/routefinder/pattern"
	"gopkg.in/yaml.v3"
)

// Splitter names accepted in a table.
const (
	SplitterDefault = ""
	SplitterScan    = "scan"
	SplitterIndex   = "index"
)

// ErrNoRoutes is returned for a table without routes.
var ErrNoRoutes = errors.New("route table has no routes")

// Entry is one route of a table.
type Entry struct {
	Pattern string `yaml:"pattern"`
	Name    string `yaml:"name,omitempty"`
	Target  string `yaml:"target"`
}

// Table is a parsed route table.
type Table struct {
	Splitter string  `yaml:"splitter,omitempty"`
	Routes   []Entry `yaml:"routes"`
}

// Parse decodes and validates a YAML route table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse route table: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Load reads the route table at path.
func Load(path string) (*Table, error) {
	if path == "" {
		return nil, fmt.Errorf("route table path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("route table does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to stat route table: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("route table path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read route table: %w", err)
	}

	return Parse(data)
}

// Validate checks the table without parsing its patterns.
func (t *Table) Validate() error {
	if len(t.Routes) == 0 {
		return ErrNoRoutes
	}

	switch t.Splitter {
	case SplitterDefault, SplitterScan, SplitterIndex:
	default:
		return fmt.Errorf("unknown splitter %q", t.Splitter)
	}

	for i, e := range t.Routes {
		if e.Pattern == "" {
			return fmt.Errorf("route %d: pattern is empty", i)
		}
	}

	return nil
}

// Build returns a router holding every entry of the table, each entry being
// the target of its own route.
func (t *Table) Build() (*routefinder.Router[Entry], error) {
	r := routefinder.New[Entry]()
	r.Splitter = t.splitter()

	for i, e := range t.Routes {
		var err error
		if e.Name != "" {
			_, err = r.AddNamed(e.Pattern, e.Name, e)
		} else {
			_, err = r.Add(e.Pattern, e)
		}

		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
	}

	return r, nil
}

func (t *Table) splitter() pattern.Splitter {
	switch t.Splitter {
	case SplitterScan:
		return pattern.ScanSplitter
	case SplitterIndex:
		return pattern.IndexSplitter
	default:
		return nil
	}
}
