// Package routefinder ranks and matches path patterns.
//
// Patterns are made of '/' separated segments: literals, named params
// (":id"), anonymous single segment wildcards ("*") and a final catch-all
// ("*" or "*rest"). Routes are kept ordered from the most to the least
// specific, so the first match of a path is always the best one.
//
//	r := routefinder.New[string]()
//	r.MustAdd("/users/:id", "user")
//	r.MustAdd("/users/me", "me")
//	r.MustAdd("/*", "fallback")
//
//	m, _ := r.BestMatch("/users/42")
//	id, _ := m.Param("id") // "42"
//
// A Router is not safe for concurrent Add calls. Once every route is added
// it can be queried from any number of goroutines.
package routefinder

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/fasthttp/routefinder/pattern"
	"github.com/valyala/bytebufferpool"
)

// Router is an ordered set of routes. The zero value is ready to use.
type Router[T any] struct {
	// Splitter locates separators when splitting query paths. If nil,
	// pattern.DefaultSplitter() is used. Every splitter gives the same results.
	Splitter pattern.Splitter

	routes []*Route[T]
	names  map[string]*Route[T]
	nextID int
}

// New returns a new empty Router.
func New[T any]() *Router[T] {
	return &Router[T]{}
}

// Add compiles pattern and registers target with it. Adding the same pattern
// twice registers two routes; the first one added ranks first.
//
// If the pattern is invalid the router is left untouched and the error
// wraps ErrInvalidPattern.
//
// WARNING: Not concurrency-safe!
func (r *Router[T]) Add(pattern string, target T) (*Route[T], error) {
	return r.add(pattern, target, "")
}

// AddNamed is like Add and also makes the route available through Named.
func (r *Router[T]) AddNamed(pattern, name string, target T) (*Route[T], error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("route name must not be empty for pattern '%s'", pattern)
	}

	if _, ok := r.names[name]; ok {
		return nil, fmt.Errorf("%w: '%s'", ErrDuplicateName, name)
	}

	return r.add(pattern, target, name)
}

// MustAdd is like Add but panics if the pattern is invalid.
func (r *Router[T]) MustAdd(pattern string, target T) *Route[T] {
	route, err := r.Add(pattern, target)
	if err != nil {
		panic(err.Error())
	}

	return route
}

func (r *Router[T]) add(source string, target T, name string) (*Route[T], error) {
	p, err := pattern.Parse(source)
	if err != nil {
		return nil, err
	}

	route := &Route[T]{
		id:      r.nextID,
		name:    name,
		pattern: p,
		target:  target,
	}
	r.nextID++

	// routes is sorted, so the new route goes before the first one it precedes
	i := sort.Search(len(r.routes), func(i int) bool {
		return route.precedes(r.routes[i])
	})
	r.routes = slices.Insert(r.routes, i, route)

	if len(name) > 0 {
		if r.names == nil {
			r.names = make(map[string]*Route[T])
		}
		r.names[name] = route
	}

	return route, nil
}

// Matches returns every route matching path, best match first. Routes are
// tried one at a time as the sequence is consumed, so stopping early skips
// the rest of the scan. Each call scans again from the start.
func (r *Router[T]) Matches(path string) iter.Seq[*Match[T]] {
	return func(yield func(*Match[T]) bool) {
		if len(r.routes) == 0 {
			return
		}

		p := pattern.NewPath(path, r.Splitter)

		for _, route := range r.routes {
			m, ok := route.match(p, path)
			if !ok {
				continue
			}

			if !yield(m) {
				return
			}
		}
	}
}

// MatchAll collects Matches(path) into a slice.
func (r *Router[T]) MatchAll(path string) []*Match[T] {
	return slices.Collect(r.Matches(path))
}

// BestMatch returns the most specific route matching path.
func (r *Router[T]) BestMatch(path string) (*Match[T], bool) {
	for m := range r.Matches(path) {
		return m, true
	}

	return nil, false
}

// Lookup returns the target and captures of the best match, in the style
// of a handler lookup.
func (r *Router[T]) Lookup(path string) (T, Captures, bool) {
	if m, ok := r.BestMatch(path); ok {
		return m.Target(), m.captures, true
	}

	var zero T
	return zero, Captures{}, false
}

// FindCaseInsensitivePath looks for the best route matching path with exact
// segments compared case-insensitively. If found, the path spelled the way
// the route is written is appended to buf; captured values keep their case.
func (r *Router[T]) FindCaseInsensitivePath(path string, buf *bytebufferpool.ByteBuffer) bool {
	if len(r.routes) == 0 {
		return false
	}

	p := pattern.NewPath(path, r.Splitter)

	for _, route := range r.routes {
		if route.pattern.FixPath(p, buf) {
			return true
		}
	}

	return false
}

// ReverseMatches returns every route that can be built from c, in rank order.
func (r *Router[T]) ReverseMatches(c Captures) iter.Seq[*ReverseMatch[T]] {
	return func(yield func(*ReverseMatch[T]) bool) {
		for _, route := range r.routes {
			path, ok := route.Template(c)
			if !ok {
				continue
			}

			if !yield(&ReverseMatch[T]{route: route, path: path}) {
				return
			}
		}
	}
}

// BestReverseMatch returns the highest ranked route that can be built from c.
func (r *Router[T]) BestReverseMatch(c Captures) (*ReverseMatch[T], bool) {
	for rm := range r.ReverseMatches(c) {
		return rm, true
	}

	return nil, false
}

// Named returns the route added with AddNamed under name.
func (r *Router[T]) Named(name string) (*Route[T], bool) {
	route, ok := r.names[name]
	return route, ok
}

// Routes returns every route in rank order.
func (r *Router[T]) Routes() iter.Seq[*Route[T]] {
	return func(yield func(*Route[T]) bool) {
		for _, route := range r.routes {
			if !yield(route) {
				return
			}
		}
	}
}

// Len returns the number of routes.
func (r *Router[T]) Len() int {
	return len(r.routes)
}

// List returns the canonical form of every route in rank order.
func (r *Router[T]) List() []string {
	list := make([]string, len(r.routes))
	for i, route := range r.routes {
		list[i] = route.String()
	}

	return list
}
