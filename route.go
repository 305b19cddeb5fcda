package routefinder

import "github.com/fasthttp/routefinder/pattern"

// Route is a compiled pattern and the target registered with it.
type Route[T any] struct {
	id      int
	name    string
	pattern *pattern.Pattern
	target  T
}

// ID returns the insertion index of the route.
func (r *Route[T]) ID() int {
	return r.id
}

// Name returns the name given to AddNamed, or "".
func (r *Route[T]) Name() string {
	return r.name
}

// Pattern returns the compiled pattern.
func (r *Route[T]) Pattern() *pattern.Pattern {
	return r.pattern
}

// Segments returns the compiled segments. The slice must not be modified.
func (r *Route[T]) Segments() []pattern.Segment {
	return r.pattern.Segments()
}

// Source returns the pattern text the route was added with.
func (r *Route[T]) Source() string {
	return r.pattern.Source()
}

// Target returns the value registered with the route.
func (r *Route[T]) Target() T {
	return r.target
}

// Specificity returns the structural rank of the route's pattern.
func (r *Route[T]) Specificity() pattern.Specificity {
	return r.pattern.Specificity()
}

// String returns the canonical form of the pattern.
func (r *Route[T]) String() string {
	return r.pattern.String()
}

// Template builds a path from captures. It succeeds only when the capture
// names are exactly the route's param names in order, and a catch-all value
// is given only to a route ending in a catch-all. Named catch-alls must have
// the same name.
func (r *Route[T]) Template(c Captures) (string, bool) {
	names := r.pattern.Params()
	if len(names) != len(c.params) {
		return "", false
	}

	catchAll, hasCatchAll := r.pattern.CatchAll()
	if c.hasWildcard && !hasCatchAll {
		return "", false
	}

	// a named catch-all value only fills a catch-all of the same name
	if c.hasWildcard && len(c.wildcard.Name) > 0 && len(catchAll.Text) > 0 && c.wildcard.Name != catchAll.Text {
		return "", false
	}

	values := make([]string, len(names))
	for i, name := range names {
		if c.params[i].Name != name {
			return "", false
		}
		values[i] = c.params[i].Value
	}

	return r.pattern.Render(values, c.wildcard.Value)
}

// precedes reports whether r ranks before o: more specific first, then the
// one added first.
func (r *Route[T]) precedes(o *Route[T]) bool {
	if c := r.pattern.Specificity().Compare(o.pattern.Specificity()); c != 0 {
		return c > 0
	}

	return r.id < o.id
}

func (r *Route[T]) match(path pattern.Path, raw string) (*Match[T], bool) {
	var c Captures

	ok := r.pattern.Match(path, func(seg pattern.Segment, value string) {
		if seg.Kind == pattern.CatchAll {
			c.SetNamedWildcard(seg.Text, value)
			return
		}

		if c.params == nil {
			c.params = make([]Capture, 0, len(r.pattern.Params()))
		}
		c.Add(seg.Text, value)
	})
	if !ok {
		return nil, false
	}

	return &Match[T]{route: r, path: raw, captures: c}, true
}
