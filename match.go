package routefinder

// Match is a route that matched a path, with the values it captured.
// Captured values are substrings of the path.
type Match[T any] struct {
	route    *Route[T]
	path     string
	captures Captures
}

// Route returns the matched route.
func (m *Match[T]) Route() *Route[T] {
	return m.route
}

// Target returns the value registered with the matched route.
func (m *Match[T]) Target() T {
	return m.route.target
}

// Path returns the path that was matched.
func (m *Match[T]) Path() string {
	return m.path
}

// Captures returns the captured params and catch-all.
func (m *Match[T]) Captures() Captures {
	return m.captures
}

// Param is a shortcut for Captures().Get(name).
func (m *Match[T]) Param(name string) (string, bool) {
	return m.captures.Get(name)
}

// Wildcard is a shortcut for Captures().Wildcard().
func (m *Match[T]) Wildcard() (string, bool) {
	return m.captures.Wildcard()
}

func (m *Match[T]) String() string {
	return m.path + " => " + m.route.String()
}

// ReverseMatch is a route that can be filled in with a set of captures.
type ReverseMatch[T any] struct {
	route *Route[T]
	path  string
}

// Route returns the route the path was built from.
func (rm *ReverseMatch[T]) Route() *Route[T] {
	return rm.route
}

// Target returns the value registered with the route.
func (rm *ReverseMatch[T]) Target() T {
	return rm.route.target
}

// String returns the built path.
func (rm *ReverseMatch[T]) String() string {
	return rm.path
}
