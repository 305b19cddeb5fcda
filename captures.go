package routefinder

// Capture is one named value taken from a path.
type Capture struct {
	Name  string
	Value string
}

// Captures holds the params of a match in pattern order and the catch-all
// value, if any. The zero value is empty and ready to use.
type Captures struct {
	params      []Capture
	wildcard    Capture
	hasWildcard bool
}

// NewCaptures returns Captures holding the given params.
func NewCaptures(params ...Capture) Captures {
	return Captures{params: params}
}

// Add appends a param.
func (c *Captures) Add(name, value string) {
	c.params = append(c.params, Capture{Name: name, Value: value})
}

// SetWildcard sets an anonymous catch-all value.
func (c *Captures) SetWildcard(value string) {
	c.SetNamedWildcard("", value)
}

// SetNamedWildcard sets the catch-all value and the name it is bound to.
func (c *Captures) SetNamedWildcard(name, value string) {
	c.wildcard = Capture{Name: name, Value: value}
	c.hasWildcard = true
}

// Get returns the value captured under name. A named catch-all can be read
// with Get as well as with Wildcard.
func (c Captures) Get(name string) (string, bool) {
	for _, p := range c.params {
		if p.Name == name {
			return p.Value, true
		}
	}

	if c.hasWildcard && len(name) > 0 && c.wildcard.Name == name {
		return c.wildcard.Value, true
	}

	return "", false
}

// Wildcard returns what the catch-all matched. A catch-all may match nothing,
// so the value can be empty while ok is true.
func (c Captures) Wildcard() (string, bool) {
	return c.wildcard.Value, c.hasWildcard
}

// WildcardName returns the name of the catch-all, "" when anonymous.
func (c Captures) WildcardName() string {
	return c.wildcard.Name
}

// Params returns the params in pattern order. The slice must not be modified.
func (c Captures) Params() []Capture {
	return c.params
}

// Len returns the number of params, not counting the catch-all.
func (c Captures) Len() int {
	return len(c.params)
}

// Each calls fn for every param and then for a named catch-all.
func (c Captures) Each(fn func(name, value string)) {
	for _, p := range c.params {
		fn(p.Name, p.Value)
	}

	if c.hasWildcard && len(c.wildcard.Name) > 0 {
		fn(c.wildcard.Name, c.wildcard.Value)
	}
}
