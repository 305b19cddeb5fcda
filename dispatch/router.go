// Package dispatch serves fasthttp requests with routefinder, keeping one
// router per HTTP method.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/fasthttp/routefinder"
	"github.com/fasthttp/routefinder/pattern"
	"github.com/savsgio/gotils"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

// MethodWild wild HTTP method
const MethodWild = "*"

// WildcardParam is the user value key of an anonymous catch-all.
const WildcardParam = "*"

var (
	questionMark = byte('?')

	// MatchedRoutePathParam is the param name under which the path of the matched
	// route is stored, if Router.SaveMatchedRoutePath is set.
	MatchedRoutePathParam = fmt.Sprintf("__matchedRoutePath::%s__", gotils.RandBytes(make([]byte, 15)))
)

// Router dispatches requests to the handler of the best matching route.
type Router struct {
	trees           map[string]*routefinder.Router[fasthttp.RequestHandler]
	registeredPaths map[string][]string
	globalAllowed   string

	before []Middleware
	after  []Middleware

	// If enabled, adds the matched route path onto the ctx.UserValue context
	// before invoking the handler.
	// The matched route path is only added to handlers of routes that were
	// registered when this option was enabled.
	SaveMatchedRoutePath bool

	// If enabled and no route matches, the router looks for a route whose
	// literal segments match the path case-insensitively and redirects the
	// client to the path spelled like that route. Param and catch-all values
	// are kept as they are.
	// 301 is used for GET requests and 308 for all other methods.
	RedirectFixedPath bool

	// If enabled, the router checks if another method is allowed for the
	// current route, if the current request can not be routed.
	// If this is the case, the request is answered with 'Method Not Allowed'
	// and HTTP status code 405.
	// If no other Method is allowed, the request is delegated to the NotFound
	// handler.
	HandleMethodNotAllowed bool

	// If enabled, the router automatically replies to OPTIONS requests.
	// Custom OPTIONS handlers take priority over automatic replies.
	HandleOPTIONS bool

	// An optional fasthttp.RequestHandler that is called on automatic OPTIONS requests.
	// The handler is only called if HandleOPTIONS is true and no OPTIONS
	// handler for the specific path was set.
	// The "Allowed" header is set before calling the handler.
	GlobalOPTIONS fasthttp.RequestHandler

	// Configurable fasthttp.RequestHandler which is called when no matching route is
	// found. If it is not set, default NotFound is used.
	NotFound fasthttp.RequestHandler

	// Configurable fasthttp.RequestHandler which is called when a request
	// cannot be routed and HandleMethodNotAllowed is true.
	// If it is not set, ctx.Error with fasthttp.StatusMethodNotAllowed is used.
	// The "Allow" header with allowed request methods is set before the handler
	// is called.
	MethodNotAllowed fasthttp.RequestHandler

	// Function to handle panics recovered from http handlers.
	// It should be used to generate a error page and return the http error code
	// 500 (Internal Server Error).
	// The handler can be used to keep your server from crashing because of
	// unrecovered panics.
	PanicHandler func(*fasthttp.RequestCtx, interface{})
}

// New returns a new initialized Router.
func New() *Router {
	return &Router{
		trees:                  make(map[string]*routefinder.Router[fasthttp.RequestHandler]),
		registeredPaths:        make(map[string][]string),
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
	}
}

// Group returns a new group.
func (r *Router) Group(path string) *Group {
	validatePath(path)

	if path == "/" {
		path = ""
	}

	return &Group{router: r, prefix: path}
}

// Before registers middleware run before the handler of every matched route.
func (r *Router) Before(m ...Middleware) {
	r.before = append(r.before, m...)
}

// After registers middleware run after the handler of every matched route.
func (r *Router) After(m ...Middleware) {
	r.after = append(r.after, m...)
}

func (r *Router) saveMatchedRoutePath(path string, handler fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.SetUserValue(MatchedRoutePathParam, path)
		handler(ctx)
	}
}

// GET is a shortcut for router.Handle(fasthttp.MethodGet, path, handler)
func (r *Router) GET(path string, handler fasthttp.RequestHandler) {
	r.Handle(fasthttp.MethodGet, path, handler)
}

// HEAD is a shortcut for router.Handle(fasthttp.MethodHead, path, handler)
func (r *Router) HEAD(path string, handler fasthttp.RequestHandler) {
	r.Handle(fasthttp.MethodHead, path, handler)
}

// POST is a shortcut for router.Handle(fasthttp.MethodPost, path, handler)
func (r *Router) POST(path string, handler fasthttp.RequestHandler) {
	r.Handle(fasthttp.MethodPost, path, handler)
}

// PUT is a shortcut for router.Handle(fasthttp.MethodPut, path, handler)
func (r *Router) PUT(path string, handler fasthttp.RequestHandler) {
	r.Handle(fasthttp.MethodPut, path, handler)
}

// PATCH is a shortcut for router.Handle(fasthttp.MethodPatch, path, handler)
func (r *Router) PATCH(path string, handler fasthttp.RequestHandler) {
	r.Handle(fasthttp.MethodPatch, path, handler)
}

// DELETE is a shortcut for router.Handle(fasthttp.MethodDelete, path, handler)
func (r *Router) DELETE(path string, handler fasthttp.RequestHandler) {
	r.Handle(fasthttp.MethodDelete, path, handler)
}

// CONNECT is a shortcut for router.Handle(fasthttp.MethodConnect, path, handler)
func (r *Router) CONNECT(path string, handler fasthttp.RequestHandler) {
	r.Handle(fasthttp.MethodConnect, path, handler)
}

// OPTIONS is a shortcut for router.Handle(fasthttp.MethodOptions, path, handler)
func (r *Router) OPTIONS(path string, handler fasthttp.RequestHandler) {
	r.Handle(fasthttp.MethodOptions, path, handler)
}

// TRACE is a shortcut for router.Handle(fasthttp.MethodTrace, path, handler)
func (r *Router) TRACE(path string, handler fasthttp.RequestHandler) {
	r.Handle(fasthttp.MethodTrace, path, handler)
}

// ANY is a shortcut for router.Handle(router.MethodWild, path, handler)
//
// WARNING: Use only for routes where the request method is not important
func (r *Router) ANY(path string, handler fasthttp.RequestHandler) {
	r.Handle(MethodWild, path, handler)
}

// Handle registers a new request handler with the given path and method.
//
// A trailing optional param (":name?") registers the path both with and
// without the param.
//
// WARNING: Not concurrency-safe! Register every route before serving.
func (r *Router) Handle(method, path string, handler fasthttp.RequestHandler) {
	switch {
	case len(method) == 0:
		panic("method must not be empty")
	case handler == nil:
		panic("handler must not be nil")
	}

	validatePath(path)

	optionalPaths := getOptionalPaths(path)

	// if not has optional paths, adds the original
	if len(optionalPaths) == 0 {
		optionalPaths = append(optionalPaths, path)
	}

	tree := r.trees[method]

	var registered []string
	if tree != nil {
		registered = tree.List()
	}

	// every path is checked before the router is touched
	for _, p := range optionalPaths {
		compiled, err := pattern.Parse(p)
		if err != nil {
			panic(err.Error())
		}

		canonical := compiled.String()
		if gotils.StringSliceInclude(registered, canonical) {
			panic("a handler is already registered for path '" + path + "'")
		}
		registered = append(registered, canonical)
	}

	if tree == nil {
		tree = routefinder.New[fasthttp.RequestHandler]()
		r.trees[method] = tree
	}

	newMethod := r.registeredPaths[method] == nil
	r.registeredPaths[method] = append(r.registeredPaths[method], path)

	if r.SaveMatchedRoutePath {
		handler = r.saveMatchedRoutePath(path, handler)
	}

	for _, p := range optionalPaths {
		tree.MustAdd(p, handler)
	}

	if newMethod {
		r.globalAllowed = r.allowed("*", "")
	}
}

// ServeFiles serves files from the given file system root.
// The path must end with "/*filepath", files are then served from the local
// path /defined/root/dir/*filepath.
// For example if root is "/etc" and *filepath is "passwd", the local file
// "/etc/passwd" would be served.
// Internally a fasthttp.FSHandler is used, therefore http.NotFound is used instead
// Use:
//
//	router.ServeFiles("/src/*filepath", "./")
func (r *Router) ServeFiles(path string, rootPath string) {
	prefix := filesPrefix(path)
	fileHandler := fasthttp.FSHandler(rootPath, strings.Count(prefix, "/"))

	r.GET(path, fileHandler)
}

// ServeFilesCustom serves files from the given file system settings.
// The path must end with "/*filepath", files are then served from the local
// path /defined/root/dir/*filepath.
// Internally a fasthttp.FSHandler is used, therefore http.NotFound is used instead
// of the Router's NotFound handler.
// Use:
//
//	router.ServeFilesCustom("/src/*filepath", *customFS)
func (r *Router) ServeFilesCustom(path string, fs *fasthttp.FS) {
	prefix := filesPrefix(path)
	stripSlashes := strings.Count(prefix, "/")

	if fs.PathRewrite == nil && stripSlashes > 0 {
		fs.PathRewrite = fasthttp.NewPathSlashesStripper(stripSlashes)
	}
	fileHandler := fs.NewRequestHandler()

	r.GET(path, fileHandler)
}

func (r *Router) recv(ctx *fasthttp.RequestCtx) {
	if rcv := recover(); rcv != nil {
		r.PanicHandler(ctx, rcv)
	}
}

// Lookup allows the manual lookup of a method + path combo.
// This is e.g. useful to build a framework around this router.
// If the path was found, it returns the handler function and stores the
// captures as ctx user values, unless ctx is nil.
func (r *Router) Lookup(method, path string, ctx *fasthttp.RequestCtx) (fasthttp.RequestHandler, bool) {
	if tree := r.trees[method]; tree != nil {
		if m, ok := tree.BestMatch(path); ok {
			return r.found(m, ctx), true
		}
	}

	if tree := r.trees[MethodWild]; tree != nil {
		if m, ok := tree.BestMatch(path); ok {
			return r.found(m, ctx), true
		}
	}

	return nil, false
}

// findCaseInsensitivePath writes to buf the route path matching path with
// exact segments compared case-insensitively. Captured values keep their case.
func (r *Router) findCaseInsensitivePath(method, path string, buf *bytebufferpool.ByteBuffer) bool {
	if tree := r.trees[method]; tree != nil && tree.FindCaseInsensitivePath(path, buf) {
		return true
	}

	if tree := r.trees[MethodWild]; tree != nil && tree.FindCaseInsensitivePath(path, buf) {
		return true
	}

	return false
}

func (r *Router) found(m *routefinder.Match[fasthttp.RequestHandler], ctx *fasthttp.RequestCtx) fasthttp.RequestHandler {
	if ctx != nil {
		c := m.Captures()
		c.Each(func(name, value string) {
			ctx.SetUserValue(name, value)
		})

		if rest, ok := c.Wildcard(); ok && c.WildcardName() == "" {
			ctx.SetUserValue(WildcardParam, rest)
		}
	}

	return m.Target()
}

func (r *Router) allowed(path, reqMethod string) (allow string) {
	allowed := make([]string, 0, 9)

	if path == "*" || path == "/*" { // server-wide
		// empty method is used for internal calls to refresh the cache
		if reqMethod == "" {
			for method := range r.registeredPaths {
				if method == fasthttp.MethodOptions || method == MethodWild {
					continue
				}
				// Add request method to list of allowed methods
				allowed = append(allowed, method)
			}
		} else {
			return r.globalAllowed
		}
	} else { // specific path
		for method, tree := range r.trees {
			// Skip the requested method - we already tried this one
			if method == reqMethod || method == fasthttp.MethodOptions || method == MethodWild {
				continue
			}

			if _, ok := tree.BestMatch(path); ok {
				allowed = append(allowed, method)
			}
		}
	}

	if len(allowed) > 0 {
		// Add request method to list of allowed methods
		allowed = append(allowed, fasthttp.MethodOptions)

		// Sort allowed methods.
		// sort.Strings(allowed) unfortunately causes unnecessary allocations
		// due to allowed being moved to the heap and interface conversion
		for i, l := 1, len(allowed); i < l; i++ {
			for j := i; j > 0 && allowed[j] < allowed[j-1]; j-- {
				allowed[j], allowed[j-1] = allowed[j-1], allowed[j]
			}
		}

		// return as comma separated list
		return strings.Join(allowed, ", ")
	}
	return
}

func (r *Router) serve(ctx *fasthttp.RequestCtx, handler fasthttp.RequestHandler) {
	for _, m := range r.before {
		m.Handle(ctx)
	}

	handler(ctx)

	for _, m := range r.after {
		m.Handle(ctx)
	}
}

// Handler makes the router implement the fasthttp.RequestHandler interface.
func (r *Router) Handler(ctx *fasthttp.RequestCtx) {
	if r.PanicHandler != nil {
		defer r.recv(ctx)
	}

	path := gotils.B2S(ctx.Path())
	method := gotils.B2S(ctx.Method())

	if handler, ok := r.Lookup(method, path, ctx); ok {
		r.serve(ctx, handler)
		return
	}

	// Try to fix the request path
	if r.RedirectFixedPath && method != fasthttp.MethodConnect {
		uri := bytebufferpool.Get()

		if r.findCaseInsensitivePath(method, path, uri) && gotils.B2S(uri.B) != path {
			// Moved Permanently, request with GET method
			code := fasthttp.StatusMovedPermanently
			if method != fasthttp.MethodGet {
				// Permanent Redirect, request with same method
				code = fasthttp.StatusPermanentRedirect
			}

			queryBuf := ctx.URI().QueryString()
			if len(queryBuf) > 0 {
				uri.WriteByte(questionMark)
				uri.Write(queryBuf)
			}

			ctx.RedirectBytes(uri.Bytes(), code)

			bytebufferpool.Put(uri)
			return
		}

		bytebufferpool.Put(uri)
	}

	if r.HandleOPTIONS && method == fasthttp.MethodOptions {
		// Handle OPTIONS requests
		if allow := r.allowed(path, fasthttp.MethodOptions); allow != "" {
			ctx.Response.Header.Set("Allow", allow)
			if r.GlobalOPTIONS != nil {
				r.GlobalOPTIONS(ctx)
			}
			return
		}
	} else if r.HandleMethodNotAllowed { // Handle 405
		if allow := r.allowed(path, method); allow != "" {
			ctx.Response.Header.Set("Allow", allow)
			if r.MethodNotAllowed != nil {
				r.MethodNotAllowed(ctx)
			} else {
				ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
				ctx.SetBodyString(fasthttp.StatusMessage(fasthttp.StatusMethodNotAllowed))
			}
			return
		}
	}

	// Handle 404
	if r.NotFound != nil {
		r.NotFound(ctx)
	} else {
		ctx.Error(fasthttp.StatusMessage(fasthttp.StatusNotFound), fasthttp.StatusNotFound)
	}
}

// List returns all registered routes grouped by method
func (r *Router) List() map[string][]string {
	return r.registeredPaths
}

// Routes returns the router used for method, ordered from the most to the
// least specific route, or nil if no route was registered for it.
func (r *Router) Routes(method string) *routefinder.Router[fasthttp.RequestHandler] {
	return r.trees[method]
}
