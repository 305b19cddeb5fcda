package dispatch

import (
	"github.com/valyala/fasthttp"
)

// Group is a sub-router: every path registered on it gets the group's prefix
// and every handler is wrapped by the group's middleware.
type Group struct {
	router     *Router
	prefix     string
	middleware []func(fasthttp.RequestHandler) fasthttp.RequestHandler
}

// Group returns a new group nested in g. It inherits the prefix but not the
// middleware of g.
func (g *Group) Group(path string) *Group {
	validatePath(path)

	if len(g.prefix) > 0 && path == "/" {
		return g
	}

	return g.router.Group(g.prefix + path)
}

// GET is a shortcut for group.Handle(fasthttp.MethodGet, path, handler)
func (g *Group) GET(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodGet, path, handler)
}

// HEAD is a shortcut for group.Handle(fasthttp.MethodHead, path, handler)
func (g *Group) HEAD(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodHead, path, handler)
}

// POST is a shortcut for group.Handle(fasthttp.MethodPost, path, handler)
func (g *Group) POST(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodPost, path, handler)
}

// PUT is a shortcut for group.Handle(fasthttp.MethodPut, path, handler)
func (g *Group) PUT(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodPut, path, handler)
}

// PATCH is a shortcut for group.Handle(fasthttp.MethodPatch, path, handler)
func (g *Group) PATCH(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodPatch, path, handler)
}

// DELETE is a shortcut for group.Handle(fasthttp.MethodDelete, path, handler)
func (g *Group) DELETE(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodDelete, path, handler)
}

// CONNECT is a shortcut for group.Handle(fasthttp.MethodConnect, path, handler)
func (g *Group) CONNECT(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodConnect, path, handler)
}

// OPTIONS is a shortcut for group.Handle(fasthttp.MethodOptions, path, handler)
func (g *Group) OPTIONS(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodOptions, path, handler)
}

// TRACE is a shortcut for group.Handle(fasthttp.MethodTrace, path, handler)
func (g *Group) TRACE(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodTrace, path, handler)
}

// ANY is a shortcut for group.Handle(dispatch.MethodWild, path, handler)
//
// WARNING: Use only for routes where the request method is not important
func (g *Group) ANY(path string, handler fasthttp.RequestHandler) {
	g.Handle(MethodWild, path, handler)
}

// ServeFiles serves files from the given file system root under the group
// prefix. See Router.ServeFiles.
func (g *Group) ServeFiles(path string, rootPath string) {
	validatePath(path)

	g.router.ServeFiles(g.prefix+path, rootPath)
}

// ServeFilesCustom serves files from the given file system settings under
// the group prefix. See Router.ServeFilesCustom.
func (g *Group) ServeFilesCustom(path string, fs *fasthttp.FS) {
	validatePath(path)

	g.router.ServeFilesCustom(g.prefix+path, fs)
}

// Handle registers a new request handler with the given path and method.
//
// For GET, POST, PUT, PATCH and DELETE requests the respective shortcut
// functions can be used.
func (g *Group) Handle(method, path string, handler fasthttp.RequestHandler) {
	validatePath(path)
	handler = g.applyMiddleware(handler)
	g.router.Handle(method, g.prefix+path, handler)
}

// AddMiddleware wraps the handlers registered on g after this call. The first
// added middleware is the outermost.
func (g *Group) AddMiddleware(h func(fasthttp.RequestHandler) fasthttp.RequestHandler) {
	g.middleware = append(g.middleware, h)
}

func (g *Group) applyMiddleware(handler fasthttp.RequestHandler) fasthttp.RequestHandler {
	if len(g.middleware) == 0 {
		return handler
	}

	for i := len(g.middleware) - 1; i >= 0; i-- {
		handler = g.middleware[i](handler)
	}

	return handler
}
