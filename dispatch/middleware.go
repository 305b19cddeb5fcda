package dispatch

import "github.com/valyala/fasthttp"

// Middleware runs around the handler of every matched route.
type Middleware interface {
	Handle(*fasthttp.RequestCtx)
}

// MiddlewareFunc adapts a function to Middleware.
type MiddlewareFunc func(*fasthttp.RequestCtx)

func (fn MiddlewareFunc) Handle(ctx *fasthttp.RequestCtx) {
	fn(ctx)
}
