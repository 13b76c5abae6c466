package api

import (
	"net/http"

	"github.com/slok/go-http-metrics/middleware/std"
)

const (
	URLPathRender   = "/render"
	URLPathValidate = "/validate"
)

func (a api) registerRoutes() {
	a.wrapPost(URLPathRender, a.handlerRender())
	a.wrapPost(URLPathValidate, a.handlerValidate())
}

func (a api) wrapPost(pattern string, h http.HandlerFunc) {
	a.router.With(
		// Add endpoint middlewares.
		std.HandlerProvider(pattern, a.metricsMiddleware),
	).Post(pattern, h)
}
