// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/grubdash/internal/handler"
	"github.com/deppfellow/grubdash/internal/middleware"
	"github.com/deppfellow/grubdash/internal/server"
)

// NewRouter builds the Echo instance with the global middleware stack,
// the error handler and every route.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id feeds tracing and the context logger,
	// which the request logger and every handler read.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, s, h)
	registerResourceRoutes(router, h)

	return router
}
