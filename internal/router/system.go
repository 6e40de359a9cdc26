package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/grubdash/internal/handler"
	"github.com/deppfellow/grubdash/internal/server"
)

// registerSystemRoutes registers endpoints that are not part of the API
// resources: the health check and the Prometheus scrape endpoint.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
}
