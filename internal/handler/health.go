package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/grubdash/internal/middleware"
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/server"
)

// HealthHandler exposes a "system" endpoint that uptime monitors and load
// balancers use to verify the service is alive.
type HealthHandler struct {
	Handler
	repos *repository.Repositories
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server, repos *repository.Repositories) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		repos:   repos,
	}
}

// CheckHealth returns the service status and the size of each collection.
//
// The collections live in memory, so there is no dependency that can be
// unhealthy; a response at all means the process is serving.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"dishes": map[string]interface{}{
				"status": "healthy",
				"count":  h.repos.Dishes.Len(),
			},
			"orders": map[string]interface{}{
				"status": "healthy",
				"count":  h.repos.Orders.Len(),
			},
		},
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":    "response",
				"operation":     "health_check",
				"error_type":    "json_response_error",
				"error_message": err.Error(),
			})
		}

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
