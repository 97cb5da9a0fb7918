package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/activity-api/internal/middleware"
	"github.com/deppfellow/activity-api/internal/server"
	"github.com/deppfellow/activity-api/internal/service"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the status endpoint used by uptime monitors and
// load balancers.
type HealthHandler struct {
	Handler
	services *service.Services
}

func NewHealthHandler(s *server.Server, services *service.Services) *HealthHandler {
	return &HealthHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// CheckHealth reports process uptime and the size of the in-memory stores.
//
// The stores live in process memory, so there is no dependency that can be
// unreachable and the endpoint always answers 200.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]interface{}{
		"users": map[string]interface{}{
			"status": "healthy",
			"count":  h.services.Auth.UserCount(),
		},
		"activities": map[string]interface{}{
			"status": "healthy",
			"count":  h.services.Activity.Count(),
		},
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      time.Since(h.server.StartedAt).Round(time.Second).String(),
		"checks":      checks,
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent(
				"HealthCheckError",
				map[string]interface{}{
					"check_type":    "response",
					"operation":     "health_check",
					"error_type":    "json_response_error",
					"error_message": err.Error(),
				},
			)
		}

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
