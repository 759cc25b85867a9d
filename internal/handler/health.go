package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ductran2702/code-challenge-backend/internal/middleware"
	"github.com/ductran2702/code-challenge-backend/internal/model/item"
	"github.com/ductran2702/code-challenge-backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler serves the liveness probe and the dependency status report.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Health answers {"status":"ok"} as long as the process serves requests.
// It touches no dependency.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, item.HealthResponse{Status: "ok"})
}

// CheckHealth reports the configured dependency checks.
//
// It returns:
//   - 200 OK if every required check passes
//   - 503 Service Unavailable if the database is unreachable
//
// Redis is optional: a failing Redis is reported but keeps the status at 200.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	obs := h.server.Config.Observability
	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	if obs.HealthCheckEnabled("database") {
		var ping func(context.Context) error
		if h.server.DB != nil && h.server.DB.Pool != nil {
			ping = h.server.DB.Pool.Ping
		}

		if !h.runCheck(c.Request().Context(), logger, checks, "database", ping) {
			isHealthy = false
		}
	}

	if obs.HealthCheckEnabled("redis") && h.server.Redis != nil {
		h.runCheck(c.Request().Context(), logger, checks, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthEvent(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// runCheck pings one dependency within the configured timeout and stores
// the outcome under checks[name]. A nil ping counts as unconfigured.
func (h *HealthHandler) runCheck(
	ctx context.Context,
	logger zerolog.Logger,
	checks map[string]any,
	name string,
	ping func(context.Context) error,
) bool {
	checkStart := time.Now()

	err := fmt.Errorf("%s is not configured", name)
	if ping != nil {
		ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
		defer cancel()

		err = ping(ctx)
	}
	elapsed := time.Since(checkStart)

	if err != nil {
		checks[name] = map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", name)

		h.recordHealthEvent(map[string]any{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
		return false
	}

	checks[name] = map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}
	return true
}

func (h *HealthHandler) recordHealthEvent(attrs map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
