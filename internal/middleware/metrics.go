package middleware

import (
	"errors"
	"time"

	"github.com/ductran2702/code-challenge-backend/internal/metrics"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware feeds the Prometheus request collectors.
type MetricsMiddleware struct{}

func NewMetricsMiddleware() *MetricsMiddleware {
	metrics.Register()
	return &MetricsMiddleware{}
}

// Observe records method, route template, final status and latency of
// every request. Unmatched routes are grouped under "unmatched" to keep
// label cardinality bounded.
func (mm *MetricsMiddleware) Observe() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = statusFromError(err)
			}

			route := c.Path()
			if route == "" || errors.Is(err, echo.ErrNotFound) {
				route = "unmatched"
			}

			metrics.ObserveHTTP(c.Request().Method, route, status, time.Since(start))

			return err
		}
	}
}
