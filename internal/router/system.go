package router

import (
	"github.com/ductran2702/code-challenge-backend/internal/handler"
	"github.com/ductran2702/code-challenge-backend/internal/metrics"
	"github.com/ductran2702/code-challenge-backend/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the
// item API: probes, metrics and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/health", h.Health.Health)
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// openapi.json and openapi.html, embedded in the binary.
	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
