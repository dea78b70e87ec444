package router

import (
	"net/http"

	"github.com/deppfellow/customer-api/internal/handler"
	"github.com/deppfellow/customer-api/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not customer operations:
// the greeting, the connectivity probe, health and docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle(h.Index.Handler, h.Index.Index, http.StatusOK))
	r.GET("/fetchtest", handler.HandleRawJSON(h.Index.Handler, h.Index.FetchTest, http.StatusOK))

	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/openapi.json", h.OpenAPI.ServeOpenAPIDocument)
}
