package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/customer-api/internal/server"
	"github.com/deppfellow/customer-api/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the OpenAPI document and the docs UI, both embedded
// in the binary.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves the docs page. It is never cached so doc changes show
// up on the next deploy.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := static.FS.ReadFile(static.OpenAPIUI)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.HTMLBlob(http.StatusOK, page)
}

func (h *OpenAPIHandler) ServeOpenAPIDocument(c echo.Context) error {
	doc, err := static.FS.ReadFile(static.OpenAPIDocument)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.JSONBlob(http.StatusOK, doc)
}
