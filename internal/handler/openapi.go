package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/recruitly/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticDir holds the OpenAPI document and its viewer page.
const StaticDir = "static"

type OpenAPIHandler struct {
	Handler
	page string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		page:    filepath.Join(StaticDir, "openapi.html"),
	}
}

// ServeOpenAPIUI serves the API docs page, which loads /static/openapi.json.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(h.page)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	if err := c.HTML(http.StatusOK, string(page)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}
	return nil
}
