package router

import (
	"net/http"

	"github.com/deppfellow/recruitly/internal/handler"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/labstack/echo/v4"
)

// registerContentRoutes mounts news, tips and trainings. Reads are public;
// an admin token also reveals unpublished entries.
func registerContentRoutes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	for _, ch := range h.Content {
		base := "/" + string(ch.Kind())

		v1.GET(base, handler.Handle(ch.Handler, ch.List, http.StatusOK, &model.ListContentRequest{}), m.Auth.OptionalAuth)
		v1.GET(base+"/:id", handler.Handle(ch.Handler, ch.GetByID, http.StatusOK, &model.IDParam{}), m.Auth.OptionalAuth)

		write := v1.Group(base, m.Auth.RequireAuth, adminOnly)
		write.POST("", handler.Handle(ch.Handler, ch.Create, http.StatusCreated, &model.CreateContentRequest{}))
		write.PUT("/:id", handler.Handle(ch.Handler, ch.Update, http.StatusOK, &model.UpdateContentRequest{}))
		write.DELETE("/:id", handler.HandleNoContent(ch.Handler, ch.Delete, http.StatusNoContent, &model.IDParam{}))
		write.POST("/:id/image", handler.Handle(ch.Handler, ch.UploadImage, http.StatusOK, &model.IDParam{}))
	}
}
