package router

import (
	"net/http"

	"github.com/deppfellow/recruitly/internal/handler"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/labstack/echo/v4"
)

var adminOnly = middleware.RequireRole(model.RoleAdmin)

func registerAccountRoutes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	u := h.User

	v1.POST("/register", handler.Handle(u.Handler, u.Register, http.StatusCreated, &model.RegisterRequest{}), m.Auth.RequireIdentity)
	v1.GET("/me", handler.Handle(u.Handler, u.Me, http.StatusOK, &model.Empty{}), m.Auth.RequireAuth)

	users := v1.Group("/users", m.Auth.RequireAuth)
	users.POST("", handler.Handle(u.Handler, u.Create, http.StatusCreated, &model.CreateUserRequest{}), adminOnly)
	users.GET("", handler.Handle(u.Handler, u.List, http.StatusOK, &model.ListUsersRequest{}), adminOnly)
	users.GET("/:id", handler.Handle(u.Handler, u.GetByID, http.StatusOK, &model.IDParam{}))
	users.PUT("/:id", handler.Handle(u.Handler, u.Update, http.StatusOK, &model.UpdateUserRequest{}))
	users.DELETE("/:id", handler.HandleNoContent(u.Handler, u.Delete, http.StatusNoContent, &model.IDParam{}), adminOnly)
}
