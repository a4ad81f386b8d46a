package router

import (
	"net/http"

	"github.com/deppfellow/recruitly/internal/handler"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/labstack/echo/v4"
)

func registerBillingRoutes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	p := h.Plan
	v1.GET("/plans", handler.Handle(p.Handler, p.List, http.StatusOK, &model.ListPlansRequest{}), m.Auth.OptionalAuth)
	v1.GET("/plans/:id", handler.Handle(p.Handler, p.GetByID, http.StatusOK, &model.IDParam{}))
	v1.POST("/plans", handler.Handle(p.Handler, p.Create, http.StatusCreated, &model.CreatePlanRequest{}), m.Auth.RequireAuth, adminOnly)
	v1.PUT("/plans/:id", handler.Handle(p.Handler, p.Update, http.StatusOK, &model.UpdatePlanRequest{}), m.Auth.RequireAuth, adminOnly)
	v1.DELETE("/plans/:id", handler.HandleNoContent(p.Handler, p.Delete, http.StatusNoContent, &model.IDParam{}), m.Auth.RequireAuth, adminOnly)

	s := h.Subscription
	subscriptions := v1.Group("/subscriptions", m.Auth.RequireAuth)
	subscriptions.POST("", handler.Handle(s.Handler, s.Create, http.StatusCreated, &model.CreateSubscriptionRequest{}))
	subscriptions.GET("/:user_id", handler.Handle(s.Handler, s.Get, http.StatusOK, &model.UserIDParam{}))
	subscriptions.POST("/:user_id/cancel", handler.Handle(s.Handler, s.Cancel, http.StatusOK, &model.UserIDParam{}))

	v1.POST("/webhooks/payments", s.Webhook)
}
