package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type PlanHandler struct {
	Handler
	plans *service.PlanService
}

func NewPlanHandler(s *server.Server, plans *service.PlanService) *PlanHandler {
	return &PlanHandler{
		Handler: NewHandler(s),
		plans:   plans,
	}
}

// List returns the active plans. include_inactive is honored for admins
// only.
func (h *PlanHandler) List(c echo.Context, req *model.ListPlansRequest) ([]model.SubscriptionPlan, error) {
	includeInactive := req.IncludeInactive && isAdmin(c)
	return h.plans.List(c.Request().Context(), includeInactive)
}

func (h *PlanHandler) GetByID(c echo.Context, req *model.IDParam) (*model.SubscriptionPlan, error) {
	return h.plans.GetByID(c.Request().Context(), req.ID)
}

func (h *PlanHandler) Create(c echo.Context, req *model.CreatePlanRequest) (*model.SubscriptionPlan, error) {
	return h.plans.Create(c.Request().Context(), req)
}

func (h *PlanHandler) Update(c echo.Context, req *model.UpdatePlanRequest) (*model.SubscriptionPlan, error) {
	return h.plans.Update(c.Request().Context(), req)
}

func (h *PlanHandler) Delete(c echo.Context, req *model.IDParam) error {
	return h.plans.Delete(c.Request().Context(), req.ID)
}
