package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

// ApplicationHandler serves job applications together with the employer
// side of candidate discovery: shortlists and profile views.
type ApplicationHandler struct {
	Handler
	applications *service.ApplicationService
	shortlist    *service.ShortlistService
	views        *service.ViewedProfileService
}

func NewApplicationHandler(s *server.Server, services *service.Services) *ApplicationHandler {
	return &ApplicationHandler{
		Handler:      NewHandler(s),
		applications: services.Application,
		shortlist:    services.Shortlist,
		views:        services.ViewedProfile,
	}
}

func (h *ApplicationHandler) Apply(c echo.Context, req *model.CreateApplicationRequest) (*model.JobApplication, error) {
	return h.applications.Create(c.Request().Context(), req)
}

func (h *ApplicationHandler) GetByID(c echo.Context, req *model.IDParam) (*model.JobApplication, error) {
	return h.applications.GetByID(c.Request().Context(), req.ID)
}

func (h *ApplicationHandler) UpdateStatus(c echo.Context, req *model.UpdateApplicationStatusRequest) (*model.JobApplication, error) {
	return h.applications.UpdateStatus(c.Request().Context(), req)
}

func (h *ApplicationHandler) Withdraw(c echo.Context, req *model.IDParam) error {
	return h.applications.Delete(c.Request().Context(), req.ID)
}

func (h *ApplicationHandler) List(c echo.Context, req *model.ListApplicationsRequest) (*model.PaginatedResponse[model.JobApplication], error) {
	return h.applications.List(c.Request().Context(), req)
}

func (h *ApplicationHandler) Shortlist(c echo.Context, req *model.CreateShortlistRequest) (*model.ShortlistEntry, error) {
	return h.shortlist.Create(c.Request().Context(), req)
}

func (h *ApplicationHandler) RemoveFromShortlist(c echo.Context, req *model.IDParam) error {
	return h.shortlist.Delete(c.Request().Context(), req.ID)
}

func (h *ApplicationHandler) ListShortlist(c echo.Context, req *model.ListShortlistRequest) (*model.PaginatedResponse[model.ShortlistEntry], error) {
	return h.shortlist.List(c.Request().Context(), req)
}

func (h *ApplicationHandler) RecordView(c echo.Context, req *model.RecordViewRequest) (*model.ViewedProfile, error) {
	return h.views.Record(c.Request().Context(), req)
}

func (h *ApplicationHandler) ListViews(c echo.Context, req *model.ListViewedProfilesRequest) (*model.PaginatedResponse[model.ViewedProfile], error) {
	return h.views.List(c.Request().Context(), req)
}
