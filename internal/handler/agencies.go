package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type AgencyHandler struct {
	Handler
	agencies *service.AgencyService
}

func NewAgencyHandler(s *server.Server, agencies *service.AgencyService) *AgencyHandler {
	return &AgencyHandler{
		Handler:  NewHandler(s),
		agencies: agencies,
	}
}

func (h *AgencyHandler) Create(c echo.Context, req *model.CreateAgencyRequest) (*model.Agency, error) {
	return h.agencies.Create(c.Request().Context(), req)
}

func (h *AgencyHandler) GetByID(c echo.Context, req *model.IDParam) (*model.Agency, error) {
	return h.agencies.GetByID(c.Request().Context(), req.ID)
}

func (h *AgencyHandler) Update(c echo.Context, req *model.UpdateAgencyRequest) (*model.Agency, error) {
	return h.agencies.Update(c.Request().Context(), req)
}

func (h *AgencyHandler) UploadLogo(c echo.Context, req *model.IDParam) (*model.Agency, error) {
	fh, err := formFile(c)
	if err != nil {
		return nil, err
	}
	return h.agencies.UploadLogo(c.Request().Context(), req.ID, fh)
}

func (h *AgencyHandler) Delete(c echo.Context, req *model.IDParam) error {
	return h.agencies.Delete(c.Request().Context(), req.ID)
}

func (h *AgencyHandler) List(c echo.Context, req *model.ListAgenciesRequest) (*model.PaginatedResponse[model.Agency], error) {
	return h.agencies.List(c.Request().Context(), req)
}

func (h *AgencyHandler) ListJobSeekers(c echo.Context, req *model.ListAgencyJobSeekersRequest) (*model.PaginatedResponse[model.JobSeeker], error) {
	return h.agencies.ListJobSeekers(c.Request().Context(), req)
}
