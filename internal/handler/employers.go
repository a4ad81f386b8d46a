package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type EmployerHandler struct {
	Handler
	employers *service.EmployerService
}

func NewEmployerHandler(s *server.Server, employers *service.EmployerService) *EmployerHandler {
	return &EmployerHandler{
		Handler:   NewHandler(s),
		employers: employers,
	}
}

func (h *EmployerHandler) Create(c echo.Context, req *model.CreateEmployerRequest) (*model.Employer, error) {
	return h.employers.Create(c.Request().Context(), req)
}

func (h *EmployerHandler) GetByID(c echo.Context, req *model.IDParam) (*model.Employer, error) {
	return h.employers.GetByID(c.Request().Context(), req.ID)
}

func (h *EmployerHandler) Update(c echo.Context, req *model.UpdateEmployerRequest) (*model.Employer, error) {
	return h.employers.Update(c.Request().Context(), req)
}

func (h *EmployerHandler) UploadLogo(c echo.Context, req *model.IDParam) (*model.Employer, error) {
	fh, err := formFile(c)
	if err != nil {
		return nil, err
	}
	return h.employers.UploadLogo(c.Request().Context(), req.ID, fh)
}

func (h *EmployerHandler) Delete(c echo.Context, req *model.IDParam) error {
	return h.employers.Delete(c.Request().Context(), req.ID)
}

func (h *EmployerHandler) List(c echo.Context, req *model.ListEmployersRequest) (*model.PaginatedResponse[model.Employer], error) {
	return h.employers.List(c.Request().Context(), req)
}
