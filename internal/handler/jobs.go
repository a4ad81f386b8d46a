package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type JobHandler struct {
	Handler
	jobs *service.JobService
}

func NewJobHandler(s *server.Server, jobs *service.JobService) *JobHandler {
	return &JobHandler{
		Handler: NewHandler(s),
		jobs:    jobs,
	}
}

func (h *JobHandler) Create(c echo.Context, req *model.CreateJobRequest) (*model.JobPosition, error) {
	return h.jobs.Create(c.Request().Context(), req)
}

func (h *JobHandler) GetByID(c echo.Context, req *model.IDParam) (*model.JobPosition, error) {
	return h.jobs.GetByID(c.Request().Context(), req.ID)
}

func (h *JobHandler) Update(c echo.Context, req *model.UpdateJobRequest) (*model.JobPosition, error) {
	return h.jobs.Update(c.Request().Context(), req)
}

func (h *JobHandler) Close(c echo.Context, req *model.IDParam) (*model.JobPosition, error) {
	return h.jobs.Close(c.Request().Context(), req.ID)
}

func (h *JobHandler) Delete(c echo.Context, req *model.IDParam) error {
	return h.jobs.Delete(c.Request().Context(), req.ID)
}

func (h *JobHandler) List(c echo.Context, req *model.ListJobsRequest) (*model.PaginatedResponse[model.JobPosition], error) {
	return h.jobs.List(c.Request().Context(), req)
}
