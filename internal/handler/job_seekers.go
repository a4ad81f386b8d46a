package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type JobSeekerHandler struct {
	Handler
	jobSeekers *service.JobSeekerService
}

func NewJobSeekerHandler(s *server.Server, jobSeekers *service.JobSeekerService) *JobSeekerHandler {
	return &JobSeekerHandler{
		Handler:    NewHandler(s),
		jobSeekers: jobSeekers,
	}
}

func (h *JobSeekerHandler) Create(c echo.Context, req *model.CreateJobSeekerRequest) (*model.JobSeeker, error) {
	return h.jobSeekers.Create(c.Request().Context(), req)
}

func (h *JobSeekerHandler) GetByID(c echo.Context, req *model.IDParam) (*model.JobSeeker, error) {
	return h.jobSeekers.GetByID(c.Request().Context(), req.ID)
}

func (h *JobSeekerHandler) Update(c echo.Context, req *model.UpdateJobSeekerRequest) (*model.JobSeeker, error) {
	return h.jobSeekers.Update(c.Request().Context(), req)
}

func (h *JobSeekerHandler) UploadResume(c echo.Context, req *model.IDParam) (*model.JobSeeker, error) {
	fh, err := formFile(c)
	if err != nil {
		return nil, err
	}
	return h.jobSeekers.UploadResume(c.Request().Context(), req.ID, fh)
}

func (h *JobSeekerHandler) UploadPhoto(c echo.Context, req *model.IDParam) (*model.JobSeeker, error) {
	fh, err := formFile(c)
	if err != nil {
		return nil, err
	}
	return h.jobSeekers.UploadPhoto(c.Request().Context(), req.ID, fh)
}

func (h *JobSeekerHandler) Delete(c echo.Context, req *model.IDParam) error {
	return h.jobSeekers.Delete(c.Request().Context(), req.ID)
}

func (h *JobSeekerHandler) List(c echo.Context, req *model.ListJobSeekersRequest) (*model.PaginatedResponse[model.JobSeeker], error) {
	return h.jobSeekers.List(c.Request().Context(), req)
}
