package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	Handler
	candidates *service.ReportService
	jobs       *service.ReportService
}

func NewReportHandler(s *server.Server, reports map[model.ReportKind]*service.ReportService) *ReportHandler {
	return &ReportHandler{
		Handler:    NewHandler(s),
		candidates: reports[model.ReportCandidate],
		jobs:       reports[model.ReportJob],
	}
}

func (h *ReportHandler) ReportCandidate(c echo.Context, req *model.CreateCandidateReportRequest) (*model.Report, error) {
	return h.candidates.CreateCandidate(c.Request().Context(), req)
}

func (h *ReportHandler) ReportJob(c echo.Context, req *model.CreateJobReportRequest) (*model.Report, error) {
	return h.jobs.CreateJob(c.Request().Context(), req)
}

// ReportRoutes are the moderation endpoints shared by both report kinds.
type ReportRoutes struct {
	reports *service.ReportService
}

func (h *ReportHandler) Candidates() ReportRoutes {
	return ReportRoutes{reports: h.candidates}
}

func (h *ReportHandler) Jobs() ReportRoutes {
	return ReportRoutes{reports: h.jobs}
}

func (r ReportRoutes) GetByID(c echo.Context, req *model.IDParam) (*model.Report, error) {
	return r.reports.GetByID(c.Request().Context(), req.ID)
}

func (r ReportRoutes) SetStatus(c echo.Context, req *model.UpdateReportStatusRequest) (*model.Report, error) {
	return r.reports.SetStatus(c.Request().Context(), req)
}

func (r ReportRoutes) Delete(c echo.Context, req *model.IDParam) error {
	return r.reports.Delete(c.Request().Context(), req.ID)
}

func (r ReportRoutes) List(c echo.Context, req *model.ListReportsRequest) (*model.PaginatedResponse[model.Report], error) {
	return r.reports.List(c.Request().Context(), req)
}
