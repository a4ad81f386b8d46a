package router

import (
	"net/http"

	"github.com/deppfellow/recruitly/internal/handler"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/labstack/echo/v4"
)

func registerSupportRoutes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	t := h.Support
	tickets := v1.Group("/support-tickets", m.Auth.RequireAuth)
	tickets.POST("", handler.Handle(t.Handler, t.Create, http.StatusCreated, &model.CreateTicketRequest{}))
	tickets.GET("", handler.Handle(t.Handler, t.List, http.StatusOK, &model.ListTicketsRequest{}), adminOnly)
	tickets.GET("/:id", handler.Handle(t.Handler, t.GetByID, http.StatusOK, &model.IDParam{}))
	tickets.PATCH("/:id", handler.Handle(t.Handler, t.Update, http.StatusOK, &model.UpdateTicketRequest{}), adminOnly)
	tickets.DELETE("/:id", handler.HandleNoContent(t.Handler, t.Delete, http.StatusNoContent, &model.IDParam{}))

	r := h.Report
	reports := v1.Group("/reports", m.Auth.RequireAuth)
	reports.POST("/candidates", handler.Handle(r.Handler, r.ReportCandidate, http.StatusCreated, &model.CreateCandidateReportRequest{}))
	reports.POST("/jobs", handler.Handle(r.Handler, r.ReportJob, http.StatusCreated, &model.CreateJobReportRequest{}))

	for path, routes := range map[string]handler.ReportRoutes{
		"/candidates": r.Candidates(),
		"/jobs":       r.Jobs(),
	} {
		moderation := reports.Group(path, adminOnly)
		moderation.GET("", handler.Handle(r.Handler, routes.List, http.StatusOK, &model.ListReportsRequest{}))
		moderation.GET("/:id", handler.Handle(r.Handler, routes.GetByID, http.StatusOK, &model.IDParam{}))
		moderation.PATCH("/:id", handler.Handle(r.Handler, routes.SetStatus, http.StatusOK, &model.UpdateReportStatusRequest{}))
		moderation.DELETE("/:id", handler.HandleNoContent(r.Handler, routes.Delete, http.StatusNoContent, &model.IDParam{}))
	}

	ml := h.Mail
	mails := v1.Group("/mails", m.Auth.RequireAuth, adminOnly)
	mails.GET("", handler.Handle(ml.Handler, ml.List, http.StatusOK, &model.ListMailsRequest{}))
	mails.GET("/:id", handler.Handle(ml.Handler, ml.GetByID, http.StatusOK, &model.IDParam{}))
	mails.GET("/templates/:template/preview", handler.HandleHTML(ml.Handler, ml.Preview, http.StatusOK, &model.PreviewMailRequest{}))
}
