package router

import (
	"net/http"

	"github.com/deppfellow/recruitly/internal/handler"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/labstack/echo/v4"
)

func registerJobRoutes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	j := h.Job
	v1.GET("/jobs", handler.Handle(j.Handler, j.List, http.StatusOK, &model.ListJobsRequest{}))
	v1.GET("/jobs/:id", handler.Handle(j.Handler, j.GetByID, http.StatusOK, &model.IDParam{}))
	v1.POST("/jobs", handler.Handle(j.Handler, j.Create, http.StatusCreated, &model.CreateJobRequest{}), m.Auth.RequireAuth)
	v1.PUT("/jobs/:id", handler.Handle(j.Handler, j.Update, http.StatusOK, &model.UpdateJobRequest{}), m.Auth.RequireAuth)
	v1.POST("/jobs/:id/close", handler.Handle(j.Handler, j.Close, http.StatusOK, &model.IDParam{}), m.Auth.RequireAuth)
	v1.DELETE("/jobs/:id", handler.HandleNoContent(j.Handler, j.Delete, http.StatusNoContent, &model.IDParam{}), m.Auth.RequireAuth)

	a := h.Application
	applications := v1.Group("/applications", m.Auth.RequireAuth)
	applications.POST("", handler.Handle(a.Handler, a.Apply, http.StatusCreated, &model.CreateApplicationRequest{}))
	applications.GET("", handler.Handle(a.Handler, a.List, http.StatusOK, &model.ListApplicationsRequest{}))
	applications.GET("/:id", handler.Handle(a.Handler, a.GetByID, http.StatusOK, &model.IDParam{}))
	applications.PATCH("/:id/status", handler.Handle(a.Handler, a.UpdateStatus, http.StatusOK, &model.UpdateApplicationStatusRequest{}))
	applications.DELETE("/:id", handler.HandleNoContent(a.Handler, a.Withdraw, http.StatusNoContent, &model.IDParam{}))

	shortlist := v1.Group("/shortlist", m.Auth.RequireAuth)
	shortlist.POST("", handler.Handle(a.Handler, a.Shortlist, http.StatusCreated, &model.CreateShortlistRequest{}))
	shortlist.GET("", handler.Handle(a.Handler, a.ListShortlist, http.StatusOK, &model.ListShortlistRequest{}))
	shortlist.DELETE("/:id", handler.HandleNoContent(a.Handler, a.RemoveFromShortlist, http.StatusNoContent, &model.IDParam{}))

	views := v1.Group("/viewed-profiles", m.Auth.RequireAuth)
	views.POST("", handler.Handle(a.Handler, a.RecordView, http.StatusCreated, &model.RecordViewRequest{}))
	views.GET("", handler.Handle(a.Handler, a.ListViews, http.StatusOK, &model.ListViewedProfilesRequest{}))
}
