package router

import (
	"net/http"

	"github.com/deppfellow/recruitly/internal/handler"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/labstack/echo/v4"
)

func registerProfileRoutes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	a := h.Agency
	agencies := v1.Group("/agencies", m.Auth.RequireAuth)
	agencies.POST("", handler.Handle(a.Handler, a.Create, http.StatusCreated, &model.CreateAgencyRequest{}))
	agencies.GET("", handler.Handle(a.Handler, a.List, http.StatusOK, &model.ListAgenciesRequest{}))
	agencies.GET("/:id", handler.Handle(a.Handler, a.GetByID, http.StatusOK, &model.IDParam{}))
	agencies.PUT("/:id", handler.Handle(a.Handler, a.Update, http.StatusOK, &model.UpdateAgencyRequest{}))
	agencies.DELETE("/:id", handler.HandleNoContent(a.Handler, a.Delete, http.StatusNoContent, &model.IDParam{}))
	agencies.POST("/:id/logo", handler.Handle(a.Handler, a.UploadLogo, http.StatusOK, &model.IDParam{}))
	agencies.GET("/:id/job-seekers", handler.Handle(a.Handler, a.ListJobSeekers, http.StatusOK, &model.ListAgencyJobSeekersRequest{}))

	e := h.Employer
	employers := v1.Group("/employers", m.Auth.RequireAuth)
	employers.POST("", handler.Handle(e.Handler, e.Create, http.StatusCreated, &model.CreateEmployerRequest{}))
	employers.GET("", handler.Handle(e.Handler, e.List, http.StatusOK, &model.ListEmployersRequest{}))
	employers.GET("/:id", handler.Handle(e.Handler, e.GetByID, http.StatusOK, &model.IDParam{}))
	employers.PUT("/:id", handler.Handle(e.Handler, e.Update, http.StatusOK, &model.UpdateEmployerRequest{}))
	employers.DELETE("/:id", handler.HandleNoContent(e.Handler, e.Delete, http.StatusNoContent, &model.IDParam{}))
	employers.POST("/:id/logo", handler.Handle(e.Handler, e.UploadLogo, http.StatusOK, &model.IDParam{}))

	js := h.JobSeeker
	jobSeekers := v1.Group("/job-seekers", m.Auth.RequireAuth)
	jobSeekers.POST("", handler.Handle(js.Handler, js.Create, http.StatusCreated, &model.CreateJobSeekerRequest{}))
	jobSeekers.GET("", handler.Handle(js.Handler, js.List, http.StatusOK, &model.ListJobSeekersRequest{}))
	jobSeekers.GET("/:id", handler.Handle(js.Handler, js.GetByID, http.StatusOK, &model.IDParam{}))
	jobSeekers.PUT("/:id", handler.Handle(js.Handler, js.Update, http.StatusOK, &model.UpdateJobSeekerRequest{}))
	jobSeekers.DELETE("/:id", handler.HandleNoContent(js.Handler, js.Delete, http.StatusNoContent, &model.IDParam{}))
	jobSeekers.POST("/:id/resume", handler.Handle(js.Handler, js.UploadResume, http.StatusOK, &model.IDParam{}))
	jobSeekers.POST("/:id/photo", handler.Handle(js.Handler, js.UploadPhoto, http.StatusOK, &model.IDParam{}))
}
