// Package handler translates HTTP requests into service calls. Requests are
// bound and validated by the generic Handle helpers before a handler runs.
package handler

import (
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
)

type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	User         *UserHandler
	Agency       *AgencyHandler
	Employer     *EmployerHandler
	JobSeeker    *JobSeekerHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	Plan         *PlanHandler
	Subscription *SubscriptionHandler
	Mail         *MailHandler
	Content      []*ContentHandler
	Support      *SupportHandler
	Report       *ReportHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	content := make([]*ContentHandler, 0, len(services.Content))
	for _, kind := range []model.ContentKind{model.ContentNews, model.ContentTips, model.ContentTrainings} {
		if svc, ok := services.Content[kind]; ok {
			content = append(content, NewContentHandler(s, svc))
		}
	}

	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		User:         NewUserHandler(s, services.User),
		Agency:       NewAgencyHandler(s, services.Agency),
		Employer:     NewEmployerHandler(s, services.Employer),
		JobSeeker:    NewJobSeekerHandler(s, services.JobSeeker),
		Job:          NewJobHandler(s, services.Job),
		Application:  NewApplicationHandler(s, services),
		Plan:         NewPlanHandler(s, services.Plan),
		Subscription: NewSubscriptionHandler(s, services.Subscription),
		Mail:         NewMailHandler(s, services.Mail),
		Content:      content,
		Support:      NewSupportHandler(s, services.Support),
		Report:       NewReportHandler(s, services.Report),
	}
}
