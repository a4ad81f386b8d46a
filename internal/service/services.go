// Package service holds the business rules between the HTTP handlers and
// the repositories: profile completion, plan limits, notification emails,
// file storage and billing.
package service

import (
	"context"
	"io"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/recruitly/internal/config"
	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/lib/payment"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/rs/zerolog"
)

type EmailQueue interface {
	EnqueueEmail(ctx context.Context, msg email.Message, queue string) error
}

type FileStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type PaymentGateway interface {
	CreateCustomer(ctx context.Context, name, email, phone string) (*payment.Customer, error)
	CreateSubscription(ctx context.Context, providerPlanID, customerID string, notes map[string]string) (*payment.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*payment.Subscription, error)
	ParseWebhook(body []byte, signature string) (*payment.WebhookEvent, error)
}

type TemplatePreviewer interface {
	Preview(name email.Template) (string, error)
}

type PlanCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Deps are the collaborators shared by every service. Files and Payments
// may be nil when the integration is not configured.
type Deps struct {
	Config   *config.Config
	Logger   *zerolog.Logger
	Repos    *repository.Repositories
	Emails   EmailQueue
	Files    FileStore
	Payments PaymentGateway
	Cache    PlanCache
	Previews TemplatePreviewer
}

type Services struct {
	User          *UserService
	Agency        *AgencyService
	Employer      *EmployerService
	JobSeeker     *JobSeekerService
	Job           *JobService
	Application   *ApplicationService
	Shortlist     *ShortlistService
	ViewedProfile *ViewedProfileService
	Plan          *PlanService
	Subscription  *SubscriptionService
	Mail          *MailService
	Content       map[model.ContentKind]*ContentService
	Support       *SupportService
	Report        map[model.ReportKind]*ReportService
	Reminder      *ReminderService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	d := &Deps{
		Config: s.Config,
		Logger: s.Logger,
		Repos:  repos,
		Emails: s.Job,
		Cache:  s.Cache,
	}
	if s.Storage != nil {
		d.Files = s.Storage
	}
	if s.Payment != nil {
		d.Payments = s.Payment
	}

	previews, err := email.NewClient(s.Config, s.Logger)
	if err != nil {
		return nil, err
	}
	d.Previews = previews

	// Session tokens checked by the auth middleware are verified with this key.
	clerk.SetKey(s.Config.Auth.SecretKey)

	return New(d), nil
}

// New builds the domain services over d.
func New(d *Deps) *Services {
	return &Services{
		User:          &UserService{d},
		Agency:        &AgencyService{d},
		Employer:      &EmployerService{d},
		JobSeeker:     &JobSeekerService{d},
		Job:           &JobService{d},
		Application:   &ApplicationService{d},
		Shortlist:     &ShortlistService{d},
		ViewedProfile: &ViewedProfileService{d},
		Plan:          &PlanService{d},
		Subscription:  &SubscriptionService{d},
		Mail:          &MailService{d},
		Content: map[model.ContentKind]*ContentService{
			model.ContentNews:      {Deps: d, kind: model.ContentNews},
			model.ContentTips:      {Deps: d, kind: model.ContentTips},
			model.ContentTrainings: {Deps: d, kind: model.ContentTrainings},
		},
		Support: &SupportService{d},
		Report: map[model.ReportKind]*ReportService{
			model.ReportCandidate: {Deps: d, kind: model.ReportCandidate},
			model.ReportJob:       {Deps: d, kind: model.ReportJob},
		},
		Reminder: &ReminderService{d},
	}
}

// log prefers the request-scoped logger carried by ctx.
func (d *Deps) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return d.Logger
}

// notify queues msg. Delivery problems never fail the request that caused
// the email.
func (d *Deps) notify(ctx context.Context, msg email.Message, queue string) {
	if d.Emails == nil {
		return
	}
	if err := d.Emails.EnqueueEmail(ctx, msg, queue); err != nil {
		d.log(ctx).Error().Err(err).
			Str("template", string(msg.Template)).
			Str("to", msg.To).
			Msg("failed to enqueue email")
	}
}

func invalidField(field, message string) error {
	return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{Field: field, Error: message}}, nil)
}

// assign copies *src into *dst when src is set.
func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// assignPtr replaces *dst with src when src is set.
func assignPtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
