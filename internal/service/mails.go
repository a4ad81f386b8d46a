package service

import (
	"context"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/model"
)

type MailService struct {
	*Deps
}

func (s *MailService) GetByID(ctx context.Context, id int64) (*model.Mail, error) {
	return s.Repos.Mail.GetByID(ctx, id)
}

func (s *MailService) List(ctx context.Context, req *model.ListMailsRequest) (*model.PaginatedResponse[model.Mail], error) {
	mails, total, err := s.Repos.Mail.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResponse(mails, req.PaginationQuery, total), nil
}

// Preview renders an email template with sample data.
func (s *MailService) Preview(name string) (string, error) {
	if s.Previews == nil {
		return "", errs.NewServiceUnavailableError("Email previews are not available")
	}
	tmpl := email.Template(name)
	if !tmpl.Valid() {
		return "", errs.NewNotFoundError("Email template not found", true, nil)
	}
	return s.Previews.Preview(tmpl)
}
