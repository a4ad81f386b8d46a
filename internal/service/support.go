package service

import (
	"context"

	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/lib/job"
	"github.com/deppfellow/recruitly/internal/model"
)

type SupportService struct {
	*Deps
}

// Create opens a ticket and acknowledges it to the user by email.
func (s *SupportService) Create(ctx context.Context, req *model.CreateTicketRequest) (*model.SupportTicket, error) {
	user, err := s.Repos.User.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	ticket, err := s.Repos.Support.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, email.TicketReceived(user.Email, user.FullName, ticket.ID, ticket.Subject), job.QueueDefault)
	return ticket, nil
}

func (s *SupportService) GetByID(ctx context.Context, id int64) (*model.SupportTicket, error) {
	return s.Repos.Support.GetByID(ctx, id)
}

// Update changes status or resolution. Moving a ticket into resolved
// emails the user the resolution.
func (s *SupportService) Update(ctx context.Context, req *model.UpdateTicketRequest) (*model.SupportTicket, error) {
	current, err := s.Repos.Support.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	ticket, err := s.Repos.Support.Update(ctx, req)
	if err != nil {
		return nil, err
	}

	if ticket.Status == model.TicketStatusResolved && current.Status != model.TicketStatusResolved {
		user, err := s.Repos.User.GetByID(ctx, ticket.UserID)
		if err != nil {
			s.log(ctx).Warn().Err(err).Int64("ticket_id", ticket.ID).Msg("ticket owner not found")
			return ticket, nil
		}
		resolution := ""
		if ticket.Resolution != nil {
			resolution = *ticket.Resolution
		}
		s.notify(ctx, email.TicketResolved(user.Email, user.FullName, ticket.ID, resolution), job.QueueDefault)
	}
	return ticket, nil
}

func (s *SupportService) Delete(ctx context.Context, id int64) error {
	return s.Repos.Support.Delete(ctx, id)
}

func (s *SupportService) List(ctx context.Context, req *model.ListTicketsRequest) (*model.PaginatedResponse[model.SupportTicket], error) {
	tickets, total, err := s.Repos.Support.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResponse(tickets, req.PaginationQuery, total), nil
}
