package service

import (
	"context"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/lib/email"
	"github.com/deppfellow/recruitly/internal/lib/job"
	"github.com/deppfellow/recruitly/internal/model"
)

var codeJobNotOpen = "JOB_POSITION_NOT_OPEN"

type ApplicationService struct {
	*Deps
}

// Create applies a job seeker to an open job and emails the job owner.
func (s *ApplicationService) Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.JobApplication, error) {
	position, err := s.Repos.Job.GetByID(ctx, req.JobPositionID)
	if err != nil {
		return nil, err
	}
	if position.Status != model.JobStatusOpen {
		return nil, errs.NewBadRequestError("This job position is not accepting applications", true, &codeJobNotOpen, nil, nil)
	}

	app, err := s.Repos.Application.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	owner, err := s.Repos.User.ContactForJobPosition(ctx, position.ID)
	if err != nil {
		s.log(ctx).Warn().Err(err).Int64("job_position_id", position.ID).Msg("no contact for job owner")
		return app, nil
	}

	applicant := "A candidate"
	if seeker, err := s.Repos.User.ContactForJobSeeker(ctx, req.JobSeekerID); err == nil {
		applicant = seeker.FullName
	}

	s.notify(ctx, email.ApplicationReceived(owner.Email, owner.FullName, position.Title, applicant, app.ID), job.QueueDefault)
	return app, nil
}

func (s *ApplicationService) GetByID(ctx context.Context, id int64) (*model.JobApplication, error) {
	return s.Repos.Application.GetByID(ctx, id)
}

// UpdateStatus moves the application and emails the job seeker when the
// status actually changed.
func (s *ApplicationService) UpdateStatus(ctx context.Context, req *model.UpdateApplicationStatusRequest) (*model.JobApplication, error) {
	current, err := s.Repos.Application.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repos.Application.SetStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, err
	}
	if current.Status == updated.Status {
		return updated, nil
	}

	seeker, err := s.Repos.User.ContactForJobSeeker(ctx, updated.JobSeekerID)
	if err != nil {
		s.log(ctx).Warn().Err(err).Int64("job_seeker_id", updated.JobSeekerID).Msg("no contact for job seeker")
		return updated, nil
	}

	title := "your application"
	if position, err := s.Repos.Job.GetByID(ctx, updated.JobPositionID); err == nil {
		title = position.Title
	}

	s.notify(ctx, email.ApplicationStatus(seeker.Email, seeker.FullName, title, updated.Status), job.QueueDefault)
	return updated, nil
}

// Delete withdraws the application.
func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	return s.Repos.Application.Delete(ctx, id)
}

func (s *ApplicationService) List(ctx context.Context, req *model.ListApplicationsRequest) (*model.PaginatedResponse[model.JobApplication], error) {
	apps, total, err := s.Repos.Application.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResponse(apps, req.PaginationQuery, total), nil
}
