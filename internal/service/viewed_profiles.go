package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
)

type ViewedProfileService struct {
	*Deps
}

// Record upserts the (employer, job seeker) view. Viewing a new profile
// counts against the plan's profile view limit; repeat views never do. The
// employer's user row stays locked until the view is written.
func (s *ViewedProfileService) Record(ctx context.Context, req *model.RecordViewRequest) (*model.ViewedProfile, error) {
	var view *model.ViewedProfile
	err := s.Repos.InTx(ctx, func(tx *repository.Repositories) error {
		if err := tx.User.LockOwner(ctx, &req.EmployerID, nil); err != nil {
			return err
		}

		seen, err := tx.ViewedProfile.Exists(ctx, req.EmployerID, req.JobSeekerID)
		if err != nil {
			return err
		}
		if !seen {
			if err := checkViewLimit(ctx, tx, req.EmployerID); err != nil {
				return err
			}
		}

		view, err = tx.ViewedProfile.Upsert(ctx, req.EmployerID, req.JobSeekerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func checkViewLimit(ctx context.Context, repos *repository.Repositories, employerID int64) error {
	plan, err := repos.Plan.GetForOwner(ctx, &employerID, nil)
	if repository.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if plan.ProfileViewLimit <= 0 {
		return nil
	}

	viewed, err := repos.ViewedProfile.CountByEmployer(ctx, employerID)
	if err != nil {
		return err
	}
	if viewed >= plan.ProfileViewLimit {
		return errs.NewPlanLimitError(fmt.Sprintf(
			"The %s plan allows viewing %d profiles", plan.Name, plan.ProfileViewLimit,
		))
	}
	return nil
}

func (s *ViewedProfileService) List(ctx context.Context, req *model.ListViewedProfilesRequest) (*model.PaginatedResponse[model.ViewedProfile], error) {
	views, total, err := s.Repos.ViewedProfile.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResponse(views, req.PaginationQuery, total), nil
}
