package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/lib/utils"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
)

type JobService struct {
	*Deps
}

// Create publishes a job position. Owners on a plan with a job post limit
// cannot exceed their number of non-closed postings.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.JobPosition, error) {
	j := &model.JobPosition{
		EmployerID:     req.EmployerID,
		AgencyID:       req.AgencyID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Status:         model.JobStatusOpen,
	}
	assign(&j.Status, req.Status)

	var err error
	if j.Deadline, err = utils.CoerceDatePtr(req.Deadline); err != nil {
		return nil, invalidField("deadline", "must be a valid date")
	}
	if j.Skills, err = jsonField("skills", req.Skills); err != nil {
		return nil, err
	}
	if err := checkSalaryRange(j); err != nil {
		return nil, err
	}

	if j.Status == model.JobStatusClosed {
		return s.Repos.Job.Create(ctx, j)
	}
	return s.withinPostLimit(ctx, j, func(repos *repository.Repositories) (*model.JobPosition, error) {
		return repos.Job.Create(ctx, j)
	})
}

// withinPostLimit checks the post limit and runs write in one transaction
// holding the owner's user row lock.
func (s *JobService) withinPostLimit(
	ctx context.Context,
	j *model.JobPosition,
	write func(repos *repository.Repositories) (*model.JobPosition, error),
) (*model.JobPosition, error) {
	var saved *model.JobPosition
	err := s.Repos.InTx(ctx, func(tx *repository.Repositories) error {
		if err := tx.User.LockOwner(ctx, j.EmployerID, j.AgencyID); err != nil {
			return err
		}
		if err := checkPostLimit(ctx, tx, j.EmployerID, j.AgencyID); err != nil {
			return err
		}

		var err error
		saved, err = write(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func checkPostLimit(ctx context.Context, repos *repository.Repositories, employerID, agencyID *int64) error {
	plan, err := repos.Plan.GetForOwner(ctx, employerID, agencyID)
	if repository.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if plan.JobPostLimit <= 0 {
		return nil
	}

	active, err := repos.Job.CountActiveByOwner(ctx, employerID, agencyID)
	if err != nil {
		return err
	}
	if active >= plan.JobPostLimit {
		return errs.NewPlanLimitError(fmt.Sprintf(
			"The %s plan allows %d active job postings", plan.Name, plan.JobPostLimit,
		))
	}
	return nil
}

func (s *JobService) GetByID(ctx context.Context, id int64) (*model.JobPosition, error) {
	return s.Repos.Job.GetByID(ctx, id)
}

func (s *JobService) Update(ctx context.Context, req *model.UpdateJobRequest) (*model.JobPosition, error) {
	j, err := s.Repos.Job.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	reopened := j.Status == model.JobStatusClosed

	assign(&j.Title, req.Title)
	assign(&j.Description, req.Description)
	assignPtr(&j.Location, req.Location)
	assignPtr(&j.EmploymentType, req.EmploymentType)
	assignPtr(&j.SalaryMin, req.SalaryMin)
	assignPtr(&j.SalaryMax, req.SalaryMax)
	assign(&j.Status, req.Status)

	if req.Deadline != nil {
		if j.Deadline, err = utils.CoerceDate(*req.Deadline); err != nil {
			return nil, invalidField("deadline", "must be a valid date")
		}
	}
	if req.Skills != nil {
		if j.Skills, err = jsonField("skills", req.Skills); err != nil {
			return nil, err
		}
	}
	if err := checkSalaryRange(j); err != nil {
		return nil, err
	}

	if reopened && j.Status != model.JobStatusClosed {
		return s.withinPostLimit(ctx, j, func(repos *repository.Repositories) (*model.JobPosition, error) {
			return repos.Job.Update(ctx, j)
		})
	}
	return s.Repos.Job.Update(ctx, j)
}

// Close stops the posting from accepting applications.
func (s *JobService) Close(ctx context.Context, id int64) (*model.JobPosition, error) {
	return s.Repos.Job.SetStatus(ctx, id, model.JobStatusClosed)
}

func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.Repos.Job.Delete(ctx, id)
}

func (s *JobService) List(ctx context.Context, req *model.ListJobsRequest) (*model.PaginatedResponse[model.JobPosition], error) {
	jobs, total, err := s.Repos.Job.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResponse(jobs, req.PaginationQuery, total), nil
}

func checkSalaryRange(j *model.JobPosition) error {
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return invalidField("salary_max", "must not be lower than salary_min")
	}
	return nil
}
