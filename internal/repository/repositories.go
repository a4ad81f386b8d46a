package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
)

type Repositories struct {
	db DBTX

	User          *UserRepository
	Agency        *AgencyRepository
	Employer      *EmployerRepository
	JobSeeker     *JobSeekerRepository
	Job           *JobRepository
	Application   *ApplicationRepository
	Shortlist     *ShortlistRepository
	ViewedProfile *ViewedProfileRepository
	Plan          *PlanRepository
	Mail          *MailRepository
	Content       map[model.ContentKind]*ContentRepository
	Support       *SupportRepository
	Report        map[model.ReportKind]*ReportRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository over db.
func New(db DBTX) *Repositories {
	return &Repositories{
		db:            db,
		User:          NewUserRepository(db),
		Agency:        NewAgencyRepository(db),
		Employer:      NewEmployerRepository(db),
		JobSeeker:     NewJobSeekerRepository(db),
		Job:           NewJobRepository(db),
		Application:   NewApplicationRepository(db),
		Shortlist:     NewShortlistRepository(db),
		ViewedProfile: NewViewedProfileRepository(db),
		Plan:          NewPlanRepository(db),
		Mail:          NewMailRepository(db),
		Content: map[model.ContentKind]*ContentRepository{
			model.ContentNews:      NewContentRepository(db, model.ContentNews),
			model.ContentTips:      NewContentRepository(db, model.ContentTips),
			model.ContentTrainings: NewContentRepository(db, model.ContentTrainings),
		},
		Support: NewSupportRepository(db),
		Report: map[model.ReportKind]*ReportRepository{
			model.ReportCandidate: NewReportRepository(db, model.ReportCandidate),
			model.ReportJob:       NewReportRepository(db, model.ReportJob),
		},
	}
}

// InTx runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repositories) InTx(ctx context.Context, fn func(tx *Repositories) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(New(tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
