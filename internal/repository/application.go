package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, job_position_id, job_seeker_id, cover_letter, status, created_at, updated_at`

type ApplicationRepository struct {
	db DBTX
}

func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func scanApplication(row pgx.Row, extra ...any) (*model.JobApplication, error) {
	var a model.JobApplication
	dest := []any{&a.ID, &a.JobPositionID, &a.JobSeekerID, &a.CoverLetter, &a.Status, &a.CreatedAt, &a.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepository) getOne(ctx context.Context, query string, args ...any) (*model.JobApplication, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, sqlerr.WithTable("job_applications", err)
	}
	return app, nil
}

// Create inserts an application. Applying twice to the same job violates
// unique_job_applications_pair.
func (r *ApplicationRepository) Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.JobApplication, error) {
	query := `INSERT INTO job_applications (job_position_id, job_seeker_id, cover_letter, status)
		VALUES ($1, $2, $3, 'applied')
		RETURNING ` + applicationColumns

	return r.getOne(ctx, query, req.JobPositionID, req.JobSeekerID, req.CoverLetter)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*model.JobApplication, error) {
	return r.getOne(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id)
}

func (r *ApplicationRepository) SetStatus(ctx context.Context, id int64, status string) (*model.JobApplication, error) {
	return r.getOne(ctx, `UPDATE job_applications SET status = $2 WHERE id = $1 RETURNING `+applicationColumns, id, status)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM job_applications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete job application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context, req *model.ListApplicationsRequest) ([]model.JobApplication, int64, error) {
	var f filter
	if req.JobPositionID != nil {
		f.add("job_position_id = $%d", *req.JobPositionID)
	}
	if req.JobSeekerID != nil {
		f.add("job_seeker_id = $%d", *req.JobSeekerID)
	}
	if req.Status != "" {
		f.add("status = $%d", req.Status)
	}

	items, total, err := listPage(ctx, r.db, "job_applications", applicationColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanApplication)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job applications: %w", err)
	}
	return items, total, nil
}
