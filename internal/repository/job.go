package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, employer_id, agency_id, title, description, location, employment_type,
	salary_min, salary_max, skills, status, deadline, created_at, updated_at`

type JobRepository struct {
	db DBTX
}

func NewJobRepository(db DBTX) *JobRepository {
	return &JobRepository{db: db}
}

func scanJob(row pgx.Row, extra ...any) (*model.JobPosition, error) {
	var j model.JobPosition
	dest := []any{
		&j.ID, &j.EmployerID, &j.AgencyID, &j.Title, &j.Description, &j.Location, &j.EmploymentType,
		&j.SalaryMin, &j.SalaryMax, &j.Skills, &j.Status, &j.Deadline, &j.CreatedAt, &j.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepository) getOne(ctx context.Context, query string, args ...any) (*model.JobPosition, error) {
	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, sqlerr.WithTable("job_position", err)
	}
	return job, nil
}

func (r *JobRepository) Create(ctx context.Context, j *model.JobPosition) (*model.JobPosition, error) {
	query := `INSERT INTO job_position (employer_id, agency_id, title, description, location,
			employment_type, salary_min, salary_max, skills, status, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11)
		RETURNING ` + jobColumns

	return r.getOne(ctx, query,
		j.EmployerID, j.AgencyID, j.Title, j.Description, j.Location,
		j.EmploymentType, j.SalaryMin, j.SalaryMax, string(j.Skills), j.Status, j.Deadline,
	)
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*model.JobPosition, error) {
	return r.getOne(ctx, `SELECT `+jobColumns+` FROM job_position WHERE id = $1`, id)
}

func (r *JobRepository) Update(ctx context.Context, j *model.JobPosition) (*model.JobPosition, error) {
	query := `UPDATE job_position SET
			title = $2, description = $3, location = $4, employment_type = $5,
			salary_min = $6, salary_max = $7, skills = $8::jsonb, status = $9, deadline = $10
		WHERE id = $1
		RETURNING ` + jobColumns

	return r.getOne(ctx, query,
		j.ID, j.Title, j.Description, j.Location, j.EmploymentType,
		j.SalaryMin, j.SalaryMax, string(j.Skills), j.Status, j.Deadline,
	)
}

func (r *JobRepository) SetStatus(ctx context.Context, id int64, status string) (*model.JobPosition, error) {
	return r.getOne(ctx, `UPDATE job_position SET status = $2 WHERE id = $1 RETURNING `+jobColumns, id, status)
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM job_position WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete job position: %w", err)
	}
	return nil
}

func (r *JobRepository) List(ctx context.Context, req *model.ListJobsRequest) ([]model.JobPosition, int64, error) {
	var f filter
	if req.Status != "" {
		f.add("status = $%d", req.Status)
	}
	if req.EmployerID != nil {
		f.add("employer_id = $%d", *req.EmployerID)
	}
	if req.AgencyID != nil {
		f.add("agency_id = $%d", *req.AgencyID)
	}
	if req.Location != "" {
		f.add("location ILIKE $%d", likePattern(req.Location))
	}
	if req.Q != "" {
		f.add("(title ILIKE $%[1]d OR description ILIKE $%[1]d)", likePattern(req.Q))
	}

	items, total, err := listPage(ctx, r.db, "job_position", jobColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanJob)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job positions: %w", err)
	}
	return items, total, nil
}

// CountActiveByOwner counts open and draft postings of an employer or agency.
func (r *JobRepository) CountActiveByOwner(ctx context.Context, employerID, agencyID *int64) (int, error) {
	query := `SELECT COUNT(*) FROM job_position
		WHERE status <> 'closed'
			AND (($1::bigint IS NOT NULL AND employer_id = $1) OR ($2::bigint IS NOT NULL AND agency_id = $2))`

	var count int
	if err := r.db.QueryRow(ctx, query, employerID, agencyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count job positions: %w", err)
	}
	return count, nil
}

// CloseExpired closes open postings whose deadline has passed.
func (r *JobRepository) CloseExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE job_position SET status = 'closed'
		WHERE status = 'open' AND deadline IS NOT NULL AND deadline < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to close expired job positions: %w", err)
	}
	return tag.RowsAffected(), nil
}
