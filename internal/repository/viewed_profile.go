package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const viewedProfileColumns = `id, employer_id, job_seeker_id, viewed_at, created_at, updated_at`

type ViewedProfileRepository struct {
	db DBTX
}

func NewViewedProfileRepository(db DBTX) *ViewedProfileRepository {
	return &ViewedProfileRepository{db: db}
}

func scanViewedProfile(row pgx.Row, extra ...any) (*model.ViewedProfile, error) {
	var v model.ViewedProfile
	dest := []any{&v.ID, &v.EmployerID, &v.JobSeekerID, &v.ViewedAt, &v.CreatedAt, &v.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &v, nil
}

// Upsert records a view, refreshing viewed_at when the pair exists.
func (r *ViewedProfileRepository) Upsert(ctx context.Context, employerID, jobSeekerID int64) (*model.ViewedProfile, error) {
	query := `INSERT INTO viewed_profiles (employer_id, job_seeker_id, viewed_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT ON CONSTRAINT unique_viewed_profiles_pair
		DO UPDATE SET viewed_at = EXCLUDED.viewed_at
		RETURNING ` + viewedProfileColumns

	view, err := scanViewedProfile(r.db.QueryRow(ctx, query, employerID, jobSeekerID))
	if err != nil {
		return nil, sqlerr.WithTable("viewed_profiles", err)
	}
	return view, nil
}

func (r *ViewedProfileRepository) Exists(ctx context.Context, employerID, jobSeekerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM viewed_profiles WHERE employer_id = $1 AND job_seeker_id = $2)`,
		employerID, jobSeekerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check viewed profile: %w", err)
	}
	return exists, nil
}

func (r *ViewedProfileRepository) CountByEmployer(ctx context.Context, employerID int64) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM viewed_profiles WHERE employer_id = $1`, employerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count viewed profiles: %w", err)
	}
	return count, nil
}

func (r *ViewedProfileRepository) List(ctx context.Context, req *model.ListViewedProfilesRequest) ([]model.ViewedProfile, int64, error) {
	var f filter
	if req.EmployerID != nil {
		f.add("employer_id = $%d", *req.EmployerID)
	}
	if req.JobSeekerID != nil {
		f.add("job_seeker_id = $%d", *req.JobSeekerID)
	}

	items, total, err := listPage(ctx, r.db, "viewed_profiles", viewedProfileColumns, "viewed_at DESC, id DESC", &f, req.PaginationQuery, scanViewedProfile)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list viewed profiles: %w", err)
	}
	return items, total, nil
}
