package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const shortlistColumns = `id, employer_id, job_seeker_id, job_position_id, note, created_at, updated_at`

type ShortlistRepository struct {
	db DBTX
}

func NewShortlistRepository(db DBTX) *ShortlistRepository {
	return &ShortlistRepository{db: db}
}

func scanShortlist(row pgx.Row, extra ...any) (*model.ShortlistEntry, error) {
	var s model.ShortlistEntry
	dest := []any{&s.ID, &s.EmployerID, &s.JobSeekerID, &s.JobPositionID, &s.Note, &s.CreatedAt, &s.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShortlistRepository) Create(ctx context.Context, req *model.CreateShortlistRequest) (*model.ShortlistEntry, error) {
	query := `INSERT INTO shortlist (employer_id, job_seeker_id, job_position_id, note)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + shortlistColumns

	entry, err := scanShortlist(r.db.QueryRow(ctx, query, req.EmployerID, req.JobSeekerID, req.JobPositionID, req.Note))
	if err != nil {
		return nil, sqlerr.WithTable("shortlist", err)
	}
	return entry, nil
}

func (r *ShortlistRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM shortlist WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete shortlist entry: %w", err)
	}
	return nil
}

func (r *ShortlistRepository) List(ctx context.Context, req *model.ListShortlistRequest) ([]model.ShortlistEntry, int64, error) {
	var f filter
	f.add("employer_id = $%d", req.EmployerID)

	items, total, err := listPage(ctx, r.db, "shortlist", shortlistColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanShortlist)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shortlist: %w", err)
	}
	return items, total, nil
}
