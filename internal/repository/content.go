package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const contentColumns = `id, title, body, image_key, published, created_at, updated_at`

// ContentRepository serves one of the news, tips and trainings tables.
type ContentRepository struct {
	db    DBTX
	table string
}

// NewContentRepository panics on an unknown kind; the table name is
// interpolated into SQL.
func NewContentRepository(db DBTX, kind model.ContentKind) *ContentRepository {
	if !kind.Valid() {
		panic(fmt.Sprintf("unknown content kind %q", kind))
	}
	return &ContentRepository{db: db, table: string(kind)}
}

func scanContent(row pgx.Row, extra ...any) (*model.Content, error) {
	var c model.Content
	dest := []any{&c.ID, &c.Title, &c.Body, &c.ImageKey, &c.Published, &c.CreatedAt, &c.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepository) getOne(ctx context.Context, query string, args ...any) (*model.Content, error) {
	content, err := scanContent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, sqlerr.WithTable(r.table, err)
	}
	return content, nil
}

func (r *ContentRepository) Create(ctx context.Context, req *model.CreateContentRequest) (*model.Content, error) {
	query := `INSERT INTO ` + r.table + ` (title, body, published)
		VALUES ($1, $2, $3)
		RETURNING ` + contentColumns

	return r.getOne(ctx, query, req.Title, req.Body, req.Published)
}

// GetByID hides unpublished rows unless includeUnpublished is set.
func (r *ContentRepository) GetByID(ctx context.Context, id int64, includeUnpublished bool) (*model.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM ` + r.table + ` WHERE id = $1 AND (published OR $2)`
	return r.getOne(ctx, query, id, includeUnpublished)
}

func (r *ContentRepository) Update(ctx context.Context, req *model.UpdateContentRequest) (*model.Content, error) {
	query := `UPDATE ` + r.table + ` SET
			title = COALESCE($2, title),
			body = COALESCE($3, body),
			published = COALESCE($4, published)
		WHERE id = $1
		RETURNING ` + contentColumns

	return r.getOne(ctx, query, req.ID, req.Title, req.Body, req.Published)
}

func (r *ContentRepository) SetImage(ctx context.Context, id int64, key string) (*model.Content, error) {
	return r.getOne(ctx, `UPDATE `+r.table+` SET image_key = $2 WHERE id = $1 RETURNING `+contentColumns, id, key)
}

// Delete removes the row and returns its image key, if any.
func (r *ContentRepository) Delete(ctx context.Context, id int64) (*string, error) {
	var imageKey *string
	err := r.db.QueryRow(ctx, `DELETE FROM `+r.table+` WHERE id = $1 RETURNING image_key`, id).Scan(&imageKey)
	if err != nil && !IsNotFound(err) {
		return nil, fmt.Errorf("failed to delete %s: %w", r.table, err)
	}
	return imageKey, nil
}

func (r *ContentRepository) List(ctx context.Context, req *model.ListContentRequest, includeUnpublished bool) ([]model.Content, int64, error) {
	var f filter
	if !includeUnpublished {
		f.add("published = $%d", true)
	}
	if req.Q != "" {
		f.add("(title ILIKE $%[1]d OR body ILIKE $%[1]d)", likePattern(req.Q))
	}

	items, total, err := listPage(ctx, r.db, r.table, contentColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanContent)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	return items, total, nil
}
