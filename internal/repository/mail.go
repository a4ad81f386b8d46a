package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const mailColumns = `id, recipient, subject, template, status, provider_message_id, error, created_at, updated_at`

type MailRepository struct {
	db DBTX
}

func NewMailRepository(db DBTX) *MailRepository {
	return &MailRepository{db: db}
}

func scanMail(row pgx.Row, extra ...any) (*model.Mail, error) {
	var m model.Mail
	dest := []any{
		&m.ID, &m.Recipient, &m.Subject, &m.Template, &m.Status,
		&m.ProviderMessageID, &m.Error, &m.CreatedAt, &m.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create logs one delivery attempt.
func (r *MailRepository) Create(ctx context.Context, m *model.Mail) (*model.Mail, error) {
	query := `INSERT INTO mails_table (recipient, subject, template, status, provider_message_id, error)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + mailColumns

	mail, err := scanMail(r.db.QueryRow(ctx, query,
		m.Recipient, m.Subject, m.Template, m.Status, m.ProviderMessageID, m.Error,
	))
	if err != nil {
		return nil, sqlerr.WithTable("mails", err)
	}
	return mail, nil
}

func (r *MailRepository) GetByID(ctx context.Context, id int64) (*model.Mail, error) {
	mail, err := scanMail(r.db.QueryRow(ctx, `SELECT `+mailColumns+` FROM mails_table WHERE id = $1`, id))
	if err != nil {
		return nil, sqlerr.WithTable("mails", err)
	}
	return mail, nil
}

func (r *MailRepository) List(ctx context.Context, req *model.ListMailsRequest) ([]model.Mail, int64, error) {
	var f filter
	if req.Status != "" {
		f.add("status = $%d", req.Status)
	}
	if req.Recipient != "" {
		f.add("recipient ILIKE $%d", likePattern(req.Recipient))
	}

	items, total, err := listPage(ctx, r.db, "mails_table", mailColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanMail)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mails: %w", err)
	}
	return items, total, nil
}
