package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const ticketColumns = `id, user_id, subject, message, status, resolution, created_at, updated_at`

type SupportRepository struct {
	db DBTX
}

func NewSupportRepository(db DBTX) *SupportRepository {
	return &SupportRepository{db: db}
}

func scanTicket(row pgx.Row, extra ...any) (*model.SupportTicket, error) {
	var t model.SupportTicket
	dest := []any{&t.ID, &t.UserID, &t.Subject, &t.Message, &t.Status, &t.Resolution, &t.CreatedAt, &t.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SupportRepository) getOne(ctx context.Context, query string, args ...any) (*model.SupportTicket, error) {
	ticket, err := scanTicket(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, sqlerr.WithTable("support_tickets", err)
	}
	return ticket, nil
}

func (r *SupportRepository) Create(ctx context.Context, req *model.CreateTicketRequest) (*model.SupportTicket, error) {
	query := `INSERT INTO support_tickets (user_id, subject, message, status)
		VALUES ($1, $2, $3, 'open')
		RETURNING ` + ticketColumns

	return r.getOne(ctx, query, req.UserID, req.Subject, req.Message)
}

func (r *SupportRepository) GetByID(ctx context.Context, id int64) (*model.SupportTicket, error) {
	return r.getOne(ctx, `SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id)
}

func (r *SupportRepository) Update(ctx context.Context, req *model.UpdateTicketRequest) (*model.SupportTicket, error) {
	query := `UPDATE support_tickets SET
			status = COALESCE($2, status),
			resolution = COALESCE($3, resolution)
		WHERE id = $1
		RETURNING ` + ticketColumns

	return r.getOne(ctx, query, req.ID, req.Status, req.Resolution)
}

func (r *SupportRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM support_tickets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete support ticket: %w", err)
	}
	return nil
}

func (r *SupportRepository) List(ctx context.Context, req *model.ListTicketsRequest) ([]model.SupportTicket, int64, error) {
	var f filter
	if req.Status != "" {
		f.add("status = $%d", req.Status)
	}
	if req.UserID != nil {
		f.add("user_id = $%d", *req.UserID)
	}

	items, total, err := listPage(ctx, r.db, "support_tickets", ticketColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanTicket)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list support tickets: %w", err)
	}
	return items, total, nil
}
