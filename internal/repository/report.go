package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// ReportRepository serves candidate_report or job_reports. Both tables
// share their shape except for the reported entity column.
type ReportRepository struct {
	db     DBTX
	kind   model.ReportKind
	table  string
	target string
}

func NewReportRepository(db DBTX, kind model.ReportKind) *ReportRepository {
	r := &ReportRepository{db: db, kind: kind}
	switch kind {
	case model.ReportCandidate:
		r.table, r.target = "candidate_report", "job_seeker_id"
	case model.ReportJob:
		r.table, r.target = "job_reports", "job_position_id"
	default:
		panic(fmt.Sprintf("unknown report kind %q", kind))
	}
	return r
}

func (r *ReportRepository) columns() string {
	return `id, reporter_user_id, ` + r.target + `, reason, details, status, created_at, updated_at`
}

func (r *ReportRepository) scan(row pgx.Row, extra ...any) (*model.Report, error) {
	var rep model.Report
	var targetID int64
	dest := []any{&rep.ID, &rep.ReporterUserID, &targetID, &rep.Reason, &rep.Details, &rep.Status, &rep.CreatedAt, &rep.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if r.kind == model.ReportCandidate {
		rep.JobSeekerID = &targetID
	} else {
		rep.JobPositionID = &targetID
	}
	return &rep, nil
}

func (r *ReportRepository) getOne(ctx context.Context, query string, args ...any) (*model.Report, error) {
	rep, err := r.scan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, sqlerr.WithTable("reports", err)
	}
	return rep, nil
}

func (r *ReportRepository) Create(ctx context.Context, reporterUserID, targetID int64, reason string, details *string) (*model.Report, error) {
	query := `INSERT INTO ` + r.table + ` (reporter_user_id, ` + r.target + `, reason, details, status)
		VALUES ($1, $2, $3, $4, 'open')
		RETURNING ` + r.columns()

	return r.getOne(ctx, query, reporterUserID, targetID, reason, details)
}

func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*model.Report, error) {
	return r.getOne(ctx, `SELECT `+r.columns()+` FROM `+r.table+` WHERE id = $1`, id)
}

func (r *ReportRepository) SetStatus(ctx context.Context, id int64, status string) (*model.Report, error) {
	return r.getOne(ctx, `UPDATE `+r.table+` SET status = $2 WHERE id = $1 RETURNING `+r.columns(), id, status)
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

func (r *ReportRepository) List(ctx context.Context, req *model.ListReportsRequest) ([]model.Report, int64, error) {
	var f filter
	if req.Status != "" {
		f.add("status = $%d", req.Status)
	}

	items, total, err := listPage(ctx, r.db, r.table, r.columns(), "created_at DESC, id DESC", &f, req.PaginationQuery, r.scan)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	return items, total, nil
}
