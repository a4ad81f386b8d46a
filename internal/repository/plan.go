package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// price is read as text so it round-trips through decimal.Decimal exactly.
const planColumns = `id, name, description, price::text, currency, interval, job_post_limit,
	profile_view_limit, provider_plan_id, active, created_at, updated_at`

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func scanPlan(row pgx.Row, extra ...any) (*model.SubscriptionPlan, error) {
	var p model.SubscriptionPlan
	var price string
	dest := []any{
		&p.ID, &p.Name, &p.Description, &price, &p.Currency, &p.Interval, &p.JobPostLimit,
		&p.ProfileViewLimit, &p.ProviderPlanID, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid plan price %q: %w", price, err)
	}
	p.Price = parsed
	return &p, nil
}

func (r *PlanRepository) getOne(ctx context.Context, query string, args ...any) (*model.SubscriptionPlan, error) {
	plan, err := scanPlan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, sqlerr.WithTable("subscription_plans", err)
	}
	return plan, nil
}

func (r *PlanRepository) Create(ctx context.Context, req *model.CreatePlanRequest) (*model.SubscriptionPlan, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `INSERT INTO subscription_plans (name, description, price, currency, interval,
			job_post_limit, profile_view_limit, provider_plan_id, active)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9)
		RETURNING ` + planColumns

	return r.getOne(ctx, query,
		req.Name, req.Description, req.Price.String(), req.Currency, req.Interval,
		req.JobPostLimit, req.ProfileViewLimit, req.ProviderPlanID, active,
	)
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*model.SubscriptionPlan, error) {
	return r.getOne(ctx, `SELECT `+planColumns+` FROM subscription_plans WHERE id = $1`, id)
}

func (r *PlanRepository) Update(ctx context.Context, req *model.UpdatePlanRequest) (*model.SubscriptionPlan, error) {
	var price *string
	if req.Price != nil {
		s := req.Price.String()
		price = &s
	}

	query := `UPDATE subscription_plans SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4::numeric, price),
			currency = COALESCE($5, currency),
			interval = COALESCE($6, interval),
			job_post_limit = COALESCE($7, job_post_limit),
			profile_view_limit = COALESCE($8, profile_view_limit),
			provider_plan_id = COALESCE($9, provider_plan_id),
			active = COALESCE($10, active)
		WHERE id = $1
		RETURNING ` + planColumns

	return r.getOne(ctx, query,
		req.ID, req.Name, req.Description, price, req.Currency, req.Interval,
		req.JobPostLimit, req.ProfileViewLimit, req.ProviderPlanID, req.Active,
	)
}

func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM subscription_plans WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete subscription plan: %w", err)
	}
	return nil
}

// List returns plans ordered by price; inactive plans only when asked.
func (r *PlanRepository) List(ctx context.Context, includeInactive bool) ([]model.SubscriptionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM subscription_plans`
	if !includeInactive {
		query += ` WHERE active`
	}
	query += ` ORDER BY price, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscription plans: %w", err)
	}
	return collectAll(rows, scanPlan)
}

// GetForOwner returns the plan attached to the user behind an employer or
// agency. It fails with pgx.ErrNoRows when no plan is attached.
func (r *PlanRepository) GetForOwner(ctx context.Context, employerID, agencyID *int64) (*model.SubscriptionPlan, error) {
	query := `SELECT ` + prefixed("p", planColumns) + `
		FROM users u
		JOIN subscription_plans p ON p.id = u.plan_id
		WHERE u.id = COALESCE(
			(SELECT user_id FROM employer WHERE id = $1::bigint),
			(SELECT user_id FROM agency_user WHERE id = $2::bigint)
		)`

	return r.getOne(ctx, query, employerID, agencyID)
}
