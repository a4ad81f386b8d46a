package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, auth_id, full_name, phone, role, plan_id, customer_id,
	subscription_id, subscription_status, subscription_ends_at, created_at, updated_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row, extra ...any) (*model.User, error) {
	var u model.User
	dest := []any{
		&u.ID, &u.Email, &u.AuthID, &u.FullName, &u.Phone, &u.Role, &u.PlanID, &u.CustomerID,
		&u.SubscriptionID, &u.SubscriptionStatus, &u.SubscriptionEndsAt, &u.CreatedAt, &u.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, sqlerr.WithTable("users", err)
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	query := `INSERT INTO users (email, auth_id, full_name, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	return r.getOne(ctx, query, req.Email, req.AuthID, req.FullName, req.Phone, req.Role)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByAuthID(ctx context.Context, authID string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE auth_id = $1`, authID)
}

func (r *UserRepository) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE subscription_id = $1`, subscriptionID)
}

func (r *UserRepository) Update(ctx context.Context, req *model.UpdateUserRequest) (*model.User, error) {
	query := `UPDATE users SET
			email = COALESCE($2, email),
			auth_id = COALESCE($3, auth_id),
			full_name = COALESCE($4, full_name),
			phone = COALESCE($5, phone),
			role = COALESCE($6, role)
		WHERE id = $1
		RETURNING ` + userColumns

	return r.getOne(ctx, query, req.ID, req.Email, req.AuthID, req.FullName, req.Phone, req.Role)
}

// LockOwner locks the user row behind an employer or agency until the
// surrounding transaction ends. An owner that does not exist is ignored.
func (r *UserRepository) LockOwner(ctx context.Context, employerID, agencyID *int64) error {
	query := `SELECT id FROM users
		WHERE id = COALESCE(
			(SELECT user_id FROM employer WHERE id = $1::bigint),
			(SELECT user_id FROM agency_user WHERE id = $2::bigint)
		)
		FOR UPDATE`

	var id int64
	err := r.db.QueryRow(ctx, query, employerID, agencyID).Scan(&id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to lock owner: %w", err)
	}
	return nil
}

// FileKeys returns the stored object keys owned by the user's profiles.
func (r *UserRepository) FileKeys(ctx context.Context, id int64) ([]string, error) {
	query := `SELECT file_key FROM (
			SELECT logo_key AS file_key FROM agency_user WHERE user_id = $1
			UNION ALL SELECT logo_key FROM employer WHERE user_id = $1
			UNION ALL SELECT resume_key FROM job_seekers WHERE user_id = $1
			UNION ALL SELECT photo_key FROM job_seekers WHERE user_id = $1
		) keys WHERE file_key IS NOT NULL`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query file keys: %w", err)
	}

	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect file keys: %w", err)
	}
	return keys, nil
}

// Delete removes the user; profiles cascade.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, req *model.ListUsersRequest) ([]model.User, int64, error) {
	var f filter
	if req.Role != "" {
		f.add("role = $%d", req.Role)
	}
	if req.Q != "" {
		f.add("(full_name ILIKE $%[1]d OR email ILIKE $%[1]d)", likePattern(req.Q))
	}

	items, total, err := listPage(ctx, r.db, "users", userColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanUser)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return items, total, nil
}

// SetCustomerID stores the payment-provider customer of the user.
func (r *UserRepository) SetCustomerID(ctx context.Context, id int64, customerID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET customer_id = $2 WHERE id = $1`, id, customerID)
	if err != nil {
		return fmt.Errorf("failed to set customer id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.WithTable("users", pgx.ErrNoRows)
	}
	return nil
}

// StartSubscription attaches plan and provider subscription to the user.
func (r *UserRepository) StartSubscription(ctx context.Context, id, planID int64, subscriptionID, status string) (*model.User, error) {
	query := `UPDATE users SET
			plan_id = $2,
			subscription_id = $3,
			subscription_status = $4,
			subscription_ends_at = NULL
		WHERE id = $1
		RETURNING ` + userColumns

	return r.getOne(ctx, query, id, planID, subscriptionID, status)
}

// SetSubscriptionStatus updates the status of the user owning
// subscriptionID. endsAt is kept when nil.
func (r *UserRepository) SetSubscriptionStatus(ctx context.Context, subscriptionID, status string, endsAt *time.Time) (*model.User, error) {
	query := `UPDATE users SET
			subscription_status = $2,
			subscription_ends_at = COALESCE($3, subscription_ends_at)
		WHERE subscription_id = $1
		RETURNING ` + userColumns

	return r.getOne(ctx, query, subscriptionID, status, endsAt)
}

// ListExpiringSubscriptions returns users whose active subscription ends
// between now and now+within.
func (r *UserRepository) ListExpiringSubscriptions(ctx context.Context, within time.Duration) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE subscription_status = 'active'
			AND subscription_ends_at > NOW()
			AND subscription_ends_at <= NOW() + $1::interval
		ORDER BY subscription_ends_at`

	rows, err := r.db.Query(ctx, query, fmt.Sprintf("%d seconds", int64(within.Seconds())))
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring subscriptions: %w", err)
	}

	return collectAll(rows, scanUser)
}

// ContactForJobPosition returns the user owning the employer or agency
// that posted the job.
func (r *UserRepository) ContactForJobPosition(ctx context.Context, jobPositionID int64) (*model.Contact, error) {
	query := `SELECT u.id, u.email, u.full_name
		FROM job_position j
		LEFT JOIN employer e ON e.id = j.employer_id
		LEFT JOIN agency_user a ON a.id = j.agency_id
		JOIN users u ON u.id = COALESCE(e.user_id, a.user_id)
		WHERE j.id = $1`

	return r.contact(ctx, query, jobPositionID)
}

func (r *UserRepository) ContactForJobSeeker(ctx context.Context, jobSeekerID int64) (*model.Contact, error) {
	query := `SELECT u.id, u.email, u.full_name
		FROM job_seekers s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`

	return r.contact(ctx, query, jobSeekerID)
}

func (r *UserRepository) contact(ctx context.Context, query string, id int64) (*model.Contact, error) {
	var c model.Contact
	if err := r.db.QueryRow(ctx, query, id).Scan(&c.UserID, &c.Email, &c.FullName); err != nil {
		return nil, sqlerr.WithTable("users", err)
	}
	return &c, nil
}

// IsNotFound reports whether err is a missing-row error from this package.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
