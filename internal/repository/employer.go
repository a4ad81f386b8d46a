package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const employerColumns = `id, user_id, company_name, industry, company_size, website, phone, address,
	city, country, description, logo_key, profile_completion, created_at, updated_at`

type EmployerRepository struct {
	db DBTX
}

func NewEmployerRepository(db DBTX) *EmployerRepository {
	return &EmployerRepository{db: db}
}

func scanEmployer(row pgx.Row, extra ...any) (*model.Employer, error) {
	var e model.Employer
	dest := []any{
		&e.ID, &e.UserID, &e.CompanyName, &e.Industry, &e.CompanySize, &e.Website, &e.Phone, &e.Address,
		&e.City, &e.Country, &e.Description, &e.LogoKey, &e.ProfileCompletion, &e.CreatedAt, &e.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployerRepository) Create(ctx context.Context, e *model.Employer) (*model.Employer, error) {
	query := `INSERT INTO employer (user_id, company_name, industry, company_size, website, phone,
			address, city, country, description, profile_completion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employerColumns

	employer, err := scanEmployer(r.db.QueryRow(ctx, query,
		e.UserID, e.CompanyName, e.Industry, e.CompanySize, e.Website, e.Phone,
		e.Address, e.City, e.Country, e.Description, e.ProfileCompletion,
	))
	if err != nil {
		return nil, sqlerr.WithTable("employer", err)
	}
	return employer, nil
}

func (r *EmployerRepository) GetByID(ctx context.Context, id int64) (*model.Employer, error) {
	employer, err := scanEmployer(r.db.QueryRow(ctx, `SELECT `+employerColumns+` FROM employer WHERE id = $1`, id))
	if err != nil {
		return nil, sqlerr.WithTable("employer", err)
	}
	return employer, nil
}

func (r *EmployerRepository) Update(ctx context.Context, e *model.Employer) (*model.Employer, error) {
	query := `UPDATE employer SET
			company_name = $2, industry = $3, company_size = $4, website = $5, phone = $6,
			address = $7, city = $8, country = $9, description = $10, logo_key = $11,
			profile_completion = $12
		WHERE id = $1
		RETURNING ` + employerColumns

	employer, err := scanEmployer(r.db.QueryRow(ctx, query,
		e.ID, e.CompanyName, e.Industry, e.CompanySize, e.Website, e.Phone,
		e.Address, e.City, e.Country, e.Description, e.LogoKey,
		e.ProfileCompletion,
	))
	if err != nil {
		return nil, sqlerr.WithTable("employer", err)
	}
	return employer, nil
}

// Delete removes the employer and returns its logo key, if any.
func (r *EmployerRepository) Delete(ctx context.Context, id int64) (*string, error) {
	var logoKey *string
	err := r.db.QueryRow(ctx, `DELETE FROM employer WHERE id = $1 RETURNING logo_key`, id).Scan(&logoKey)
	if err != nil && !IsNotFound(err) {
		return nil, fmt.Errorf("failed to delete employer: %w", err)
	}
	return logoKey, nil
}

func (r *EmployerRepository) List(ctx context.Context, req *model.ListEmployersRequest) ([]model.Employer, int64, error) {
	var f filter
	if req.Industry != "" {
		f.add("industry = $%d", req.Industry)
	}
	if req.Q != "" {
		f.add("(company_name ILIKE $%[1]d OR city ILIKE $%[1]d)", likePattern(req.Q))
	}

	items, total, err := listPage(ctx, r.db, "employer", employerColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanEmployer)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employers: %w", err)
	}
	return items, total, nil
}
