package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const agencyColumns = `id, user_id, agency_name, website, phone, address, city, country,
	description, logo_key, profile_completion, created_at, updated_at`

type AgencyRepository struct {
	db DBTX
}

func NewAgencyRepository(db DBTX) *AgencyRepository {
	return &AgencyRepository{db: db}
}

func scanAgency(row pgx.Row, extra ...any) (*model.Agency, error) {
	var a model.Agency
	dest := []any{
		&a.ID, &a.UserID, &a.AgencyName, &a.Website, &a.Phone, &a.Address, &a.City, &a.Country,
		&a.Description, &a.LogoKey, &a.ProfileCompletion, &a.CreatedAt, &a.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AgencyRepository) Create(ctx context.Context, a *model.Agency) (*model.Agency, error) {
	query := `INSERT INTO agency_user (user_id, agency_name, website, phone, address, city, country,
			description, profile_completion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + agencyColumns

	agency, err := scanAgency(r.db.QueryRow(ctx, query,
		a.UserID, a.AgencyName, a.Website, a.Phone, a.Address, a.City, a.Country,
		a.Description, a.ProfileCompletion,
	))
	if err != nil {
		return nil, sqlerr.WithTable("agency", err)
	}
	return agency, nil
}

func (r *AgencyRepository) GetByID(ctx context.Context, id int64) (*model.Agency, error) {
	agency, err := scanAgency(r.db.QueryRow(ctx, `SELECT `+agencyColumns+` FROM agency_user WHERE id = $1`, id))
	if err != nil {
		return nil, sqlerr.WithTable("agency", err)
	}
	return agency, nil
}

// Update writes every editable column of a, including logo and completion.
func (r *AgencyRepository) Update(ctx context.Context, a *model.Agency) (*model.Agency, error) {
	query := `UPDATE agency_user SET
			agency_name = $2, website = $3, phone = $4, address = $5, city = $6,
			country = $7, description = $8, logo_key = $9, profile_completion = $10
		WHERE id = $1
		RETURNING ` + agencyColumns

	agency, err := scanAgency(r.db.QueryRow(ctx, query,
		a.ID, a.AgencyName, a.Website, a.Phone, a.Address, a.City,
		a.Country, a.Description, a.LogoKey, a.ProfileCompletion,
	))
	if err != nil {
		return nil, sqlerr.WithTable("agency", err)
	}
	return agency, nil
}

// Delete removes the agency and returns its logo key, if any. A missing
// row is not an error.
func (r *AgencyRepository) Delete(ctx context.Context, id int64) (*string, error) {
	var logoKey *string
	err := r.db.QueryRow(ctx, `DELETE FROM agency_user WHERE id = $1 RETURNING logo_key`, id).Scan(&logoKey)
	if err != nil && !IsNotFound(err) {
		return nil, fmt.Errorf("failed to delete agency: %w", err)
	}
	return logoKey, nil
}

func (r *AgencyRepository) List(ctx context.Context, req *model.ListAgenciesRequest) ([]model.Agency, int64, error) {
	var f filter
	if req.Q != "" {
		f.add("(agency_name ILIKE $%[1]d OR city ILIKE $%[1]d)", likePattern(req.Q))
	}

	items, total, err := listPage(ctx, r.db, "agency_user", agencyColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanAgency)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agencies: %w", err)
	}
	return items, total, nil
}
