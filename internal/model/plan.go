package model

import (
	"time"

	"github.com/deppfellow/recruitly/internal/validation"
	"github.com/shopspring/decimal"
)

type SubscriptionPlan struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      *string         `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	Interval         string          `json:"interval"`
	JobPostLimit     int             `json:"job_post_limit"`
	ProfileViewLimit int             `json:"profile_view_limit"`
	ProviderPlanID   *string         `json:"provider_plan_id"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CreatePlanRequest takes the price as a JSON string or number.
type CreatePlanRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=100"`
	Description      *string         `json:"description" validate:"omitempty,max=2000"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency" validate:"required,len=3"`
	Interval         string          `json:"interval" validate:"required,oneof=monthly yearly"`
	JobPostLimit     int             `json:"job_post_limit" validate:"min=0"`
	ProfileViewLimit int             `json:"profile_view_limit" validate:"min=0"`
	ProviderPlanID   *string         `json:"provider_plan_id" validate:"omitempty,max=100"`
	Active           *bool           `json:"active"`
}

func (r *CreatePlanRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return validation.CustomValidationErrors{{Field: "price", Message: "must not be negative"}}
	}
	return nil
}

type UpdatePlanRequest struct {
	ID               int64            `param:"id" json:"-" validate:"required,min=1"`
	Name             *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description      *string          `json:"description" validate:"omitempty,max=2000"`
	Price            *decimal.Decimal `json:"price"`
	Currency         *string          `json:"currency" validate:"omitempty,len=3"`
	Interval         *string          `json:"interval" validate:"omitempty,oneof=monthly yearly"`
	JobPostLimit     *int             `json:"job_post_limit" validate:"omitempty,min=0"`
	ProfileViewLimit *int             `json:"profile_view_limit" validate:"omitempty,min=0"`
	ProviderPlanID   *string          `json:"provider_plan_id" validate:"omitempty,max=100"`
	Active           *bool            `json:"active"`
}

func (r *UpdatePlanRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Price != nil && r.Price.IsNegative() {
		return validation.CustomValidationErrors{{Field: "price", Message: "must not be negative"}}
	}
	return nil
}

type ListPlansRequest struct {
	IncludeInactive bool `query:"include_inactive"`
}

func (r *ListPlansRequest) Validate() error {
	return nil
}
