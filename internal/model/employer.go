package model

import "time"

type Employer struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	CompanyName       string    `json:"company_name"`
	Industry          *string   `json:"industry"`
	CompanySize       *string   `json:"company_size"`
	Website           *string   `json:"website"`
	Phone             *string   `json:"phone"`
	Address           *string   `json:"address"`
	City              *string   `json:"city"`
	Country           *string   `json:"country"`
	Description       *string   `json:"description"`
	LogoKey           *string   `json:"logo_key"`
	LogoURL           string    `json:"logo_url,omitempty"`
	ProfileCompletion int       `json:"profile_completion"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (e *Employer) CompletionFields() []any {
	return []any{
		e.CompanyName, e.Industry, e.CompanySize, e.Website, e.Phone,
		e.Address, e.City, e.Country, e.Description, e.LogoKey,
	}
}

type CreateEmployerRequest struct {
	UserID      int64   `json:"user_id" validate:"required,min=1"`
	CompanyName string  `json:"company_name" validate:"required,min=1,max=200"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
	CompanySize *string `json:"company_size" validate:"omitempty,max=50"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

func (r *CreateEmployerRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateEmployerRequest struct {
	ID          int64   `param:"id" json:"-" validate:"required,min=1"`
	CompanyName *string `json:"company_name" validate:"omitempty,min=1,max=200"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
	CompanySize *string `json:"company_size" validate:"omitempty,max=50"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

func (r *UpdateEmployerRequest) Validate() error {
	return validate.Struct(r)
}

type ListEmployersRequest struct {
	PaginationQuery
	Industry string `query:"industry" validate:"omitempty,max=100"`
	Q        string `query:"q" validate:"omitempty,max=200"`
}

func (r *ListEmployersRequest) Validate() error {
	return validate.Struct(r)
}
