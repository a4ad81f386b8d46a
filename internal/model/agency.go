package model

import "time"

type Agency struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	AgencyName        string    `json:"agency_name"`
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

// CompletionFields lists the values counted by the profile completion.
func (a *Agency) CompletionFields() []any {
	return []any{a.AgencyName, a.Website, a.Phone, a.Address, a.City, a.Country, a.Description, a.LogoKey}
}

type CreateAgencyRequest struct {
	UserID      int64   `json:"user_id" validate:"required,min=1"`
	AgencyName  string  `json:"agency_name" validate:"required,min=1,max=200"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

func (r *CreateAgencyRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateAgencyRequest struct {
	ID          int64   `param:"id" json:"-" validate:"required,min=1"`
	AgencyName  *string `json:"agency_name" validate:"omitempty,min=1,max=200"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

func (r *UpdateAgencyRequest) Validate() error {
	return validate.Struct(r)
}

type ListAgenciesRequest struct {
	PaginationQuery
	Q string `query:"q" validate:"omitempty,max=200"`
}

func (r *ListAgenciesRequest) Validate() error {
	return validate.Struct(r)
}

type ListAgencyJobSeekersRequest struct {
	PaginationQuery
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *ListAgencyJobSeekersRequest) Validate() error {
	return validate.Struct(r)
}
