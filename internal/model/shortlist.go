package model

import "time"

type ShortlistEntry struct {
	ID            int64     `json:"id"`
	EmployerID    int64     `json:"employer_id"`
	JobSeekerID   int64     `json:"job_seeker_id"`
	JobPositionID *int64    `json:"job_position_id"`
	Note          *string   `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateShortlistRequest struct {
	EmployerID    int64   `json:"employer_id" validate:"required,min=1"`
	JobSeekerID   int64   `json:"job_seeker_id" validate:"required,min=1"`
	JobPositionID *int64  `json:"job_position_id" validate:"omitempty,min=1"`
	Note          *string `json:"note" validate:"omitempty,max=2000"`
}

func (r *CreateShortlistRequest) Validate() error {
	return validate.Struct(r)
}

type ListShortlistRequest struct {
	PaginationQuery
	EmployerID int64 `query:"employer_id" validate:"required,min=1"`
}

func (r *ListShortlistRequest) Validate() error {
	return validate.Struct(r)
}
