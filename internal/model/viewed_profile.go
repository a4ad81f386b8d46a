package model

import "time"

type ViewedProfile struct {
	ID          int64     `json:"id"`
	EmployerID  int64     `json:"employer_id"`
	JobSeekerID int64     `json:"job_seeker_id"`
	ViewedAt    time.Time `json:"viewed_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RecordViewRequest struct {
	EmployerID  int64 `json:"employer_id" validate:"required,min=1"`
	JobSeekerID int64 `json:"job_seeker_id" validate:"required,min=1"`
}

func (r *RecordViewRequest) Validate() error {
	return validate.Struct(r)
}

// ListViewedProfilesRequest needs at least one of the two filters.
type ListViewedProfilesRequest struct {
	PaginationQuery
	EmployerID  *int64 `query:"employer_id" validate:"required_without=JobSeekerID,omitempty,min=1"`
	JobSeekerID *int64 `query:"job_seeker_id" validate:"required_without=EmployerID,omitempty,min=1"`
}

func (r *ListViewedProfilesRequest) Validate() error {
	return validate.Struct(r)
}
