package model

import "time"

const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusInterview = "interview"
	ApplicationStatusOffered   = "offered"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusHired     = "hired"
)

type JobApplication struct {
	ID            int64     `json:"id"`
	JobPositionID int64     `json:"job_position_id"`
	JobSeekerID   int64     `json:"job_seeker_id"`
	CoverLetter   *string   `json:"cover_letter"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateApplicationRequest struct {
	JobPositionID int64   `json:"job_position_id" validate:"required,min=1"`
	JobSeekerID   int64   `json:"job_seeker_id" validate:"required,min=1"`
	CoverLetter   *string `json:"cover_letter" validate:"omitempty,max=10000"`
}

func (r *CreateApplicationRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateApplicationStatusRequest struct {
	ID     int64  `param:"id" json:"-" validate:"required,min=1"`
	Status string `json:"status" validate:"required,oneof=applied reviewing interview offered rejected hired"`
}

func (r *UpdateApplicationStatusRequest) Validate() error {
	return validate.Struct(r)
}

type ListApplicationsRequest struct {
	PaginationQuery
	JobPositionID *int64 `query:"job_position_id" validate:"omitempty,min=1"`
	JobSeekerID   *int64 `query:"job_seeker_id" validate:"omitempty,min=1"`
	Status        string `query:"status" validate:"omitempty,oneof=applied reviewing interview offered rejected hired"`
}

func (r *ListApplicationsRequest) Validate() error {
	return validate.Struct(r)
}
