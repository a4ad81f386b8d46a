package model

import "time"

// ReportKind selects between candidate and job reports.
type ReportKind string

const (
	ReportCandidate ReportKind = "candidate"
	ReportJob       ReportKind = "job"
)

const (
	ReportStatusOpen      = "open"
	ReportStatusReviewed  = "reviewed"
	ReportStatusDismissed = "dismissed"
)

// Report is a row of candidate_report or job_reports. Exactly one of
// JobSeekerID and JobPositionID is set, depending on the kind.
type Report struct {
	ID             int64     `json:"id"`
	ReporterUserID int64     `json:"reporter_user_id"`
	JobSeekerID    *int64    `json:"job_seeker_id,omitempty"`
	JobPositionID  *int64    `json:"job_position_id,omitempty"`
	Reason         string    `json:"reason"`
	Details        *string   `json:"details"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateCandidateReportRequest struct {
	ReporterUserID int64   `json:"reporter_user_id" validate:"required,min=1"`
	JobSeekerID    int64   `json:"job_seeker_id" validate:"required,min=1"`
	Reason         string  `json:"reason" validate:"required,min=1,max=200"`
	Details        *string `json:"details" validate:"omitempty,max=5000"`
}

func (r *CreateCandidateReportRequest) Validate() error {
	return validate.Struct(r)
}

type CreateJobReportRequest struct {
	ReporterUserID int64   `json:"reporter_user_id" validate:"required,min=1"`
	JobPositionID  int64   `json:"job_position_id" validate:"required,min=1"`
	Reason         string  `json:"reason" validate:"required,min=1,max=200"`
	Details        *string `json:"details" validate:"omitempty,max=5000"`
}

func (r *CreateJobReportRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateReportStatusRequest struct {
	ID     int64  `param:"id" json:"-" validate:"required,min=1"`
	Status string `json:"status" validate:"required,oneof=open reviewed dismissed"`
}

func (r *UpdateReportStatusRequest) Validate() error {
	return validate.Struct(r)
}

type ListReportsRequest struct {
	PaginationQuery
	Status string `query:"status" validate:"omitempty,oneof=open reviewed dismissed"`
}

func (r *ListReportsRequest) Validate() error {
	return validate.Struct(r)
}
