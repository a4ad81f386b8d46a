package model

import (
	"encoding/json"
	"time"
)

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

type JobPosition struct {
	ID             int64           `json:"id"`
	EmployerID     *int64          `json:"employer_id"`
	AgencyID       *int64          `json:"agency_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Location       *string         `json:"location"`
	EmploymentType *string         `json:"employment_type"`
	SalaryMin      *int64          `json:"salary_min"`
	SalaryMax      *int64          `json:"salary_max"`
	Skills         json.RawMessage `json:"skills"`
	Status         string          `json:"status"`
	Deadline       *time.Time      `json:"deadline"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CreateJobRequest struct {
	EmployerID     *int64          `json:"employer_id" validate:"required_without=AgencyID,omitempty,min=1"`
	AgencyID       *int64          `json:"agency_id" validate:"required_without=EmployerID,omitempty,min=1"`
	Title          string          `json:"title" validate:"required,min=1,max=200"`
	Description    string          `json:"description" validate:"required,min=1"`
	Location       *string         `json:"location" validate:"omitempty,max=200"`
	EmploymentType *string         `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship temporary"`
	SalaryMin      *int64          `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *int64          `json:"salary_max" validate:"omitempty,min=0"`
	Skills         json.RawMessage `json:"skills"`
	Status         *string         `json:"status" validate:"omitempty,oneof=open closed draft"`
	Deadline       *string         `json:"deadline"`
}

func (r *CreateJobRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateJobRequest struct {
	ID             int64           `param:"id" json:"-" validate:"required,min=1"`
	Title          *string         `json:"title" validate:"omitempty,min=1,max=200"`
	Description    *string         `json:"description" validate:"omitempty,min=1"`
	Location       *string         `json:"location" validate:"omitempty,max=200"`
	EmploymentType *string         `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship temporary"`
	SalaryMin      *int64          `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *int64          `json:"salary_max" validate:"omitempty,min=0"`
	Skills         json.RawMessage `json:"skills"`
	Status         *string         `json:"status" validate:"omitempty,oneof=open closed draft"`
	Deadline       *string         `json:"deadline"`
}

func (r *UpdateJobRequest) Validate() error {
	return validate.Struct(r)
}

type ListJobsRequest struct {
	PaginationQuery
	Status     string `query:"status" validate:"omitempty,oneof=open closed draft"`
	EmployerID *int64 `query:"employer_id" validate:"omitempty,min=1"`
	AgencyID   *int64 `query:"agency_id" validate:"omitempty,min=1"`
	Location   string `query:"location" validate:"omitempty,max=200"`
	Q          string `query:"q" validate:"omitempty,max=200"`
}

func (r *ListJobsRequest) Validate() error {
	return validate.Struct(r)
}
