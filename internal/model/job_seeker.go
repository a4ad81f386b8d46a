package model

import (
	"encoding/json"
	"time"
)

type JobSeeker struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"user_id"`
	AgencyID          *int64          `json:"agency_id"`
	Headline          *string         `json:"headline"`
	DateOfBirth       *time.Time      `json:"date_of_birth"`
	Phone             *string         `json:"phone"`
	City              *string         `json:"city"`
	Country           *string         `json:"country"`
	Skills            json.RawMessage `json:"skills"`
	Education         json.RawMessage `json:"education"`
	Experience        json.RawMessage `json:"experience"`
	ExpectedSalary    *int64          `json:"expected_salary"`
	ResumeKey         *string         `json:"resume_key"`
	ResumeURL         string          `json:"resume_url,omitempty"`
	PhotoKey          *string         `json:"photo_key"`
	PhotoURL          string          `json:"photo_url,omitempty"`
	ProfileCompletion int             `json:"profile_completion"`
	OpenToWork        bool            `json:"open_to_work"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (s *JobSeeker) CompletionFields() []any {
	return []any{
		s.Headline, s.DateOfBirth, s.Phone, s.City, s.Country,
		s.Skills, s.Education, s.Experience, s.ExpectedSalary,
		s.ResumeKey, s.PhotoKey,
	}
}

// CreateJobSeekerRequest accepts skills, education and experience either as
// JSON values or as strings holding JSON. DateOfBirth takes any layout
// understood by utils.CoerceDate.
type CreateJobSeekerRequest struct {
	UserID         int64           `json:"user_id" validate:"required,min=1"`
	AgencyID       *int64          `json:"agency_id" validate:"omitempty,min=1"`
	Headline       *string         `json:"headline" validate:"omitempty,max=200"`
	DateOfBirth    *string         `json:"date_of_birth"`
	Phone          *string         `json:"phone" validate:"omitempty,max=32"`
	City           *string         `json:"city" validate:"omitempty,max=100"`
	Country        *string         `json:"country" validate:"omitempty,max=100"`
	Skills         json.RawMessage `json:"skills"`
	Education      json.RawMessage `json:"education"`
	Experience     json.RawMessage `json:"experience"`
	ExpectedSalary *int64          `json:"expected_salary" validate:"omitempty,min=0"`
	OpenToWork     *bool           `json:"open_to_work"`
}

func (r *CreateJobSeekerRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateJobSeekerRequest struct {
	ID             int64           `param:"id" json:"-" validate:"required,min=1"`
	AgencyID       *int64          `json:"agency_id" validate:"omitempty,min=1"`
	Headline       *string         `json:"headline" validate:"omitempty,max=200"`
	DateOfBirth    *string         `json:"date_of_birth"`
	Phone          *string         `json:"phone" validate:"omitempty,max=32"`
	City           *string         `json:"city" validate:"omitempty,max=100"`
	Country        *string         `json:"country" validate:"omitempty,max=100"`
	Skills         json.RawMessage `json:"skills"`
	Education      json.RawMessage `json:"education"`
	Experience     json.RawMessage `json:"experience"`
	ExpectedSalary *int64          `json:"expected_salary" validate:"omitempty,min=0"`
	OpenToWork     *bool           `json:"open_to_work"`
}

func (r *UpdateJobSeekerRequest) Validate() error {
	return validate.Struct(r)
}

type ListJobSeekersRequest struct {
	PaginationQuery
	AgencyID   *int64 `query:"agency_id" validate:"omitempty,min=1"`
	City       string `query:"city" validate:"omitempty,max=100"`
	OpenToWork *bool  `query:"open_to_work"`
	Q          string `query:"q" validate:"omitempty,max=200"`
}

func (r *ListJobSeekersRequest) Validate() error {
	return validate.Struct(r)
}
