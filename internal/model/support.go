package model

import "time"

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

type SupportTicket struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	Resolution *string   `json:"resolution"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateTicketRequest struct {
	UserID  int64  `json:"user_id" validate:"required,min=1"`
	Subject string `json:"subject" validate:"required,min=1,max=300"`
	Message string `json:"message" validate:"required,min=1,max=10000"`
}

func (r *CreateTicketRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateTicketRequest struct {
	ID         int64   `param:"id" json:"-" validate:"required,min=1"`
	Status     *string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	Resolution *string `json:"resolution" validate:"omitempty,max=10000"`
}

func (r *UpdateTicketRequest) Validate() error {
	return validate.Struct(r)
}

type ListTicketsRequest struct {
	PaginationQuery
	Status string `query:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	UserID *int64 `query:"user_id" validate:"omitempty,min=1"`
}

func (r *ListTicketsRequest) Validate() error {
	return validate.Struct(r)
}
