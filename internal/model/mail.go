package model

import "time"

const (
	MailStatusSent   = "sent"
	MailStatusFailed = "failed"
)

type Mail struct {
	ID                int64     `json:"id"`
	Recipient         string    `json:"recipient"`
	Subject           string    `json:"subject"`
	Template          string    `json:"template"`
	Status            string    `json:"status"`
	ProviderMessageID *string   `json:"provider_message_id"`
	Error             *string   `json:"error"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ListMailsRequest struct {
	PaginationQuery
	Status    string `query:"status" validate:"omitempty,oneof=sent failed"`
	Recipient string `query:"recipient" validate:"omitempty,max=320"`
}

func (r *ListMailsRequest) Validate() error {
	return validate.Struct(r)
}

type PreviewMailRequest struct {
	Template string `param:"template" validate:"required"`
}

func (r *PreviewMailRequest) Validate() error {
	return validate.Struct(r)
}
