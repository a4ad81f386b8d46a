package model

import "time"

// ContentKind names one of the editorial tables sharing the same shape.
type ContentKind string

const (
	ContentNews      ContentKind = "news"
	ContentTips      ContentKind = "tips"
	ContentTrainings ContentKind = "trainings"
)

func (k ContentKind) Valid() bool {
	switch k {
	case ContentNews, ContentTips, ContentTrainings:
		return true
	}
	return false
}

type Content struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageKey  *string   `json:"image_key"`
	ImageURL  string    `json:"image_url,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateContentRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=300"`
	Body      string `json:"body" validate:"required,min=1"`
	Published bool   `json:"published"`
}

func (r *CreateContentRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateContentRequest struct {
	ID        int64   `param:"id" json:"-" validate:"required,min=1"`
	Title     *string `json:"title" validate:"omitempty,min=1,max=300"`
	Body      *string `json:"body" validate:"omitempty,min=1"`
	Published *bool   `json:"published"`
}

func (r *UpdateContentRequest) Validate() error {
	return validate.Struct(r)
}

type ListContentRequest struct {
	PaginationQuery
	Q string `query:"q" validate:"omitempty,max=200"`
}

func (r *ListContentRequest) Validate() error {
	return validate.Struct(r)
}
