package model

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PaginationQuery binds ?page= and ?limit=. Zero values fall back to the
// defaults and limits above MaxLimit are clamped.
type PaginationQuery struct {
	Page  int `query:"page" json:"-" validate:"omitempty,min=1"`
	Limit int `query:"limit" json:"-" validate:"omitempty,min=1"`
}

func (p PaginationQuery) Normalized() (page, limit int) {
	page, limit = p.Page, p.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func (p PaginationQuery) Offset() int {
	page, limit := p.Normalized()
	return (page - 1) * limit
}

type PaginatedResponse[T any] struct {
	Data  []T   `json:"data"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func NewPaginatedResponse[T any](data []T, q PaginationQuery, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	page, limit := q.Normalized()
	return &PaginatedResponse[T]{
		Data:  data,
		Page:  page,
		Limit: limit,
		Total: total,
	}
}
