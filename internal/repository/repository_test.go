package repository

import (
	"testing"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	var f filter
	assert.Equal(t, "", f.where())

	f.add("role = $%d", "admin")
	f.add("(full_name ILIKE $%[1]d OR email ILIKE $%[1]d)", "%ann%")

	assert.Equal(t, " WHERE role = $1 AND (full_name ILIKE $2 OR email ILIKE $2)", f.where())

	pageSQL, args := f.page(model.PaginationQuery{Page: 3, Limit: 10})
	assert.Equal(t, " LIMIT $3 OFFSET $4", pageSQL)
	assert.Equal(t, []any{"admin", "%ann%", 10, 20}, args)
}

func TestFilterPageDefaults(t *testing.T) {
	var f filter
	pageSQL, args := f.page(model.PaginationQuery{Limit: 500})

	assert.Equal(t, " LIMIT $1 OFFSET $2", pageSQL)
	assert.Equal(t, []any{model.MaxLimit, 0}, args)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%100\%\_done%`, likePattern(" 100%_done "))
}

func TestPrefixed(t *testing.T) {
	assert.Equal(t, "p.id, p.price::text, p.name", prefixed("p", "id, price::text,\n\tname"))
}
