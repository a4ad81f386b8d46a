package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("ok"))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("no", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"unavailable", NewServiceUnavailableError("off"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"plan limit", NewPlanLimitError("limit"), http.StatusForbidden, "PLAN_LIMIT_REACHED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	fields := []FieldError{{Field: "email", Error: "is required"}}

	err := NewBadRequestError("exists", true, &code, fields, nil)

	assert.Equal(t, code, err.Code)
	assert.True(t, err.Override)
	assert.Equal(t, fields, err.Errors)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("loading user: %w", NewNotFoundError("user not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "user not found", httpErr.Error())
}

func TestWithMessage_DoesNotMutate(t *testing.T) {
	base := NewForbiddenError("original", false)
	copied := base.WithMessage("changed")

	assert.Equal(t, "original", base.Message)
	assert.Equal(t, "changed", copied.Message)
	assert.Equal(t, base.Status, copied.Status)
}
