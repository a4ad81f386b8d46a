package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/recruitly/internal/config"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIn(c echo.Context, id int64, role string) {
	c.Set(middleware.UserIDKey, id)
	c.Set(middleware.UserRoleKey, role)
}

func newServices(t *testing.T) (*service.Services, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	logger := zerolog.Nop()
	return service.New(&service.Deps{
		Config: &config.Config{},
		Logger: &logger,
		Repos:  repository.New(mock),
	}), mock
}

func TestRequireSelfOrAdmin(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		role    string
		target  int64
		allowed bool
	}{
		{name: "self", userID: 7, role: model.RoleJobSeeker, target: 7, allowed: true},
		{name: "other user", userID: 7, role: model.RoleEmployer, target: 8},
		{name: "admin on other user", userID: 1, role: model.RoleAdmin, target: 8, allowed: true},
		{name: "anonymous", target: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(http.MethodGet, "")
			if tt.userID != 0 {
				signedIn(c, tt.userID, tt.role)
			}

			err := requireSelfOrAdmin(c, tt.target)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			requireHTTPError(t, err, http.StatusForbidden)
		})
	}
}

func TestUserHandler_UpdateOwnership(t *testing.T) {
	admin := model.RoleAdmin

	t.Run("job seeker cannot grant admin to self", func(t *testing.T) {
		h := NewUserHandler(testServer(), nil)
		endpoint := Handle(h.Handler, h.Update, http.StatusOK, &model.UpdateUserRequest{})

		c, _ := jsonContext(http.MethodPut, `{"role":"admin"}`)
		signedIn(c, 7, model.RoleJobSeeker)

		requireHTTPError(t, endpoint(c), http.StatusForbidden)
	})

	t.Run("user cannot update another user", func(t *testing.T) {
		h := NewUserHandler(testServer(), nil)

		c, _ := jsonContext(http.MethodPut, "")
		signedIn(c, 8, model.RoleEmployer)

		_, err := h.Update(c, &model.UpdateUserRequest{ID: 7, FullName: ptrTo("Mallory")})
		requireHTTPError(t, err, http.StatusForbidden)
	})

	t.Run("user cannot move own identity", func(t *testing.T) {
		h := NewUserHandler(testServer(), nil)

		c, _ := jsonContext(http.MethodPut, "")
		signedIn(c, 7, model.RoleEmployer)

		_, err := h.Update(c, &model.UpdateUserRequest{ID: 7, AuthID: ptrTo("user_other")})
		requireHTTPError(t, err, http.StatusForbidden)
	})

	t.Run("user updates own name", func(t *testing.T) {
		services, mock := newServices(t)
		h := NewUserHandler(testServer(), services.User)
		name := "Ana Bell"
		mock.ExpectQuery("UPDATE users SET").
			WithArgs(int64(7), (*string)(nil), (*string)(nil), &name, (*string)(nil), (*string)(nil)).
			WillReturnRows(userRow(7, name, model.RoleJobSeeker))

		c, _ := jsonContext(http.MethodPut, "")
		signedIn(c, 7, model.RoleJobSeeker)

		user, err := h.Update(c, &model.UpdateUserRequest{ID: 7, FullName: &name})
		require.NoError(t, err)
		assert.Equal(t, name, user.FullName)
	})

	t.Run("admin changes a role", func(t *testing.T) {
		services, mock := newServices(t)
		h := NewUserHandler(testServer(), services.User)
		mock.ExpectQuery("UPDATE users SET").
			WithArgs(int64(7), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), &admin).
			WillReturnRows(userRow(7, "Ana", model.RoleAdmin))

		c, _ := jsonContext(http.MethodPut, "")
		signedIn(c, 1, model.RoleAdmin)

		user, err := h.Update(c, &model.UpdateUserRequest{ID: 7, Role: &admin})
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})
}

func TestSubscriptionHandler_Ownership(t *testing.T) {
	logger := zerolog.Nop()
	services := service.New(&service.Deps{Config: &config.Config{}, Logger: &logger})
	h := NewSubscriptionHandler(testServer(), services.Subscription)

	t.Run("create for another user", func(t *testing.T) {
		c, _ := jsonContext(http.MethodPost, "")
		signedIn(c, 7, model.RoleEmployer)

		_, err := h.Create(c, &model.CreateSubscriptionRequest{UserID: 8, PlanID: 2})
		requireHTTPError(t, err, http.StatusForbidden)
	})

	t.Run("read another user", func(t *testing.T) {
		c, _ := jsonContext(http.MethodGet, "")
		signedIn(c, 7, model.RoleEmployer)

		_, err := h.Get(c, &model.UserIDParam{UserID: 8})
		requireHTTPError(t, err, http.StatusForbidden)
	})

	t.Run("cancel another user", func(t *testing.T) {
		c, _ := jsonContext(http.MethodPost, "")
		signedIn(c, 7, model.RoleEmployer)

		_, err := h.Cancel(c, &model.UserIDParam{UserID: 8})
		requireHTTPError(t, err, http.StatusForbidden)
	})

	t.Run("own subscription reaches billing", func(t *testing.T) {
		c, _ := jsonContext(http.MethodPost, "")
		signedIn(c, 7, model.RoleEmployer)

		_, err := h.Cancel(c, &model.UserIDParam{UserID: 7})
		requireHTTPError(t, err, http.StatusServiceUnavailable)
	})

	t.Run("admin reaches billing for any user", func(t *testing.T) {
		c, _ := jsonContext(http.MethodPost, "")
		signedIn(c, 1, model.RoleAdmin)

		_, err := h.Create(c, &model.CreateSubscriptionRequest{UserID: 8, PlanID: 2})
		requireHTTPError(t, err, http.StatusServiceUnavailable)
	})
}

func userRow(id int64, name, role string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "email", "auth_id", "full_name", "phone", "role", "plan_id", "customer_id",
		"subscription_id", "subscription_status", "subscription_ends_at", "created_at", "updated_at",
	}).AddRow(
		id, "ana@example.com", (*string)(nil), name, (*string)(nil), role, (*int64)(nil), (*string)(nil),
		(*string)(nil), (*string)(nil), (*time.Time)(nil), now, now,
	)
}

func ptrTo[T any](v T) *T {
	return &v
}
