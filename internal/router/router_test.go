package router

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/recruitly/internal/config"
	"github.com/deppfellow/recruitly/internal/handler"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/deppfellow/recruitly/internal/service"
	"github.com/go-jose/go-jose/v3"
	josejwt "github.com/go-jose/go-jose/v3/jwt"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planCols = []string{
	"id", "name", "description", "price", "currency", "interval", "job_post_limit",
	"profile_view_limit", "provider_plan_id", "active", "created_at", "updated_at",
}

type stubUsers map[string]*model.User

func (s stubUsers) GetByAuthID(_ context.Context, authID string) (*model.User, error) {
	if u, ok := s[authID]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

type testRouter struct {
	echo *echo.Echo
	mock pgxmock.PgxPoolIface
	key  *rsa.PrivateKey
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			CORSAllowedOrigins: []string{"http://localhost:3000"},
			MaxUploadSize:      1 << 20,
		},
		Auth: config.AuthConfig{
			JWTKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
		},
	}
	s := &server.Server{Config: cfg, Logger: &logger}

	services := service.New(&service.Deps{
		Config: cfg,
		Logger: &logger,
		Repos:  repository.New(mock),
	})
	users := stubUsers{
		"user_admin":  {ID: 1, Email: "admin@recruitly.io", FullName: "Admin", Role: model.RoleAdmin},
		"user_seeker": {ID: 7, Email: "asha@example.com", FullName: "Asha", Role: model.RoleJobSeeker},
	}

	r := NewRouter(handler.NewHandlers(s, services), middleware.NewMiddlewares(s, users))
	return &testRouter{echo: r, mock: mock, key: key}
}

func (tr *testRouter) token(t *testing.T, subject string) string {
	t.Helper()

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.RS256, Key: tr.key},
		(&jose.SignerOptions{}).WithType("JWT").WithHeader("kid", "ins_test"),
	)
	require.NoError(t, err)

	now := time.Now()
	raw, err := josejwt.Signed(signer).Claims(josejwt.Claims{
		Issuer:    "https://clerk.recruitly.test",
		Subject:   subject,
		IssuedAt:  josejwt.NewNumericDate(now.Add(-time.Minute)),
		NotBefore: josejwt.NewNumericDate(now.Add(-time.Minute)),
		Expiry:    josejwt.NewNumericDate(now.Add(time.Hour)),
	}).CompactSerialize()
	require.NoError(t, err)
	return raw
}

func (tr *testRouter) do(method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	tr.echo.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Public(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(http.MethodGet, "/status", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	tr.mock.ExpectQuery(`FROM subscription_plans WHERE active ORDER BY price, id`).
		WillReturnRows(pgxmock.NewRows(planCols))

	rec = tr.do(http.MethodGet, "/api/v1/plans", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_OptionalAuth(t *testing.T) {
	t.Run("anonymous sees active plans only", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.mock.ExpectQuery(`FROM subscription_plans WHERE active ORDER BY price, id`).
			WillReturnRows(pgxmock.NewRows(planCols))

		rec := tr.do(http.MethodGet, "/api/v1/plans?include_inactive=true", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin token lists inactive plans", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.mock.ExpectQuery(`FROM subscription_plans ORDER BY price, id`).
			WillReturnRows(pgxmock.NewRows(planCols))

		rec := tr.do(http.MethodGet, "/api/v1/plans?include_inactive=true", tr.token(t, "user_admin"), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		tr := newTestRouter(t)

		rec := tr.do(http.MethodGet, "/api/v1/plans", "not-a-jwt", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_RequireAuth(t *testing.T) {
	tr := newTestRouter(t)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	forged := (&testRouter{key: other}).token(t, "user_admin")

	tests := []struct {
		name   string
		bearer string
		status int
	}{
		{name: "missing token", status: http.StatusUnauthorized},
		{name: "malformed token", bearer: "not-a-jwt", status: http.StatusUnauthorized},
		{name: "token signed with another key", bearer: forged, status: http.StatusUnauthorized},
		{name: "identity without account", bearer: tr.token(t, "user_unknown"), status: http.StatusForbidden},
		{name: "valid token", bearer: tr.token(t, "user_seeker"), status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tr.do(http.MethodGet, "/api/v1/me", tt.bearer, "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	rec := tr.do(http.MethodGet, "/api/v1/me", tr.token(t, "user_seeker"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"asha@example.com"`)
}

func TestRouter_AdminOnly(t *testing.T) {
	tr := newTestRouter(t)
	seeker := tr.token(t, "user_seeker")

	tests := []struct {
		name   string
		method string
		path   string
		bearer string
		body   string
		status int
	}{
		{name: "list users anonymously", method: http.MethodGet, path: "/api/v1/users", status: http.StatusUnauthorized},
		{name: "list users as job seeker", method: http.MethodGet, path: "/api/v1/users", bearer: seeker, status: http.StatusForbidden},
		{name: "delete user as job seeker", method: http.MethodDelete, path: "/api/v1/users/8", bearer: seeker, status: http.StatusForbidden},
		{name: "create plan anonymously", method: http.MethodPost, path: "/api/v1/plans", body: `{}`, status: http.StatusUnauthorized},
		{name: "create plan as job seeker", method: http.MethodPost, path: "/api/v1/plans", bearer: seeker, body: `{}`, status: http.StatusForbidden},
		{name: "update another user", method: http.MethodPut, path: "/api/v1/users/8", bearer: seeker, body: `{"full_name":"Mallory"}`, status: http.StatusForbidden},
		{name: "read another subscription", method: http.MethodGet, path: "/api/v1/subscriptions/8", bearer: seeker, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tr.do(tt.method, tt.path, tt.bearer, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	t.Run("admin deletes plan", func(t *testing.T) {
		tr.mock.ExpectExec(`DELETE FROM subscription_plans WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		rec := tr.do(http.MethodDelete, "/api/v1/plans/3", tr.token(t, "user_admin"), "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
