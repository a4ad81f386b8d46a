package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/repository"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/labstack/echo/v4"
)

// UserLookup resolves the local account of an authenticated identity.
type UserLookup interface {
	GetByAuthID(ctx context.Context, authID string) (*model.User, error)
}

type AuthMiddleware struct {
	server *server.Server
	users  UserLookup
}

func NewAuthMiddleware(s *server.Server, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		users:  users,
	}
}

// RequireAuth verifies the Clerk session token in the Authorization header
// and loads the matching user. Identities without a local account are
// rejected with 403.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(auth.authorizationOptions()...),
	)(func(c echo.Context) error {
		claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
		if !ok {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}
		return auth.authenticate(c, claims.Subject, next)
	})
}

// OptionalAuth authenticates requests that carry a token and lets
// anonymous ones through.
func (auth *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	authenticated := auth.RequireAuth(next)
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}
		return authenticated(c)
	}
}

// RequireIdentity verifies the session token without requiring a local
// account. It guards registration.
func (auth *AuthMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(auth.authorizationOptions()...),
	)(func(c echo.Context) error {
		claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
		if !ok || claims.Subject == "" {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}
		c.Set(AuthIDKey, claims.Subject)
		return next(c)
	})
}

// authorizationOptions verifies tokens against the configured PEM key when
// one is set and against Clerk's JWKS endpoint otherwise.
func (auth *AuthMiddleware) authorizationOptions() []clerkhttp.AuthorizationOption {
	opts := []clerkhttp.AuthorizationOption{
		clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(auth.writeUnauthorized)),
	}
	if cfg := auth.server.Config; cfg != nil && cfg.Auth.JWTKey != "" {
		opts = append(opts, clerkhttp.JSONWebKey(cfg.Auth.JWTKey))
	}
	return opts
}

func (auth *AuthMiddleware) authenticate(c echo.Context, authID string, next echo.HandlerFunc) error {
	user, err := auth.users.GetByAuthID(c.Request().Context(), authID)
	if repository.IsNotFound(err) {
		return errs.NewForbiddenError("No account is linked to this identity", true)
	}
	if err != nil {
		return err
	}

	c.Set(AuthIDKey, authID)
	c.Set(UserIDKey, user.ID)
	c.Set(UserRoleKey, user.Role)
	c.Set(CurrentUserKey, user)

	withUserLogger(c, user)

	GetLogger(c).Debug().Msg("user authenticated")
	return next(c)
}

func (auth *AuthMiddleware) writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(errs.NewUnauthorizedError("Unauthorized", false)); err != nil {
		auth.server.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write unauthorized response")
	}
}

// RequireRole allows the request through only for users with one of roles.
// It must run after RequireAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := GetUserRole(c)
			if role == "" {
				return errs.NewUnauthorizedError("Unauthorized", false)
			}
			if !slices.Contains(roles, role) {
				return errs.NewForbiddenError("You are not allowed to perform this action", true)
			}
			return next(c)
		}
	}
}
