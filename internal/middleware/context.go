package middleware

import (
	"github.com/deppfellow/recruitly/internal/logger"
	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	AuthIDKey      = "auth_id"
	UserIDKey      = "user_id"
	UserRoleKey    = "user_role"
	CurrentUserKey = "current_user"
	LoggerKey      = "logger"
)

// ContextEnhancer attaches a request-scoped logger to both the echo context
// and the request context, so services can log with zerolog.Ctx.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			setLogger(c, contextLogger)
			return next(c)
		}
	}
}

func setLogger(c echo.Context, l zerolog.Logger) {
	c.Set(LoggerKey, &l)
	c.SetRequest(c.Request().WithContext(l.WithContext(c.Request().Context())))
}

// withUserLogger adds the authenticated user to the request logger.
func withUserLogger(c echo.Context, user *model.User) {
	l := GetLogger(c).With().
		Int64("user_id", user.ID).
		Str("user_role", user.Role).
		Logger()
	setLogger(c, l)
}

// GetUserID returns the id of the authenticated user, or 0.
func GetUserID(c echo.Context) int64 {
	if id, ok := c.Get(UserIDKey).(int64); ok {
		return id
	}
	return 0
}

func GetAuthID(c echo.Context) string {
	if id, ok := c.Get(AuthIDKey).(string); ok {
		return id
	}
	return ""
}

func GetUserRole(c echo.Context) string {
	if role, ok := c.Get(UserRoleKey).(string); ok {
		return role
	}
	return ""
}

// GetCurrentUser returns the user loaded by RequireAuth.
func GetCurrentUser(c echo.Context) *model.User {
	if user, ok := c.Get(CurrentUserKey).(*model.User); ok {
		return user
	}
	return nil
}

// GetLogger returns the request logger, or a no-op logger outside a request.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return l
	}
	l := zerolog.Nop()
	return &l
}
