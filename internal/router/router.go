// Package router builds the echo instance: the global middleware chain,
// the system endpoints and the /api/v1 routes.
package router

import (
	"github.com/deppfellow/recruitly/internal/handler"
	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/labstack/echo/v4"
)

func NewRouter(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
		m.Global.CORS(),
		m.Global.BodyLimit(),
		m.RateLimit.Limit(),
	)

	registerSystemRoutes(r, h)

	v1 := r.Group("/api/v1")
	registerAccountRoutes(v1, h, m)
	registerProfileRoutes(v1, h, m)
	registerJobRoutes(v1, h, m)
	registerBillingRoutes(v1, h, m)
	registerContentRoutes(v1, h, m)
	registerSupportRoutes(v1, h, m)

	return r
}
