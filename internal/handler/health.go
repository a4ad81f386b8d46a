package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/recruitly/internal/middleware"
	"github.com/deppfellow/recruitly/internal/server"
	"github.com/labstack/echo/v4"
)

const defaultHealthCheckTimeout = 5 * time.Second

// dependencyCheck pings one backing service.
type dependencyCheck struct {
	name string
	ping func(ctx context.Context) error
}

// HealthHandler reports whether the API and its backing services are
// reachable. Any failing check turns the response into a 503.
type HealthHandler struct {
	Handler
	checks  []dependencyCheck
	timeout time.Duration
}

// NewHealthHandler checks the dependencies listed in
// observability.health_checks.checks, or all of them when the list is empty.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s), timeout: defaultHealthCheckTimeout}

	var enabled []string
	if obs := s.Config.Observability; obs != nil {
		enabled = obs.HealthChecks.Checks
		if obs.HealthChecks.Timeout > 0 {
			h.timeout = obs.HealthChecks.Timeout
		}
	}
	wanted := func(name string) bool {
		return len(enabled) == 0 || slices.Contains(enabled, name)
	}

	if s.DB != nil && wanted("database") {
		h.checks = append(h.checks, dependencyCheck{name: "database", ping: s.DB.Pool.Ping})
	}
	if s.Redis != nil && wanted("redis") {
		h.checks = append(h.checks, dependencyCheck{name: "redis", ping: func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}})
	}

	return h
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{}, len(h.checks))
	healthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		cancel()

		result := map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}

		if err != nil {
			healthy = false
			result["status"] = "unhealthy"
			result["error"] = err.Error()

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", time.Since(checkStart)).
				Msg("health check failed")

			h.recordFailure(check.name, err, time.Since(checkStart))
		}

		checks[check.name] = result
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !healthy {
		response["status"] = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(check string, err error, elapsed time.Duration) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       check + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
