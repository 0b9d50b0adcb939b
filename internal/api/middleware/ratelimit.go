package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ideadrop/content-api/internal/api/metrics"
)

// Limiter abstracts the fixed-window counter (Redis in production).
type Limiter interface {
	// Allow reports whether another request under key fits in the current
	// window.
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects requests with 429 once the client IP exhausts its
// window. A nil limiter disables the check entirely (tests, local runs
// without Redis). Limiter errors fail open: losing Redis must not take the
// login path down with it.
func RateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
