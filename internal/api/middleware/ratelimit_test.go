package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

func invokeRateLimit(limiter Limiter) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:4444"
	c := e.NewContext(req, httptest.NewRecorder())

	handler := RateLimit(limiter)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRateLimitNilLimiterDisabled(t *testing.T) {
	if err := invokeRateLimit(nil); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

func TestRateLimitAllows(t *testing.T) {
	limiter := &stubLimiter{allow: true}
	if err := invokeRateLimit(limiter); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "203.0.113.9" {
		t.Errorf("keys = %v, want client IP", limiter.keys)
	}
}

func TestRateLimitRejects(t *testing.T) {
	err := invokeRateLimit(&stubLimiter{allow: false})

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *echo.HTTPError", err)
	}
	if httpErr.Code != http.StatusTooManyRequests {
		t.Errorf("code = %d, want 429", httpErr.Code)
	}
}

// Redis going away must not take the login path down with it.
func TestRateLimitFailsOpen(t *testing.T) {
	if err := invokeRateLimit(&stubLimiter{err: errors.New("redis down")}); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}
