package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ideadrop/content-api/internal/api/middleware"
	"github.com/ideadrop/content-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware. A
// missing or empty identity means the middleware did not run for this route,
// which is a wiring bug surfaced as 401 rather than a panic downstream.
func currentUser(c echo.Context) (domain.PublicUser, error) {
	user, _ := c.Get(middleware.UserContextKey).(domain.PublicUser)
	if user.ID == "" {
		return domain.PublicUser{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
