package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
	"github.com/ideadrop/content-api/internal/core/token"
)

// UserContextKey is the echo context key holding the authenticated user.
const UserContextKey = "user"

// Auth is the gate applied to protected routes. It extracts the bearer
// access token, verifies it, resolves the account, and attaches a public
// view of the user to the context. Any failure short-circuits with 401; it
// has no other side effects.
func Auth(codec *token.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token found")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token found")
			}

			userID, err := codec.Verify(parts[1])
			if err != nil {
				// Expired and forged tokens get the same outcome; only
				// logs tell them apart (handled by the error handler).
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidID) {
					return echo.NewHTTPError(http.StatusUnauthorized, "no user found")
				}
				return err
			}

			c.Set(UserContextKey, user.Public())
			return next(c)
		}
	}
}
