package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ideadrop/content-api/internal/api/metrics"
	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
	"github.com/ideadrop/content-api/internal/core/token"
)

// refreshCookieName is the contract with clients: the refresh token lives in
// this httpOnly cookie and nowhere else.
const refreshCookieName = "refreshToken"

// CookieSettings captures the deployment-dependent refresh cookie
// attributes. Production runs cross-site behind TLS, hence Secure +
// SameSite=None; everything else uses Lax.
type CookieSettings struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// NewCookieSettings derives cookie attributes from the deployment
// environment flag and the refresh token lifetime.
func NewCookieSettings(production bool, refreshTTL time.Duration) CookieSettings {
	cs := CookieSettings{Secure: production, SameSite: http.SameSiteLaxMode, MaxAge: refreshTTL}
	if production {
		cs.SameSite = http.SameSiteNoneMode
	}
	return cs
}

type AuthHandler struct {
	authService ports.AuthService
	cookies     CookieSettings
}

func NewAuthHandler(authService ports.AuthService, cookies CookieSettings) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken,omitempty"`
	Data        any    `json:"data,omitempty"`
}

// List returns every registered account (public fields only).
//
// @Summary      List users
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth [get]
func (h *AuthHandler) List(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Users fetched successfully", Data: users})
}

// Register creates a new account, sets the refresh cookie, and returns the
// access token in the body.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, pair, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrPasswordTooShort):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	h.setRefreshCookie(c, pair.Refresh)
	return c.JSON(http.StatusCreated, authResponse{
		Message:     "User created successfully",
		AccessToken: pair.Access,
		Data:        user,
	})
}

// Login authenticates by email and password. Unknown email and wrong
// password are deliberately the same failure.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	h.setRefreshCookie(c, pair.Refresh)
	return c.JSON(http.StatusOK, authResponse{
		Message:     "User logged in successfully",
		AccessToken: pair.Access,
		Data:        user,
	})
}

// Logout clears the refresh cookie. Always succeeds, cookie or not.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearRefreshCookie(c)
	return c.JSON(http.StatusOK, authResponse{Message: "User logged out successfully"})
}

// Refresh exchanges the refresh cookie for a new access token. The cookie is
// the only accepted transport; an expired refresh token means the client
// must log in again.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "no refresh token found")
	}

	access, user, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrExpiredToken):
			metrics.TokenRefreshesTotal.WithLabelValues("expired").Inc()
		default:
			metrics.TokenRefreshesTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}
	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Message:     "Token refreshed successfully",
		AccessToken: access,
		Data:        user,
	})
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, value string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
		MaxAge:   int(h.cookies.MaxAge.Seconds()),
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
		MaxAge:   -1,
	})
}
