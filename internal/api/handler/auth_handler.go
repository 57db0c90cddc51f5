package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hustlehub/hustlehub-api/internal/api/metrics"
	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// CookieConfig controls the session cookie set at login.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Register creates a new applicant or employer account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user, sets the session cookie and also returns the
// token for bearer clients.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, loginResponse{Message: "Login successful", Token: session.Token, User: session.User})
}

// Logout clears the session cookie and revokes the token when a revocation
// list is configured.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), sessionClaims(c)); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// Me returns the authenticated user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
