package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// Context keys set by Auth and OptionalAuth.
const (
	KeyUser   = "user"
	KeyUserID = "user_id"
	KeyRole   = "role"
	KeyClaims = "claims"
)

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, *ports.SessionClaims, error)
}

// Auth requires a valid session. The token is read from the session cookie
// first and from an "Authorization: Bearer" header otherwise.
func Auth(auth Authenticator, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c, cookieName)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			user, claims, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
				}
				return err
			}

			setIdentity(c, user, claims)
			return next(c)
		}
	}
}

// OptionalAuth resolves the caller when a valid token is present and lets
// anonymous or invalid-token requests through without identity.
func OptionalAuth(auth Authenticator, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := extractToken(c, cookieName); token != "" {
				if user, claims, err := auth.Authenticate(c.Request().Context(), token); err == nil {
					setIdentity(c, user, claims)
				}
			}
			return next(c)
		}
	}
}

func setIdentity(c echo.Context, user *domain.User, claims *ports.SessionClaims) {
	c.Set(KeyUser, user)
	c.Set(KeyUserID, user.ID)
	c.Set(KeyRole, user.Role)
	c.Set(KeyClaims, claims)
}

func extractToken(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
