package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hustlehub/hustlehub-api/internal/api/middleware"
	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// actorFrom returns the caller identity injected by the auth middleware, or
// the zero Actor for anonymous requests.
func actorFrom(c echo.Context) domain.Actor {
	id, _ := c.Get(middleware.KeyUserID).(int64)
	role, _ := c.Get(middleware.KeyRole).(domain.Role)
	return domain.Actor{UserID: id, Role: role}
}

// requireActor is actorFrom for routes that must be authenticated. Routes
// behind Auth always pass; the check guards against a missing middleware.
func requireActor(c echo.Context) (domain.Actor, error) {
	a := actorFrom(c)
	if a.UserID == 0 || a.Role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return a, nil
}

func currentUser(c echo.Context) (*domain.User, error) {
	u, ok := c.Get(middleware.KeyUser).(*domain.User)
	if !ok || u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return u, nil
}

func sessionClaims(c echo.Context) *ports.SessionClaims {
	claims, _ := c.Get(middleware.KeyClaims).(*ports.SessionClaims)
	return claims
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// bindAndValidate decodes the body into req and runs struct validation.
// Undecodable bodies are 400, shape violations 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
