package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// AdminHandler serves the admin console. Every route is admin-gated.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// AllUsers handles GET /auth/users.
//
// @Summary      List users by id
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /auth/users [get]
func (h *AdminHandler) AllUsers(c echo.Context) error {
	return h.listUsers(c, ports.UsersByID)
}

// ListUsers handles GET /admin/users.
//
// @Summary      List users, newest first
// @Tags         admin
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	return h.listUsers(c, ports.UsersNewestFirst)
}

func (h *AdminHandler) listUsers(c echo.Context, order ports.UserOrder) error {
	users, err := h.service.ListUsers(c.Request().Context(), order)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /admin/users.
//
// @Summary      Create a user of any role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      createUserRequest  true  "Account"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), actor, ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// DeleteUser handles DELETE /admin/users/:id.
//
// @Summary      Delete a non-admin user
// @Tags         admin
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteUser(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted"})
}

// ListJobs handles GET /admin/jobs.
//
// @Summary      List every job, active or not
// @Tags         admin
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   jobResponse
// @Router       /admin/jobs [get]
func (h *AdminHandler) ListJobs(c echo.Context) error {
	listings, err := h.service.ListJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(listings, true))
}

// DeleteJob handles DELETE /admin/jobs/:id.
//
// @Summary      Hard-delete a job and its applications
// @Tags         admin
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteJob(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted"})
}

// VerifyPassword handles POST /admin/verify-password.
//
// @Summary      Re-check the caller's password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      verifyPasswordRequest  true  "Password"
// @Success      200   {object}  verifyPasswordResponse
// @Router       /admin/verify-password [post]
func (h *AdminHandler) VerifyPassword(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req verifyPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	valid, err := h.service.VerifyPassword(c.Request().Context(), actor, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, verifyPasswordResponse{Valid: valid})
}

// Dashboard handles GET /admin/dashboard.
//
// @Summary      Platform counts
// @Tags         admin
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dashboardResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	d, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(d))
}
