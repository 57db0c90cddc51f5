package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// EmployerHandler serves company profiles.
type EmployerHandler struct {
	service ports.EmployerService
}

func NewEmployerHandler(service ports.EmployerService) *EmployerHandler {
	return &EmployerHandler{service: service}
}

// Create handles POST /employers.
//
// @Summary      Create the caller's company profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      employerRequest  true  "Company profile"
// @Success      201   {object}  domain.Employer
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /employers [post]
func (h *EmployerHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req employerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	employer, err := h.service.Create(c.Request().Context(), actor, toEmployerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employer)
}

// Mine handles GET /employers/me.
//
// @Summary      Get the caller's company profile
// @Tags         employers
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  domain.Employer
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employers/me [get]
func (h *EmployerHandler) Mine(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	employer, err := h.service.Mine(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employer)
}

// UpdateMine handles PUT /employers/me.
//
// @Summary      Replace the caller's company profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      employerRequest  true  "Company profile"
// @Success      200   {object}  domain.Employer
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /employers/me [put]
func (h *EmployerHandler) UpdateMine(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req employerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	employer, err := h.service.UpdateMine(c.Request().Context(), actor, toEmployerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employer)
}

// Get handles GET /employers/:id.
//
// @Summary      Get a company profile
// @Tags         employers
// @Produce      json
// @Param        id   path      int  true  "Employer id"
// @Success      200  {object}  domain.Employer
// @Failure      404  {object}  errorResponse
// @Router       /employers/{id} [get]
func (h *EmployerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	employer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employer)
}

func toEmployerInput(req employerRequest) ports.EmployerInput {
	return ports.EmployerInput{
		CompanyName: req.CompanyName,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	}
}
