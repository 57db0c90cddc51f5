package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hustlehub/hustlehub-api/internal/api/metrics"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// ResourceHandler serves the financial-literacy catalogue.
type ResourceHandler struct {
	service ports.ResourceService
}

func NewResourceHandler(service ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// ListByType handles GET /financial-literacy/:type.
//
// @Summary      List resources of one type
// @Description  Authenticated callers also get liked_by_me.
// @Tags         financial-literacy
// @Produce      json
// @Param        type  path      string  true  "credit, budget or invest"
// @Success      200   {array}   resourceResponse
// @Failure      400   {object}  errorResponse
// @Router       /financial-literacy/{type} [get]
func (h *ResourceHandler) ListByType(c echo.Context) error {
	views, err := h.service.ListByType(c.Request().Context(), actorFrom(c), c.Param("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResourceResponses(views))
}

// Create handles POST /financial-literacy.
//
// @Summary      Add a resource
// @Tags         financial-literacy
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      resourceRequest  true  "Resource"
// @Success      201   {object}  domain.FinancialResource
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /financial-literacy [post]
func (h *ResourceHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req resourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.service.Create(c.Request().Context(), actor, toResourceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

// Update handles PUT /financial-literacy/:id.
//
// @Summary      Replace a resource
// @Tags         financial-literacy
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int              true  "Resource id"
// @Param        body  body      resourceRequest  true  "Resource"
// @Success      200   {object}  domain.FinancialResource
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /financial-literacy/{id} [put]
func (h *ResourceHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req resourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.service.Update(c.Request().Context(), actor, id, toResourceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /financial-literacy/:id.
//
// @Summary      Delete a resource
// @Tags         financial-literacy
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Resource id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /financial-literacy/{id} [delete]
func (h *ResourceHandler) Delete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Resource deleted"})
}

// Like handles POST /financial-literacy/:id/like.
//
// @Summary      Like a resource
// @Tags         financial-literacy
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Resource id"
// @Success      200  {object}  likeResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /financial-literacy/{id}/like [post]
func (h *ResourceHandler) Like(c echo.Context) error {
	return h.toggleLike(c, true)
}

// Unlike handles DELETE /financial-literacy/:id/like.
//
// @Summary      Remove a like
// @Tags         financial-literacy
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Resource id"
// @Success      200  {object}  likeResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /financial-literacy/{id}/like [delete]
func (h *ResourceHandler) Unlike(c echo.Context) error {
	return h.toggleLike(c, false)
}

func (h *ResourceHandler) toggleLike(c echo.Context, like bool) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	action := "unlike"
	op := h.service.Unlike
	if like {
		action = "like"
		op = h.service.Like
	}
	likes, err := op(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	metrics.ResourceLikesTotal.WithLabelValues(action).Inc()
	return c.JSON(http.StatusOK, likeResponse{ResourceID: id, Likes: likes})
}

func toResourceInput(req resourceRequest) ports.ResourceInput {
	return ports.ResourceInput{
		Name:         req.Name,
		Website:      req.Website,
		Description:  req.Description,
		ResourceType: req.ResourceType,
	}
}
