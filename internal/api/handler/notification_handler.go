package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /notifications.
//
// @Summary      List the caller's notifications, newest first
// @Tags         notifications
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}  domain.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	items, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// MarkRead handles PUT /notifications/:id/read.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Notification id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.MarkRead(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Notification marked as read"})
}
