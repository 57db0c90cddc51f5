package handler

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/hustlehub/hustlehub-api/internal/api/metrics"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// ProfileHandler serves the caller's own account and resume.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /profile/me.
//
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  domain.User
// @Router       /profile/me [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /profile/me. Omitted fields are left unchanged.
//
// @Summary      Update the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      profileUpdateRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /profile/me [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req profileUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), actor, ports.ProfileUpdate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword handles PUT /profile/change-password.
//
// @Summary      Change the caller's password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /profile/change-password [put]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.ChangePassword(c.Request().Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Password updated"})
}

// UploadResume handles POST /profile/resume (multipart field "file").
//
// @Summary      Upload or replace the caller's resume
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     CookieAuth
// @Param        file  formData  file  true  "PDF, DOC or DOCX"
// @Success      200   {object}  resumeResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /profile/resume [post]
func (h *ProfileHandler) UploadResume(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key, err := h.service.UploadResume(c.Request().Context(), actor, ports.ResumeUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        src,
	})
	if err != nil {
		return err
	}

	metrics.ResumeUploadsTotal.Inc()
	return c.JSON(http.StatusOK, resumeResponse{Filename: fh.Filename, ResumeKey: key})
}

// DeleteResume handles DELETE /profile/resume.
//
// @Summary      Delete the caller's resume
// @Tags         profile
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile/resume [delete]
func (h *ProfileHandler) DeleteResume(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteResume(c.Request().Context(), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Resume deleted"})
}

// DownloadResume handles GET /profile/resume/:user_id.
//
// @Summary      Download a user's resume
// @Tags         profile
// @Produce      octet-stream
// @Security     CookieAuth
// @Param        user_id  path  int  true  "User id"
// @Success      200
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile/resume/{user_id} [get]
func (h *ProfileHandler) DownloadResume(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	file, err := h.service.OpenResume(c.Request().Context(), actor, userID)
	if err != nil {
		return err
	}
	defer file.Body.Close()

	contentType := mime.TypeByExtension(filepath.Ext(file.Key))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Key))
	return c.Stream(http.StatusOK, contentType, file.Body)
}
