package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hustlehub/hustlehub-api/internal/api/metrics"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// JobHandler serves postings and the application workflow around them.
type JobHandler struct {
	jobs         ports.JobService
	applications ports.ApplicationService
}

func NewJobHandler(jobs ports.JobService, applications ports.ApplicationService) *JobHandler {
	return &JobHandler{jobs: jobs, applications: applications}
}

// List handles GET /jobs.
//
// @Summary      List active jobs
// @Description  Applicants also get has_applied on every entry.
// @Tags         jobs
// @Produce      json
// @Success      200  {array}  jobResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	cards, err := h.jobs.ListActive(c.Request().Context(), actorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobCardResponses(cards))
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	listing, err := h.jobs.Get(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(*listing, false))
}

// Create handles POST /jobs.
//
// @Summary      Post a job
// @Description  Employers post under their own profile; admins must pass employer_id.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      createJobRequest  true  "Job posting"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req createJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	listing, err := h.jobs.Create(c.Request().Context(), actor, ports.CreateJobInput{
		EmployerID:  req.EmployerID,
		Title:       req.Title,
		Description: req.Description,
		JobType:     req.JobType,
		Location:    req.Location,
		PayRange:    req.PayRange,
	})
	if err != nil {
		return err
	}

	metrics.JobsPostedTotal.WithLabelValues(string(listing.JobType)).Inc()
	return c.JSON(http.StatusCreated, toJobResponse(*listing, false))
}

// EmployerJobs handles GET /jobs/employer/jobs.
//
// @Summary      List the caller's jobs
// @Description  Includes inactive jobs and application counts. Admins see every job.
// @Tags         jobs
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   jobResponse
// @Failure      403  {object}  errorResponse
// @Router       /jobs/employer/jobs [get]
func (h *JobHandler) EmployerJobs(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	listings, err := h.jobs.ListForEmployer(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(listings, true))
}

// ToggleActive handles PUT /jobs/:id/toggle-active.
//
// @Summary      Activate or deactivate a job
// @Tags         jobs
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Job id"
// @Success      200  {object}  toggleResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id}/toggle-active [put]
func (h *JobHandler) ToggleActive(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	active, err := h.jobs.ToggleActive(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleResponse{JobID: id, IsActive: active})
}

// Apply handles POST /jobs/:id/apply.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int           true  "Job id"
// @Param        body  body      applyRequest  true  "Cover letter"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req applyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.applications.Apply(c.Request().Context(), actor, jobID, req.CoverLetter)
	if err != nil {
		return err
	}

	metrics.ApplicationsTotal.WithLabelValues("submitted").Inc()
	return c.JSON(http.StatusCreated, app)
}

// Withdraw handles DELETE /jobs/applications/withdraw/:job_id.
//
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Security     CookieAuth
// @Param        job_id  path      int  true  "Job id"
// @Success      200     {object}  messageResponse
// @Failure      404     {object}  errorResponse
// @Router       /jobs/applications/withdraw/{job_id} [delete]
func (h *JobHandler) Withdraw(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "job_id")
	if err != nil {
		return err
	}
	if err := h.applications.Withdraw(c.Request().Context(), actor, jobID); err != nil {
		return err
	}

	metrics.ApplicationsTotal.WithLabelValues("withdrawn").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Application withdrawn"})
}

// MyApplications handles GET /jobs/applications/me.
//
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   applicationResponse
// @Failure      403  {object}  errorResponse
// @Router       /jobs/applications/me [get]
func (h *JobHandler) MyApplications(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	apps, err := h.applications.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponses(apps, false))
}

// EmployerApplications handles GET /jobs/employer/applications and
// GET /jobs/employer/applications/:job_id.
//
// @Summary      List applications to the caller's jobs
// @Tags         applications
// @Produce      json
// @Security     CookieAuth
// @Param        job_id  path      int  false  "Restrict to one job"
// @Success      200     {array}   applicationResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /jobs/employer/applications/{job_id} [get]
func (h *JobHandler) EmployerApplications(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var jobID int64
	if c.Param("job_id") != "" {
		if jobID, err = pathID(c, "job_id"); err != nil {
			return err
		}
	}

	apps, err := h.applications.ListForEmployer(c.Request().Context(), actor, jobID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponses(apps, true))
}

// UpdateStatus handles PUT /jobs/applications/:id/status.
//
// @Summary      Change an application's status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int            true  "Application id"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /jobs/applications/{id}/status [put]
func (h *JobHandler) UpdateStatus(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	detail, err := h.applications.UpdateStatus(c.Request().Context(), actor, id, req.Status)
	if err != nil {
		return err
	}

	metrics.ApplicationsTotal.WithLabelValues(string(detail.Status)).Inc()
	return c.JSON(http.StatusOK, toApplicationResponse(*detail, true))
}

