package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// ApplicationService implements the apply / withdraw / review workflow.
type ApplicationService struct {
	jobs          ports.JobRepository
	applications  ports.ApplicationRepository
	notifications ports.NotificationRepository
	audit         ports.AuditRecorder
	logger        zerolog.Logger
}

func NewApplicationService(
	jobs ports.JobRepository,
	applications ports.ApplicationRepository,
	notifications ports.NotificationRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		jobs:          jobs,
		applications:  applications,
		notifications: notifications,
		audit:         audit,
		logger:        logger,
	}
}

// Apply creates a pending application. The store's (job_id, user_id) unique
// index rejects a second live application with domain.ErrAlreadyApplied.
// Inactive jobs take no applications.
func (s *ApplicationService) Apply(ctx context.Context, actor domain.Actor, jobID int64, coverLetter string) (*domain.Application, error) {
	coverLetter = strings.TrimSpace(coverLetter)
	if coverLetter == "" {
		return nil, domain.ErrCoverLetterRequired
	}
	listing, err := s.jobs.GetListing(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !listing.IsActive {
		return nil, domain.ErrJobNotFound
	}

	app := &domain.Application{
		JobID:       jobID,
		UserID:      actor.UserID,
		CoverLetter: coverLetter,
		Status:      domain.StatusPending,
		DateApplied: time.Now().UTC(),
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("application_id", app.ID).Int64("job_id", jobID).Int64("user_id", actor.UserID).Msg("application submitted")
	return app, nil
}

// Withdraw deletes the caller's application to jobID, making the pair
// eligible for a fresh application.
func (s *ApplicationService) Withdraw(ctx context.Context, actor domain.Actor, jobID int64) error {
	if err := s.applications.DeleteByJobAndUser(ctx, jobID, actor.UserID); err != nil {
		return err
	}
	s.logger.Info().Int64("job_id", jobID).Int64("user_id", actor.UserID).Msg("application withdrawn")
	return nil
}

// UpdateStatus checks, in order: status validity, existence, ownership.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor domain.Actor, applicationID int64, status string) (*domain.ApplicationDetail, error) {
	next, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return nil, err
	}

	detail, err := s.applications.GetDetail(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(detail.EmployerUserID) {
		return nil, domain.ErrNotJobOwner
	}

	previous := detail.Status
	if err := s.applications.UpdateStatus(ctx, applicationID, next); err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	detail.Status = next

	if previous != next {
		s.notifyApplicant(ctx, detail)
	}
	s.audit.Record(ctx, domain.AuditEvent{
		Action:     domain.AuditStatusChanged,
		ActorID:    actor.UserID,
		TargetType: "application",
		TargetID:   applicationID,
		Detail:     fmt.Sprintf("%s -> %s", previous, next),
		At:         time.Now().UTC(),
	})
	s.logger.Info().
		Int64("application_id", applicationID).
		Str("from", string(previous)).
		Str("to", string(next)).
		Msg("application status updated")

	return detail, nil
}

// notifyApplicant is best-effort; a failed insert never fails the update.
func (s *ApplicationService) notifyApplicant(ctx context.Context, detail *domain.ApplicationDetail) {
	n := &domain.Notification{
		UserID:    detail.UserID,
		Message:   fmt.Sprintf("Your application for %s is now %s", detail.JobTitle, detail.Status),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Warn().Err(err).Int64("application_id", detail.ID).Msg("failed to create notification")
	}
}

func (s *ApplicationService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.ApplicationDetail, error) {
	apps, err := s.applications.List(ctx, ports.ApplicationFilter{ApplicantID: actor.UserID})
	if err != nil {
		return nil, fmt.Errorf("list my applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationService) ListForEmployer(ctx context.Context, actor domain.Actor, jobID int64) ([]domain.ApplicationDetail, error) {
	filter := ports.ApplicationFilter{JobID: jobID}
	if !actor.IsAdmin() {
		filter.EmployerUserID = actor.UserID
	}

	if jobID != 0 {
		listing, err := s.jobs.GetListing(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if !actor.Owns(listing.EmployerUserID) {
			return nil, domain.ErrJobNotFound
		}
	}

	apps, err := s.applications.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list employer applications: %w", err)
	}
	return apps, nil
}
