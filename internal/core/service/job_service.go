package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// JobService owns posting lifecycle: creation, visibility and the active flag.
type JobService struct {
	jobs         ports.JobRepository
	employers    ports.EmployerRepository
	applications ports.ApplicationRepository
	audit        ports.AuditRecorder
	logger       zerolog.Logger
}

func NewJobService(
	jobs ports.JobRepository,
	employers ports.EmployerRepository,
	applications ports.ApplicationRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *JobService {
	return &JobService{
		jobs:         jobs,
		employers:    employers,
		applications: applications,
		audit:        audit,
		logger:       logger,
	}
}

func (s *JobService) Create(ctx context.Context, actor domain.Actor, in ports.CreateJobInput) (*domain.JobListing, error) {
	jobType, err := domain.ParseJobType(in.JobType)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, domain.ErrJobFieldsRequired
	}

	employer, err := s.resolvePostingEmployer(ctx, actor, in.EmployerID)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		EmployerID:  employer.ID,
		Title:       title,
		Description: description,
		JobType:     jobType,
		Location:    strings.TrimSpace(in.Location),
		PayRange:    strings.TrimSpace(in.PayRange),
		DatePosted:  time.Now().UTC(),
		IsActive:    true,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.logger.Info().
		Int64("job_id", job.ID).
		Int64("employer_id", employer.ID).
		Str("job_type", string(jobType)).
		Msg("job posted")

	return &domain.JobListing{Job: *job, CompanyName: employer.CompanyName, EmployerUserID: employer.UserID}, nil
}

// resolvePostingEmployer picks the profile a job is posted under: the
// caller's own for employers, the requested one for admins.
func (s *JobService) resolvePostingEmployer(ctx context.Context, actor domain.Actor, requested int64) (*domain.Employer, error) {
	if actor.IsAdmin() {
		if requested == 0 {
			return nil, domain.ErrEmployerIDRequired
		}
		return s.employers.GetByID(ctx, requested)
	}

	employer, err := s.employers.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployerNotFound) {
			return nil, domain.ErrEmployerProfileRequired
		}
		return nil, fmt.Errorf("create job: %w", err)
	}
	return employer, nil
}

func (s *JobService) Get(ctx context.Context, viewer domain.Actor, id int64) (*domain.JobListing, error) {
	listing, err := s.jobs.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if !listing.VisibleTo(viewer) {
		return nil, domain.ErrJobNotFound
	}
	return listing, nil
}

func (s *JobService) ListActive(ctx context.Context, viewer domain.Actor) ([]ports.JobCard, error) {
	listings, err := s.jobs.List(ctx, ports.JobFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	var applied map[int64]struct{}
	if viewer.Role == domain.RoleApplicant && viewer.UserID != 0 {
		applied, err = s.applications.AppliedJobIDs(ctx, viewer.UserID)
		if err != nil {
			return nil, fmt.Errorf("list jobs: applied set: %w", err)
		}
	}

	cards := make([]ports.JobCard, len(listings))
	for i, l := range listings {
		cards[i] = ports.JobCard{JobListing: l}
		if applied != nil {
			_, ok := applied[l.ID]
			cards[i].HasApplied = &ok
		}
	}
	return cards, nil
}

// ListForEmployer returns every job, active or not, owned by the actor with a
// live application count. Admins see all jobs.
func (s *JobService) ListForEmployer(ctx context.Context, actor domain.Actor) ([]domain.JobListing, error) {
	filter := ports.JobFilter{WithApplicationCount: true}
	if !actor.IsAdmin() {
		filter.EmployerUserID = actor.UserID
	}
	listings, err := s.jobs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list employer jobs: %w", err)
	}
	return listings, nil
}

// ToggleActive flips the job's visibility. Missing and foreign jobs are both
// reported as not found.
func (s *JobService) ToggleActive(ctx context.Context, actor domain.Actor, id int64) (bool, error) {
	owner := actor.UserID
	if actor.IsAdmin() {
		owner = 0
	}

	active, err := s.jobs.ToggleActive(ctx, id, owner)
	if err != nil {
		return false, err
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:     domain.AuditJobToggled,
		ActorID:    actor.UserID,
		TargetType: "job",
		TargetID:   id,
		Detail:     fmt.Sprintf("is_active=%t", active),
		At:         time.Now().UTC(),
	})
	s.logger.Info().Int64("job_id", id).Bool("is_active", active).Int64("actor_id", actor.UserID).Msg("job toggled")
	return active, nil
}
