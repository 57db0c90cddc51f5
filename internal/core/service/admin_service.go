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

// AdminService backs the admin console. Callers are expected to have been
// role-gated already; the service only enforces the account-level rules.
type AdminService struct {
	users        ports.UserRepository
	jobs         ports.JobRepository
	applications ports.ApplicationRepository
	resources    ports.ResourceRepository
	files        ports.FileStore
	hasher       ports.PasswordHasher
	audit        ports.AuditRecorder
	logger       zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	jobs ports.JobRepository,
	applications ports.ApplicationRepository,
	resources ports.ResourceRepository,
	files ports.FileStore,
	hasher ports.PasswordHasher,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:        users,
		jobs:         jobs,
		applications: applications,
		resources:    resources,
		files:        files,
		hasher:       hasher,
		audit:        audit,
		logger:       logger,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, order ports.UserOrder) ([]domain.User, error) {
	users, err := s.users.List(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser provisions an account of any role, admin included.
func (s *AdminService) CreateUser(ctx context.Context, actor domain.Actor, in ports.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	user, err := createUser(ctx, s.users, s.hasher, username, email, in.Password, role)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:     domain.AuditUserCreated,
		ActorID:    actor.UserID,
		TargetType: "user",
		TargetID:   user.ID,
		Detail:     string(role),
		At:         time.Now().UTC(),
	})
	s.logger.Info().Int64("user_id", user.ID).Str("role", string(role)).Int64("actor_id", actor.UserID).Msg("user created by admin")
	return user, nil
}

// EnsureAdmin creates an admin account from in when none exists yet. It
// returns the created user, or nil when an admin was already present.
func (s *AdminService) EnsureAdmin(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	counts, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("ensure admin: %w", err)
	}
	if counts[domain.RoleAdmin] > 0 {
		return nil, nil
	}

	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	user, err := createUser(ctx, s.users, s.hasher, username, email, in.Password, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", user.ID).Str("username", username).Msg("bootstrap admin created")
	return user, nil
}

// DeleteUser removes a non-admin account other than the caller's own. The
// store cascades to the user's employer profile, jobs, applications, likes
// and notifications.
func (s *AdminService) DeleteUser(ctx context.Context, actor domain.Actor, id int64) error {
	if id == actor.UserID {
		return domain.ErrCannotDeleteSelf
	}

	target, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleAdmin {
		return domain.ErrCannotDeleteAdmin
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	if target.ResumeKey != "" {
		if err := s.files.Delete(ctx, target.ResumeKey); err != nil {
			s.logger.Warn().Err(err).Str("key", target.ResumeKey).Msg("failed to remove resume of deleted user")
		}
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:     domain.AuditUserDeleted,
		ActorID:    actor.UserID,
		TargetType: "user",
		TargetID:   id,
		Detail:     target.Username,
		At:         time.Now().UTC(),
	})
	s.logger.Info().Int64("user_id", id).Int64("actor_id", actor.UserID).Msg("user deleted")
	return nil
}

func (s *AdminService) ListJobs(ctx context.Context) ([]domain.JobListing, error) {
	listings, err := s.jobs.List(ctx, ports.JobFilter{WithApplicationCount: true})
	if err != nil {
		return nil, fmt.Errorf("list all jobs: %w", err)
	}
	return listings, nil
}

func (s *AdminService) DeleteJob(ctx context.Context, actor domain.Actor, id int64) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:     domain.AuditJobDeleted,
		ActorID:    actor.UserID,
		TargetType: "job",
		TargetID:   id,
		At:         time.Now().UTC(),
	})
	s.logger.Info().Int64("job_id", id).Int64("actor_id", actor.UserID).Msg("job deleted")
	return nil
}

// VerifyPassword re-checks the caller's password before destructive actions.
func (s *AdminService) VerifyPassword(ctx context.Context, actor domain.Actor, password string) (bool, error) {
	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, domain.ErrSessionUserGone
		}
		return false, fmt.Errorf("verify password: %w", err)
	}
	return s.hasher.Verify(password, user.PasswordHash), nil
}

// Dashboard reports platform counts. Every enum value is present in the
// maps, zero when nothing matches.
func (s *AdminService) Dashboard(ctx context.Context) (*ports.Dashboard, error) {
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: users: %w", err)
	}
	total, active, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: jobs: %w", err)
	}
	byStatus, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: applications: %w", err)
	}
	byType, err := s.resources.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resources: %w", err)
	}
	likes, err := s.resources.TotalLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: likes: %w", err)
	}

	d := &ports.Dashboard{
		UsersByRole:          make(map[domain.Role]int64, 3),
		TotalJobs:            total,
		ActiveJobs:           active,
		ApplicationsByStatus: make(map[domain.ApplicationStatus]int64, len(domain.ApplicationStatuses)),
		ResourcesByType:      make(map[domain.ResourceType]int64, len(domain.ResourceTypes)),
		TotalLikes:           likes,
	}
	for _, r := range []domain.Role{domain.RoleApplicant, domain.RoleEmployer, domain.RoleAdmin} {
		d.UsersByRole[r] = byRole[r]
	}
	for _, st := range domain.ApplicationStatuses {
		d.ApplicationsByStatus[st] = byStatus[st]
	}
	for _, t := range domain.ResourceTypes {
		d.ResourcesByType[t] = byType[t]
	}
	return d, nil
}
