package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// DefaultMaxResumeBytes caps uploads when no limit is configured.
const DefaultMaxResumeBytes = 5 << 20

var resumeExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// ProfileService manages the caller's own account and resume.
type ProfileService struct {
	users          ports.UserRepository
	applications   ports.ApplicationRepository
	files          ports.FileStore
	hasher         ports.PasswordHasher
	audit          ports.AuditRecorder
	maxResumeBytes int64
	logger         zerolog.Logger
}

func NewProfileService(
	users ports.UserRepository,
	applications ports.ApplicationRepository,
	files ports.FileStore,
	hasher ports.PasswordHasher,
	audit ports.AuditRecorder,
	maxResumeBytes int64,
	logger zerolog.Logger,
) *ProfileService {
	if maxResumeBytes <= 0 {
		maxResumeBytes = DefaultMaxResumeBytes
	}
	return &ProfileService{
		users:          users,
		applications:   applications,
		files:          files,
		hasher:         hasher,
		audit:          audit,
		maxResumeBytes: maxResumeBytes,
		logger:         logger,
	}
}

func (s *ProfileService) Get(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	return s.users.GetByID(ctx, actor.UserID)
}

func (s *ProfileService) Update(ctx context.Context, actor domain.Actor, in ports.ProfileUpdate) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		if v := strings.TrimSpace(*in.Username); v != "" {
			user.Username = v
		}
	}
	if in.Email != nil {
		if v := normalizeEmail(*in.Email); v != "" {
			user.Email = v
		}
	}
	if in.FirstName != nil {
		user.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		user.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) ChangePassword(ctx context.Context, actor domain.Actor, current, next string) error {
	if next == "" {
		return domain.ErrNewPasswordRequired
	}
	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(current, user.PasswordHash) {
		return domain.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:     domain.AuditPasswordChanged,
		ActorID:    actor.UserID,
		TargetType: "user",
		TargetID:   user.ID,
		At:         time.Now().UTC(),
	})
	return nil
}

// UploadResume stores the file under resume_<user_id><ext>, replacing any
// previous resume. The old object is removed only after the new key is
// recorded.
func (s *ProfileService) UploadResume(ctx context.Context, actor domain.Actor, in ports.ResumeUpload) (string, error) {
	if actor.Role != domain.RoleApplicant {
		return "", domain.ErrApplicantsOnly
	}
	ext := strings.ToLower(filepath.Ext(in.Filename))
	if _, ok := resumeExtensions[ext]; !ok {
		return "", domain.ErrInvalidResumeFormat
	}
	if in.Size > s.maxResumeBytes {
		return "", domain.ErrResumeTooLarge
	}

	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("resume_%d%s", user.ID, ext)
	if err := s.files.Save(ctx, key, in.Body, in.Size, in.ContentType); err != nil {
		return "", fmt.Errorf("upload resume: %w", err)
	}
	if err := s.users.SetResumeKey(ctx, user.ID, key); err != nil {
		return "", fmt.Errorf("upload resume: %w", err)
	}

	if old := user.ResumeKey; old != "" && old != key {
		if err := s.files.Delete(ctx, old); err != nil {
			s.logger.Warn().Err(err).Str("key", old).Msg("failed to remove replaced resume")
		}
	}

	s.logger.Info().Int64("user_id", user.ID).Str("key", key).Int64("size", in.Size).Msg("resume uploaded")
	return key, nil
}

func (s *ProfileService) DeleteResume(ctx context.Context, actor domain.Actor) error {
	if actor.Role != domain.RoleApplicant {
		return domain.ErrApplicantsOnly
	}
	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if user.ResumeKey == "" {
		return domain.ErrResumeNotFound
	}

	if err := s.users.SetResumeKey(ctx, user.ID, ""); err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if err := s.files.Delete(ctx, user.ResumeKey); err != nil {
		s.logger.Warn().Err(err).Str("key", user.ResumeKey).Msg("failed to remove resume object")
	}
	return nil
}

// OpenResume streams userID's resume. Besides the owner and admins, an
// employer may read it once the user has applied to one of their jobs.
func (s *ProfileService) OpenResume(ctx context.Context, actor domain.Actor, userID int64) (*ports.ResumeFile, error) {
	allowed, err := s.canReadResume(ctx, actor, userID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrResumeForbidden
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ResumeKey == "" {
		return nil, domain.ErrResumeNotFound
	}

	body, err := s.files.Open(ctx, user.ResumeKey)
	if err != nil {
		if errors.Is(err, ports.ErrObjectNotFound) {
			s.logger.Warn().Int64("user_id", userID).Str("key", user.ResumeKey).Msg("resume key points at a missing object")
			return nil, domain.ErrResumeNotFound
		}
		return nil, fmt.Errorf("open resume: %w", err)
	}
	return &ports.ResumeFile{Key: user.ResumeKey, Body: body}, nil
}

func (s *ProfileService) canReadResume(ctx context.Context, actor domain.Actor, userID int64) (bool, error) {
	if actor.Owns(userID) {
		return true, nil
	}
	if actor.Role != domain.RoleEmployer {
		return false, nil
	}
	ok, err := s.applications.HasAppliedToEmployer(ctx, userID, actor.UserID)
	if err != nil {
		return false, fmt.Errorf("open resume: %w", err)
	}
	return ok, nil
}
