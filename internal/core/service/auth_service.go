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

// AuthService implements registration, login and session resolution.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenManager
	revoker ports.SessionRevoker
	logger  zerolog.Logger
}

// NewAuthService wires the auth use cases. revoker may be nil, in which case
// logout only clears the client cookie.
func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenManager,
	revoker ports.SessionRevoker,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, revoker: revoker, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}

	role := domain.RoleApplicant
	if in.Role != "" {
		parsed, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}
	if !role.SelfRegistrable() {
		return nil, domain.ErrInvalidRole
	}

	user, err := createUser(ctx, s.users, s.hasher, username, email, in.Password, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", string(role)).Msg("user registered")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}
	return &ports.Session{Token: token, Claims: claims, User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context, claims *ports.SessionClaims) error {
	if s.revoker == nil || claims == nil || claims.TokenID == "" {
		return nil
	}
	if !claims.ExpiresAt.After(time.Now()) {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, *ports.SessionClaims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, nil, err
	}

	if s.revoker != nil && claims.TokenID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			s.logger.Warn().Err(err).Msg("revocation check failed, accepting token")
		} else if revoked {
			return nil, nil, domain.ErrSessionRevoked
		}
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrSessionUserGone
		}
		return nil, nil, fmt.Errorf("authenticate: %w", err)
	}
	return user, claims, nil
}

// createUser is shared by public registration and admin user creation. The
// email and username lookups only produce friendlier messages; the store's
// unique indexes remain authoritative.
func createUser(
	ctx context.Context,
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	username, email, password string,
	role domain.Role,
) (*domain.User, error) {
	if _, err := users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if _, err := users.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("create user: %w", err)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("create user: hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
