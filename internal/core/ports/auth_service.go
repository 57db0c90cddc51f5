package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// RegisterInput is the public sign-up payload. Role defaults to applicant.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Session is the result of a successful login.
type Session struct {
	Token  string
	Claims *SessionClaims
	User   *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, claims *SessionClaims) error
	// Authenticate verifies a token and resolves the acting user.
	Authenticate(ctx context.Context, token string) (*domain.User, *SessionClaims, error)
}
