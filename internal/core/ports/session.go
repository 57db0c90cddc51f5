package ports

import (
	"context"
	"time"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// SessionClaims is the verified content of a session token.
type SessionClaims struct {
	UserID    int64
	Role      domain.Role
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

// TokenManager issues and verifies signed session tokens.
type TokenManager interface {
	Issue(user *domain.User) (string, *SessionClaims, error)
	Verify(token string) (*SessionClaims, error)
}

// SessionRevoker tracks tokens invalidated before their expiry.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// PasswordHasher hashes and verifies passwords with a slow salted KDF.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
