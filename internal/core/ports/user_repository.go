package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// UserOrder selects the ordering of user listings.
type UserOrder int

const (
	UsersByID UserOrder = iota
	UsersNewestFirst
)

// UserRepository persists accounts. Username and email uniqueness is enforced
// by the store; Create and UpdateProfile return domain.ErrUserExists when it
// is violated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, order UserOrder) ([]domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// SetResumeKey stores the resume object key; an empty key clears it.
	SetResumeKey(ctx context.Context, id int64, key string) error
	// Delete removes the user and everything cascading from it, then
	// recomputes the like counters of resources the user had liked.
	Delete(ctx context.Context, id int64) error
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}
