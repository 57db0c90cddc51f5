package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// EmployerRepository persists company profiles. At most one per user.
type EmployerRepository interface {
	Create(ctx context.Context, employer *domain.Employer) error
	GetByID(ctx context.Context, id int64) (*domain.Employer, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Employer, error)
	Update(ctx context.Context, employer *domain.Employer) error
}
