package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Dashboard aggregates platform counts for the admin console.
type Dashboard struct {
	UsersByRole          map[domain.Role]int64
	TotalJobs            int64
	ActiveJobs           int64
	ApplicationsByStatus map[domain.ApplicationStatus]int64
	ResourcesByType      map[domain.ResourceType]int64
	TotalLikes           int64
}

type AdminService interface {
	ListUsers(ctx context.Context, order UserOrder) ([]domain.User, error)
	CreateUser(ctx context.Context, actor domain.Actor, in CreateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id int64) error
	ListJobs(ctx context.Context) ([]domain.JobListing, error)
	DeleteJob(ctx context.Context, actor domain.Actor, id int64) error
	VerifyPassword(ctx context.Context, actor domain.Actor, password string) (bool, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}
