package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

type EmployerInput struct {
	CompanyName string
	Description string
	Website     string
	Location    string
}

type EmployerService interface {
	Create(ctx context.Context, actor domain.Actor, in EmployerInput) (*domain.Employer, error)
	Mine(ctx context.Context, actor domain.Actor) (*domain.Employer, error)
	UpdateMine(ctx context.Context, actor domain.Actor, in EmployerInput) (*domain.Employer, error)
	Get(ctx context.Context, id int64) (*domain.Employer, error)
}
