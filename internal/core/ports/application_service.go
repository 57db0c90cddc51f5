package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

type ApplicationService interface {
	Apply(ctx context.Context, actor domain.Actor, jobID int64, coverLetter string) (*domain.Application, error)
	Withdraw(ctx context.Context, actor domain.Actor, jobID int64) error
	UpdateStatus(ctx context.Context, actor domain.Actor, applicationID int64, status string) (*domain.ApplicationDetail, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.ApplicationDetail, error)
	// ListForEmployer returns applications to the actor's jobs, optionally
	// scoped to jobID (0 = all jobs).
	ListForEmployer(ctx context.Context, actor domain.Actor, jobID int64) ([]domain.ApplicationDetail, error)
}
