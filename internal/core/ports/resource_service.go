package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

type ResourceInput struct {
	Name         string
	Website      string
	Description  string
	ResourceType string
}

// ResourceView is a resource as seen by a viewer. LikedByMe is nil for
// anonymous viewers.
type ResourceView struct {
	domain.FinancialResource
	LikedByMe *bool
}

type ResourceService interface {
	ListByType(ctx context.Context, viewer domain.Actor, resourceType string) ([]ResourceView, error)
	Create(ctx context.Context, actor domain.Actor, in ResourceInput) (*domain.FinancialResource, error)
	Update(ctx context.Context, actor domain.Actor, id int64, in ResourceInput) (*domain.FinancialResource, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
	Like(ctx context.Context, actor domain.Actor, id int64) (int64, error)
	Unlike(ctx context.Context, actor domain.Actor, id int64) (int64, error)
}
