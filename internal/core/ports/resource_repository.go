package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// ResourceRepository persists financial-literacy resources and their likes.
type ResourceRepository interface {
	Create(ctx context.Context, res *domain.FinancialResource) error
	GetByID(ctx context.Context, id int64) (*domain.FinancialResource, error)
	ListByType(ctx context.Context, t domain.ResourceType) ([]domain.FinancialResource, error)
	Update(ctx context.Context, res *domain.FinancialResource) error
	Delete(ctx context.Context, id int64) error

	// Like inserts the (resource, user) like row and refreshes the counter in
	// one transaction, returning the new count. A second like by the same
	// user yields domain.ErrAlreadyLiked.
	Like(ctx context.Context, resourceID, userID int64) (int64, error)
	// Unlike is the inverse of Like; with no like row it yields domain.ErrNotLiked.
	Unlike(ctx context.Context, resourceID, userID int64) (int64, error)
	LikedIDs(ctx context.Context, userID int64) (map[int64]struct{}, error)

	CountByType(ctx context.Context) (map[domain.ResourceType]int64, error)
	TotalLikes(ctx context.Context) (int64, error)
}
