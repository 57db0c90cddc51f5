package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	// MarkRead returns domain.ErrNotificationNotFound unless the notification
	// exists and belongs to userID.
	MarkRead(ctx context.Context, id, userID int64) error
}
