package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

type NotificationService interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actor domain.Actor, id int64) error
}
