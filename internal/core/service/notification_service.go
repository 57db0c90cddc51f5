package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

type NotificationService struct {
	notifications ports.NotificationRepository
	logger        zerolog.Logger
}

func NewNotificationService(notifications ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, logger: logger}
}

func (s *NotificationService) List(ctx context.Context, actor domain.Actor) ([]domain.Notification, error) {
	list, err := s.notifications.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, actor domain.Actor, id int64) error {
	return s.notifications.MarkRead(ctx, id, actor.UserID)
}
