package sqlstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	m := notificationModel{UserID: n.UserID, Message: n.Message, IsRead: n.IsRead, CreatedAt: n.CreatedAt}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate(err, nil, nil, domain.ErrUserNotFound)
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var models []notificationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("notification_id DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	out := make([]domain.Notification, len(models))
	for i := range models {
		out[i] = models[i].toDomain()
	}
	return out, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	res := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("notification_id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
