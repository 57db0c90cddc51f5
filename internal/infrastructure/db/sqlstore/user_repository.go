package sqlstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	m := userModel{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Phone:        user.Phone,
		CreatedAt:    user.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err, nil, domain.ErrUserExists, nil)
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.first(ctx, "user_id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *UserRepository) first(ctx context.Context, query string, arg any) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		return nil, translate(err, domain.ErrUserNotFound, nil, nil)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context, order ports.UserOrder) ([]domain.User, error) {
	q := r.db.WithContext(ctx)
	if order == ports.UsersNewestFirst {
		q = q.Order("created_at DESC").Order("user_id DESC")
	} else {
		q = q.Order("user_id")
	}

	var models []userModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]domain.User, len(models))
	for i := range models {
		users[i] = *models[i].toDomain()
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("user_id = ?", user.ID).Updates(map[string]any{
		"username":   user.Username,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"phone":      user.Phone,
	})
	if res.Error != nil {
		return translate(res.Error, nil, domain.ErrUserExists, nil)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.updateColumn(ctx, id, "password_hash", passwordHash)
}

func (r *UserRepository) SetResumeKey(ctx context.Context, id int64, key string) error {
	return r.updateColumn(ctx, id, "resume_key", key)
}

func (r *UserRepository) updateColumn(ctx context.Context, id int64, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("user_id = ?", id).Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("update user %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the user; foreign keys cascade to the employer profile,
// jobs, applications, notifications and likes. Like counters of the
// resources the user had liked are recomputed in the same transaction,
// after locking those resources the way Like and Unlike do.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var liked []int64
		if err := tx.Model(&resourceLikeModel{}).Where("user_id = ?", id).Pluck("resource_id", &liked).Error; err != nil {
			return fmt.Errorf("collect liked resources: %w", err)
		}
		if len(liked) > 0 {
			if err := lockResources(tx, liked...); err != nil {
				return err
			}
		}

		res := tx.Delete(&userModel{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}

		var likes int64
		for _, resourceID := range liked {
			if err := refreshLikes(tx, resourceID, &likes); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	var rows []struct {
		Role  string
		Total int64
	}
	if err := r.db.WithContext(ctx).Model(&userModel{}).Select("role, COUNT(*) AS total").Group("role").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count users by role: %w", err)
	}
	out := make(map[domain.Role]int64, len(rows))
	for _, row := range rows {
		out[domain.Role(row.Role)] = row.Total
	}
	return out, nil
}
