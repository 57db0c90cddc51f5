package sqlstore

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// ResourceRepository implements ports.ResourceRepository. The likes column is
// always recomputed from resource_likes inside the transaction that changed
// the like rows, so it cannot drift or go negative.
type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.FinancialResource) error {
	m := financialResourceModel{
		Name:         res.Name,
		Website:      res.Website,
		Description:  res.Description,
		ResourceType: string(res.ResourceType),
		CreatedAt:    res.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	res.ID = m.ID
	res.Likes = m.Likes
	res.CreatedAt = m.CreatedAt
	return nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*domain.FinancialResource, error) {
	var m financialResourceModel
	if err := r.db.WithContext(ctx).First(&m, "resource_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrResourceNotFound, nil, nil)
	}
	return m.toDomain(), nil
}

func (r *ResourceRepository) ListByType(ctx context.Context, t domain.ResourceType) ([]domain.FinancialResource, error) {
	var models []financialResourceModel
	if err := r.db.WithContext(ctx).Where("resource_type = ?", string(t)).Order("resource_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	out := make([]domain.FinancialResource, len(models))
	for i := range models {
		out[i] = *models[i].toDomain()
	}
	return out, nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *domain.FinancialResource) error {
	result := r.db.WithContext(ctx).Model(&financialResourceModel{}).Where("resource_id = ?", res.ID).Updates(map[string]any{
		"name":          res.Name,
		"website":       res.Website,
		"description":   res.Description,
		"resource_type": string(res.ResourceType),
	})
	if result.Error != nil {
		return fmt.Errorf("update resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&financialResourceModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) Like(ctx context.Context, resourceID, userID int64) (int64, error) {
	var likes int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockResources(tx, resourceID); err != nil {
			return err
		}
		like := resourceLikeModel{ResourceID: resourceID, UserID: userID, CreatedAt: time.Now().UTC()}
		if err := tx.Omit(clause.Associations).Create(&like).Error; err != nil {
			return translate(err, nil, domain.ErrAlreadyLiked, domain.ErrResourceNotFound)
		}
		return refreshLikes(tx, resourceID, &likes)
	})
	return likes, err
}

func (r *ResourceRepository) Unlike(ctx context.Context, resourceID, userID int64) (int64, error) {
	var likes int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockResources(tx, resourceID); err != nil {
			return err
		}
		res := tx.Where("resource_id = ? AND user_id = ?", resourceID, userID).Delete(&resourceLikeModel{})
		if res.Error != nil {
			return fmt.Errorf("unlike: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotLiked
		}
		return refreshLikes(tx, resourceID, &likes)
	})
	return likes, err
}

// lockResources takes row locks on the given resources in id order. Every
// writer of resource_likes locks the parent first, so the recount that
// follows runs on a snapshot that includes all committed likes.
func lockResources(tx *gorm.DB, ids ...int64) error {
	var locked []financialResourceModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("resource_id").
		Where("resource_id IN ?", ids).
		Order("resource_id").
		Find(&locked).Error
	if err != nil {
		return fmt.Errorf("lock resources: %w", err)
	}
	if len(ids) == 1 && len(locked) == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

// refreshLikes derives the counter from the like rows and reads it back.
// Callers hold the row lock from lockResources.
func refreshLikes(tx *gorm.DB, resourceID int64, likes *int64) error {
	var count int64
	if err := tx.Model(&resourceLikeModel{}).Where("resource_id = ?", resourceID).Count(&count).Error; err != nil {
		return fmt.Errorf("count likes: %w", err)
	}
	err := tx.Model(&financialResourceModel{}).Where("resource_id = ?", resourceID).Update("likes", count).Error
	if err != nil {
		return fmt.Errorf("refresh likes: %w", err)
	}
	*likes = count
	return nil
}

func (r *ResourceRepository) LikedIDs(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&resourceLikeModel{}).Where("user_id = ?", userID).Pluck("resource_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("liked resource ids: %w", err)
	}
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (r *ResourceRepository) CountByType(ctx context.Context) (map[domain.ResourceType]int64, error) {
	var rows []struct {
		ResourceType string
		Total        int64
	}
	err := r.db.WithContext(ctx).
		Model(&financialResourceModel{}).
		Select("resource_type, COUNT(*) AS total").
		Group("resource_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count resources by type: %w", err)
	}
	out := make(map[domain.ResourceType]int64, len(rows))
	for _, row := range rows {
		out[domain.ResourceType(row.ResourceType)] = row.Total
	}
	return out, nil
}

func (r *ResourceRepository) TotalLikes(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&resourceLikeModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return total, nil
}
