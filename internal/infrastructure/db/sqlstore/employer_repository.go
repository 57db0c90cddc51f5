package sqlstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// EmployerRepository implements ports.EmployerRepository. The unique index
// on employers.user_id enforces one profile per user.
type EmployerRepository struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) *EmployerRepository {
	return &EmployerRepository{db: db}
}

func (r *EmployerRepository) Create(ctx context.Context, employer *domain.Employer) error {
	m := employerModel{
		UserID:      employer.UserID,
		CompanyName: employer.CompanyName,
		Description: employer.Description,
		Website:     employer.Website,
		Location:    employer.Location,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate(err, nil, domain.ErrEmployerExists, domain.ErrUserNotFound)
	}
	employer.ID = m.ID
	return nil
}

func (r *EmployerRepository) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	var m employerModel
	if err := r.db.WithContext(ctx).First(&m, "employer_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrEmployerNotFound, nil, nil)
	}
	return m.toDomain(), nil
}

func (r *EmployerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Employer, error) {
	var m employerModel
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err, domain.ErrEmployerNotFound, nil, nil)
	}
	return m.toDomain(), nil
}

func (r *EmployerRepository) Update(ctx context.Context, employer *domain.Employer) error {
	res := r.db.WithContext(ctx).Model(&employerModel{}).Where("employer_id = ?", employer.ID).Updates(map[string]any{
		"company_name": employer.CompanyName,
		"description":  employer.Description,
		"website":      employer.Website,
		"location":     employer.Location,
	})
	if res.Error != nil {
		return fmt.Errorf("update employer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEmployerNotFound
	}
	return nil
}
