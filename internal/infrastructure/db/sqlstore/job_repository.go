package sqlstore

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

const jobListingColumns = "jobs.job_id, jobs.employer_id, jobs.title, jobs.description, jobs.job_type, " +
	"jobs.location, jobs.pay_range, jobs.date_posted, jobs.is_active, " +
	"employers.company_name, employers.user_id AS employer_user_id"

const applicationCountColumn = "(SELECT COUNT(*) FROM applications WHERE applications.job_id = jobs.job_id) AS application_count"

// jobRow is one row of the jobs/employers join.
type jobRow struct {
	JobID            int64
	EmployerID       int64
	Title            string
	Description      string
	JobType          string
	Location         string
	PayRange         string
	DatePosted       time.Time
	IsActive         bool
	CompanyName      string
	EmployerUserID   int64
	ApplicationCount int64
}

func (r jobRow) toDomain() domain.JobListing {
	return domain.JobListing{
		Job: domain.Job{
			ID:          r.JobID,
			EmployerID:  r.EmployerID,
			Title:       r.Title,
			Description: r.Description,
			JobType:     domain.JobType(r.JobType),
			Location:    r.Location,
			PayRange:    r.PayRange,
			DatePosted:  r.DatePosted,
			IsActive:    r.IsActive,
		},
		CompanyName:      r.CompanyName,
		EmployerUserID:   r.EmployerUserID,
		ApplicationCount: r.ApplicationCount,
	}
}

// JobRepository implements ports.JobRepository.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	m := jobModel{
		EmployerID:  job.EmployerID,
		Title:       job.Title,
		Description: job.Description,
		JobType:     string(job.JobType),
		Location:    job.Location,
		PayRange:    job.PayRange,
		DatePosted:  job.DatePosted,
		IsActive:    job.IsActive,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate(err, nil, nil, domain.ErrEmployerNotFound)
	}
	job.ID = m.ID
	return nil
}

func (r *JobRepository) listing(ctx context.Context, withCount bool) *gorm.DB {
	cols := jobListingColumns
	if withCount {
		cols += ", " + applicationCountColumn
	}
	return r.db.WithContext(ctx).
		Table("jobs").
		Select(cols).
		Joins("JOIN employers ON employers.employer_id = jobs.employer_id")
}

func (r *JobRepository) GetListing(ctx context.Context, id int64) (*domain.JobListing, error) {
	var rows []jobRow
	if err := r.listing(ctx, true).Where("jobs.job_id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrJobNotFound
	}
	l := rows[0].toDomain()
	return &l, nil
}

func (r *JobRepository) List(ctx context.Context, filter ports.JobFilter) ([]domain.JobListing, error) {
	q := r.listing(ctx, filter.WithApplicationCount)
	if filter.ActiveOnly {
		q = q.Where("jobs.is_active = ?", true)
	}
	if filter.EmployerUserID != 0 {
		q = q.Where("employers.user_id = ?", filter.EmployerUserID)
	}

	var rows []jobRow
	if err := q.Order("jobs.date_posted DESC").Order("jobs.job_id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	out := make([]domain.JobListing, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ToggleActive flips the flag with a single UPDATE so concurrent toggles
// never lose a write, then reads the new value in the same transaction.
func (r *JobRepository) ToggleActive(ctx context.Context, id, ownerUserID int64) (bool, error) {
	var active bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&jobModel{}).Where("job_id = ?", id)
		if ownerUserID != 0 {
			q = q.Where("employer_id IN (?)", tx.Model(&employerModel{}).Select("employer_id").Where("user_id = ?", ownerUserID))
		}
		res := q.Update("is_active", gorm.Expr("NOT is_active"))
		if res.Error != nil {
			return fmt.Errorf("toggle job: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrJobNotFound
		}
		return tx.Model(&jobModel{}).Select("is_active").Where("job_id = ?", id).Scan(&active).Error
	})
	if err != nil {
		return false, err
	}
	return active, nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&jobModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Count(ctx context.Context) (int64, int64, error) {
	var total, active int64
	if err := r.db.WithContext(ctx).Model(&jobModel{}).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("count jobs: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&jobModel{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, fmt.Errorf("count active jobs: %w", err)
	}
	return total, active, nil
}
