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

const applicationDetailColumns = "applications.application_id, applications.job_id, applications.user_id, " +
	"applications.cover_letter, applications.status, applications.date_applied, " +
	"jobs.title AS job_title, employers.company_name, employers.user_id AS employer_user_id, " +
	"users.username AS applicant_username, users.first_name AS applicant_first, " +
	"users.last_name AS applicant_last, users.email AS applicant_email, users.resume_key"

type applicationRow struct {
	ApplicationID     int64
	JobID             int64
	UserID            int64
	CoverLetter       string
	Status            string
	DateApplied       time.Time
	JobTitle          string
	CompanyName       string
	EmployerUserID    int64
	ApplicantUsername string
	ApplicantFirst    string
	ApplicantLast     string
	ApplicantEmail    string
	ResumeKey         string
}

func (r applicationRow) toDomain() domain.ApplicationDetail {
	return domain.ApplicationDetail{
		Application: domain.Application{
			ID:          r.ApplicationID,
			JobID:       r.JobID,
			UserID:      r.UserID,
			CoverLetter: r.CoverLetter,
			Status:      domain.ApplicationStatus(r.Status),
			DateApplied: r.DateApplied,
		},
		JobTitle:          r.JobTitle,
		CompanyName:       r.CompanyName,
		EmployerUserID:    r.EmployerUserID,
		ApplicantUsername: r.ApplicantUsername,
		ApplicantFirst:    r.ApplicantFirst,
		ApplicantLast:     r.ApplicantLast,
		ApplicantEmail:    r.ApplicantEmail,
		ResumeKey:         r.ResumeKey,
	}
}

// ApplicationRepository implements ports.ApplicationRepository.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create relies on the (job_id, user_id) unique index: a concurrent second
// apply fails here rather than slipping past a pre-check.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	m := applicationModel{
		JobID:       app.JobID,
		UserID:      app.UserID,
		CoverLetter: app.CoverLetter,
		Status:      string(app.Status),
		DateApplied: app.DateApplied,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate(err, nil, domain.ErrAlreadyApplied, domain.ErrJobNotFound)
	}
	app.ID = m.ID
	return nil
}

func (r *ApplicationRepository) DeleteByJobAndUser(ctx context.Context, jobID, userID int64) error {
	res := r.db.WithContext(ctx).Where("job_id = ? AND user_id = ?", jobID, userID).Delete(&applicationModel{})
	if res.Error != nil {
		return fmt.Errorf("withdraw application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) details(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("applications").
		Select(applicationDetailColumns).
		Joins("JOIN jobs ON jobs.job_id = applications.job_id").
		Joins("JOIN employers ON employers.employer_id = jobs.employer_id").
		Joins("JOIN users ON users.user_id = applications.user_id")
}

func (r *ApplicationRepository) GetDetail(ctx context.Context, id int64) (*domain.ApplicationDetail, error) {
	var rows []applicationRow
	if err := r.details(ctx).Where("applications.application_id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrApplicationNotFound
	}
	d := rows[0].toDomain()
	return &d, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	res := r.db.WithContext(ctx).Model(&applicationModel{}).Where("application_id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("update application status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context, filter ports.ApplicationFilter) ([]domain.ApplicationDetail, error) {
	q := r.details(ctx)
	if filter.ApplicantID != 0 {
		q = q.Where("applications.user_id = ?", filter.ApplicantID)
	}
	if filter.EmployerUserID != 0 {
		q = q.Where("employers.user_id = ?", filter.EmployerUserID)
	}
	if filter.JobID != 0 {
		q = q.Where("applications.job_id = ?", filter.JobID)
	}

	var rows []applicationRow
	if err := q.Order("applications.date_applied DESC").Order("applications.application_id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	out := make([]domain.ApplicationDetail, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *ApplicationRepository) AppliedJobIDs(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&applicationModel{}).Where("user_id = ?", userID).Pluck("job_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("applied job ids: %w", err)
	}
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (r *ApplicationRepository) HasAppliedToEmployer(ctx context.Context, applicantID, employerUserID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("applications").
		Joins("JOIN jobs ON jobs.job_id = applications.job_id").
		Joins("JOIN employers ON employers.employer_id = jobs.employer_id").
		Where("applications.user_id = ? AND employers.user_id = ?", applicantID, employerUserID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check applicant employer link: %w", err)
	}
	return n > 0, nil
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	if err := r.db.WithContext(ctx).Model(&applicationModel{}).Select("status, COUNT(*) AS total").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count applications by status: %w", err)
	}
	out := make(map[domain.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.ApplicationStatus(row.Status)] = row.Total
	}
	return out, nil
}
