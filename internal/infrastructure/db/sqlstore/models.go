package sqlstore

import (
	"time"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

type userModel struct {
	ID           int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string `gorm:"size:100;not null;uniqueIndex"`
	Email        string `gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:'applicant';check:users_role_check,role IN ('applicant', 'employer', 'admin')"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	Phone        string `gorm:"size:20"`
	ResumeKey    string `gorm:"size:500"`
	CreatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Phone:        m.Phone,
		ResumeKey:    m.ResumeKey,
		CreatedAt:    m.CreatedAt,
	}
}

type employerModel struct {
	ID          int64      `gorm:"column:employer_id;primaryKey;autoIncrement"`
	UserID      int64      `gorm:"not null;uniqueIndex"`
	User        *userModel `gorm:"constraint:OnDelete:CASCADE"`
	CompanyName string     `gorm:"size:150;not null"`
	Description string     `gorm:"type:text"`
	Website     string     `gorm:"size:200"`
	Location    string     `gorm:"size:100"`
}

func (employerModel) TableName() string { return "employers" }

func (m *employerModel) toDomain() *domain.Employer {
	return &domain.Employer{
		ID:          m.ID,
		UserID:      m.UserID,
		CompanyName: m.CompanyName,
		Description: m.Description,
		Website:     m.Website,
		Location:    m.Location,
	}
}

type jobModel struct {
	ID          int64          `gorm:"column:job_id;primaryKey;autoIncrement"`
	EmployerID  int64          `gorm:"not null;index"`
	Employer    *employerModel `gorm:"constraint:OnDelete:CASCADE"`
	Title       string         `gorm:"size:150;not null"`
	Description string         `gorm:"type:text;not null"`
	JobType     string         `gorm:"size:50;not null;index:idx_jobs_type;check:jobs_job_type_check,job_type IN ('full-time', 'part-time', 'gig', 'temporary', 'internship')"`
	Location    string         `gorm:"size:100;index:idx_jobs_location"`
	PayRange    string         `gorm:"size:50"`
	DatePosted  time.Time      `gorm:"not null"`
	IsActive    bool           `gorm:"not null;default:true"`
}

func (jobModel) TableName() string { return "jobs" }

type applicationModel struct {
	ID          int64      `gorm:"column:application_id;primaryKey;autoIncrement"`
	JobID       int64      `gorm:"not null;uniqueIndex:idx_applications_job_user"`
	Job         *jobModel  `gorm:"constraint:OnDelete:CASCADE"`
	UserID      int64      `gorm:"not null;uniqueIndex:idx_applications_job_user;index:idx_applications_user"`
	User        *userModel `gorm:"constraint:OnDelete:CASCADE"`
	CoverLetter string     `gorm:"type:text;not null"`
	Status      string     `gorm:"size:20;not null;default:'pending';check:applications_status_check,status IN ('pending', 'reviewed', 'accepted', 'rejected')"`
	DateApplied time.Time  `gorm:"not null"`
}

func (applicationModel) TableName() string { return "applications" }

type notificationModel struct {
	ID        int64      `gorm:"column:notification_id;primaryKey;autoIncrement"`
	UserID    int64      `gorm:"not null;index:idx_notifications_user"`
	User      *userModel `gorm:"constraint:OnDelete:CASCADE"`
	Message   string     `gorm:"type:text;not null"`
	IsRead    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (notificationModel) TableName() string { return "notifications" }

func (m *notificationModel) toDomain() domain.Notification {
	return domain.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

type financialResourceModel struct {
	ID           int64  `gorm:"column:resource_id;primaryKey;autoIncrement"`
	Name         string `gorm:"size:150;not null"`
	Website      string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	ResourceType string `gorm:"size:50;not null;index:idx_financial_resources_type;check:financial_resources_type_check,resource_type IN ('credit', 'budget', 'invest')"`
	Likes        int64  `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

func (financialResourceModel) TableName() string { return "financial_resources" }

func (m *financialResourceModel) toDomain() *domain.FinancialResource {
	return &domain.FinancialResource{
		ID:           m.ID,
		Name:         m.Name,
		Website:      m.Website,
		Description:  m.Description,
		ResourceType: domain.ResourceType(m.ResourceType),
		Likes:        m.Likes,
		CreatedAt:    m.CreatedAt,
	}
}

type resourceLikeModel struct {
	ID         int64                   `gorm:"column:like_id;primaryKey;autoIncrement"`
	ResourceID int64                   `gorm:"not null;uniqueIndex:idx_resource_likes_resource_user"`
	Resource   *financialResourceModel `gorm:"constraint:OnDelete:CASCADE"`
	UserID     int64                   `gorm:"not null;uniqueIndex:idx_resource_likes_resource_user;index"`
	User       *userModel              `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

func (resourceLikeModel) TableName() string { return "resource_likes" }
