package handler

import (
	"time"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth and users ---

type registerRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=150"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"access_token"`
	User    *domain.User `json:"user"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=150"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type profileUpdateRequest struct {
	Username  *string `json:"username"   validate:"omitempty,max=100"`
	Email     *string `json:"email"      validate:"omitempty,max=150"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=100"`
	Phone     *string `json:"phone"      validate:"omitempty,max=20"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"`
}

type verifyPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type verifyPasswordResponse struct {
	Valid bool `json:"valid"`
}

type resumeResponse struct {
	Filename  string `json:"filename"`
	ResumeKey string `json:"resume_key"`
}

// --- Employers ---

type employerRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=150"`
	Description string `json:"description"`
	Website     string `json:"website"      validate:"omitempty,max=200"`
	Location    string `json:"location"     validate:"omitempty,max=100"`
}

// --- Jobs and applications ---

type createJobRequest struct {
	EmployerID  int64  `json:"employer_id"`
	Title       string `json:"title"       validate:"required,max=150"`
	Description string `json:"description" validate:"required"`
	JobType     string `json:"job_type"    validate:"required"`
	Location    string `json:"location"    validate:"omitempty,max=100"`
	PayRange    string `json:"pay_range"   validate:"omitempty,max=50"`
}

type jobResponse struct {
	JobID            int64          `json:"job_id"`
	EmployerID       int64          `json:"employer_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	JobType          domain.JobType `json:"job_type"`
	Location         string         `json:"location"`
	PayRange         string         `json:"pay_range"`
	DatePosted       time.Time      `json:"date_posted"`
	IsActive         bool           `json:"is_active"`
	CompanyName      string         `json:"company_name"`
	ApplicationCount *int64         `json:"application_count,omitempty"`
	HasApplied       *bool          `json:"has_applied,omitempty"`
}

type toggleResponse struct {
	JobID    int64 `json:"job_id"`
	IsActive bool  `json:"is_active"`
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type applicationResponse struct {
	ApplicationID  int64                    `json:"application_id"`
	JobID          int64                    `json:"job_id"`
	UserID         int64                    `json:"user_id"`
	JobTitle       string                   `json:"job_title"`
	CompanyName    string                   `json:"company_name"`
	CoverLetter    string                   `json:"cover_letter"`
	Status         domain.ApplicationStatus `json:"status"`
	DateApplied    time.Time                `json:"date_applied"`
	ApplicantName  string                   `json:"applicant_name,omitempty"`
	ApplicantEmail string                   `json:"applicant_email,omitempty"`
	HasResume      bool                     `json:"has_resume"`
}

// --- Financial literacy ---

type resourceRequest struct {
	Name         string `json:"name"          validate:"required,max=150"`
	Website      string `json:"website"       validate:"required,max=255"`
	Description  string `json:"description"`
	ResourceType string `json:"resource_type" validate:"required"`
}

type resourceResponse struct {
	domain.FinancialResource
	LikedByMe *bool `json:"liked_by_me,omitempty"`
}

type likeResponse struct {
	ResourceID int64 `json:"resource_id"`
	Likes      int64 `json:"likes"`
}

// --- Admin ---

type dashboardResponse struct {
	UsersByRole          map[domain.Role]int64              `json:"users_by_role"`
	TotalJobs            int64                              `json:"total_jobs"`
	ActiveJobs           int64                              `json:"active_jobs"`
	ApplicationsByStatus map[domain.ApplicationStatus]int64 `json:"applications_by_status"`
	ResourcesByType      map[domain.ResourceType]int64      `json:"resources_by_type"`
	TotalLikes           int64                              `json:"total_likes"`
}
