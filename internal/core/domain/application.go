package domain

import "time"

// ApplicationStatus is the review state of an application. Any status may be
// set from any other; there is no terminal state.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every status in display order.
var ApplicationStatuses = []ApplicationStatus{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	for _, st := range ApplicationStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// Application links one applicant to one job.
type Application struct {
	ID          int64             `json:"application_id"`
	JobID       int64             `json:"job_id"`
	UserID      int64             `json:"user_id"`
	CoverLetter string            `json:"cover_letter"`
	Status      ApplicationStatus `json:"status"`
	DateApplied time.Time         `json:"date_applied"`
}

// ApplicationDetail is an Application joined with its job, employer and
// applicant.
type ApplicationDetail struct {
	Application
	JobTitle          string
	CompanyName       string
	EmployerUserID    int64
	ApplicantUsername string
	ApplicantFirst    string
	ApplicantLast     string
	ApplicantEmail    string
	ResumeKey         string
}

func (d ApplicationDetail) ApplicantName() string {
	return DisplayName(d.ApplicantFirst, d.ApplicantLast, d.ApplicantUsername)
}

// Notification is a message addressed to a user.
type Notification struct {
	ID        int64     `json:"notification_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
