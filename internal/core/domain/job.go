package domain

import "time"

// JobType is the kind of engagement a posting offers.
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobGig        JobType = "gig"
	JobTemporary  JobType = "temporary"
	JobInternship JobType = "internship"
)

func ParseJobType(s string) (JobType, error) {
	switch t := JobType(s); t {
	case JobFullTime, JobPartTime, JobGig, JobTemporary, JobInternship:
		return t, nil
	}
	return "", ErrInvalidJobType
}

// Employer is the company profile owned by one employer account.
type Employer struct {
	ID          int64  `json:"employer_id"`
	UserID      int64  `json:"user_id"`
	CompanyName string `json:"company_name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Job is a posting. IsActive is the soft-delete flag.
type Job struct {
	ID          int64     `json:"job_id"`
	EmployerID  int64     `json:"employer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	JobType     JobType   `json:"job_type"`
	Location    string    `json:"location,omitempty"`
	PayRange    string    `json:"pay_range,omitempty"`
	DatePosted  time.Time `json:"date_posted"`
	IsActive    bool      `json:"is_active"`
}

// JobListing is a Job joined with its employer and, depending on the query,
// an application count.
type JobListing struct {
	Job
	CompanyName      string
	EmployerUserID   int64
	ApplicationCount int64
}

// VisibleTo reports whether a can see the listing. Inactive jobs exist only
// for their employer and admins.
func (l JobListing) VisibleTo(a Actor) bool {
	return l.IsActive || a.Owns(l.EmployerUserID)
}
