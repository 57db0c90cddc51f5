package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// CreateJobInput carries a new posting. EmployerID is only honoured for
// admins; employers always post under their own profile.
type CreateJobInput struct {
	EmployerID  int64
	Title       string
	Description string
	JobType     string
	Location    string
	PayRange    string
}

// JobCard is a public listing entry. HasApplied is set only when the viewer
// is an applicant.
type JobCard struct {
	domain.JobListing
	HasApplied *bool
}

type JobService interface {
	Create(ctx context.Context, actor domain.Actor, in CreateJobInput) (*domain.JobListing, error)
	// Get returns active jobs to anyone and inactive ones only to their
	// owner or an admin. viewer is the zero Actor for anonymous callers.
	Get(ctx context.Context, viewer domain.Actor, id int64) (*domain.JobListing, error)
	ListActive(ctx context.Context, viewer domain.Actor) ([]JobCard, error)
	ListForEmployer(ctx context.Context, actor domain.Actor) ([]domain.JobListing, error)
	ToggleActive(ctx context.Context, actor domain.Actor, id int64) (bool, error)
}
