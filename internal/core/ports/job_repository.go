package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// JobFilter narrows job listings. Zero values mean "no filter".
type JobFilter struct {
	ActiveOnly     bool
	EmployerUserID int64
	// WithApplicationCount fills JobListing.ApplicationCount.
	WithApplicationCount bool
}

// JobRepository persists postings. Listings are ordered newest first.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetListing(ctx context.Context, id int64) (*domain.JobListing, error)
	List(ctx context.Context, filter JobFilter) ([]domain.JobListing, error)
	// ToggleActive flips is_active in a single statement and returns the new
	// value. When ownerUserID is non-zero only a job owned by that user is
	// affected; anything else yields domain.ErrJobNotFound.
	ToggleActive(ctx context.Context, id, ownerUserID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (total, active int64, err error)
}
