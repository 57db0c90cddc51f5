package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// ApplicationFilter narrows application listings. Zero values mean "any".
type ApplicationFilter struct {
	ApplicantID    int64
	EmployerUserID int64
	JobID          int64
}

// ApplicationRepository persists applications. The (job_id, user_id) pair is
// unique in the store; Create reports a violation as domain.ErrAlreadyApplied.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	// DeleteByJobAndUser returns domain.ErrApplicationNotFound when no row matched.
	DeleteByJobAndUser(ctx context.Context, jobID, userID int64) error
	GetDetail(ctx context.Context, id int64) (*domain.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
	// List returns matching applications ordered by date_applied descending.
	List(ctx context.Context, filter ApplicationFilter) ([]domain.ApplicationDetail, error)
	AppliedJobIDs(ctx context.Context, userID int64) (map[int64]struct{}, error)
	// HasAppliedToEmployer reports whether the applicant applied to any job
	// owned by employerUserID.
	HasAppliedToEmployer(ctx context.Context, applicantID, employerUserID int64) (bool, error)
	CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int64, error)
}
