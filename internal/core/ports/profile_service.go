package ports

import (
	"context"
	"io"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// ProfileUpdate holds editable profile fields. Nil pointers leave a field
// unchanged; empty username or email are ignored.
type ProfileUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
}

type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ResumeFile is an open resume; the caller must close Body.
type ResumeFile struct {
	Key  string
	Body io.ReadCloser
}

type ProfileService interface {
	Get(ctx context.Context, actor domain.Actor) (*domain.User, error)
	Update(ctx context.Context, actor domain.Actor, in ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, actor domain.Actor, current, next string) error
	UploadResume(ctx context.Context, actor domain.Actor, in ResumeUpload) (string, error)
	DeleteResume(ctx context.Context, actor domain.Actor) error
	OpenResume(ctx context.Context, actor domain.Actor, userID int64) (*ResumeFile, error)
}
