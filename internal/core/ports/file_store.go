package ports

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by FileStore.Open for unknown keys.
var ErrObjectNotFound = errors.New("object not found")

// FileStore keeps opaque blobs addressed by key.
type FileStore interface {
	Save(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
