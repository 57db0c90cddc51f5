// Package storage implements ports.FileStore on local disk and on S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// ErrInvalidKey is returned for keys that are not a plain file name.
var ErrInvalidKey = errors.New("storage: invalid object key")

// LocalStore keeps objects as files in a single directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes to a temporary file first so readers never see a partial object.
func (s *LocalStore) Save(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ports.ErrObjectNotFound
		}
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	return f, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Ping reports whether the upload directory is still usable.
func (s *LocalStore) Ping(context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

func (s *LocalStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || filepath.Base(key) != key {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.dir, key), nil
}
