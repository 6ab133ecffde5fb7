package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	apperrors "permitpro-backend/internal/errors"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// FilesystemStorage keeps documents as files in a billy filesystem
type FilesystemStorage struct {
	fs  billy.Filesystem
	now func() time.Time
}

// NewFilesystemStorage wraps an existing billy filesystem
func NewFilesystemStorage(fs billy.Filesystem) *FilesystemStorage {
	return &FilesystemStorage{fs: fs, now: time.Now}
}

// NewOSStorage stores documents under dir on the local disk, creating it if needed
func NewOSStorage(dir string) (*FilesystemStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %q: %w", dir, err)
	}
	return NewFilesystemStorage(osfs.New(dir)), nil
}

// Save writes the reader to a freshly named file
func (s *FilesystemStorage) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := NewStoredName(originalName, s.now())

	f, err := s.fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(name)
		return "", fmt.Errorf("write %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(name)
		return "", fmt.Errorf("close %q: %w", name, err)
	}
	return name, nil
}

// Open streams a stored file back
func (s *FilesystemStorage) Open(ctx context.Context, storedPath string) (io.ReadCloser, error) {
	name, err := cleanStoredPath(storedPath)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrStoredFileNotFound
		}
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	return f, nil
}

// Remove deletes a stored file
func (s *FilesystemStorage) Remove(ctx context.Context, storedPath string) error {
	name, err := cleanStoredPath(storedPath)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(name); err != nil {
		if os.IsNotExist(err) {
			return apperrors.ErrStoredFileNotFound
		}
		return fmt.Errorf("remove %q: %w", name, err)
	}
	return nil
}
