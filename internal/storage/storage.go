package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	apperrors "permitpro-backend/internal/errors"

	"github.com/google/uuid"
)

// Storage stores uploaded document bytes and hands back the path recorded on the document
type Storage interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Open(ctx context.Context, storedPath string) (io.ReadCloser, error)
	Remove(ctx context.Context, storedPath string) error
}

const maxExtLen = 16

// NewStoredName builds a collision-free name: <unix-millis>-<uuid><ext>
func NewStoredName(originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if len(ext) > maxExtLen || strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString(), ext)
}

// cleanStoredPath rejects anything that is not a bare stored name
func cleanStoredPath(storedPath string) (string, error) {
	name := path.Base(strings.ReplaceAll(storedPath, `\`, "/"))
	if name != storedPath || name == "." || name == "/" || name == ".." || name == "" {
		return "", apperrors.ErrStoredFileNotFound
	}
	return name, nil
}

// Drivers
const (
	DriverFilesystem = "filesystem"
	DriverS3         = "s3"
)

// Options selects and configures a storage driver
type Options struct {
	Driver     string
	UploadsDir string
	S3         S3Options
}

// New builds the storage driver named by opts.Driver. An empty driver means filesystem.
func New(ctx context.Context, opts Options) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverFilesystem:
		store, err := NewOSStorage(opts.UploadsDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverS3:
		store, err := NewS3StorageFromConfig(ctx, opts.S3)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStorage, opts.Driver)
	}
}
