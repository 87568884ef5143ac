package storage

import (
	"fmt"

	"event-portal-backend/internal/config"
	apperrors "event-portal-backend/internal/errors"
)

// Backend is the capability interface over a file storage substrate.
// Content is raw bytes; text is a caller-side view of the same bytes.
type Backend interface {
	Read(path string) ([]byte, error)
	Write(path string, content []byte) error
}

// newBackend selects the substrate once at construction time.
func newBackend(cfg *config.Config) (Backend, error) {
	switch cfg.FileSystem {
	case config.FileSystemLocal:
		return &LocalBackend{}, nil
	case config.FileSystemS3:
		return NewObjectBackend(cfg)
	default:
		return nil, &apperrors.ConfigurationError{
			Message: fmt.Sprintf("unknown file system: %s, use %s or %s",
				cfg.FileSystem, config.FileSystemS3, config.FileSystemLocal),
		}
	}
}
