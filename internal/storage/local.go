package storage

import (
	"os"
	"path/filepath"

	apperrors "event-portal-backend/internal/errors"
)

// LocalBackend stores files on the local filesystem. Also serves the
// bundled static/ assets regardless of the configured substrate.
type LocalBackend struct{}

// Read returns the file contents.
func (b *LocalBackend) Read(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &apperrors.StorageFault{Op: "read", Path: path, Err: err}
	}
	return content, nil
}

// Write stores the content, creating parent directories as needed.
func (b *LocalBackend) Write(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &apperrors.StorageFault{Op: "write", Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return &apperrors.StorageFault{Op: "write", Path: path, Err: err}
	}
	return nil
}
