package service

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"event-portal-backend/internal/cache"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/logger"
)

// MaintenanceService restores database backups. A backup archive holds
// the contents of the data directory for one event year.
type MaintenanceService struct {
	backupDir string
	dataDir   string
	log       *logger.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(backupDir, dataDir string) *MaintenanceService {
	return &MaintenanceService{
		backupDir: backupDir,
		dataDir:   dataDir,
		log:       logger.New(),
	}
}

// ListBackups returns the archive names available for restore.
func (s *MaintenanceService) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".zip") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// RestoreBackup overwrites the data directory with the contents of the
// named archive and drops every bounded cache. The caller must re-open
// the database afterwards; the old connection still points at the
// replaced file.
func (s *MaintenanceService) RestoreBackup(backupFile string) error {
	if backupFile != filepath.Base(backupFile) {
		return &apperrors.ValidationError{Field: "backup_file", Message: "must be a plain file name"}
	}

	zipPath := filepath.Join(s.backupDir, backupFile)
	if _, err := os.Stat(zipPath); os.IsNotExist(err) {
		return &apperrors.NotFoundError{Entity: "backup"}
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open backup %s: %w", backupFile, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if err := s.extract(file); err != nil {
			return err
		}
	}

	cache.FlushAll()
	s.log.WithField("backup", backupFile).Info("backup restored")
	return nil
}

func (s *MaintenanceService) extract(file *zip.File) error {
	target := filepath.Join(s.dataDir, file.Name)
	if !strings.HasPrefix(target, filepath.Clean(s.dataDir)+string(os.PathSeparator)) {
		return &apperrors.ValidationError{Field: "backup_file", Message: "archive entry escapes data directory"}
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", file.Name, err)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", file.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("extract %s: %w", file.Name, err)
	}
	return nil
}
