package testutils

import (
	"path/filepath"
	"testing"

	"event-portal-backend/internal/cache"
	"event-portal-backend/internal/database"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// BaseTestSuite carries a throwaway SQLite database per suite. Each
// test starts with empty tables and empty caches.
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupTestDB opens a fresh database under a per-test temp directory
// with the full schema applied.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(path, &database.Options{
		LogLevel: gormlogger.Silent,
	})
	require.NoError(t, err, "failed to initialize test database")
	return db
}

// SetupSuite opens the suite database.
func (s *BaseTestSuite) SetupSuite() {
	s.DB = SetupTestDB(s.T())
}

// SetupTest clears tables and caches so tests cannot leak into each
// other.
func (s *BaseTestSuite) SetupTest() {
	s.CleanTestDB()
	cache.FlushAll()
}

// CleanTestDB deletes all rows from every known table.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"posts",
		"locations",
		"teams",
		"participants",
		"challenges",
		"checkpoints",
		"notifications",
	}
	for _, table := range tables {
		s.DB.Exec(`DELETE FROM ` + table)
	}
}
