package repository

import (
	"event-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository handles database operations for the point-bearing
// catalogs (challenges and checkpoints).
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListChallenges retrieves all challenges in stable insertion order.
// The ordering fixes which entry wins a prefix match.
func (r *CatalogRepository) ListChallenges() ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := r.db.Order("rowid").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

// ListCheckpoints retrieves all checkpoints in stable insertion order.
func (r *CatalogRepository) ListCheckpoints() ([]models.Checkpoint, error) {
	var checkpoints []models.Checkpoint
	if err := r.db.Order("rowid").Find(&checkpoints).Error; err != nil {
		return nil, err
	}
	return checkpoints, nil
}

// InsertChallenge inserts a challenge unless one with the same name
// already exists.
func (r *CatalogRepository) InsertChallenge(c *models.Challenge) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(c).Error
}

// InsertCheckpoint inserts a checkpoint unless one with the same name
// already exists.
func (r *CatalogRepository) InsertCheckpoint(c *models.Checkpoint) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(c).Error
}
