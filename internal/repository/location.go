package repository

import (
	"errors"

	"event-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// LocationRepository handles database operations for track points
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Append inserts one track point. The table is append-only: history is
// never updated or deleted.
func (r *LocationRepository) Append(loc *models.Location) error {
	return r.db.Create(loc).Error
}

// LatestForTeam retrieves the most recent track point of a team; nil
// when the team has never reported a location.
func (r *LocationRepository) LatestForTeam(teamID string) (*models.Location, error) {
	var loc models.Location
	err := r.db.
		Where("team_id = ?", teamID).
		Order("date DESC").
		Limit(1).
		Take(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// ListForTeam retrieves the full track of a team ordered by date.
func (r *LocationRepository) ListForTeam(teamID string) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.
		Where("team_id = ?", teamID).
		Order("date").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
