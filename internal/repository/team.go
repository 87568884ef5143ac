package repository

import (
	"errors"

	"event-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Save inserts or fully replaces a team keyed by team_id. An existing
// row has all fields overwritten; this is a full update, not a patch.
func (r *TeamRepository) Save(team *models.Team) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}},
		UpdateAll: true,
	}).Create(team).Error
}

// GetByID retrieves a team by id; nil when absent.
func (r *TeamRepository) GetByID(teamID string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "team_id = ?", teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetForParticipant retrieves the (at most one) team where the
// participant is member1 or member2; nil when they have no team.
func (r *TeamRepository) GetForParticipant(paxID string) (*models.Team, error) {
	if paxID == "" {
		return nil, nil
	}

	var team models.Team
	err := r.db.First(&team, "member1 = ? OR member2 = ?", paxID, paxID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves all teams in insertion order.
func (r *TeamRepository) List() ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Visibility reads the current location visibility of a team.
func (r *TeamRepository) Visibility(teamID string) (bool, error) {
	team, err := r.GetByID(teamID)
	if err != nil {
		return false, err
	}
	if team == nil {
		return false, gorm.ErrRecordNotFound
	}
	return team.LocationVisibility, nil
}

// ToggleVisibility flips the location visibility of a team and returns
// the new value. Read and write are two statements; concurrent toggles
// resolve last-write-wins under SQLite's single-writer serialization.
func (r *TeamRepository) ToggleVisibility(teamID string) (bool, error) {
	current, err := r.Visibility(teamID)
	if err != nil {
		return false, err
	}

	next := !current
	err = r.db.Model(&models.Team{}).
		Where("team_id = ?", teamID).
		Update("location_visibility", next).Error
	if err != nil {
		return false, err
	}
	return next, nil
}
