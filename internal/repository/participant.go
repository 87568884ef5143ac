package repository

import (
	"errors"
	"strings"

	"event-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ParticipantRepository handles database operations for participants
type ParticipantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Upsert inserts a participant unless a row with the same id already
// exists; duplicates are silently ignored so a roster re-sync never
// overwrites profile fields.
func (r *ParticipantRepository) Upsert(p *models.Participant) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(p).Error
}

// UpsertAll bulk-inserts roster participants with insert-if-absent
// semantics. One bad row does not abort the batch.
func (r *ParticipantRepository) UpsertAll(participants []models.Participant) error {
	var firstErr error
	for i := range participants {
		if err := r.Upsert(&participants[i]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// GetByID retrieves a participant by id; nil when absent.
func (r *ParticipantRepository) GetByID(id string) (*models.Participant, error) {
	var p models.Participant
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByEmail retrieves a participant by email, compared lower-cased;
// nil when absent.
func (r *ParticipantRepository) GetByEmail(email string) (*models.Participant, error) {
	var p models.Participant
	err := r.db.First(&p, "lower(email) = ?", strings.ToLower(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Exists reports whether an email belongs to a roster participant.
func (r *ParticipantRepository) Exists(email string) (bool, error) {
	p, err := r.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// UpdateProfile sets bio and emergency contact (and the photo path when
// non-nil) keyed by email. The row must already exist.
func (r *ParticipantRepository) UpdateProfile(email, bio, emergencyContact string, photoPath *string) error {
	values := map[string]interface{}{
		"bio":               bio,
		"emergency_contact": emergencyContact,
	}
	if photoPath != nil {
		values["photo"] = *photoPath
	}

	res := r.db.Model(&models.Participant{}).
		Where("lower(email) = ?", strings.ToLower(email)).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves all participants in insertion order.
func (r *ParticipantRepository) List() ([]models.Participant, error) {
	var participants []models.Participant
	if err := r.db.Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// Emails returns the email of every roster participant.
func (r *ParticipantRepository) Emails() ([]string, error) {
	var emails []string
	if err := r.db.Model(&models.Participant{}).Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
