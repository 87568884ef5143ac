package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/repository"
)

// LocationService handles business logic for team track points
type LocationService struct {
	repo      repository.LocationRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewLocationService creates a new location service
func NewLocationService(
	repo repository.LocationRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	validate *validator.Validate,
) *LocationService {
	return &LocationService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validate,
		now:       time.Now,
	}
}

// SaveLocationRequest appends one track point for the sender's team.
type SaveLocationRequest struct {
	PaxID            string  `json:"pax_id" validate:"required"`
	Username         string  `json:"username" validate:"required"`
	Comment          string  `json:"comment"`
	Longitude        float64 `json:"longitude"`
	Latitude         float64 `json:"latitude"`
	Accuracy         string  `json:"accuracy"`
	Altitude         string  `json:"altitude"`
	AltitudeAccuracy string  `json:"altitude_accuracy"`
	Heading          string  `json:"heading"`
	Speed            string  `json:"speed"`
	Date             string  `json:"date"`
}

// Save appends a track point. History is never rewritten. A sender
// without a team violates the caller contract.
func (s *LocationService) Save(req *SaveLocationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetForParticipant(req.PaxID)
	if err != nil {
		return fmt.Errorf("resolve team: %w", err)
	}
	if team == nil {
		return apperrors.ErrNoTeam
	}

	date := req.Date
	if date == "" {
		date = s.now().Format(createdTimeLayout)
	}

	loc := &models.Location{
		Username:         req.Username,
		TeamID:           team.TeamID,
		Comment:          req.Comment,
		Longitude:        req.Longitude,
		Latitude:         req.Latitude,
		Accuracy:         req.Accuracy,
		Altitude:         req.Altitude,
		AltitudeAccuracy: req.AltitudeAccuracy,
		Heading:          req.Heading,
		Speed:            req.Speed,
		Date:             date,
	}
	if err := s.repo.Append(loc); err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	return nil
}

// Latest returns the most recent track point of a team, nil when the
// team never reported one.
func (s *LocationService) Latest(teamID string) (*models.Location, error) {
	return s.repo.LatestForTeam(teamID)
}

// Track returns the full recorded track of a team in report order.
func (s *LocationService) Track(teamID string) ([]models.Location, error) {
	return s.repo.ListForTeam(teamID)
}
