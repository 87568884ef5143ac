package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/storage"
)

// NoPartnerID is the sentinel teammate value meaning "racing solo". It
// is translated to an absent member2, never persisted.
const NoPartnerID = "-1"

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	files     *storage.Store
	topDir    string
	validator *validator.Validate
	log       *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	files *storage.Store,
	topDir string,
	validate *validator.Validate,
) *TeamService {
	return &TeamService{
		repo:      repo,
		files:     files,
		topDir:    topDir,
		validator: validate,
		log:       logger.New(),
	}
}

// SaveTeamRequest creates a team or fully replaces an existing one.
type SaveTeamRequest struct {
	TeamID    string  `json:"team_id"` // empty for a new team
	TeamName  string  `json:"team_name" validate:"required"`
	TeamMotto string  `json:"team_motto"`
	TeamWeb   string  `json:"team_web"`
	Member1   string  `json:"member1" validate:"required"`
	Member2   string  `json:"member2"` // participant id, NoPartnerID or empty
	Photo     *Upload `json:"-"`
}

// Save inserts or replaces the team row. An existing team_id has all
// fields overwritten. The photo, when attached, is written to storage
// before the row references its path.
func (s *TeamService) Save(req *SaveTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	teamID := req.TeamID
	if teamID == "" {
		teamID = uuid.NewString()
	}

	var member2 *string
	if req.Member2 != "" && req.Member2 != NoPartnerID {
		member2 = &req.Member2
	}

	var photoPath string
	if req.Photo != nil {
		content, err := io.ReadAll(req.Photo.Body)
		if err != nil {
			return nil, fmt.Errorf("read photo: %w", err)
		}
		photoPath = strings.Join([]string{s.topDir, "teams", slug.Make(req.TeamName), req.Photo.Name}, "/")
		if err := s.files.WriteFile(photoPath, content); err != nil {
			return nil, err
		}
	}

	team := &models.Team{
		TeamID:             teamID,
		TeamName:           req.TeamName,
		Member1:            req.Member1,
		Member2:            member2,
		TeamMotto:          req.TeamMotto,
		TeamWeb:            req.TeamWeb,
		TeamPhoto:          photoPath,
		LocationVisibility: true,
	}
	if err := s.repo.Save(team); err != nil {
		return nil, fmt.Errorf("save team: %w", err)
	}
	return team, nil
}

// GetByID retrieves a team; ErrTeamNotFound when absent.
func (s *TeamService) GetByID(teamID string) (*models.Team, error) {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if team == nil {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

// GetForParticipant retrieves the participant's team, or nil when they
// have none. Absence is a normal lookup result here, not an error.
func (s *TeamService) GetForParticipant(paxID string) (*models.Team, error) {
	return s.repo.GetForParticipant(paxID)
}

// List retrieves all teams sorted by name, diacritics folded.
func (s *TeamService) List() ([]models.Team, error) {
	teams, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	sortTeamsByName(teams)
	return teams, nil
}

// Visibility reads the location visibility of a team.
func (s *TeamService) Visibility(teamID string) (bool, error) {
	visible, err := s.repo.Visibility(teamID)
	if err != nil {
		return false, translateTeamErr(err)
	}
	return visible, nil
}

// ToggleVisibility flips the location visibility and returns the new
// value. Concurrent toggles resolve last-write-wins.
func (s *TeamService) ToggleVisibility(teamID string) (bool, error) {
	visible, err := s.repo.ToggleVisibility(teamID)
	if err != nil {
		return false, translateTeamErr(err)
	}
	return visible, nil
}
