package repository

import (
	"event-portal-backend/internal/database/models"
)

// ParticipantRepositoryInterface defines the interface for participant repository operations
type ParticipantRepositoryInterface interface {
	Upsert(p *models.Participant) error
	UpsertAll(participants []models.Participant) error
	GetByID(id string) (*models.Participant, error)
	GetByEmail(email string) (*models.Participant, error)
	Exists(email string) (bool, error)
	UpdateProfile(email, bio, emergencyContact string, photoPath *string) error
	List() ([]models.Participant, error)
	Emails() ([]string, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Save(team *models.Team) error
	GetByID(teamID string) (*models.Team, error)
	GetForParticipant(paxID string) (*models.Team, error)
	List() ([]models.Team, error)
	Visibility(teamID string) (bool, error)
	ToggleVisibility(teamID string) (bool, error)
}

// PostRepositoryInterface defines the interface for post repository operations
type PostRepositoryInterface interface {
	Create(post *models.Post) error
	GetByID(postID string) (*models.Post, error)
	ListByTeam(teamID string) ([]models.Post, error)
	List() ([]models.Post, error)
	CompletedActionNames(teamID string, actionType models.ActionType) ([]string, error)
}

// CatalogRepositoryInterface defines the interface for catalog repository operations
type CatalogRepositoryInterface interface {
	ListChallenges() ([]models.Challenge, error)
	ListCheckpoints() ([]models.Checkpoint, error)
	InsertChallenge(c *models.Challenge) error
	InsertCheckpoint(c *models.Checkpoint) error
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Append(loc *models.Location) error
	LatestForTeam(teamID string) (*models.Location, error)
	ListForTeam(teamID string) ([]models.Location, error)
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(n *models.Notification) error
	List() ([]models.Notification, error)
}
