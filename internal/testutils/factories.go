package testutils

import (
	"fmt"

	"event-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all model factories for test suites
type FactorySet struct {
	Participant *ParticipantFactory
	Team        *TeamFactory
	Post        *PostFactory
	Challenge   *ChallengeFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Participant: NewParticipantFactory(),
		Team:        NewTeamFactory(),
		Post:        NewPostFactory(),
		Challenge:   NewChallengeFactory(),
	}
}

// ParticipantFactory provides methods to create test Participant data
type ParticipantFactory struct{}

// NewParticipantFactory creates a new ParticipantFactory
func NewParticipantFactory() *ParticipantFactory {
	return &ParticipantFactory{}
}

// Create creates a test Participant with default values
func (f *ParticipantFactory) Create() *models.Participant {
	id := uuid.NewString()
	return &models.Participant{
		ID:      id,
		Email:   fmt.Sprintf("pax-%s@example.com", id[:8]),
		NameWeb: "Jana Novakova",
	}
}

// WithName sets a custom display name for the participant
func (f *ParticipantFactory) WithName(name string) *models.Participant {
	p := f.Create()
	p.NameWeb = name
	return p
}

// WithEmail sets a custom email for the participant
func (f *ParticipantFactory) WithEmail(email string) *models.Participant {
	p := f.Create()
	p.Email = email
	return p
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a solo test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		TeamID:             uuid.NewString(),
		TeamName:           "Test Team",
		Member1:            uuid.NewString(),
		LocationVisibility: true,
	}
}

// WithMembers sets both members of the team
func (f *TeamFactory) WithMembers(member1, member2 string) *models.Team {
	team := f.Create()
	team.Member1 = member1
	if member2 != "" {
		team.Member2 = &member2
	}
	return team
}

// WithName sets a custom team name
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.TeamName = name
	return team
}

// PostFactory provides methods to create test Post data
type PostFactory struct{}

// NewPostFactory creates a new PostFactory
func NewPostFactory() *PostFactory {
	return &PostFactory{}
}

// Create creates a test challenge Post with default values
func (f *PostFactory) Create() *models.Post {
	return &models.Post{
		PostID:     uuid.NewString(),
		PaxID:      uuid.NewString(),
		TeamID:     uuid.NewString(),
		ActionType: models.ActionTypeChallenge,
		ActionName: "Test Challenge",
		Comment:    "done!",
		Created:    "2024-06-01 12:00:00",
		Files:      models.FileList{},
	}
}

// WithTeam sets the team the post belongs to
func (f *PostFactory) WithTeam(teamID string) *models.Post {
	post := f.Create()
	post.TeamID = teamID
	return post
}

// WithAction sets the action type and name
func (f *PostFactory) WithAction(actionType models.ActionType, actionName string) *models.Post {
	post := f.Create()
	post.ActionType = actionType
	post.ActionName = actionName
	return post
}

// ChallengeFactory provides methods to create test Challenge data
type ChallengeFactory struct{}

// NewChallengeFactory creates a new ChallengeFactory
func NewChallengeFactory() *ChallengeFactory {
	return &ChallengeFactory{}
}

// Create creates a test Challenge with default values
func (f *ChallengeFactory) Create() *models.Challenge {
	return &models.Challenge{
		Name:        "Test Challenge",
		Description: "A test challenge",
		Category:    "test",
		Points:      10,
	}
}

// WithNameAndPoints sets the name and point value
func (f *ChallengeFactory) WithNameAndPoints(name string, points int) *models.Challenge {
	challenge := f.Create()
	challenge.Name = name
	challenge.Points = points
	return challenge
}
