package service

import (
	"testing"

	"event-portal-backend/internal/accounts"
	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ScoringServiceTestSuite tests aggregation and availability
type ScoringServiceTestSuite struct {
	testutils.BaseTestSuite
	service         *ScoringService
	participantRepo *repository.ParticipantRepository
	teamRepo        *repository.TeamRepository
	postRepo        *repository.PostRepository
	catalogRepo     *repository.CatalogRepository
	factories       *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ScoringServiceTestSuite) SetupSuite() {
	suite.BaseTestSuite.SetupSuite()

	suite.participantRepo = repository.NewParticipantRepository(suite.DB)
	suite.teamRepo = repository.NewTeamRepository(suite.DB)
	suite.postRepo = repository.NewPostRepository(suite.DB)
	suite.catalogRepo = repository.NewCatalogRepository(suite.DB)
	suite.factories = testutils.NewFactorySet()

	accountStore, err := accounts.Open("nonexistent-accounts.yaml")
	suite.Require().NoError(err)

	suite.service = NewScoringService(
		suite.teamRepo,
		suite.postRepo,
		suite.catalogRepo,
		suite.participantRepo,
		accountStore,
	)
}

func (suite *ScoringServiceTestSuite) addParticipant(id, name string) {
	p := suite.factories.Participant.WithName(name)
	p.ID = id
	suite.Require().NoError(suite.participantRepo.Upsert(p))
}

func (suite *ScoringServiceTestSuite) addPost(teamID string, actionType models.ActionType, name string) {
	post := suite.factories.Post.WithAction(actionType, name)
	post.TeamID = teamID
	suite.Require().NoError(suite.postRepo.Create(post))
}

// TestTeamOverviewSumsPoints tests point resolution across action
// types, including the prefix match and the zero-scored story
func (suite *ScoringServiceTestSuite) TestTeamOverviewSumsPoints() {
	suite.addParticipant("pax-1", "Jana")
	suite.addParticipant("pax-2", "Petr")
	team := suite.factories.Team.WithMembers("pax-1", "pax-2")
	suite.Require().NoError(suite.teamRepo.Save(team))

	suite.Require().NoError(suite.catalogRepo.InsertChallenge(
		suite.factories.Challenge.WithNameAndPoints("Climb a tree", 10)))
	suite.Require().NoError(suite.catalogRepo.InsertCheckpoint(&models.Checkpoint{
		Name: "Checkpoint 3 - bonus", Description: "hill", Points: 15,
	}))

	suite.addPost(team.TeamID, models.ActionTypeChallenge, "Climb a tree")
	suite.addPost(team.TeamID, models.ActionTypeCheckpoint, "Checkpoint 3")
	suite.addPost(team.TeamID, models.ActionTypeStory, "Our day")
	suite.addPost(team.TeamID, models.ActionTypeChallenge, "Unknown action")

	overview, err := suite.service.TeamOverview(team.TeamID)
	suite.Require().NoError(err)
	suite.Equal(25, overview.Points)
	suite.Len(overview.Posts, 4)
	suite.Equal("Jana", overview.Member1Name)
	suite.Equal("Petr", overview.Member2Name)
}

// TestTeamOverviewMissingTeam tests the not-found translation
func (suite *ScoringServiceTestSuite) TestTeamOverviewMissingTeam() {
	_, err := suite.service.TeamOverview("missing")
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestLeaderboardAggregatesEveryTeamOnce tests the leaderboard join
func (suite *ScoringServiceTestSuite) TestLeaderboardAggregatesEveryTeamOnce() {
	teamA := suite.factories.Team.WithMembers("pax-1", "")
	teamB := suite.factories.Team.WithMembers("pax-2", "")
	suite.Require().NoError(suite.teamRepo.Save(teamA))
	suite.Require().NoError(suite.teamRepo.Save(teamB))

	suite.Require().NoError(suite.catalogRepo.InsertChallenge(
		suite.factories.Challenge.WithNameAndPoints("Climb a tree", 10)))

	suite.addPost(teamA.TeamID, models.ActionTypeChallenge, "Climb a tree")
	suite.addPost(teamA.TeamID, models.ActionTypeChallenge, "Climb a tree")

	board, err := suite.service.Leaderboard()
	suite.Require().NoError(err)
	suite.Require().Len(board, 2)

	byID := make(map[string]TeamOverview, 2)
	for _, entry := range board {
		byID[entry.TeamID] = entry
	}
	suite.Equal(20, byID[teamA.TeamID].Points)
	suite.Equal(0, byID[teamB.TeamID].Points)
}

// TestAvailableActionsFiltersExactNamesOnly tests that only exact
// completed names disappear: a post stored under a prefix of the
// catalog name does not mark the entry done
func (suite *ScoringServiceTestSuite) TestAvailableActionsFiltersExactNamesOnly() {
	team := suite.factories.Team.WithMembers("pax-1", "")
	suite.Require().NoError(suite.teamRepo.Save(team))

	suite.Require().NoError(suite.catalogRepo.InsertChallenge(
		suite.factories.Challenge.WithNameAndPoints("Climb a tree", 10)))
	suite.Require().NoError(suite.catalogRepo.InsertChallenge(
		suite.factories.Challenge.WithNameAndPoints("Swim a lake - hard", 20)))

	suite.addPost(team.TeamID, models.ActionTypeChallenge, "Climb a tree")
	// Stored under a prefix of the catalog entry, not the full name
	suite.addPost(team.TeamID, models.ActionTypeChallenge, "Swim a lake")

	available, err := suite.service.AvailableActions("pax-1", models.ActionTypeChallenge)
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.Equal("Swim a lake - hard", available[0].Name)
}

// TestAvailableActionsStoryRejected tests that stories have no catalog
func (suite *ScoringServiceTestSuite) TestAvailableActionsStoryRejected() {
	_, err := suite.service.AvailableActions("pax-1", models.ActionTypeStory)
	var validationErr *apperrors.ValidationError
	suite.ErrorAs(err, &validationErr)
}

// TestAvailableActionsTeamlessParticipant tests that a participant
// without a team sees the whole catalog
func (suite *ScoringServiceTestSuite) TestAvailableActionsTeamlessParticipant() {
	suite.Require().NoError(suite.catalogRepo.InsertChallenge(
		suite.factories.Challenge.WithNameAndPoints("Climb a tree", 10)))

	available, err := suite.service.AvailableActions("loner", models.ActionTypeChallenge)
	suite.Require().NoError(err)
	suite.Len(available, 1)
}

// TestAvailableTeammatesComposition tests the picker order: current
// teammate, the no-partner option, then free participants
func (suite *ScoringServiceTestSuite) TestAvailableTeammatesComposition() {
	suite.addParticipant("pax-1", "Jana")
	suite.addParticipant("pax-2", "Petr")
	suite.addParticipant("pax-3", "Adam")
	suite.addParticipant("pax-4", "Zora")
	team := suite.factories.Team.WithMembers("pax-1", "pax-2")
	suite.Require().NoError(suite.teamRepo.Save(team))

	candidates, err := suite.service.AvailableTeammates("pax-1")
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 4)

	suite.Equal("pax-2", candidates[0].ID)
	suite.Equal("Petr", candidates[0].Name)
	suite.Equal(NoPartnerID, candidates[1].ID)
	suite.Equal("Adam", candidates[2].Name)
	suite.Equal("Zora", candidates[3].Name)
}

// TestAvailableTeammatesUnteamedRequester tests a requester with no
// team: only the sentinel and free participants appear
func (suite *ScoringServiceTestSuite) TestAvailableTeammatesUnteamedRequester() {
	suite.addParticipant("pax-1", "Jana")
	suite.addParticipant("pax-2", "Petr")
	suite.addParticipant("pax-3", "Adam")
	team := suite.factories.Team.WithMembers("pax-2", "")
	suite.Require().NoError(suite.teamRepo.Save(team))

	candidates, err := suite.service.AvailableTeammates("pax-1")
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 2)
	suite.Equal(NoPartnerID, candidates[0].ID)
	suite.Equal("pax-3", candidates[1].ID)
}

// TestScoringServiceTestSuite runs the test suite
func TestScoringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringServiceTestSuite))
}
