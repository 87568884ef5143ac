package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"event-portal-backend/internal/accounts"
	"event-portal-backend/internal/config"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/roster"
	"event-portal-backend/internal/storage"
	"event-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type staticRoster []roster.Record

func (r staticRoster) FetchParticipants(_ context.Context) ([]roster.Record, error) {
	return r, nil
}

// ParticipantServiceTestSuite tests the ParticipantService
type ParticipantServiceTestSuite struct {
	testutils.BaseTestSuite
	service  *ParticipantService
	repo     *repository.ParticipantRepository
	teamRepo *repository.TeamRepository
	accounts *accounts.Store
}

// SetupSuite runs before all tests in the suite
func (suite *ParticipantServiceTestSuite) SetupSuite() {
	suite.BaseTestSuite.SetupSuite()
	wd, err := os.Getwd()
	suite.Require().NoError(err)
	suite.Require().NoError(os.Chdir(suite.T().TempDir()))
	suite.T().Cleanup(func() { _ = os.Chdir(wd) })

	files, err := storage.New(&config.Config{FileSystem: config.FileSystemLocal, EventYear: "2024"})
	suite.Require().NoError(err)

	suite.accounts, err = accounts.Open(filepath.Join(suite.T().TempDir(), "accounts.yaml"))
	suite.Require().NoError(err)

	suite.repo = repository.NewParticipantRepository(suite.DB)
	suite.teamRepo = repository.NewTeamRepository(suite.DB)
	suite.service = NewParticipantService(
		suite.repo,
		suite.teamRepo,
		suite.accounts,
		files,
		"files/2024",
		validator.New(),
	)
}

// TestSyncTitleCasesNames tests the roster import and its name casing
func (suite *ParticipantServiceTestSuite) TestSyncTitleCasesNames() {
	count, err := suite.service.Sync(context.Background(), staticRoster{
		{ID: "pax-1", Email: "JANA@Example.com", FirstName: "jana", LastName: "NOVAKOVA"},
		{ID: "", Email: "broken@example.com"},
	})
	suite.Require().NoError(err)
	suite.Equal(1, count)

	p, err := suite.repo.GetByID("pax-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(p)
	suite.Equal("Jana Novakova", p.NameWeb)
}

// TestSyncNeverOverwrites tests that a second sync keeps edited rows
func (suite *ParticipantServiceTestSuite) TestSyncNeverOverwrites() {
	_, err := suite.service.Sync(context.Background(), staticRoster{
		{ID: "pax-1", Email: "jana@example.com", FirstName: "jana", LastName: "novakova"},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.UpdateProfile("jana@example.com", "climber", "", nil))

	_, err = suite.service.Sync(context.Background(), staticRoster{
		{ID: "pax-1", Email: "different@example.com", FirstName: "x", LastName: "y"},
	})
	suite.Require().NoError(err)

	p, err := suite.repo.GetByID("pax-1")
	suite.Require().NoError(err)
	suite.Equal("jana@example.com", p.Email)
	suite.Equal("climber", p.Bio)
}

// TestGetByUsernameOverlaysAccount tests identity resolution through a
// login account
func (suite *ParticipantServiceTestSuite) TestGetByUsernameOverlaysAccount() {
	_, err := suite.service.Sync(context.Background(), staticRoster{
		{ID: "pax-1", Email: "jana@example.com", FirstName: "jana", LastName: "novakova"},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.accounts.Add(accounts.Account{
		Username: "jannov",
		Email:    "jana@example.com",
		Name:     "Jana N.",
		Role:     "admin",
	}))

	profile, err := suite.service.GetByUsername("jannov")
	suite.Require().NoError(err)
	suite.Equal("pax-1", profile.ID)
	suite.Equal("Jana N.", profile.Name)
	suite.Equal("jannov", profile.Username)
	suite.Equal("admin", profile.Role)
}

// TestGetByUsernameUnknown tests the account-not-found translation
func (suite *ParticipantServiceTestSuite) TestGetByUsernameUnknown() {
	_, err := suite.service.GetByUsername("ghost")
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
}

// TestGetByIDWithoutAccount tests resolver fallbacks when no login
// account exists
func (suite *ParticipantServiceTestSuite) TestGetByIDWithoutAccount() {
	_, err := suite.service.Sync(context.Background(), staticRoster{
		{ID: "pax-9", Email: "petr@example.com", FirstName: "petr", LastName: "svoboda"},
	})
	suite.Require().NoError(err)

	profile, err := suite.service.GetByID("pax-9")
	suite.Require().NoError(err)
	suite.Equal("Petr Svoboda", profile.Name)
	suite.Equal("Petr Svoboda", profile.Username)
	suite.Empty(profile.Role)
}

// TestListFiltersNonRegistered tests the registered-only default and
// the include flag
func (suite *ParticipantServiceTestSuite) TestListFiltersNonRegistered() {
	_, err := suite.service.Sync(context.Background(), staticRoster{
		{ID: "pax-1", Email: "jana@example.com", FirstName: "jana", LastName: "novakova"},
		{ID: "pax-2", Email: "petr@example.com", FirstName: "petr", LastName: "svoboda"},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.accounts.Add(accounts.Account{
		Username: "jannov", Email: "jana@example.com", Name: "Jana N.",
	}))

	registered, err := suite.service.List(ListOptions{})
	suite.Require().NoError(err)
	suite.Require().Len(registered, 1)
	suite.Equal("pax-1", registered[0].ID)

	everyone, err := suite.service.List(ListOptions{IncludeNonRegistered: true})
	suite.Require().NoError(err)
	suite.Len(everyone, 2)
}

// TestListWithTeams tests the team join
func (suite *ParticipantServiceTestSuite) TestListWithTeams() {
	_, err := suite.service.Sync(context.Background(), staticRoster{
		{ID: "pax-1", Email: "jana@example.com", FirstName: "jana", LastName: "novakova"},
	})
	suite.Require().NoError(err)

	team := testutils.NewTeamFactory().WithMembers("pax-1", "")
	team.TeamName = "Wild Geese"
	suite.Require().NoError(suite.teamRepo.Save(team))

	views, err := suite.service.List(ListOptions{IncludeNonRegistered: true, WithTeams: true})
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(team.TeamID, views[0].TeamID)
	suite.Equal("Wild Geese", views[0].TeamName)
}

// TestUpdateProfileWithPhoto tests that the photo is written before the
// row references it
func (suite *ParticipantServiceTestSuite) TestUpdateProfileWithPhoto() {
	_, err := suite.service.Sync(context.Background(), staticRoster{
		{ID: "pax-1", Email: "jana@example.com", FirstName: "jana", LastName: "novakova"},
	})
	suite.Require().NoError(err)

	err = suite.service.UpdateProfile(&UpdateProfileRequest{
		Username: "jannov",
		Email:    "jana@example.com",
		Bio:      "climber",
		Photo:    &Upload{Name: "me.jpg", ContentType: "image/jpeg", Body: strings.NewReader("photo")},
	})
	suite.Require().NoError(err)

	p, err := suite.repo.GetByID("pax-1")
	suite.Require().NoError(err)
	suite.Equal("files/2024/participants/jannov/me.jpg", p.Photo)
	suite.Equal("climber", p.Bio)
}

// TestUpdateProfileUnknownEmail tests the not-found translation
func (suite *ParticipantServiceTestSuite) TestUpdateProfileUnknownEmail() {
	err := suite.service.UpdateProfile(&UpdateProfileRequest{
		Username: "ghost",
		Email:    "ghost@example.com",
	})
	suite.ErrorIs(err, apperrors.ErrParticipantNotFound)
}

// TestPreauthorizedEmails tests the union of roster and allow-listed
// addresses
func (suite *ParticipantServiceTestSuite) TestPreauthorizedEmails() {
	_, err := suite.service.Sync(context.Background(), staticRoster{
		{ID: "pax-1", Email: "Jana@Example.com", FirstName: "jana", LastName: "novakova"},
	})
	suite.Require().NoError(err)

	emails, err := suite.service.PreauthorizedEmails()
	suite.Require().NoError(err)
	suite.Contains(emails, "jana@example.com")
}

// TestParticipantServiceTestSuite runs the test suite
func TestParticipantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ParticipantServiceTestSuite))
}
