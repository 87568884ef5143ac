package repository

import (
	"testing"

	"event-portal-backend/internal/database/models"
	"event-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ParticipantRepositoryTestSuite tests the ParticipantRepository
type ParticipantRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo      *ParticipantRepository
	factories *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ParticipantRepositoryTestSuite) SetupSuite() {
	suite.BaseTestSuite.SetupSuite()
	suite.repo = NewParticipantRepository(suite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TestUpsertNew tests inserting a fresh roster participant
func (suite *ParticipantRepositoryTestSuite) TestUpsertNew() {
	p := suite.factories.Participant.Create()

	err := suite.repo.Upsert(p)
	suite.NoError(err)

	got, err := suite.repo.GetByID(p.ID)
	suite.NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(p.Email, got.Email)
}

// TestUpsertKeepsExistingRow tests that a re-sync never overwrites
// edited profile fields
func (suite *ParticipantRepositoryTestSuite) TestUpsertKeepsExistingRow() {
	p := suite.factories.Participant.Create()
	suite.NoError(suite.repo.Upsert(p))

	// Simulate a profile edit between syncs
	suite.NoError(suite.repo.UpdateProfile(p.Email, "climber", "+420 123", nil))

	// Same id arrives again from the roster with different data
	again := &models.Participant{
		ID:      p.ID,
		Email:   "changed@example.com",
		NameWeb: "Changed Name",
	}
	suite.NoError(suite.repo.Upsert(again))

	got, err := suite.repo.GetByID(p.ID)
	suite.NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(p.Email, got.Email)
	suite.Equal("climber", got.Bio)
}

// TestGetByEmailCaseInsensitive tests lower-cased email lookup
func (suite *ParticipantRepositoryTestSuite) TestGetByEmailCaseInsensitive() {
	p := suite.factories.Participant.WithEmail("jana.novakova@example.com")
	suite.NoError(suite.repo.Upsert(p))

	got, err := suite.repo.GetByEmail("Jana.Novakova@Example.COM")
	suite.NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(p.ID, got.ID)
}

// TestGetByIDMissing tests that an unknown id yields nil, not an error
func (suite *ParticipantRepositoryTestSuite) TestGetByIDMissing() {
	got, err := suite.repo.GetByID("missing")
	suite.NoError(err)
	suite.Nil(got)
}

// TestUpdateProfileMissing tests updating a participant that does not exist
func (suite *ParticipantRepositoryTestSuite) TestUpdateProfileMissing() {
	err := suite.repo.UpdateProfile("nobody@example.com", "bio", "contact", nil)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateProfileWithPhoto tests that a photo path is only written
// when provided
func (suite *ParticipantRepositoryTestSuite) TestUpdateProfileWithPhoto() {
	p := suite.factories.Participant.Create()
	suite.NoError(suite.repo.Upsert(p))

	photo := "files/2024/participants/jana/photo.jpg"
	suite.NoError(suite.repo.UpdateProfile(p.Email, "bio", "contact", &photo))

	got, err := suite.repo.GetByID(p.ID)
	suite.NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(photo, got.Photo)

	// Update without photo keeps the stored path
	suite.NoError(suite.repo.UpdateProfile(p.Email, "new bio", "contact", nil))
	got, err = suite.repo.GetByID(p.ID)
	suite.NoError(err)
	suite.Equal(photo, got.Photo)
	suite.Equal("new bio", got.Bio)
}

// TestEmails tests plucking all roster emails
func (suite *ParticipantRepositoryTestSuite) TestEmails() {
	suite.NoError(suite.repo.Upsert(suite.factories.Participant.WithEmail("a@example.com")))
	suite.NoError(suite.repo.Upsert(suite.factories.Participant.WithEmail("b@example.com")))

	emails, err := suite.repo.Emails()
	suite.NoError(err)
	suite.ElementsMatch([]string{"a@example.com", "b@example.com"}, emails)
}

// TestParticipantRepositoryTestSuite runs the test suite
func TestParticipantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ParticipantRepositoryTestSuite))
}
