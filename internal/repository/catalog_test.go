package repository

import (
	"testing"

	"event-portal-backend/internal/database/models"
	"event-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// CatalogRepositoryTestSuite tests the CatalogRepository
type CatalogRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo      *CatalogRepository
	factories *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CatalogRepositoryTestSuite) SetupSuite() {
	suite.BaseTestSuite.SetupSuite()
	suite.repo = NewCatalogRepository(suite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TestInsertChallengeIgnoresDuplicates tests name-keyed insert-if-absent
func (suite *CatalogRepositoryTestSuite) TestInsertChallengeIgnoresDuplicates() {
	suite.NoError(suite.repo.InsertChallenge(suite.factories.Challenge.WithNameAndPoints("Climb a tree", 10)))
	suite.NoError(suite.repo.InsertChallenge(suite.factories.Challenge.WithNameAndPoints("Climb a tree", 99)))

	challenges, err := suite.repo.ListChallenges()
	suite.NoError(err)
	suite.Require().Len(challenges, 1)
	suite.Equal(10, challenges[0].Points)
}

// TestListChallengesKeepsInsertionOrder tests the stable ordering the
// prefix lookup depends on
func (suite *CatalogRepositoryTestSuite) TestListChallengesKeepsInsertionOrder() {
	names := []string{"Zulu", "Alpha", "Mike"}
	for _, name := range names {
		suite.NoError(suite.repo.InsertChallenge(suite.factories.Challenge.WithNameAndPoints(name, 5)))
	}

	challenges, err := suite.repo.ListChallenges()
	suite.NoError(err)
	suite.Require().Len(challenges, 3)
	for i, name := range names {
		suite.Equal(name, challenges[i].Name)
	}
}

// TestInsertCheckpointWithoutCoordinates tests storing a checkpoint
// whose GPS source could not be parsed
func (suite *CatalogRepositoryTestSuite) TestInsertCheckpointWithoutCoordinates() {
	checkpoint := &models.Checkpoint{
		Name:        "Checkpoint 1",
		Description: "hilltop",
		Points:      20,
	}
	suite.NoError(suite.repo.InsertCheckpoint(checkpoint))

	checkpoints, err := suite.repo.ListCheckpoints()
	suite.NoError(err)
	suite.Require().Len(checkpoints, 1)
	suite.Nil(checkpoints[0].Latitude)
	suite.Nil(checkpoints[0].Longitude)
}

// TestCatalogRepositoryTestSuite runs the test suite
func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
