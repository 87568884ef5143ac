package service

import (
	"testing"

	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// NotificationServiceTestSuite tests the NotificationService
type NotificationServiceTestSuite struct {
	testutils.BaseTestSuite
	service *NotificationService
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationServiceTestSuite) SetupSuite() {
	suite.BaseTestSuite.SetupSuite()
	suite.service = NewNotificationService(repository.NewNotificationRepository(suite.DB))
}

// TestBroadcastAndList tests storing and listing in insertion order
func (suite *NotificationServiceTestSuite) TestBroadcastAndList() {
	suite.Require().NoError(suite.service.Broadcast("Dinner at 19:00", "info"))
	suite.Require().NoError(suite.service.Broadcast("Storm warning", "alert"))

	notifications, err := suite.service.List()
	suite.Require().NoError(err)
	suite.Require().Len(notifications, 2)
	suite.Equal("Dinner at 19:00", notifications[0].Text)
	suite.Equal("alert", notifications[1].Type)
}

// TestBroadcastEmptyText tests the validation error
func (suite *NotificationServiceTestSuite) TestBroadcastEmptyText() {
	err := suite.service.Broadcast("   ", "info")
	var validationErr *apperrors.ValidationError
	suite.ErrorAs(err, &validationErr)
}

// TestNotificationServiceTestSuite runs the test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
