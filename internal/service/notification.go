package service

import (
	"fmt"
	"strings"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"
)

// NotificationService handles broadcast messages shown to every
// participant.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
	log  *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo, log: logger.New()}
}

// Broadcast stores a message for all participants.
func (s *NotificationService) Broadcast(text, notificationType string) error {
	if strings.TrimSpace(text) == "" {
		return &apperrors.ValidationError{Field: "text", Message: "must not be empty"}
	}
	notification := &models.Notification{
		Text: text,
		Type: notificationType,
	}
	if err := s.repo.Create(notification); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	s.log.WithField("type", notificationType).Info("notification broadcast")
	return nil
}

// List returns all broadcast messages in insertion order.
func (s *NotificationService) List() ([]models.Notification, error) {
	notifications, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}
