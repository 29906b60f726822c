package services

import (
	"context"

	"github.com/google/uuid"

	"comicvault/internal/models/db_models"
	"comicvault/internal/repositories"
	"comicvault/pkg/utils"
)

type NotificationServiceInterface interface {
	ListNotifications(ctx context.Context, ownerID uuid.UUID, unreadOnly bool) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, ownerID, notificationID uuid.UUID) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

func (s *NotificationService) ListNotifications(ctx context.Context, ownerID uuid.UUID, unreadOnly bool) ([]db_models.Notification, error) {
	notifications, err := s.notificationRepo.ListByOwner(ctx, ownerID, unreadOnly)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, ownerID, notificationID uuid.UUID) error {
	updated, err := s.notificationRepo.MarkRead(ctx, notificationID, ownerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !updated {
		return utils.ErrNotificationNotFound
	}
	return nil
}
