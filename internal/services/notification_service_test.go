package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comicvault/internal/models/db_models"
	"comicvault/pkg/utils"
)

func seededNotificationRepo(owner uuid.UUID) (*fakeNotificationRepo, uuid.UUID) {
	repo := &fakeNotificationRepo{}
	unread := db_models.Notification{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    owner,
		Type:      db_models.NotificationWishlistMatch,
		Message:   "A comic on your wishlist was just listed: Saga #1",
	}
	read := db_models.Notification{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    owner,
		Type:      db_models.NotificationTradeUpdate,
		Message:   "Your trade was accepted",
		Read:      true,
	}
	repo.notifications = append(repo.notifications, unread, read)
	return repo, unread.ID
}

func TestListNotifications(t *testing.T) {
	owner := uuid.New()
	repo, _ := seededNotificationRepo(owner)
	svc := NewNotificationService(repo)

	all, err := svc.ListNotifications(context.Background(), owner, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	unread, err := svc.ListNotifications(context.Background(), owner, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.False(t, unread[0].Read)

	other, err := svc.ListNotifications(context.Background(), uuid.New(), false)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMarkRead(t *testing.T) {
	owner := uuid.New()

	t.Run("marks own notification read", func(t *testing.T) {
		repo, unreadID := seededNotificationRepo(owner)
		svc := NewNotificationService(repo)

		err := svc.MarkRead(context.Background(), owner, unreadID)
		require.NoError(t, err)

		remaining, err := svc.ListNotifications(context.Background(), owner, true)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("unknown notification", func(t *testing.T) {
		repo, _ := seededNotificationRepo(owner)
		svc := NewNotificationService(repo)

		err := svc.MarkRead(context.Background(), owner, uuid.New())
		assert.ErrorIs(t, err, utils.ErrNotificationNotFound)
	})

	t.Run("someone else's notification", func(t *testing.T) {
		repo, unreadID := seededNotificationRepo(owner)
		svc := NewNotificationService(repo)

		err := svc.MarkRead(context.Background(), uuid.New(), unreadID)
		assert.ErrorIs(t, err, utils.ErrNotificationNotFound)
	})
}
