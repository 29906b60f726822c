package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comicvault/internal/models/db_models"
)

type NotificationRepository interface {
	InsertTx(ctx context.Context, notification *db_models.Notification) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, unreadOnly bool) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

func (r *notificationRepository) InsertTx(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, unreadOnly bool) ([]db_models.Notification, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var notifications []db_models.Notification
	err := query.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
