package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comicvault/internal/models/db_models"
)

type MessageRepository interface {
	InsertTx(ctx context.Context, message *db_models.Message) error
	Conversation(ctx context.Context, a, b uuid.UUID, page, pageSize int) ([]db_models.Message, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
	MarkConversationRead(ctx context.Context, recipientID, senderID uuid.UUID, now time.Time) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (r *messageRepository) InsertTx(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) Conversation(ctx context.Context, a, b uuid.UUID, page, pageSize int) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Message{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error
	return count, err
}

func (r *messageRepository) MarkConversationRead(ctx context.Context, recipientID, senderID uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Model(&db_models.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND read_at IS NULL", recipientID, senderID).
		Update("read_at", now.Unix()).Error
}
