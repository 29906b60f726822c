package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/request_models"
	"comicvault/internal/repositories"
	"comicvault/pkg/utils"
)

type MessagingServiceInterface interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, request request_models.SendMessageRequest) (*db_models.Message, error)
	GetConversation(ctx context.Context, accountID, otherID uuid.UUID, page, pageSize int) ([]db_models.Message, error)
	UnreadCount(ctx context.Context, accountID uuid.UUID) (int64, error)
}

type MessagingService struct {
	messageRepo repositories.MessageRepository
	accountRepo repositories.AccountRepository
}

func NewMessagingService(messageRepo repositories.MessageRepository, accountRepo repositories.AccountRepository) MessagingServiceInterface {
	return &MessagingService{
		messageRepo: messageRepo,
		accountRepo: accountRepo,
	}
}

func (s *MessagingService) SendMessage(ctx context.Context, senderID uuid.UUID, request request_models.SendMessageRequest) (*db_models.Message, error) {
	recipient, err := s.accountRepo.FindById(ctx, request.RecipientID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if recipient == nil {
		return nil, utils.ErrAccountNotFound
	}

	message := &db_models.Message{
		SenderID:    senderID,
		RecipientID: request.RecipientID,
		Body:        request.Body,
	}

	if err := s.messageRepo.InsertTx(ctx, message); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return message, nil
}

func (s *MessagingService) GetConversation(ctx context.Context, accountID, otherID uuid.UUID, page, pageSize int) ([]db_models.Message, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	messages, err := s.messageRepo.Conversation(ctx, accountID, otherID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Fetching a conversation marks the other side's messages as read.
	if err := s.messageRepo.MarkConversationRead(ctx, accountID, otherID, time.Now()); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return messages, nil
}

func (s *MessagingService) UnreadCount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	count, err := s.messageRepo.CountUnread(ctx, accountID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}
