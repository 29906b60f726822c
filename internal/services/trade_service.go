package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/request_models"
	"comicvault/internal/repositories"
	"comicvault/pkg/utils"
)

type TradeServiceInterface interface {
	ProposeTrade(ctx context.Context, initiatorID uuid.UUID, request request_models.ProposeTradeRequest) (*db_models.Trade, error)
	RespondToTrade(ctx context.Context, accountID, tradeID uuid.UUID, status db_models.TradeStatus) error
	CompleteTrade(ctx context.Context, accountID, tradeID uuid.UUID) error
	GetTrade(ctx context.Context, accountID, tradeID uuid.UUID) (*db_models.Trade, error)
	ListTrades(ctx context.Context, accountID uuid.UUID) ([]db_models.Trade, error)
}

type TradeService struct {
	tradeRepo        repositories.TradeRepository
	comicRepo        repositories.ComicRepository
	accountRepo      repositories.AccountRepository
	notificationRepo repositories.NotificationRepository
}

func NewTradeService(
	tradeRepo repositories.TradeRepository,
	comicRepo repositories.ComicRepository,
	accountRepo repositories.AccountRepository,
	notificationRepo repositories.NotificationRepository,
) TradeServiceInterface {
	return &TradeService{
		tradeRepo:        tradeRepo,
		comicRepo:        comicRepo,
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *TradeService) ProposeTrade(ctx context.Context, initiatorID uuid.UUID, request request_models.ProposeTradeRequest) (*db_models.Trade, error) {
	if request.RecipientID == initiatorID {
		return nil, utils.ErrNotTradeParty
	}

	recipient, err := s.accountRepo.FindById(ctx, request.RecipientID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if recipient == nil {
		return nil, utils.ErrAccountNotFound
	}

	trade := &db_models.Trade{
		InitiatorID: initiatorID,
		RecipientID: request.RecipientID,
		Status:      db_models.TradePending,
		Notes:       request.Notes,
	}

	// Each item records who owned the comic at proposal time; settlement
	// later moves it to that owner's counterparty.
	for _, comicID := range request.ComicIDs {
		comic, err := s.comicRepo.FindById(ctx, comicID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if comic == nil {
			return nil, utils.ErrComicNotFound
		}
		if comic.UserID != initiatorID && comic.UserID != request.RecipientID {
			return nil, utils.ErrNotOwner
		}
		trade.Items = append(trade.Items, db_models.TradeItem{
			ComicID: comic.ID,
			OwnerID: comic.UserID,
		})
	}

	if err := s.tradeRepo.InsertTx(ctx, trade); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notify(ctx, trade.RecipientID, db_models.NotificationTradeProposal, trade.ID,
		fmt.Sprintf("You received a trade proposal with %d item(s)", len(trade.Items)))

	return trade, nil
}

func (s *TradeService) RespondToTrade(ctx context.Context, accountID, tradeID uuid.UUID, status db_models.TradeStatus) error {
	trade, err := s.tradeRepo.FindById(ctx, tradeID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trade == nil {
		return utils.ErrTradeNotFound
	}
	if !trade.IsParty(accountID) {
		return utils.ErrNotTradeParty
	}

	switch status {
	case db_models.TradeAccepted, db_models.TradeRejected:
		if accountID != trade.RecipientID {
			return utils.ErrNotTradeParty
		}
	case db_models.TradeCancelled:
		// Either party may cancel while pending.
	default:
		return utils.ErrTradeNotPending
	}

	moved, err := s.tradeRepo.TransitionFromPending(ctx, tradeID, status)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !moved {
		return utils.ErrTradeNotPending
	}

	s.notify(ctx, trade.CounterpartyOf(accountID), db_models.NotificationTradeUpdate, trade.ID,
		fmt.Sprintf("Trade %s is now %s", tradeID, status))

	return nil
}

func (s *TradeService) CompleteTrade(ctx context.Context, accountID, tradeID uuid.UUID) error {
	trade, err := s.tradeRepo.FindById(ctx, tradeID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trade == nil {
		return utils.ErrTradeNotFound
	}
	if !trade.IsParty(accountID) {
		return utils.ErrNotTradeParty
	}

	// Settlement itself re-checks the status under lock; this early check
	// just gives callers a clean decline without opening a transaction.
	if trade.Status != db_models.TradeAccepted {
		return utils.ErrTradeNotAccepted
	}

	if err := s.tradeRepo.Complete(ctx, tradeID); err != nil {
		return err
	}

	s.notify(ctx, trade.InitiatorID, db_models.NotificationTradeUpdate, trade.ID, "Trade completed")
	s.notify(ctx, trade.RecipientID, db_models.NotificationTradeUpdate, trade.ID, "Trade completed")

	return nil
}

func (s *TradeService) GetTrade(ctx context.Context, accountID, tradeID uuid.UUID) (*db_models.Trade, error) {
	trade, err := s.tradeRepo.FindById(ctx, tradeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trade == nil {
		return nil, utils.ErrTradeNotFound
	}
	if !trade.IsParty(accountID) {
		return nil, utils.ErrNotTradeParty
	}
	return trade, nil
}

func (s *TradeService) ListTrades(ctx context.Context, accountID uuid.UUID) ([]db_models.Trade, error) {
	trades, err := s.tradeRepo.ListByParty(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trades, nil
}

func (s *TradeService) notify(ctx context.Context, userID uuid.UUID, kind db_models.NotificationType, tradeID uuid.UUID, message string) {
	err := s.notificationRepo.InsertTx(ctx, &db_models.Notification{
		UserID:  userID,
		Type:    kind,
		Message: message,
		TradeID: &tradeID,
	})
	if err != nil {
		log.Printf("Failed to create trade notification: %v", err)
	}
}
