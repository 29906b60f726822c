package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comicvault/internal/models/db_models"
	"comicvault/pkg/utils"
)

type TradeRepository interface {
	InsertTx(ctx context.Context, trade *db_models.Trade) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Trade, error)
	ListByParty(ctx context.Context, accountID uuid.UUID) ([]db_models.Trade, error)

	// TransitionFromPending moves a pending trade to accepted, rejected or
	// cancelled in one guarded statement; it reports whether the row moved.
	TransitionFromPending(ctx context.Context, id uuid.UUID, to db_models.TradeStatus) (bool, error)

	// Complete settles an accepted trade: every item's comic is reassigned to
	// the counterparty and the trade is marked completed, atomically. If any
	// single transfer fails the whole settlement rolls back and the trade
	// stays accepted.
	Complete(ctx context.Context, tradeID uuid.UUID) error
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{
		db: db,
	}
}

func (r *tradeRepository) InsertTx(ctx context.Context, trade *db_models.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

func (r *tradeRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Trade, error) {
	var trade db_models.Trade
	err := r.db.WithContext(ctx).Preload("Items").First(&trade, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trade, nil
}

func (r *tradeRepository) ListByParty(ctx context.Context, accountID uuid.UUID) ([]db_models.Trade, error) {
	var trades []db_models.Trade
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("initiator_id = ? OR recipient_id = ?", accountID, accountID).
		Order("created_at DESC").
		Find(&trades).Error
	return trades, err
}

func (r *tradeRepository) TransitionFromPending(ctx context.Context, id uuid.UUID, to db_models.TradeStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db_models.Trade{}).
		Where("id = ? AND status = ?", id, db_models.TradePending).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *tradeRepository) Complete(ctx context.Context, tradeID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trade db_models.Trade
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&trade, "id = ?", tradeID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTradeNotFound
			}
			return err
		}

		if trade.Status != db_models.TradeAccepted {
			return utils.ErrTradeNotAccepted
		}

		var items []db_models.TradeItem
		if err := tx.Where("trade_id = ?", tradeID).Find(&items).Error; err != nil {
			return err
		}

		for i := range items {
			newOwner := trade.CounterpartyOf(items[i].OwnerID)
			res := tx.Model(&db_models.Comic{}).
				Where("id = ? AND user_id = ?", items[i].ComicID, items[i].OwnerID).
				Update("user_id", newOwner)
			if res.Error != nil {
				return res.Error
			}
			// Ownership drifted since proposal; abort the whole settlement.
			if res.RowsAffected == 0 {
				return fmt.Errorf("trade %s: comic %s no longer owned by recorded party: %w",
					tradeID, items[i].ComicID, utils.ErrComicNotFound)
			}
		}

		return tx.Model(&trade).Update("status", db_models.TradeCompleted).Error
	})
}
