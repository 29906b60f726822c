package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comicvault/internal/models/db_models"
	"comicvault/pkg/utils"
)

type AccountRepository interface {
	InsertTx(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)

	// StartTrial arms the one-time trial with a single guarded statement.
	// It reports whether this call armed it; an already-armed trial is a
	// no-op, not an error.
	StartTrial(ctx context.Context, accountID uuid.UUID, now time.Time) (bool, error)

	// ConsumeScan and RefundScan run the ledger mutation under a row lock so
	// concurrent requests against the same account serialize.
	ConsumeScan(ctx context.Context, accountID uuid.UUID, now time.Time) (db_models.ScanSource, error)
	RefundScan(ctx context.Context, accountID uuid.UUID, now time.Time) (db_models.ScanSource, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) StartTrial(ctx context.Context, accountID uuid.UUID, now time.Time) (bool, error) {
	// The guard and the write are one statement; a concurrent duplicate call
	// cannot re-arm the trial.
	res := a.db.WithContext(ctx).Model(&db_models.Account{}).
		Where("id = ? AND trial_started_at IS NULL", accountID).
		Updates(map[string]interface{}{
			"trial_started_at": now.Unix(),
			"trial_expires_at": now.Add(db_models.TrialDuration).Unix(),
			"trial_scans_used": 0,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	existing, err := a.FindById(ctx, accountID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, utils.ErrAccountNotFound
	}
	return false, nil
}

func (a *accountRepository) ConsumeScan(ctx context.Context, accountID uuid.UUID, now time.Time) (db_models.ScanSource, error) {
	source := db_models.ScanSourceNone

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		s, ok := account.ApplyScanConsume(now)
		if !ok {
			return utils.ErrScanCreditsExhausted
		}
		source = s

		// Unlimited consumption mutates nothing.
		if s == db_models.ScanSourceUnlimited {
			return nil
		}
		return tx.Save(account).Error
	})
	if err != nil {
		return db_models.ScanSourceNone, err
	}
	return source, nil
}

func (a *accountRepository) RefundScan(ctx context.Context, accountID uuid.UUID, now time.Time) (db_models.ScanSource, error) {
	source := db_models.ScanSourceNone

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		s, ok := account.ApplyScanRefund(now)
		if !ok {
			return utils.ErrNothingToRefund
		}
		source = s

		if s == db_models.ScanSourceUnlimited {
			return nil
		}
		return tx.Save(account).Error
	})
	if err != nil {
		return db_models.ScanSourceNone, err
	}
	return source, nil
}

func lockAccount(tx *gorm.DB, accountID uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&account, "id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
