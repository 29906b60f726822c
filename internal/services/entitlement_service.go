package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/response_models"
	"comicvault/internal/repositories"
	"comicvault/pkg/utils"
)

// EntitlementServiceInterface owns the tier, trial and scan-credit rules.
// Consumption and refund are routed through the account repository so each
// mutation runs under a per-account row lock.
type EntitlementServiceInterface interface {
	StartTrial(ctx context.Context, accountID uuid.UUID) error
	CanConsume(ctx context.Context, accountID uuid.UUID) (bool, error)
	ConsumeScan(ctx context.Context, accountID uuid.UUID) (db_models.ScanSource, error)
	RefundScan(ctx context.Context, accountID uuid.UUID) (db_models.ScanSource, error)
	CanAddComic(ctx context.Context, accountID uuid.UUID) (bool, error)
	Summary(ctx context.Context, accountID uuid.UUID) (*response_models.EntitlementResponse, error)
}

type EntitlementService struct {
	accountRepo repositories.AccountRepository
	comicRepo   repositories.ComicRepository
}

func NewEntitlementService(accountRepo repositories.AccountRepository, comicRepo repositories.ComicRepository) EntitlementServiceInterface {
	return &EntitlementService{
		accountRepo: accountRepo,
		comicRepo:   comicRepo,
	}
}

func (e *EntitlementService) StartTrial(ctx context.Context, accountID uuid.UUID) error {
	// Arming twice is a no-op, not an error.
	_, err := e.accountRepo.StartTrial(ctx, accountID, time.Now())
	return err
}

func (e *EntitlementService) CanConsume(ctx context.Context, accountID uuid.UUID) (bool, error) {
	account, err := e.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if account == nil {
		return false, utils.ErrAccountNotFound
	}
	return account.CanConsumeScan(time.Now()), nil
}

func (e *EntitlementService) ConsumeScan(ctx context.Context, accountID uuid.UUID) (db_models.ScanSource, error) {
	return e.accountRepo.ConsumeScan(ctx, accountID, time.Now())
}

func (e *EntitlementService) RefundScan(ctx context.Context, accountID uuid.UUID) (db_models.ScanSource, error) {
	return e.accountRepo.RefundScan(ctx, accountID, time.Now())
}

func (e *EntitlementService) CanAddComic(ctx context.Context, accountID uuid.UUID) (bool, error) {
	account, err := e.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if account == nil {
		return false, utils.ErrAccountNotFound
	}

	count, err := e.comicRepo.CountByOwner(ctx, accountID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}

	return account.CanAddComic(int(count), time.Now()), nil
}

func (e *EntitlementService) Summary(ctx context.Context, accountID uuid.UUID) (*response_models.EntitlementResponse, error) {
	account, err := e.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	count, err := e.comicRepo.CountByOwner(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now()
	limits := account.EffectiveLimits(now)

	trialRemaining := 0
	if account.TrialActive(now) {
		trialRemaining = db_models.TrialScanAllowance - account.TrialScansUsed
	}

	return &response_models.EntitlementResponse{
		EffectiveTier:         string(account.EffectiveTier(now)),
		SubscriptionTier:      string(account.SubscriptionTier),
		TrialActive:           account.TrialActive(now),
		TrialScansRemaining:   trialRemaining,
		MonthlyScansRemaining: account.MonthlyScansRemaining,
		MonthlyScansLimit:     account.MonthlyScansLimit,
		OneTimeScans:          account.OneTimeScans,
		StorageLimit:          limits.StorageLimit,
		StorageUsed:           int(count),
		MarketplaceFeePct:     limits.MarketplaceFeePct,
		CanScan:               account.CanConsumeScan(now),
	}, nil
}
