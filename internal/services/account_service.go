package services

import (
	"context"
	"log"
	"time"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/request_models"
	"comicvault/internal/repositories"
	"comicvault/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	now := time.Now()
	limits := db_models.LimitsForTier(db_models.TierFree)

	newAccount := &db_models.Account{
		DisplayName:  request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user", // default role

		SubscriptionTier:      db_models.TierFree,
		MonthlyScansRemaining: limits.MonthlyScanQuota,
		MonthlyScansLimit:     limits.MonthlyScanQuota,
		ScansResetDate:        utils.NextMonthlyReset(now),
		ComicStorageLimit:     limits.StorageLimit,
	}
	// Provisioning arms the one-time trial exactly once.
	newAccount.ArmTrial(now)

	if err := a.accountRepo.InsertTx(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
