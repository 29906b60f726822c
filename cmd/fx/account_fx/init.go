package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comicvault/internal/api/controllers"
	"comicvault/internal/repositories"
	"comicvault/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func provideAccountController(
	accountService services.AccountServiceInterface,
	entitlementService services.EntitlementServiceInterface,
) *controllers.AccountController {
	return controllers.NewAccountController(accountService, entitlementService)
}
