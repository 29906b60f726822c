package entitlement_fx

import (
	"go.uber.org/fx"

	"comicvault/internal/repositories"
	"comicvault/internal/services"
)

var Module = fx.Provide(
	provideEntitlementService)

func provideEntitlementService(
	accountRepo repositories.AccountRepository,
	comicRepo repositories.ComicRepository,
) services.EntitlementServiceInterface {
	return services.NewEntitlementService(accountRepo, comicRepo)
}
