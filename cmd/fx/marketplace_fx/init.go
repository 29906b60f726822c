package marketplace_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comicvault/internal/api/controllers"
	"comicvault/internal/repositories"
	"comicvault/internal/services"
)

var Module = fx.Provide(
	provideListingRepo, provideWishlistRepo,
	provideMarketplaceService, provideMarketplaceController)

func provideListingRepo(db *gorm.DB) repositories.ListingRepository {
	return repositories.NewListingRepository(db)
}

func provideWishlistRepo(db *gorm.DB) repositories.WishlistRepository {
	return repositories.NewWishlistRepository(db)
}

func provideMarketplaceService(
	accountRepo repositories.AccountRepository,
	comicRepo repositories.ComicRepository,
	listingRepo repositories.ListingRepository,
	wishlistRepo repositories.WishlistRepository,
) services.MarketplaceServiceInterface {
	return services.NewMarketplaceService(accountRepo, comicRepo, listingRepo, wishlistRepo)
}

func provideMarketplaceController(marketplaceService services.MarketplaceServiceInterface) *controllers.MarketplaceController {
	return controllers.NewMarketplaceController(marketplaceService)
}
