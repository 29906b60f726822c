package trade_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comicvault/internal/api/controllers"
	"comicvault/internal/repositories"
	"comicvault/internal/services"
)

var Module = fx.Provide(
	provideTradeRepo, provideTradeService, provideTradeController)

func provideTradeRepo(db *gorm.DB) repositories.TradeRepository {
	return repositories.NewTradeRepository(db)
}

func provideTradeService(
	tradeRepo repositories.TradeRepository,
	comicRepo repositories.ComicRepository,
	accountRepo repositories.AccountRepository,
	notificationRepo repositories.NotificationRepository,
) services.TradeServiceInterface {
	return services.NewTradeService(tradeRepo, comicRepo, accountRepo, notificationRepo)
}

func provideTradeController(tradeService services.TradeServiceInterface) *controllers.TradeController {
	return controllers.NewTradeController(tradeService)
}
