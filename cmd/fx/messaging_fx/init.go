package messaging_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comicvault/internal/api/controllers"
	"comicvault/internal/repositories"
	"comicvault/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo, provideMessagingService, provideMessagingController)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessagingService(
	messageRepo repositories.MessageRepository,
	accountRepo repositories.AccountRepository,
) services.MessagingServiceInterface {
	return services.NewMessagingService(messageRepo, accountRepo)
}

func provideMessagingController(messagingService services.MessagingServiceInterface) *controllers.MessagingController {
	return controllers.NewMessagingController(messagingService)
}
