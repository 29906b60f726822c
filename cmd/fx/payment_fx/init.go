package payment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"comicvault/internal/api/controllers"
	"comicvault/internal/repositories"
	"comicvault/internal/services"
)

var payOsCfg = services.PayOSConfig{
	ClientID:     os.Getenv("PAYOS_CLIENT_ID"),
	ApiKey:       os.Getenv("PAYOS_API_KEY"),
	ChecksumKey:  os.Getenv("PAYOS_CHECKSUM_KEY"),
	ReturnURL:    os.Getenv("PAYOS_RETURN_URL"),
	CancelURL:    os.Getenv("PAYOS_CANCEL_URL"),
	ProviderName: "payos",
}

var Module = fx.Provide(
	providePlanRepo, providePaymentService, providePaymentController,
)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePaymentService(db *gorm.DB, planRepo repositories.IPlanRepository) services.PaymentService {
	instance, err := services.NewPaymentService(db, planRepo, payOsCfg)
	if err != nil {
		log.Printf("Error initializing PaymentService: %v", err)
	}

	return instance
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
