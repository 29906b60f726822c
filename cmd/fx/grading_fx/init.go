package grading_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"comicvault/internal/api/controllers"
	"comicvault/internal/repositories"
	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

var Module = fx.Provide(
	provideGradingRepo, provideVisionClient,
	provideGradingService, provideGradingController)

func provideGradingRepo(db *gorm.DB) repositories.GradingRepository {
	return repositories.NewGradingRepository(db)
}

func provideVisionClient() utils.VisionClientInterface {
	provider := os.Getenv("VISION_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if provider == "gemini" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	client, err := utils.NewVisionClient(provider, apiKey, os.Getenv("VISION_MODEL"))
	if err != nil {
		log.Printf("Error initializing vision client: %v", err)
	}

	return client
}

func provideGradingService(
	gradingRepo repositories.GradingRepository,
	entitlements services.EntitlementServiceInterface,
	vision utils.VisionClientInterface,
) services.GradingServiceInterface {
	return services.NewGradingService(gradingRepo, entitlements, vision)
}

func provideGradingController(gradingService services.GradingServiceInterface) *controllers.GradingController {
	return controllers.NewGradingController(gradingService)
}
