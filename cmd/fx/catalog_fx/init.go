package catalog_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"comicvault/internal/api/controllers"
	"comicvault/internal/repositories"
	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

var Module = fx.Provide(
	provideComicRepo, provideEmbeddingRepo, provideEmbeddingClient,
	provideCatalogService, provideCatalogController)

func provideComicRepo(db *gorm.DB) repositories.ComicRepository {
	return repositories.NewComicRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.IComicEmbeddingRepository {
	return repositories.NewComicEmbeddingRepository(db)
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient(os.Getenv("OPENAI_API_KEY"))
}

func provideCatalogService(
	accountRepo repositories.AccountRepository,
	comicRepo repositories.ComicRepository,
	embeddingRepo repositories.IComicEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
) services.CatalogServiceInterface {
	return services.NewCatalogService(accountRepo, comicRepo, embeddingRepo, embedder)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
