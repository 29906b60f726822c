package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/request_models"
	"comicvault/internal/repositories"
	"comicvault/pkg/utils"
)

type CatalogServiceInterface interface {
	AddComic(ctx context.Context, ownerID uuid.UUID, request request_models.CreateComicRequest) (*db_models.Comic, error)
	GetComic(ctx context.Context, ownerID, comicID uuid.UUID) (*db_models.Comic, error)
	ListComics(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Comic, error)
	UpdateComic(ctx context.Context, ownerID, comicID uuid.UUID, request request_models.UpdateComicRequest) (*db_models.Comic, error)
	DeleteComic(ctx context.Context, ownerID, comicID uuid.UUID) error
	FindSimilar(ctx context.Context, query string, limit int) ([]db_models.Comic, error)
}

type CatalogService struct {
	accountRepo   repositories.AccountRepository
	comicRepo     repositories.ComicRepository
	embeddingRepo repositories.IComicEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
}

func NewCatalogService(
	accountRepo repositories.AccountRepository,
	comicRepo repositories.ComicRepository,
	embeddingRepo repositories.IComicEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
) CatalogServiceInterface {
	return &CatalogService{
		accountRepo:   accountRepo,
		comicRepo:     comicRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
	}
}

func (s *CatalogService) AddComic(ctx context.Context, ownerID uuid.UUID, request request_models.CreateComicRequest) (*db_models.Comic, error) {
	account, err := s.accountRepo.FindById(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	// The cap is re-checked right before every insert; trial expiry can
	// change the effective limit between requests.
	count, err := s.comicRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !account.CanAddComic(int(count), time.Now()) {
		return nil, utils.ErrStorageLimitReached
	}

	comic := &db_models.Comic{
		UserID:         ownerID,
		Title:          request.Title,
		IssueNumber:    request.IssueNumber,
		Publisher:      request.Publisher,
		Year:           request.Year,
		Condition:      request.Condition,
		Grade:          request.Grade,
		EstimatedValue: request.EstimatedValue,
		CoverImageURL:  request.CoverImageURL,
		Notes:          request.Notes,
	}

	if err := s.comicRepo.InsertTx(ctx, comic); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.upsertEmbedding(ctx, comic)

	return comic, nil
}

func (s *CatalogService) GetComic(ctx context.Context, ownerID, comicID uuid.UUID) (*db_models.Comic, error) {
	comic, err := s.comicRepo.FindById(ctx, comicID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if comic == nil {
		return nil, utils.ErrComicNotFound
	}
	if comic.UserID != ownerID {
		return nil, utils.ErrNotOwner
	}
	return comic, nil
}

func (s *CatalogService) ListComics(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Comic, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	comics, err := s.comicRepo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return comics, nil
}

func (s *CatalogService) UpdateComic(ctx context.Context, ownerID, comicID uuid.UUID, request request_models.UpdateComicRequest) (*db_models.Comic, error) {
	comic, err := s.GetComic(ctx, ownerID, comicID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		comic.Title = *request.Title
	}
	if request.IssueNumber != nil {
		comic.IssueNumber = *request.IssueNumber
	}
	if request.Publisher != nil {
		comic.Publisher = *request.Publisher
	}
	if request.Year != nil {
		comic.Year = request.Year
	}
	if request.Condition != nil {
		comic.Condition = *request.Condition
	}
	if request.Grade != nil {
		comic.Grade = request.Grade
	}
	if request.EstimatedValue != nil {
		comic.EstimatedValue = request.EstimatedValue
	}
	if request.CoverImageURL != nil {
		comic.CoverImageURL = *request.CoverImageURL
	}
	if request.Notes != nil {
		comic.Notes = *request.Notes
	}

	if err := s.comicRepo.Update(ctx, comic); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.upsertEmbedding(ctx, comic)

	return comic, nil
}

func (s *CatalogService) DeleteComic(ctx context.Context, ownerID, comicID uuid.UUID) error {
	if _, err := s.GetComic(ctx, ownerID, comicID); err != nil {
		return err
	}

	if err := s.embeddingRepo.DeleteByComic(ctx, comicID); err != nil {
		log.Printf("Failed to delete embedding for comic %s: %v", comicID, err)
	}

	if err := s.comicRepo.Delete(ctx, comicID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) FindSimilar(ctx context.Context, query string, limit int) ([]db_models.Comic, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	vector, err := s.embedder.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Embedding lookup failed: %v", err)
		return nil, utils.ErrGradingUpstream
	}

	embeddings, err := s.embeddingRepo.SearchByVector(ctx, vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	comics := make([]db_models.Comic, 0, len(embeddings))
	for i := range embeddings {
		comic, err := s.comicRepo.FindById(ctx, embeddings[i].ComicID)
		if err != nil || comic == nil {
			continue
		}
		comics = append(comics, *comic)
	}
	return comics, nil
}

// upsertEmbedding refreshes the similarity index; failures are logged and
// never block the catalog write.
func (s *CatalogService) upsertEmbedding(ctx context.Context, comic *db_models.Comic) {
	text := fmt.Sprintf("%s #%s %s %s", comic.Title, comic.IssueNumber, comic.Publisher, comic.Notes)
	vector, err := s.embedder.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("Failed to embed comic %s: %v", comic.ID, err)
		return
	}

	err = s.embeddingRepo.Upsert(ctx, &db_models.ComicEmbedding{
		ComicID:   comic.ID,
		Embedding: vector,
	})
	if err != nil {
		log.Printf("Failed to store embedding for comic %s: %v", comic.ID, err)
	}
}
