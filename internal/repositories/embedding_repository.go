package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comicvault/internal/models/db_models"
)

type IComicEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.ComicEmbedding) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.ComicEmbedding, error)
	DeleteByComic(ctx context.Context, comicID uuid.UUID) error
}

type comicEmbeddingRepository struct {
	db *gorm.DB
}

func NewComicEmbeddingRepository(db *gorm.DB) IComicEmbeddingRepository {
	return &comicEmbeddingRepository{
		db: db,
	}
}

func (r *comicEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.ComicEmbedding) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "comic_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"embedding", "updated_at"}),
	}).Create(embedding).Error
}

func (r *comicEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.ComicEmbedding, error) {
	var results []db_models.ComicEmbedding

	query := `
        SELECT *
        FROM comic_embeddings
        WHERE deleted_at IS NULL
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT $2
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *comicEmbeddingRepository) DeleteByComic(ctx context.Context, comicID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.ComicEmbedding{}, "comic_id = ?", comicID).Error
}
