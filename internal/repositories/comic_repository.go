package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comicvault/internal/models/db_models"
)

type ComicRepository interface {
	InsertTx(ctx context.Context, comic *db_models.Comic) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Comic, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Comic, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Update(ctx context.Context, comic *db_models.Comic) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type comicRepository struct {
	db *gorm.DB
}

func NewComicRepository(db *gorm.DB) ComicRepository {
	return &comicRepository{
		db: db,
	}
}

func (r *comicRepository) InsertTx(ctx context.Context, comic *db_models.Comic) error {
	return r.db.WithContext(ctx).Create(comic).Error
}

func (r *comicRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Comic, error) {
	var comic db_models.Comic
	err := r.db.WithContext(ctx).First(&comic, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &comic, nil
}

func (r *comicRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Comic, error) {
	var comics []db_models.Comic
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&comics).Error
	return comics, err
}

func (r *comicRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Comic{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *comicRepository) Update(ctx context.Context, comic *db_models.Comic) error {
	return r.db.WithContext(ctx).Save(comic).Error
}

func (r *comicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Comic{}, "id = ?", id).Error
}
