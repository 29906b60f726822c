package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comicvault/internal/models/db_models"
)

type WishlistRepository interface {
	InsertTx(ctx context.Context, entry *db_models.WishlistEntry) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.WishlistEntry, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.WishlistEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

func (r *wishlistRepository) InsertTx(ctx context.Context, entry *db_models.WishlistEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *wishlistRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.WishlistEntry, error) {
	var entry db_models.WishlistEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

func (r *wishlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.WishlistEntry, error) {
	var entries []db_models.WishlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.WishlistEntry{}, "id = ?", id).Error
}
