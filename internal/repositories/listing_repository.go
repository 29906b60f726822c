package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comicvault/internal/models/db_models"
)

type ListingRepository interface {
	// CreateWithWishlistScan creates the listing and fans out one
	// notification per matching wishlist entry, all in one transaction.
	// It returns how many notifications were created.
	CreateWithWishlistScan(ctx context.Context, listing *db_models.Listing, comic *db_models.Comic) (int, error)

	FindById(ctx context.Context, id uuid.UUID) (*db_models.Listing, error)
	FindActiveByComic(ctx context.Context, comicID uuid.UUID) (*db_models.Listing, error)
	ListActive(ctx context.Context, page, pageSize int) ([]db_models.Listing, error)

	// TransitionStatus updates the listing only while it is still active,
	// in a single guarded statement.
	TransitionStatus(ctx context.Context, id uuid.UUID, to db_models.ListingStatus) (bool, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// wishlistFanout builds one notification per wishlist entry the new listing
// satisfies. The seller's own entries never match their own listing; one
// notification per matching entry, no dedup across an account's entries.
func wishlistFanout(candidates []db_models.WishlistEntry, listing *db_models.Listing, comic *db_models.Comic) []db_models.Notification {
	var notifications []db_models.Notification
	for i := range candidates {
		if candidates[i].UserID == listing.SellerID {
			continue
		}
		if !candidates[i].MatchesComic(comic) {
			continue
		}
		listingID := listing.ID
		notifications = append(notifications, db_models.Notification{
			UserID:    candidates[i].UserID,
			Type:      db_models.NotificationWishlistMatch,
			Message:   fmt.Sprintf("A comic on your wishlist was just listed: %s #%s", comic.Title, comic.IssueNumber),
			ListingID: &listingID,
		})
	}
	return notifications
}

func (r *listingRepository) CreateWithWishlistScan(ctx context.Context, listing *db_models.Listing, comic *db_models.Comic) (int, error) {
	matched := 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(listing).Error; err != nil {
			return err
		}

		// Candidate entries by case-insensitive title; the seller exclusion
		// and the remaining filters are re-applied in wishlistFanout so the
		// rules live in one testable place.
		var candidates []db_models.WishlistEntry
		if err := tx.
			Where("LOWER(title) = LOWER(?) AND user_id <> ?", comic.Title, listing.SellerID).
			Find(&candidates).Error; err != nil {
			return err
		}

		notifications := wishlistFanout(candidates, listing, comic)
		if len(notifications) > 0 {
			if err := tx.Create(&notifications).Error; err != nil {
				return err
			}
		}
		matched = len(notifications)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return matched, nil
}

func (r *listingRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Listing, error) {
	var listing db_models.Listing
	err := r.db.WithContext(ctx).Preload("Comic").First(&listing, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &listing, nil
}

func (r *listingRepository) FindActiveByComic(ctx context.Context, comicID uuid.UUID) (*db_models.Listing, error) {
	var listing db_models.Listing
	err := r.db.WithContext(ctx).
		Where("comic_id = ? AND status = ?", comicID, db_models.ListingActive).
		First(&listing).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &listing, nil
}

func (r *listingRepository) ListActive(ctx context.Context, page, pageSize int) ([]db_models.Listing, error) {
	var listings []db_models.Listing
	err := r.db.WithContext(ctx).
		Preload("Comic").
		Where("status = ?", db_models.ListingActive).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&listings).Error
	return listings, err
}

func (r *listingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, to db_models.ListingStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db_models.Listing{}).
		Where("id = ? AND status = ?", id, db_models.ListingActive).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
