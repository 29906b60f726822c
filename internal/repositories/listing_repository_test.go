package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comicvault/internal/models/db_models"
)

func strPtr(s string) *string {
	return &s
}

func TestWishlistFanout(t *testing.T) {
	seller := uuid.New()
	watcher := uuid.New()
	other := uuid.New()

	comic := &db_models.Comic{
		Title:       "Saga",
		IssueNumber: "1",
		Publisher:   "Image Comics",
	}
	listing := &db_models.Listing{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		ComicID:   uuid.New(),
		SellerID:  seller,
		Status:    db_models.ListingActive,
	}

	t.Run("one matching entry yields exactly one notification", func(t *testing.T) {
		candidates := []db_models.WishlistEntry{
			{UserID: watcher, Title: "saga"},
		}

		notifications := wishlistFanout(candidates, listing, comic)
		require.Len(t, notifications, 1)

		assert.Equal(t, watcher, notifications[0].UserID)
		assert.Equal(t, db_models.NotificationWishlistMatch, notifications[0].Type)
		require.NotNil(t, notifications[0].ListingID)
		assert.Equal(t, listing.ID, *notifications[0].ListingID)
	})

	t.Run("seller's own entry never matches their own listing", func(t *testing.T) {
		candidates := []db_models.WishlistEntry{
			{UserID: seller, Title: "Saga"},
		}

		assert.Empty(t, wishlistFanout(candidates, listing, comic))
	})

	t.Run("entries that fail the finer filters are dropped", func(t *testing.T) {
		candidates := []db_models.WishlistEntry{
			{UserID: watcher, Title: "Saga", IssueNumber: strPtr("2")},
			{UserID: watcher, Title: "Saga", Publisher: strPtr("Marvel")},
		}

		assert.Empty(t, wishlistFanout(candidates, listing, comic))
	})

	t.Run("every matching account is notified, no dedup", func(t *testing.T) {
		candidates := []db_models.WishlistEntry{
			{UserID: watcher, Title: "SAGA"},
			{UserID: watcher, Title: "Saga", IssueNumber: strPtr("1")},
			{UserID: other, Title: "saga", Publisher: strPtr("image comics")},
			{UserID: seller, Title: "Saga"},
		}

		notifications := wishlistFanout(candidates, listing, comic)
		require.Len(t, notifications, 3)

		byUser := map[uuid.UUID]int{}
		for _, n := range notifications {
			byUser[n.UserID]++
		}
		assert.Equal(t, 2, byUser[watcher])
		assert.Equal(t, 1, byUser[other])
		assert.Zero(t, byUser[seller])
	})
}
