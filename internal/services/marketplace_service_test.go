package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/request_models"
	"comicvault/pkg/utils"
)

type marketplaceFixture struct {
	svc      MarketplaceServiceInterface
	accounts *fakeAccountRepo
	comics   *fakeComicRepo
	listings *fakeListingRepo
	wishlist *fakeWishlistRepo
	seller   *db_models.Account
}

func newMarketplaceFixture() *marketplaceFixture {
	accounts := newFakeAccountRepo()
	comics := newFakeComicRepo()
	listings := newFakeListingRepo()
	wishlist := newFakeWishlistRepo()

	seller := accounts.add(&db_models.Account{
		Email:            "seller@example.com",
		SubscriptionTier: db_models.TierFree,
	})

	return &marketplaceFixture{
		svc:      NewMarketplaceService(accounts, comics, listings, wishlist),
		accounts: accounts,
		comics:   comics,
		listings: listings,
		wishlist: wishlist,
		seller:   seller,
	}
}

func TestCreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("only the owner may list", func(t *testing.T) {
		f := newMarketplaceFixture()
		comic := f.comics.add(&db_models.Comic{UserID: uuid.New(), Title: "Saga"})

		_, err := f.svc.CreateListing(ctx, f.seller.ID, request_models.CreateListingRequest{
			ComicID: comic.ID,
			Price:   25,
		})
		assert.ErrorIs(t, err, utils.ErrNotOwner)
	})

	t.Run("a comic cannot be listed twice", func(t *testing.T) {
		f := newMarketplaceFixture()
		comic := f.comics.add(&db_models.Comic{UserID: f.seller.ID, Title: "Saga"})
		f.listings.listings[uuid.New()] = &db_models.Listing{
			ComicID: comic.ID,
			Status:  db_models.ListingActive,
		}

		_, err := f.svc.CreateListing(ctx, f.seller.ID, request_models.CreateListingRequest{
			ComicID: comic.ID,
			Price:   25,
		})
		assert.ErrorIs(t, err, utils.ErrComicAlreadyListed)
	})

	t.Run("computes the fee from the effective tier and reports matches", func(t *testing.T) {
		f := newMarketplaceFixture()
		comic := f.comics.add(&db_models.Comic{UserID: f.seller.ID, Title: "Saga", IssueNumber: "1"})
		f.listings.matchCount = 3

		resp, err := f.svc.CreateListing(ctx, f.seller.ID, request_models.CreateListingRequest{
			ComicID: comic.ID,
			Price:   100,
		})
		require.NoError(t, err)

		// Free tier charges 10%.
		assert.Equal(t, 10.0, resp.FeePct)
		assert.Equal(t, 10.0, resp.FeeAmount)
		assert.Equal(t, 90.0, resp.NetProceeds)
		assert.Equal(t, 3, resp.WishlistMatches)
		assert.Equal(t, string(db_models.ListingActive), resp.Status)
	})

	t.Run("an active trial earns the collector fee", func(t *testing.T) {
		f := newMarketplaceFixture()
		f.seller.ArmTrial(time.Now())
		comic := f.comics.add(&db_models.Comic{UserID: f.seller.ID, Title: "Saga"})

		resp, err := f.svc.CreateListing(ctx, f.seller.ID, request_models.CreateListingRequest{
			ComicID: comic.ID,
			Price:   100,
		})
		require.NoError(t, err)
		assert.Equal(t, 6.0, resp.FeePct)
	})
}

func TestListingTransitions(t *testing.T) {
	ctx := context.Background()

	seed := func(f *marketplaceFixture, status db_models.ListingStatus) uuid.UUID {
		id := uuid.New()
		f.listings.listings[id] = &db_models.Listing{
			BaseModel: db_models.BaseModel{ID: id},
			ComicID:   uuid.New(),
			SellerID:  f.seller.ID,
			Status:    status,
		}
		return id
	}

	t.Run("cancel an active listing", func(t *testing.T) {
		f := newMarketplaceFixture()
		id := seed(f, db_models.ListingActive)

		require.NoError(t, f.svc.CancelListing(ctx, f.seller.ID, id))
		assert.Equal(t, db_models.ListingCancelled, f.listings.listings[id].Status)
	})

	t.Run("mark sold", func(t *testing.T) {
		f := newMarketplaceFixture()
		id := seed(f, db_models.ListingActive)

		require.NoError(t, f.svc.MarkSold(ctx, f.seller.ID, id))
		assert.Equal(t, db_models.ListingSold, f.listings.listings[id].Status)
	})

	t.Run("a sold listing cannot be cancelled", func(t *testing.T) {
		f := newMarketplaceFixture()
		id := seed(f, db_models.ListingSold)

		err := f.svc.CancelListing(ctx, f.seller.ID, id)
		assert.ErrorIs(t, err, utils.ErrListingNotFound)
		assert.Equal(t, db_models.ListingSold, f.listings.listings[id].Status)
	})

	t.Run("only the seller may transition", func(t *testing.T) {
		f := newMarketplaceFixture()
		id := seed(f, db_models.ListingActive)

		err := f.svc.CancelListing(ctx, uuid.New(), id)
		assert.ErrorIs(t, err, utils.ErrNotOwner)
	})
}

func TestBrowseListings(t *testing.T) {
	ctx := context.Background()
	f := newMarketplaceFixture()

	_, err := f.svc.BrowseListings(ctx, 0, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = f.svc.BrowseListings(ctx, 1, 500)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestWishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("add and list", func(t *testing.T) {
		f := newMarketplaceFixture()
		issue := "1"

		entry, err := f.svc.AddWishlistEntry(ctx, f.seller.ID, request_models.CreateWishlistEntryRequest{
			Title:       "Saga",
			IssueNumber: &issue,
		})
		require.NoError(t, err)
		assert.Equal(t, f.seller.ID, entry.UserID)

		entries, err := f.svc.ListWishlist(ctx, f.seller.ID)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("only the owner may remove an entry", func(t *testing.T) {
		f := newMarketplaceFixture()
		entry, err := f.svc.AddWishlistEntry(ctx, f.seller.ID, request_models.CreateWishlistEntryRequest{
			Title: "Saga",
		})
		require.NoError(t, err)

		err = f.svc.RemoveWishlistEntry(ctx, uuid.New(), entry.ID)
		assert.ErrorIs(t, err, utils.ErrNotOwner)

		require.NoError(t, f.svc.RemoveWishlistEntry(ctx, f.seller.ID, entry.ID))
		assert.Empty(t, f.wishlist.entries)
	})
}
