package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/request_models"
	"comicvault/internal/models/response_models"
	"comicvault/internal/repositories"
	"comicvault/pkg/utils"
)

type MarketplaceServiceInterface interface {
	CreateListing(ctx context.Context, sellerID uuid.UUID, request request_models.CreateListingRequest) (*response_models.ListingResponse, error)
	CancelListing(ctx context.Context, sellerID, listingID uuid.UUID) error
	MarkSold(ctx context.Context, sellerID, listingID uuid.UUID) error
	BrowseListings(ctx context.Context, page, pageSize int) ([]db_models.Listing, error)

	AddWishlistEntry(ctx context.Context, ownerID uuid.UUID, request request_models.CreateWishlistEntryRequest) (*db_models.WishlistEntry, error)
	ListWishlist(ctx context.Context, ownerID uuid.UUID) ([]db_models.WishlistEntry, error)
	RemoveWishlistEntry(ctx context.Context, ownerID, entryID uuid.UUID) error
}

type MarketplaceService struct {
	accountRepo  repositories.AccountRepository
	comicRepo    repositories.ComicRepository
	listingRepo  repositories.ListingRepository
	wishlistRepo repositories.WishlistRepository
}

func NewMarketplaceService(
	accountRepo repositories.AccountRepository,
	comicRepo repositories.ComicRepository,
	listingRepo repositories.ListingRepository,
	wishlistRepo repositories.WishlistRepository,
) MarketplaceServiceInterface {
	return &MarketplaceService{
		accountRepo:  accountRepo,
		comicRepo:    comicRepo,
		listingRepo:  listingRepo,
		wishlistRepo: wishlistRepo,
	}
}

func (s *MarketplaceService) CreateListing(ctx context.Context, sellerID uuid.UUID, request request_models.CreateListingRequest) (*response_models.ListingResponse, error) {
	comic, err := s.comicRepo.FindById(ctx, request.ComicID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if comic == nil {
		return nil, utils.ErrComicNotFound
	}
	if comic.UserID != sellerID {
		return nil, utils.ErrNotOwner
	}

	existing, err := s.listingRepo.FindActiveByComic(ctx, comic.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrComicAlreadyListed
	}

	seller, err := s.accountRepo.FindById(ctx, sellerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if seller == nil {
		return nil, utils.ErrAccountNotFound
	}

	listing := &db_models.Listing{
		ComicID:  comic.ID,
		SellerID: sellerID,
		Price:    request.Price,
		Status:   db_models.ListingActive,
	}

	// Listing creation and wishlist fan-out commit together.
	matches, err := s.listingRepo.CreateWithWishlistScan(ctx, listing, comic)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	feePct := seller.EffectiveLimits(time.Now()).MarketplaceFeePct
	feeAmount := listing.Price * feePct / 100

	return &response_models.ListingResponse{
		ID:              listing.ID,
		ComicID:         listing.ComicID,
		SellerID:        listing.SellerID,
		Price:           listing.Price,
		Status:          string(listing.Status),
		FeePct:          feePct,
		FeeAmount:       feeAmount,
		NetProceeds:     listing.Price - feeAmount,
		WishlistMatches: matches,
	}, nil
}

func (s *MarketplaceService) CancelListing(ctx context.Context, sellerID, listingID uuid.UUID) error {
	return s.transitionListing(ctx, sellerID, listingID, db_models.ListingCancelled)
}

func (s *MarketplaceService) MarkSold(ctx context.Context, sellerID, listingID uuid.UUID) error {
	return s.transitionListing(ctx, sellerID, listingID, db_models.ListingSold)
}

func (s *MarketplaceService) transitionListing(ctx context.Context, sellerID, listingID uuid.UUID, to db_models.ListingStatus) error {
	listing, err := s.listingRepo.FindById(ctx, listingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if listing == nil {
		return utils.ErrListingNotFound
	}
	if listing.SellerID != sellerID {
		return utils.ErrNotOwner
	}

	moved, err := s.listingRepo.TransitionStatus(ctx, listingID, to)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !moved {
		return utils.ErrListingNotFound
	}
	return nil
}

func (s *MarketplaceService) BrowseListings(ctx context.Context, page, pageSize int) ([]db_models.Listing, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	listings, err := s.listingRepo.ListActive(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return listings, nil
}

func (s *MarketplaceService) AddWishlistEntry(ctx context.Context, ownerID uuid.UUID, request request_models.CreateWishlistEntryRequest) (*db_models.WishlistEntry, error) {
	entry := &db_models.WishlistEntry{
		UserID:      ownerID,
		Title:       request.Title,
		IssueNumber: request.IssueNumber,
		Publisher:   request.Publisher,
	}

	if err := s.wishlistRepo.InsertTx(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entry, nil
}

func (s *MarketplaceService) ListWishlist(ctx context.Context, ownerID uuid.UUID) ([]db_models.WishlistEntry, error) {
	entries, err := s.wishlistRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (s *MarketplaceService) RemoveWishlistEntry(ctx context.Context, ownerID, entryID uuid.UUID) error {
	entry, err := s.wishlistRepo.FindById(ctx, entryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if entry == nil {
		return utils.ErrListingNotFound
	}
	if entry.UserID != ownerID {
		return utils.ErrNotOwner
	}

	if err := s.wishlistRepo.Delete(ctx, entryID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
