package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comicvault/internal/models/request_models"
	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

type MarketplaceController struct {
	marketplaceService services.MarketplaceServiceInterface
}

func NewMarketplaceController(marketplaceService services.MarketplaceServiceInterface) *MarketplaceController {
	return &MarketplaceController{
		marketplaceService: marketplaceService,
	}
}

// CreateListing godoc
// @Summary List a comic for sale
// @Description Creates an active listing and notifies matching wishlists
// @Tags Marketplace
// @Accept json
// @Produce json
// @Param request body request_models.CreateListingRequest true "Listing payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketplace/listings [post]
func (ctl *MarketplaceController) CreateListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	listing, err := ctl.marketplaceService.CreateListing(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, listing, "Listing created successfully")
}

// BrowseListings godoc
// @Summary Browse active listings
// @Tags Marketplace
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketplace/listings [get]
func (ctl *MarketplaceController) BrowseListings(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	page, pageSize := pagination(c)
	listings, err := ctl.marketplaceService.BrowseListings(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, listings, "Listings fetched successfully")
}

// CancelListing godoc
// @Summary Cancel an active listing
// @Tags Marketplace
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketplace/listings/{id}/cancel [post]
func (ctl *MarketplaceController) CancelListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := ctl.marketplaceService.CancelListing(c.Request.Context(), userID, listingID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Listing cancelled successfully")
}

// MarkSold godoc
// @Summary Mark a listing as sold
// @Tags Marketplace
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketplace/listings/{id}/sold [post]
func (ctl *MarketplaceController) MarkSold(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := ctl.marketplaceService.MarkSold(c.Request.Context(), userID, listingID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Listing marked as sold")
}

// AddWishlistEntry godoc
// @Summary Add a wishlist entry
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param request body request_models.CreateWishlistEntryRequest true "Wishlist payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wishlist [post]
func (ctl *MarketplaceController) AddWishlistEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateWishlistEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := ctl.marketplaceService.AddWishlistEntry(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Wishlist entry added successfully")
}

// ListWishlist godoc
// @Summary List the caller's wishlist
// @Tags Wishlist
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wishlist [get]
func (ctl *MarketplaceController) ListWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := ctl.marketplaceService.ListWishlist(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Wishlist fetched successfully")
}

// RemoveWishlistEntry godoc
// @Summary Remove a wishlist entry
// @Tags Wishlist
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wishlist/{id} [delete]
func (ctl *MarketplaceController) RemoveWishlistEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := ctl.marketplaceService.RemoveWishlistEntry(c.Request.Context(), userID, entryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Wishlist entry removed successfully")
}
