package request_models

import "github.com/google/uuid"

type CreateListingRequest struct {
	ComicID uuid.UUID `json:"comic_id" binding:"required"`
	Price   float64   `json:"price" binding:"required,gt=0"`
}

type CreateWishlistEntryRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	IssueNumber *string `json:"issue_number"`
	Publisher   *string `json:"publisher"`
}
