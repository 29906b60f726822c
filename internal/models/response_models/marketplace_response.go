package response_models

import "github.com/google/uuid"

type ListingResponse struct {
	ID       uuid.UUID `json:"id"`
	ComicID  uuid.UUID `json:"comic_id"`
	SellerID uuid.UUID `json:"seller_id"`
	Price    float64   `json:"price"`
	Status   string    `json:"status"`
	// Fee preview from the seller's effective tier at listing time.
	FeePct      float64 `json:"fee_pct"`
	FeeAmount   float64 `json:"fee_amount"`
	NetProceeds float64 `json:"net_proceeds"`
	// How many wishlist notifications the listing fanned out to.
	WishlistMatches int `json:"wishlist_matches"`
}
