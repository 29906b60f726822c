package request_models

import "github.com/google/uuid"

type ProposeTradeRequest struct {
	RecipientID uuid.UUID   `json:"recipient_id" binding:"required"`
	ComicIDs    []uuid.UUID `json:"comic_ids" binding:"required,min=1"`
	Notes       string      `json:"notes"`
}

type RespondTradeRequest struct {
	// accepted, rejected or cancelled
	Status string `json:"status" binding:"required,oneof=accepted rejected cancelled"`
}
