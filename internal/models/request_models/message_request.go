package request_models

import "github.com/google/uuid"

type SendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" binding:"required"`
	Body        string    `json:"body" binding:"required,max=4000"`
}
