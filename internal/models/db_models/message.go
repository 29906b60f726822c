package db_models

import (
	"github.com/google/uuid"
)

type Message struct {
	BaseModel
	SenderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	RecipientID uuid.UUID `gorm:"type:uuid;index;not null"`
	Body        string    `gorm:"not null"`
	ReadAt      *int64

	Sender    Account `gorm:"foreignKey:SenderID"`
	Recipient Account `gorm:"foreignKey:RecipientID"`
}
