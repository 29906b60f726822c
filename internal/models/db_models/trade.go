package db_models

import (
	"github.com/google/uuid"
)

type TradeStatus string

const (
	TradePending   TradeStatus = "pending"
	TradeAccepted  TradeStatus = "accepted"
	TradeRejected  TradeStatus = "rejected"
	TradeCancelled TradeStatus = "cancelled"
	TradeCompleted TradeStatus = "completed"
)

type Trade struct {
	BaseModel
	InitiatorID uuid.UUID   `gorm:"type:uuid;index;not null"`
	RecipientID uuid.UUID   `gorm:"type:uuid;index;not null"`
	Status      TradeStatus `gorm:"type:varchar(16);default:pending;index"`
	Notes       string

	Items []TradeItem `gorm:"foreignKey:TradeID"`

	Initiator Account `gorm:"foreignKey:InitiatorID"`
	Recipient Account `gorm:"foreignKey:RecipientID"`
}

// TradeItem binds one comic to the account that owned it when the trade was
// proposed.
type TradeItem struct {
	BaseModel
	TradeID uuid.UUID `gorm:"type:uuid;index;not null"`
	ComicID uuid.UUID `gorm:"type:uuid;index;not null"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null"`

	Comic Comic `gorm:"foreignKey:ComicID"`
}

// IsParty reports whether the account is the initiator or recipient.
func (t *Trade) IsParty(accountID uuid.UUID) bool {
	return t.InitiatorID == accountID || t.RecipientID == accountID
}

// CounterpartyOf returns the other side of the trade for the given owner.
// Settlement reassigns every item to the counterparty of its recorded owner.
func (t *Trade) CounterpartyOf(ownerID uuid.UUID) uuid.UUID {
	if ownerID == t.InitiatorID {
		return t.RecipientID
	}
	return t.InitiatorID
}
