package db_models

import (
	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationWishlistMatch NotificationType = "wishlist_match"
	NotificationTradeProposal NotificationType = "trade_proposal"
	NotificationTradeUpdate   NotificationType = "trade_update"
)

type Notification struct {
	BaseModel
	UserID    uuid.UUID        `gorm:"type:uuid;index;not null"`
	Type      NotificationType `gorm:"type:varchar(32);not null"`
	Message   string
	ListingID *uuid.UUID `gorm:"type:uuid"`
	TradeID   *uuid.UUID `gorm:"type:uuid"`
	Read      bool       `gorm:"default:false;index"`
}
