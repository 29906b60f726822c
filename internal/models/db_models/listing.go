package db_models

import (
	"github.com/google/uuid"
)

type ListingStatus string

const (
	ListingActive    ListingStatus = "active"
	ListingSold      ListingStatus = "sold"
	ListingCancelled ListingStatus = "cancelled"
)

type Listing struct {
	BaseModel
	ComicID  uuid.UUID     `gorm:"type:uuid;index;not null"`
	SellerID uuid.UUID     `gorm:"type:uuid;index;not null"`
	Price    float64       `gorm:"not null"`
	Status   ListingStatus `gorm:"type:varchar(16);default:active;index"`

	Comic  Comic   `gorm:"foreignKey:ComicID"`
	Seller Account `gorm:"foreignKey:SellerID"`
}
