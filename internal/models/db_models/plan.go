package db_models

import (
	"gorm.io/datatypes"
)

type PlanKind string

const (
	// PlanKindTier upgrades the account to a paid subscription tier.
	PlanKindTier PlanKind = "tier"
	// PlanKindScanPack adds purchased one-time scan credits.
	PlanKindScanPack PlanKind = "scan_pack"
)

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "collector_monthly", "pro_monthly", "scan_pack_10"
	Name        string
	Description *string

	Kind PlanKind `gorm:"type:varchar(16);not null"`
	// For tier plans: the tier granted and how many days it runs.
	GrantsTier   SubscriptionTier `gorm:"type:varchar(16)"`
	DurationDays int32            `gorm:"default:0"`
	// For scan packs: how many one-time credits the purchase adds.
	ScanCredits int32 `gorm:"default:0"`

	PriceMinor int64  // 999 = $9.99
	Currency   string `gorm:"size:3"`
	IsActive   bool   `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
