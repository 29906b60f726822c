package db_models

type SubscriptionTier string

const (
	TierFree      SubscriptionTier = "free"
	TierCollector SubscriptionTier = "collector"
	TierPro       SubscriptionTier = "pro"
)

// Unlimited marks a quota with no cap. Callers must check it before doing
// arithmetic on a limit.
const Unlimited = -1

// TierLimits defines what a subscription tier grants.
type TierLimits struct {
	MonthlyScanQuota  int
	StorageLimit      int
	MarketplaceFeePct float64
}

var tierCatalog = map[SubscriptionTier]TierLimits{
	TierFree: {
		MonthlyScanQuota:  5,
		StorageLimit:      50,
		MarketplaceFeePct: 10.0,
	},
	TierCollector: {
		MonthlyScanQuota:  50,
		StorageLimit:      1000,
		MarketplaceFeePct: 6.0,
	},
	TierPro: {
		MonthlyScanQuota:  Unlimited,
		StorageLimit:      Unlimited,
		MarketplaceFeePct: 3.0,
	},
}

// LimitsForTier returns the limits for a tier, falling back to the free tier
// for unknown values.
func LimitsForTier(tier SubscriptionTier) TierLimits {
	if limits, ok := tierCatalog[tier]; ok {
		return limits
	}
	return tierCatalog[TierFree]
}
