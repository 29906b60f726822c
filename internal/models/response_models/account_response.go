package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
}

// EntitlementResponse summarizes what the account can currently do; quota
// fields use -1 for unlimited.
type EntitlementResponse struct {
	EffectiveTier         string  `json:"effective_tier"`
	SubscriptionTier      string  `json:"subscription_tier"`
	TrialActive           bool    `json:"trial_active"`
	TrialScansRemaining   int     `json:"trial_scans_remaining"`
	MonthlyScansRemaining int     `json:"monthly_scans_remaining"`
	MonthlyScansLimit     int     `json:"monthly_scans_limit"`
	OneTimeScans          int     `json:"one_time_scans"`
	StorageLimit          int     `json:"storage_limit"`
	StorageUsed           int     `json:"storage_used"`
	MarketplaceFeePct     float64 `json:"marketplace_fee_pct"`
	CanScan               bool    `json:"can_scan"`
}
