package db_models

import (
	"time"
)

// TrialScanAllowance is the lifetime number of scans a trial grants.
const TrialScanAllowance = 3

// TrialDuration is how long the one-time trial stays open after it is armed.
const TrialDuration = 72 * time.Hour

// ScanSource identifies which credit pool paid for a scan.
type ScanSource string

const (
	ScanSourceTrial     ScanSource = "trial"
	ScanSourceUnlimited ScanSource = "unlimited"
	ScanSourceMonthly   ScanSource = "monthly"
	ScanSourceOneTime   ScanSource = "one_time"
	ScanSourceNone      ScanSource = "none"
)

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	SubscriptionTier      SubscriptionTier `gorm:"type:varchar(16);default:free;index"`
	SubscriptionExpiresAt *int64

	MonthlyScansRemaining int
	MonthlyScansLimit     int
	OneTimeScans          int
	ScansResetDate        int64
	ComicStorageLimit     int

	TrialStartedAt *int64
	TrialExpiresAt *int64
	TrialScansUsed int
}

// trialWindowOpen reports whether the trial has been armed and its 3-day
// window has not yet elapsed, regardless of how many trial scans were spent.
func (a *Account) trialWindowOpen(now time.Time) bool {
	return a.TrialStartedAt != nil && a.TrialExpiresAt != nil && now.Unix() < *a.TrialExpiresAt
}

// TrialActive is recomputed on every read; there is no stored "active" flag.
func (a *Account) TrialActive(now time.Time) bool {
	return a.trialWindowOpen(now) && a.TrialScansUsed < TrialScanAllowance
}

// EffectiveTier is the tier all quota and fee decisions must use. An active
// trial grants collector benefits over whatever tier is stored; a lapsed paid
// subscription falls back to free.
func (a *Account) EffectiveTier(now time.Time) SubscriptionTier {
	if a.TrialActive(now) {
		return TierCollector
	}
	if a.SubscriptionTier != TierFree &&
		a.SubscriptionExpiresAt != nil && now.Unix() > *a.SubscriptionExpiresAt {
		return TierFree
	}
	return a.SubscriptionTier
}

func (a *Account) EffectiveLimits(now time.Time) TierLimits {
	return LimitsForTier(a.EffectiveTier(now))
}

// ArmTrial starts the one-time trial. It refuses if the trial was ever armed
// before; the repository enforces the same guard in a single SQL statement so
// concurrent calls cannot re-arm it.
func (a *Account) ArmTrial(now time.Time) bool {
	if a.TrialStartedAt != nil {
		return false
	}
	started := now.Unix()
	expires := now.Add(TrialDuration).Unix()
	a.TrialStartedAt = &started
	a.TrialExpiresAt = &expires
	a.TrialScansUsed = 0
	return true
}

// CanConsumeScan mirrors ApplyScanConsume's preconditions without mutating.
func (a *Account) CanConsumeScan(now time.Time) bool {
	if a.TrialActive(now) {
		return true
	}
	if a.EffectiveTier(now) == TierPro {
		return true
	}
	return a.MonthlyScansRemaining > 0 || a.OneTimeScans > 0
}

// ApplyScanConsume spends one scan credit following the strict priority order:
// trial, unlimited pro, monthly (resetting the monthly bucket first when the
// reset date has passed), then purchased one-time credits. The caller must
// hold the account row locked and persist the mutation in the same
// transaction.
func (a *Account) ApplyScanConsume(now time.Time) (ScanSource, bool) {
	if a.TrialActive(now) {
		a.TrialScansUsed++
		return ScanSourceTrial, true
	}

	// Unlimited never decrements a finite counter.
	if a.EffectiveTier(now) == TierPro {
		return ScanSourceUnlimited, true
	}

	if now.Unix() >= a.ScansResetDate {
		a.resetMonthlyBucket(now)
	}
	if a.MonthlyScansRemaining > 0 {
		a.MonthlyScansRemaining--
		return ScanSourceMonthly, true
	}

	if a.OneTimeScans > 0 {
		a.OneTimeScans--
		return ScanSourceOneTime, true
	}

	return ScanSourceNone, false
}

// resetMonthlyBucket re-seeds the monthly allowance from the then-current
// effective tier and schedules the next reset one month out.
func (a *Account) resetMonthlyBucket(now time.Time) {
	limits := a.EffectiveLimits(now)
	if limits.MonthlyScanQuota != Unlimited {
		a.MonthlyScansLimit = limits.MonthlyScanQuota
		a.MonthlyScansRemaining = limits.MonthlyScanQuota
	}
	a.ScansResetDate = now.AddDate(0, 1, 0).Unix()
}

// ApplyScanRefund gives back one previously consumed credit. While the trial
// window is open it restores a trial scan, refusing outright once
// trial_scans_used is already zero. Pro refunds succeed without touching any
// counter. All other refunds credit the one-time pool regardless of which
// bucket the original consumption drew from; that asymmetry matches observed
// production behavior and is kept deliberately.
func (a *Account) ApplyScanRefund(now time.Time) (ScanSource, bool) {
	if a.trialWindowOpen(now) {
		if a.TrialScansUsed == 0 {
			return ScanSourceNone, false
		}
		a.TrialScansUsed--
		return ScanSourceTrial, true
	}

	if a.EffectiveTier(now) == TierPro {
		return ScanSourceUnlimited, true
	}

	a.OneTimeScans++
	return ScanSourceOneTime, true
}

// CanAddComic checks the storage cap of the effective tier against the
// caller-supplied current catalog size. Callers must evaluate it immediately
// before inserting; trial expiry can change the answer between reads.
func (a *Account) CanAddComic(currentCount int, now time.Time) bool {
	limit := a.EffectiveLimits(now).StorageLimit
	if limit == Unlimited {
		return true
	}
	return currentCount < limit
}

// ApplyTierChange moves the account onto a new paid tier, re-seeding the
// monthly bucket and storage cap from the tier catalog.
func (a *Account) ApplyTierChange(tier SubscriptionTier, expiresAt *int64, now time.Time) {
	limits := LimitsForTier(tier)
	a.SubscriptionTier = tier
	a.SubscriptionExpiresAt = expiresAt
	a.MonthlyScansLimit = limits.MonthlyScanQuota
	if limits.MonthlyScanQuota == Unlimited {
		a.MonthlyScansRemaining = 0
	} else {
		a.MonthlyScansRemaining = limits.MonthlyScanQuota
	}
	a.ComicStorageLimit = limits.StorageLimit
	a.ScansResetDate = now.AddDate(0, 1, 0).Unix()
}
