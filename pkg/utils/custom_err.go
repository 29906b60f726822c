package utils

import "errors"

// Declined: preconditions not met, routine outcomes the caller branches on.
var (
	ErrScanCreditsExhausted = errors.New("no scan credits available")
	ErrStorageLimitReached  = errors.New("comic storage limit reached")
	ErrNothingToRefund      = errors.New("nothing to refund")
	ErrTradeNotPending      = errors.New("trade is not pending")
	ErrTradeNotAccepted     = errors.New("trade is not accepted")
	ErrComicAlreadyListed   = errors.New("comic already has an active listing")
	ErrGradingNotPending    = errors.New("grading request is not pending")
)

// Not found: the referenced entity does not exist.
var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrComicNotFound          = errors.New("comic not found")
	ErrListingNotFound        = errors.New("listing not found")
	ErrTradeNotFound          = errors.New("trade not found")
	ErrGradingRequestNotFound = errors.New("grading request not found")
	ErrNotificationNotFound   = errors.New("notification not found")
	ErrPlanNotFound           = errors.New("plan not found")
)

var (
	ErrNotOwner           = errors.New("account does not own this resource")
	ErrNotTradeParty      = errors.New("account is not a party to this trade")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrGradingUpstream    = errors.New("grading service unavailable")
)
