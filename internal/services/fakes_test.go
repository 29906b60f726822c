package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/response_models"
	"comicvault/pkg/utils"
)

// In-memory repository fakes. The atomic SQL behavior (row locks, guarded
// transitions) is reproduced just enough for service-level assertions.

type fakeAccountRepo struct {
	accounts  map[uuid.UUID]*db_models.Account
	inserted  []*db_models.Account
	insertErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountRepo) add(account *db_models.Account) *db_models.Account {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID] = account
	return account
}

func (f *fakeAccountRepo) InsertTx(_ context.Context, account *db_models.Account) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.add(account)
	f.inserted = append(f.inserted, account)
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) StartTrial(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	account, ok := f.accounts[id]
	if !ok {
		return false, utils.ErrAccountNotFound
	}
	return account.ArmTrial(now), nil
}

func (f *fakeAccountRepo) ConsumeScan(_ context.Context, id uuid.UUID, now time.Time) (db_models.ScanSource, error) {
	account, ok := f.accounts[id]
	if !ok {
		return db_models.ScanSourceNone, utils.ErrAccountNotFound
	}
	source, ok := account.ApplyScanConsume(now)
	if !ok {
		return db_models.ScanSourceNone, utils.ErrScanCreditsExhausted
	}
	return source, nil
}

func (f *fakeAccountRepo) RefundScan(_ context.Context, id uuid.UUID, now time.Time) (db_models.ScanSource, error) {
	account, ok := f.accounts[id]
	if !ok {
		return db_models.ScanSourceNone, utils.ErrAccountNotFound
	}
	source, ok := account.ApplyScanRefund(now)
	if !ok {
		return db_models.ScanSourceNone, utils.ErrNothingToRefund
	}
	return source, nil
}

type fakeComicRepo struct {
	comics map[uuid.UUID]*db_models.Comic
}

func newFakeComicRepo() *fakeComicRepo {
	return &fakeComicRepo{comics: make(map[uuid.UUID]*db_models.Comic)}
}

func (f *fakeComicRepo) add(comic *db_models.Comic) *db_models.Comic {
	if comic.ID == uuid.Nil {
		comic.ID = uuid.New()
	}
	f.comics[comic.ID] = comic
	return comic
}

func (f *fakeComicRepo) InsertTx(_ context.Context, comic *db_models.Comic) error {
	f.add(comic)
	return nil
}

func (f *fakeComicRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Comic, error) {
	return f.comics[id], nil
}

func (f *fakeComicRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, _, _ int) ([]db_models.Comic, error) {
	var out []db_models.Comic
	for _, c := range f.comics {
		if c.UserID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeComicRepo) CountByOwner(_ context.Context, ownerID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range f.comics {
		if c.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeComicRepo) Update(_ context.Context, comic *db_models.Comic) error {
	f.comics[comic.ID] = comic
	return nil
}

func (f *fakeComicRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.comics, id)
	return nil
}

type fakeTradeRepo struct {
	trades      map[uuid.UUID]*db_models.Trade
	completeErr error
}

func newFakeTradeRepo() *fakeTradeRepo {
	return &fakeTradeRepo{trades: make(map[uuid.UUID]*db_models.Trade)}
}

func (f *fakeTradeRepo) InsertTx(_ context.Context, trade *db_models.Trade) error {
	if trade.ID == uuid.Nil {
		trade.ID = uuid.New()
	}
	f.trades[trade.ID] = trade
	return nil
}

func (f *fakeTradeRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Trade, error) {
	return f.trades[id], nil
}

func (f *fakeTradeRepo) ListByParty(_ context.Context, accountID uuid.UUID) ([]db_models.Trade, error) {
	var out []db_models.Trade
	for _, t := range f.trades {
		if t.IsParty(accountID) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTradeRepo) TransitionFromPending(_ context.Context, id uuid.UUID, to db_models.TradeStatus) (bool, error) {
	trade, ok := f.trades[id]
	if !ok || trade.Status != db_models.TradePending {
		return false, nil
	}
	trade.Status = to
	return true, nil
}

func (f *fakeTradeRepo) Complete(_ context.Context, tradeID uuid.UUID) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	trade, ok := f.trades[tradeID]
	if !ok {
		return utils.ErrTradeNotFound
	}
	if trade.Status != db_models.TradeAccepted {
		return utils.ErrTradeNotAccepted
	}
	trade.Status = db_models.TradeCompleted
	return nil
}

type fakeNotificationRepo struct {
	notifications []db_models.Notification
}

func (f *fakeNotificationRepo) InsertTx(_ context.Context, n *db_models.Notification) error {
	f.notifications = append(f.notifications, *n)
	return nil
}

func (f *fakeNotificationRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, unreadOnly bool) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range f.notifications {
		if n.UserID == ownerID && (!unreadOnly || !n.Read) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, ownerID uuid.UUID) (bool, error) {
	for i := range f.notifications {
		if f.notifications[i].ID == id && f.notifications[i].UserID == ownerID {
			f.notifications[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

type fakeGradingRepo struct {
	requests  map[uuid.UUID]*db_models.GradingRequest
	insertErr error
}

func newFakeGradingRepo() *fakeGradingRepo {
	return &fakeGradingRepo{requests: make(map[uuid.UUID]*db_models.GradingRequest)}
}

func (f *fakeGradingRepo) InsertTx(_ context.Context, request *db_models.GradingRequest) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	f.requests[request.ID] = request
	return nil
}

func (f *fakeGradingRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.GradingRequest, error) {
	return f.requests[id], nil
}

func (f *fakeGradingRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]db_models.GradingRequest, error) {
	var out []db_models.GradingRequest
	for _, r := range f.requests {
		if r.UserID == ownerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeGradingRepo) CompleteWithResult(_ context.Context, id uuid.UUID, grade, valueEstimate float64) (bool, error) {
	request, ok := f.requests[id]
	if !ok || request.Status != db_models.GradingPending {
		return false, nil
	}
	request.Status = db_models.GradingCompleted
	request.GradeResult = &grade
	request.ValueEstimate = &valueEstimate
	return true, nil
}

func (f *fakeGradingRepo) DeletePending(_ context.Context, id uuid.UUID) (bool, error) {
	request, ok := f.requests[id]
	if !ok || request.Status != db_models.GradingPending {
		return false, nil
	}
	delete(f.requests, id)
	return true, nil
}

type fakeListingRepo struct {
	listings   map[uuid.UUID]*db_models.Listing
	matchCount int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*db_models.Listing)}
}

func (f *fakeListingRepo) CreateWithWishlistScan(_ context.Context, listing *db_models.Listing, _ *db_models.Comic) (int, error) {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	f.listings[listing.ID] = listing
	return f.matchCount, nil
}

func (f *fakeListingRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Listing, error) {
	return f.listings[id], nil
}

func (f *fakeListingRepo) FindActiveByComic(_ context.Context, comicID uuid.UUID) (*db_models.Listing, error) {
	for _, l := range f.listings {
		if l.ComicID == comicID && l.Status == db_models.ListingActive {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeListingRepo) ListActive(_ context.Context, _, _ int) ([]db_models.Listing, error) {
	var out []db_models.Listing
	for _, l := range f.listings {
		if l.Status == db_models.ListingActive {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) TransitionStatus(_ context.Context, id uuid.UUID, to db_models.ListingStatus) (bool, error) {
	listing, ok := f.listings[id]
	if !ok || listing.Status != db_models.ListingActive {
		return false, nil
	}
	listing.Status = to
	return true, nil
}

type fakeWishlistRepo struct {
	entries map[uuid.UUID]*db_models.WishlistEntry
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: make(map[uuid.UUID]*db_models.WishlistEntry)}
}

func (f *fakeWishlistRepo) InsertTx(_ context.Context, entry *db_models.WishlistEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeWishlistRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.WishlistEntry, error) {
	return f.entries[id], nil
}

func (f *fakeWishlistRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]db_models.WishlistEntry, error) {
	var out []db_models.WishlistEntry
	for _, e := range f.entries {
		if e.UserID == ownerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.entries, id)
	return nil
}

type fakeEntitlements struct {
	consumeSource db_models.ScanSource
	consumeErr    error
	refundCalls   int
	refundErr     error
}

func (f *fakeEntitlements) StartTrial(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeEntitlements) CanConsume(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.consumeErr == nil, nil
}

func (f *fakeEntitlements) ConsumeScan(_ context.Context, _ uuid.UUID) (db_models.ScanSource, error) {
	if f.consumeErr != nil {
		return db_models.ScanSourceNone, f.consumeErr
	}
	return f.consumeSource, nil
}

func (f *fakeEntitlements) RefundScan(_ context.Context, _ uuid.UUID) (db_models.ScanSource, error) {
	f.refundCalls++
	if f.refundErr != nil {
		return db_models.ScanSourceNone, f.refundErr
	}
	return f.consumeSource, nil
}

func (f *fakeEntitlements) CanAddComic(_ context.Context, _ uuid.UUID) (bool, error) {
	return true, nil
}

func (f *fakeEntitlements) Summary(_ context.Context, _ uuid.UUID) (*response_models.EntitlementResponse, error) {
	return &response_models.EntitlementResponse{}, nil
}

type fakeVision struct {
	gradeResult *utils.CoverGrade
	gradeErr    error
	identResult *response_models.ComicIdentification
	identErr    error
	gradeCalls  int
}

func (f *fakeVision) IdentifyCover(_ context.Context, _ string) (*response_models.ComicIdentification, error) {
	if f.identErr != nil {
		return nil, f.identErr
	}
	return f.identResult, nil
}

func (f *fakeVision) GradeCover(_ context.Context, _ []string, _ string) (*utils.CoverGrade, error) {
	f.gradeCalls++
	if f.gradeErr != nil {
		return nil, f.gradeErr
	}
	return f.gradeResult, nil
}
