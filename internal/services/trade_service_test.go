package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/request_models"
	"comicvault/pkg/utils"
)

type tradeFixture struct {
	svc       TradeServiceInterface
	trades    *fakeTradeRepo
	comics    *fakeComicRepo
	accounts  *fakeAccountRepo
	notifs    *fakeNotificationRepo
	initiator uuid.UUID
	recipient uuid.UUID
}

func newTradeFixture() *tradeFixture {
	trades := newFakeTradeRepo()
	comics := newFakeComicRepo()
	accounts := newFakeAccountRepo()
	notifs := &fakeNotificationRepo{}

	initiator := accounts.add(&db_models.Account{Email: "a@example.com"}).ID
	recipient := accounts.add(&db_models.Account{Email: "b@example.com"}).ID

	return &tradeFixture{
		svc:       NewTradeService(trades, comics, accounts, notifs),
		trades:    trades,
		comics:    comics,
		accounts:  accounts,
		notifs:    notifs,
		initiator: initiator,
		recipient: recipient,
	}
}

func TestProposeTrade(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a trade with yourself", func(t *testing.T) {
		f := newTradeFixture()
		_, err := f.svc.ProposeTrade(ctx, f.initiator, request_models.ProposeTradeRequest{
			RecipientID: f.initiator,
		})
		assert.ErrorIs(t, err, utils.ErrNotTradeParty)
	})

	t.Run("rejects comics owned by a third party", func(t *testing.T) {
		f := newTradeFixture()
		stranger := f.accounts.add(&db_models.Account{Email: "c@example.com"}).ID
		comic := f.comics.add(&db_models.Comic{UserID: stranger, Title: "Saga"})

		_, err := f.svc.ProposeTrade(ctx, f.initiator, request_models.ProposeTradeRequest{
			RecipientID: f.recipient,
			ComicIDs:    []uuid.UUID{comic.ID},
		})
		assert.ErrorIs(t, err, utils.ErrNotOwner)
	})

	t.Run("records each item's owner and notifies the recipient", func(t *testing.T) {
		f := newTradeFixture()
		mine := f.comics.add(&db_models.Comic{UserID: f.initiator, Title: "Saga"})
		theirs := f.comics.add(&db_models.Comic{UserID: f.recipient, Title: "Monstress"})

		trade, err := f.svc.ProposeTrade(ctx, f.initiator, request_models.ProposeTradeRequest{
			RecipientID: f.recipient,
			ComicIDs:    []uuid.UUID{mine.ID, theirs.ID},
		})
		require.NoError(t, err)

		assert.Equal(t, db_models.TradePending, trade.Status)
		require.Len(t, trade.Items, 2)
		assert.Equal(t, f.initiator, trade.Items[0].OwnerID)
		assert.Equal(t, f.recipient, trade.Items[1].OwnerID)

		require.Len(t, f.notifs.notifications, 1)
		assert.Equal(t, f.recipient, f.notifs.notifications[0].UserID)
		assert.Equal(t, db_models.NotificationTradeProposal, f.notifs.notifications[0].Type)
	})
}

func TestRespondToTrade(t *testing.T) {
	ctx := context.Background()

	pendingTrade := func(t *testing.T, f *tradeFixture) uuid.UUID {
		t.Helper()
		trade := &db_models.Trade{
			InitiatorID: f.initiator,
			RecipientID: f.recipient,
			Status:      db_models.TradePending,
		}
		require.NoError(t, f.trades.InsertTx(ctx, trade))
		return trade.ID
	}

	t.Run("only the recipient can accept", func(t *testing.T) {
		f := newTradeFixture()
		id := pendingTrade(t, f)

		err := f.svc.RespondToTrade(ctx, f.initiator, id, db_models.TradeAccepted)
		assert.ErrorIs(t, err, utils.ErrNotTradeParty)
		assert.Equal(t, db_models.TradePending, f.trades.trades[id].Status)
	})

	t.Run("recipient accepts", func(t *testing.T) {
		f := newTradeFixture()
		id := pendingTrade(t, f)

		require.NoError(t, f.svc.RespondToTrade(ctx, f.recipient, id, db_models.TradeAccepted))
		assert.Equal(t, db_models.TradeAccepted, f.trades.trades[id].Status)
	})

	t.Run("either party may cancel while pending", func(t *testing.T) {
		f := newTradeFixture()
		id := pendingTrade(t, f)

		require.NoError(t, f.svc.RespondToTrade(ctx, f.initiator, id, db_models.TradeCancelled))
		assert.Equal(t, db_models.TradeCancelled, f.trades.trades[id].Status)
	})

	t.Run("a settled trade cannot transition again", func(t *testing.T) {
		f := newTradeFixture()
		id := pendingTrade(t, f)
		f.trades.trades[id].Status = db_models.TradeRejected

		err := f.svc.RespondToTrade(ctx, f.recipient, id, db_models.TradeAccepted)
		assert.ErrorIs(t, err, utils.ErrTradeNotPending)
	})

	t.Run("strangers are rejected", func(t *testing.T) {
		f := newTradeFixture()
		id := pendingTrade(t, f)
		stranger := f.accounts.add(&db_models.Account{Email: "c@example.com"}).ID

		err := f.svc.RespondToTrade(ctx, stranger, id, db_models.TradeCancelled)
		assert.ErrorIs(t, err, utils.ErrNotTradeParty)
	})
}

func TestCompleteTrade(t *testing.T) {
	ctx := context.Background()

	acceptedTrade := func(t *testing.T, f *tradeFixture) uuid.UUID {
		t.Helper()
		trade := &db_models.Trade{
			InitiatorID: f.initiator,
			RecipientID: f.recipient,
			Status:      db_models.TradeAccepted,
		}
		require.NoError(t, f.trades.InsertTx(ctx, trade))
		return trade.ID
	}

	t.Run("declines when the trade is not accepted", func(t *testing.T) {
		f := newTradeFixture()
		id := acceptedTrade(t, f)
		f.trades.trades[id].Status = db_models.TradePending

		err := f.svc.CompleteTrade(ctx, f.initiator, id)
		assert.ErrorIs(t, err, utils.ErrTradeNotAccepted)
	})

	t.Run("settles and notifies both parties", func(t *testing.T) {
		f := newTradeFixture()
		id := acceptedTrade(t, f)

		require.NoError(t, f.svc.CompleteTrade(ctx, f.recipient, id))
		assert.Equal(t, db_models.TradeCompleted, f.trades.trades[id].Status)
		assert.Len(t, f.notifs.notifications, 2)
	})

	t.Run("a failed settlement leaves the trade accepted", func(t *testing.T) {
		f := newTradeFixture()
		id := acceptedTrade(t, f)
		f.trades.completeErr = errors.New("ownership drifted")

		err := f.svc.CompleteTrade(ctx, f.initiator, id)
		require.Error(t, err)
		assert.Equal(t, db_models.TradeAccepted, f.trades.trades[id].Status)
		assert.Empty(t, f.notifs.notifications)
	})

	t.Run("only a party may settle", func(t *testing.T) {
		f := newTradeFixture()
		id := acceptedTrade(t, f)
		stranger := f.accounts.add(&db_models.Account{Email: "c@example.com"}).ID

		err := f.svc.CompleteTrade(ctx, stranger, id)
		assert.ErrorIs(t, err, utils.ErrNotTradeParty)
	})
}
