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
	"comicvault/internal/models/response_models"
	"comicvault/pkg/utils"
)

func TestSubmitGradingRequest(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	submit := request_models.SubmitGradingRequest{
		ImageURLs:      []string{"https://cdn.example.com/cover-front.jpg"},
		ConditionNotes: "slight spine wear",
	}

	t.Run("declines without credits and never calls the grader", func(t *testing.T) {
		repo := newFakeGradingRepo()
		ents := &fakeEntitlements{consumeErr: utils.ErrScanCreditsExhausted}
		vision := &fakeVision{}
		svc := NewGradingService(repo, ents, vision)

		_, err := svc.SubmitRequest(ctx, ownerID, submit)
		assert.ErrorIs(t, err, utils.ErrScanCreditsExhausted)
		assert.Zero(t, vision.gradeCalls)
		assert.Empty(t, repo.requests)
	})

	t.Run("grader failure refunds the credit and leaves the request pending", func(t *testing.T) {
		repo := newFakeGradingRepo()
		ents := &fakeEntitlements{consumeSource: db_models.ScanSourceMonthly}
		vision := &fakeVision{gradeErr: errors.New("upstream timeout")}
		svc := NewGradingService(repo, ents, vision)

		result, err := svc.SubmitRequest(ctx, ownerID, submit)
		assert.ErrorIs(t, err, utils.ErrGradingUpstream)
		assert.Equal(t, 1, ents.refundCalls)

		require.NotNil(t, result)
		assert.Equal(t, string(db_models.GradingPending), result.Status)
		assert.Nil(t, result.GradeResult)

		stored := repo.requests[result.RequestID]
		require.NotNil(t, stored)
		assert.Equal(t, db_models.GradingPending, stored.Status)
	})

	t.Run("success completes with the grade and keeps the credit spent", func(t *testing.T) {
		repo := newFakeGradingRepo()
		ents := &fakeEntitlements{consumeSource: db_models.ScanSourceTrial}
		vision := &fakeVision{gradeResult: &utils.CoverGrade{Grade: 9.2, ValueEstimate: 140}}
		svc := NewGradingService(repo, ents, vision)

		result, err := svc.SubmitRequest(ctx, ownerID, submit)
		require.NoError(t, err)

		assert.Equal(t, string(db_models.GradingCompleted), result.Status)
		require.NotNil(t, result.GradeResult)
		assert.Equal(t, 9.2, *result.GradeResult)
		assert.Equal(t, string(db_models.ScanSourceTrial), result.ScanSource)
		assert.Zero(t, ents.refundCalls)

		stored := repo.requests[result.RequestID]
		assert.Equal(t, db_models.GradingCompleted, stored.Status)
	})

	t.Run("a failed insert refunds the credit", func(t *testing.T) {
		repo := newFakeGradingRepo()
		repo.insertErr = errors.New("db down")
		ents := &fakeEntitlements{consumeSource: db_models.ScanSourceOneTime}
		svc := NewGradingService(repo, ents, &fakeVision{})

		_, err := svc.SubmitRequest(ctx, ownerID, submit)
		require.Error(t, err)
		assert.Equal(t, 1, ents.refundCalls)
	})
}

func TestDeleteGradingRequest(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	seed := func(repo *fakeGradingRepo, status db_models.GradingStatus) uuid.UUID {
		request := &db_models.GradingRequest{UserID: ownerID, Status: status}
		_ = repo.InsertTx(ctx, request)
		return request.ID
	}

	t.Run("removes a pending request", func(t *testing.T) {
		repo := newFakeGradingRepo()
		id := seed(repo, db_models.GradingPending)
		svc := NewGradingService(repo, &fakeEntitlements{}, &fakeVision{})

		require.NoError(t, svc.DeleteRequest(ctx, ownerID, id))
		assert.Empty(t, repo.requests)
	})

	t.Run("completed requests are immutable", func(t *testing.T) {
		repo := newFakeGradingRepo()
		id := seed(repo, db_models.GradingCompleted)
		svc := NewGradingService(repo, &fakeEntitlements{}, &fakeVision{})

		err := svc.DeleteRequest(ctx, ownerID, id)
		assert.ErrorIs(t, err, utils.ErrGradingNotPending)
		assert.Len(t, repo.requests, 1)
	})

	t.Run("only the owner may delete", func(t *testing.T) {
		repo := newFakeGradingRepo()
		id := seed(repo, db_models.GradingPending)
		svc := NewGradingService(repo, &fakeEntitlements{}, &fakeVision{})

		err := svc.DeleteRequest(ctx, uuid.New(), id)
		assert.ErrorIs(t, err, utils.ErrNotOwner)
	})
}

func TestIdentifyComic(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the identification through", func(t *testing.T) {
		vision := &fakeVision{identResult: &response_models.ComicIdentification{
			Title:       "Saga",
			IssueNumber: "1",
			Publisher:   "Image Comics",
		}}
		svc := NewGradingService(newFakeGradingRepo(), &fakeEntitlements{}, vision)

		ident, err := svc.IdentifyComic(ctx, "base64data")
		require.NoError(t, err)
		assert.Equal(t, "Saga", ident.Title)
	})

	t.Run("maps provider failures to an upstream error", func(t *testing.T) {
		vision := &fakeVision{identErr: errors.New("rate limited")}
		svc := NewGradingService(newFakeGradingRepo(), &fakeEntitlements{}, vision)

		_, err := svc.IdentifyComic(ctx, "base64data")
		assert.ErrorIs(t, err, utils.ErrGradingUpstream)
	})
}
