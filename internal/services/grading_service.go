package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"comicvault/internal/models/db_models"
	"comicvault/internal/models/request_models"
	"comicvault/internal/models/response_models"
	"comicvault/internal/repositories"
	"comicvault/pkg/utils"
)

type GradingServiceInterface interface {
	SubmitRequest(ctx context.Context, ownerID uuid.UUID, request request_models.SubmitGradingRequest) (*response_models.GradingResultResponse, error)
	ListRequests(ctx context.Context, ownerID uuid.UUID) ([]db_models.GradingRequest, error)
	DeleteRequest(ctx context.Context, ownerID, requestID uuid.UUID) error
	IdentifyComic(ctx context.Context, imageBase64 string) (*response_models.ComicIdentification, error)
}

type GradingService struct {
	gradingRepo  repositories.GradingRepository
	entitlements EntitlementServiceInterface
	vision       utils.VisionClientInterface
}

func NewGradingService(
	gradingRepo repositories.GradingRepository,
	entitlements EntitlementServiceInterface,
	vision utils.VisionClientInterface,
) GradingServiceInterface {
	return &GradingService{
		gradingRepo:  gradingRepo,
		entitlements: entitlements,
		vision:       vision,
	}
}

// SubmitRequest spends one scan credit, records the request, then calls the
// external grader. If that call fails the credit is refunded and the request
// stays pending; it completes only with a real result.
func (s *GradingService) SubmitRequest(ctx context.Context, ownerID uuid.UUID, request request_models.SubmitGradingRequest) (*response_models.GradingResultResponse, error) {
	source, err := s.entitlements.ConsumeScan(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	gradingRequest := &db_models.GradingRequest{
		UserID:         ownerID,
		ImageURLs:      request.ImageURLs,
		ConditionNotes: request.ConditionNotes,
		Status:         db_models.GradingPending,
	}
	if err := s.gradingRepo.InsertTx(ctx, gradingRequest); err != nil {
		s.refund(ctx, ownerID)
		return nil, utils.ErrDatabaseError
	}

	grade, err := s.vision.GradeCover(ctx, request.ImageURLs, request.ConditionNotes)
	if err != nil {
		log.Printf("Grading call failed for request %s: %v", gradingRequest.ID, err)
		s.refund(ctx, ownerID)
		return &response_models.GradingResultResponse{
			RequestID:  gradingRequest.ID,
			Status:     string(db_models.GradingPending),
			ScanSource: string(source),
		}, utils.ErrGradingUpstream
	}

	completed, err := s.gradingRepo.CompleteWithResult(ctx, gradingRequest.ID, grade.Grade, grade.ValueEstimate)
	if err != nil || !completed {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.GradingResultResponse{
		RequestID:     gradingRequest.ID,
		Status:        string(db_models.GradingCompleted),
		GradeResult:   &grade.Grade,
		ValueEstimate: &grade.ValueEstimate,
		ScanSource:    string(source),
	}, nil
}

func (s *GradingService) ListRequests(ctx context.Context, ownerID uuid.UUID) ([]db_models.GradingRequest, error) {
	requests, err := s.gradingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return requests, nil
}

func (s *GradingService) DeleteRequest(ctx context.Context, ownerID, requestID uuid.UUID) error {
	request, err := s.gradingRepo.FindById(ctx, requestID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if request == nil {
		return utils.ErrGradingRequestNotFound
	}
	if request.UserID != ownerID {
		return utils.ErrNotOwner
	}

	deleted, err := s.gradingRepo.DeletePending(ctx, requestID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	// Completed requests are immutable history.
	if !deleted {
		return utils.ErrGradingNotPending
	}
	return nil
}

func (s *GradingService) IdentifyComic(ctx context.Context, imageBase64 string) (*response_models.ComicIdentification, error) {
	ident, err := s.vision.IdentifyCover(ctx, imageBase64)
	if err != nil {
		log.Printf("Identify call failed: %v", err)
		return nil, utils.ErrGradingUpstream
	}
	return ident, nil
}

func (s *GradingService) refund(ctx context.Context, ownerID uuid.UUID) {
	if _, err := s.entitlements.RefundScan(ctx, ownerID); err != nil {
		log.Printf("Refund after failed grading call failed for %s: %v", ownerID, err)
	}
}
