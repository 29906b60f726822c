package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comicvault/internal/models/db_models"
)

type GradingRepository interface {
	InsertTx(ctx context.Context, request *db_models.GradingRequest) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.GradingRequest, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.GradingRequest, error)

	// CompleteWithResult moves a pending request to completed with its grade.
	CompleteWithResult(ctx context.Context, id uuid.UUID, grade, valueEstimate float64) (bool, error)

	// DeletePending removes the request only while it is still pending.
	DeletePending(ctx context.Context, id uuid.UUID) (bool, error)
}

type gradingRepository struct {
	db *gorm.DB
}

func NewGradingRepository(db *gorm.DB) GradingRepository {
	return &gradingRepository{
		db: db,
	}
}

func (r *gradingRepository) InsertTx(ctx context.Context, request *db_models.GradingRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *gradingRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.GradingRequest, error) {
	var request db_models.GradingRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

func (r *gradingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.GradingRequest, error) {
	var requests []db_models.GradingRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *gradingRepository) CompleteWithResult(ctx context.Context, id uuid.UUID, grade, valueEstimate float64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db_models.GradingRequest{}).
		Where("id = ? AND status = ?", id, db_models.GradingPending).
		Updates(map[string]interface{}{
			"status":         db_models.GradingCompleted,
			"grade_result":   grade,
			"value_estimate": valueEstimate,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gradingRepository) DeletePending(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, db_models.GradingPending).
		Delete(&db_models.GradingRequest{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
