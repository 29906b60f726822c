package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type GradingStatus string

const (
	GradingPending   GradingStatus = "pending"
	GradingCompleted GradingStatus = "completed"
)

type GradingRequest struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	// Ordered image references submitted for grading.
	ImageURLs      pq.StringArray `gorm:"type:text[]"`
	ConditionNotes string

	Status        GradingStatus `gorm:"type:varchar(16);default:pending;index"`
	GradeResult   *float64
	ValueEstimate *float64

	Owner Account `gorm:"foreignKey:UserID"`
}
