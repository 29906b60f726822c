package db_models

import (
	"github.com/google/uuid"
)

type Comic struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title          string `gorm:"not null"`
	IssueNumber    string
	Publisher      string
	Year           *int
	Condition      string
	Grade          *float64 // 1.0 - 10.0
	EstimatedValue *float64
	CoverImageURL  string
	Notes          string

	Owner Account `gorm:"foreignKey:UserID"`
}
