package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "pending"
	TxnStatusPaid     TransactionStatus = "paid"
	TxnStatusFailed   TransactionStatus = "failed"
	TxnStatusRefunded TransactionStatus = "refunded"
)

type Transaction struct {
	BaseModel
	AccountID   uuid.UUID         `gorm:"type:uuid;index;not null"`
	PlanID      *uuid.UUID        `gorm:"type:uuid;index"`
	AmountMinor int64             // 999 = $9.99
	Currency    string            `gorm:"size:3"`
	Status      TransactionStatus `gorm:"type:varchar(16);index"`

	// Gateway fields
	Provider      string `gorm:"index"`
	ProviderTxnID string `gorm:"index"` // idempotency across webhooks

	PaidAt     *int64
	RefundedAt *int64

	// Raw receipts, webhook payloads, failure reasons, etc.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
	Plan    *Plan   `gorm:"foreignKey:PlanID"`
}
