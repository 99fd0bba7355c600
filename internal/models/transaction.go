package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionStatusCompleted = "completed"
	TransactionStatusPending   = "pending"
	TransactionStatusFailed    = "failed"
)

var (
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrMissingMerchantName      = errors.New("merchant name is required")
	ErrMissingTransactionDate   = errors.New("transaction date is required")
)

// Transaction is an immutable ledger entry. Amounts are always minor units.
type Transaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AmountCents   int64     `gorm:"not null" json:"amountCents"`
	MerchantName  string    `gorm:"type:varchar(255);not null;index" json:"merchantName"`
	MerchantImage string    `gorm:"type:text;not null" json:"merchantImage"`
	Date          time.Time `gorm:"not null" json:"date"`
	Status        string    `gorm:"type:varchar(50);not null;default:'completed'" json:"status"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}

	t.Date = t.Date.UTC()

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.MerchantName) == "" {
		return ErrMissingMerchantName
	}

	if t.Date.IsZero() {
		return ErrMissingTransactionDate
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	return nil
}

// IsCompleted returns true if the transaction is completed
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusCompleted, TransactionStatusPending, TransactionStatusFailed:
		return true
	default:
		return false
	}
}
