package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice is a billing record against a customer. Amounts are stored in
// integer cents so no floating-point rounding ever reaches the database.
type Invoice struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	AmountCents int64          `gorm:"not null" json:"amount_cents"`
	Status      string         `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.Date.IsZero() {
		i.Date = now
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

func (i *Invoice) Validate() error {
	if i.CustomerID == uuid.Nil {
		return errors.New("customer ID is required")
	}

	if i.AmountCents <= 0 {
		return errors.New("amount must be greater than zero")
	}

	if i.Status != InvoiceStatusPending && i.Status != InvoiceStatusPaid {
		return fmt.Errorf("invalid status: %s", i.Status)
	}

	if i.UserID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	return nil
}

func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

func (i *Invoice) TableName() string {
	return "invoices"
}
