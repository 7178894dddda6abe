package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validInvoice() *Invoice {
	return &Invoice{
		CustomerID:  uuid.New(),
		AmountCents: 1250,
		Status:      InvoiceStatusPending,
		Date:        time.Now(),
		UserID:      uuid.New(),
	}
}

func TestInvoiceValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Invoice)
		wantErr bool
	}{
		{"valid pending", func(i *Invoice) {}, false},
		{"valid paid", func(i *Invoice) { i.Status = InvoiceStatusPaid }, false},
		{"missing customer", func(i *Invoice) { i.CustomerID = uuid.Nil }, true},
		{"zero amount", func(i *Invoice) { i.AmountCents = 0 }, true},
		{"negative amount", func(i *Invoice) { i.AmountCents = -100 }, true},
		{"unknown status", func(i *Invoice) { i.Status = "overdue" }, true},
		{"missing owner", func(i *Invoice) { i.UserID = uuid.Nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := validInvoice()
			tt.mutate(invoice)

			err := invoice.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvoiceIsPaid(t *testing.T) {
	invoice := validInvoice()
	assert.False(t, invoice.IsPaid())

	invoice.Status = InvoiceStatusPaid
	assert.True(t, invoice.IsPaid())
}
