package dto

import (
	"time"

	"github.com/google/uuid"
)

// ListInvoicesRequest represents the query parameters for listing invoices
type ListInvoicesRequest struct {
	Query   string `query:"q" validate:"omitempty,max=255"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
	PerPage int    `query:"per_page" validate:"omitempty,min=1,max=100"`
}

// CreateInvoiceRequest represents the request to create a new invoice.
// Amount is in dollars and is converted to cents before storage.
type CreateInvoiceRequest struct {
	CustomerID string  `json:"customer_id" validate:"required,customer_id"`
	Amount     float64 `json:"amount" validate:"required,positive_amount"`
	Status     string  `json:"status" validate:"required,invoice_status"`
}

// UpdateInvoiceRequest represents the request to update an existing invoice
type UpdateInvoiceRequest struct {
	CustomerID *string  `json:"customer_id" validate:"omitempty,customer_id"`
	Amount     *float64 `json:"amount" validate:"omitempty,positive_amount"`
	Status     *string  `json:"status" validate:"omitempty,invoice_status"`
}

// InvoiceResponse represents a single invoice
type InvoiceResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	AmountCents int64     `json:"amount_cents"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
}

// InvoiceListItem represents an invoice row in the invoices table,
// joined with its customer for display
type InvoiceListItem struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ImageURL      string    `json:"image_url"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
}

// ListInvoicesResponse represents the paginated invoice list
type ListInvoicesResponse struct {
	Invoices   []*InvoiceListItem `json:"invoices"`
	Pagination PaginationMeta     `json:"pagination"`
}

// LatestInvoicesResponse represents the most recent invoices for the dashboard
type LatestInvoicesResponse struct {
	Invoices  []*InvoiceListItem `json:"invoices"`
	FetchedAt time.Time          `json:"fetched_at"`
}
