package dto

import (
	"time"

	"github.com/google/uuid"
)

// ListCustomersRequest represents the query parameters for listing customers
type ListCustomersRequest struct {
	Query   string `query:"q" validate:"omitempty,max=255"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
	PerPage int    `query:"per_page" validate:"omitempty,min=1,max=100"`
}

// CreateCustomerRequest represents the request to create a new customer
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email"`
	ImageURL string `json:"image_url" validate:"required,image_url"`
}

// UpdateCustomerRequest represents the request to update an existing customer
type UpdateCustomerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	ImageURL *string `json:"image_url" validate:"omitempty,image_url"`
}

// CustomerResponse represents a single customer
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListItem represents a customer row in the customers table,
// including aggregated invoice figures
type CustomerListItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

// ListCustomersResponse represents the paginated customer list
type ListCustomersResponse struct {
	Customers  []*CustomerListItem `json:"customers"`
	Pagination PaginationMeta      `json:"pagination"`
}
