package repositories

import (
	"time"

	"invoicing-dashboard/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
}

// CustomerListFilter narrows the customer list query. Query matches against
// name and email, case-insensitively.
type CustomerListFilter struct {
	Query  string
	Offset int
	Limit  int
}

// CustomerWithTotals is a customer row joined with aggregated invoice figures
type CustomerWithTotals struct {
	ID                uuid.UUID
	Name              string
	Email             string
	ImageURL          string
	TotalInvoices     int64
	TotalPendingCents int64
	TotalPaidCents    int64
}

// CustomerRepositoryInterface defines the contract for customer repository operations.
// All lookups are scoped to the owning user.
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id, userID uuid.UUID) (*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id, userID uuid.UUID) error
	ListWithTotals(userID uuid.UUID, filter CustomerListFilter) ([]*CustomerWithTotals, int64, error)
	ExistsByEmail(userID uuid.UUID, email string) (bool, error)
	HasInvoices(id uuid.UUID) (bool, error)
	CountByUser(userID uuid.UUID) (int64, error)
}

// InvoiceListFilter narrows the invoice list query. Query matches against the
// joined customer's name and email, case-insensitively.
type InvoiceListFilter struct {
	Query  string
	Offset int
	Limit  int
}

// InvoiceWithCustomer is an invoice row joined with its customer for display
type InvoiceWithCustomer struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	ImageURL      string
	AmountCents   int64
	Status        string
	Date          time.Time
}

// MonthlyRevenueRow is the aggregated revenue for one calendar month
type MonthlyRevenueRow struct {
	Month        string // "2006-01"
	RevenueCents int64
}

// InvoiceCardTotals holds the aggregate figures backing the dashboard cards
type InvoiceCardTotals struct {
	InvoiceCount      int64
	TotalPaidCents    int64
	TotalPendingCents int64
}

// InvoiceRepositoryInterface defines the contract for invoice repository operations.
// All lookups are scoped to the owning user.
type InvoiceRepositoryInterface interface {
	Create(invoice *models.Invoice) error
	GetByID(id, userID uuid.UUID) (*models.Invoice, error)
	Update(invoice *models.Invoice) error
	Delete(id, userID uuid.UUID) error
	ListWithCustomer(userID uuid.UUID, filter InvoiceListFilter) ([]*InvoiceWithCustomer, int64, error)
	Latest(userID uuid.UUID, limit int) ([]*InvoiceWithCustomer, error)
	MonthlyRevenue(userID uuid.UUID, since time.Time) ([]MonthlyRevenueRow, error)
	CardTotals(userID uuid.UUID) (*InvoiceCardTotals, error)
}
