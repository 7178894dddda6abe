package repositories

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"invoicing-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepositoryInterface {
	return &InvoiceRepository{
		db: db,
	}
}

// Create creates a new invoice in the database
func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	if invoice == nil {
		return errors.New("invoice cannot be nil")
	}

	if err := r.db.Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	return nil
}

// GetByID retrieves an invoice owned by the given user
func (r *InvoiceRepository) GetByID(id, userID uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice

	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice by ID: %w", err)
	}

	return &invoice, nil
}

// Update updates an invoice in the database
func (r *InvoiceRepository) Update(invoice *models.Invoice) error {
	if invoice == nil {
		return errors.New("invoice cannot be nil")
	}

	if err := r.db.Save(invoice).Error; err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	return nil
}

// Delete soft deletes an invoice owned by the given user
func (r *InvoiceRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Invoice{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

// ListWithCustomer returns the user's invoices joined with customer display
// fields, filtered by the optional search query and paginated newest first
func (r *InvoiceRepository) ListWithCustomer(userID uuid.UUID, filter InvoiceListFilter) ([]*InvoiceWithCustomer, int64, error) {
	baseQuery := r.db.Model(&models.Invoice{}).
		Joins("INNER JOIN customers ON customers.id = invoices.customer_id AND customers.deleted_at IS NULL").
		Where("invoices.user_id = ?", userID)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		baseQuery = baseQuery.Where(
			"LOWER(customers.name) LIKE LOWER(?) OR LOWER(customers.email) LIKE LOWER(?) OR invoices.status LIKE LOWER(?)",
			pattern, pattern, pattern)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var rows []*InvoiceWithCustomer
	err := baseQuery.
		Select(`invoices.id,
			invoices.customer_id,
			customers.name AS customer_name,
			customers.email AS customer_email,
			customers.image_url,
			invoices.amount_cents,
			invoices.status,
			invoices.date`).
		Order("invoices.date DESC, invoices.created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	return rows, total, nil
}

// Latest returns the user's most recent invoices with customer display fields
func (r *InvoiceRepository) Latest(userID uuid.UUID, limit int) ([]*InvoiceWithCustomer, error) {
	var rows []*InvoiceWithCustomer

	err := r.db.Model(&models.Invoice{}).
		Select(`invoices.id,
			invoices.customer_id,
			customers.name AS customer_name,
			customers.email AS customer_email,
			customers.image_url,
			invoices.amount_cents,
			invoices.status,
			invoices.date`).
		Joins("INNER JOIN customers ON customers.id = invoices.customer_id AND customers.deleted_at IS NULL").
		Where("invoices.user_id = ?", userID).
		Order("invoices.date DESC, invoices.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest invoices: %w", err)
	}

	return rows, nil
}

// MonthlyRevenue aggregates paid and pending invoice amounts per calendar
// month starting at since. Grouping happens in Go so the query stays portable
// across Postgres and the SQLite test database.
func (r *InvoiceRepository) MonthlyRevenue(userID uuid.UUID, since time.Time) ([]MonthlyRevenueRow, error) {
	type invoiceAmount struct {
		Date        time.Time
		AmountCents int64
	}

	var amounts []invoiceAmount
	err := r.db.Model(&models.Invoice{}).
		Select("invoices.date, invoices.amount_cents").
		Where("invoices.user_id = ? AND invoices.date >= ?", userID, since).
		Find(&amounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly revenue: %w", err)
	}

	totals := make(map[string]int64)
	for _, a := range amounts {
		totals[a.Date.Format("2006-01")] += a.AmountCents
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	rows := make([]MonthlyRevenueRow, 0, len(months))
	for _, month := range months {
		rows = append(rows, MonthlyRevenueRow{Month: month, RevenueCents: totals[month]})
	}

	return rows, nil
}

// CardTotals returns the aggregate invoice figures for the dashboard cards
func (r *InvoiceRepository) CardTotals(userID uuid.UUID) (*InvoiceCardTotals, error) {
	var totals InvoiceCardTotals

	err := r.db.Model(&models.Invoice{}).
		Select(`COUNT(*) AS invoice_count,
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount_cents ELSE 0 END), 0) AS total_paid_cents,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount_cents ELSE 0 END), 0) AS total_pending_cents`).
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get card totals: %w", err)
	}

	return &totals, nil
}
