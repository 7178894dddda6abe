package repositories

import (
	"errors"
	"fmt"

	"invoicing-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerHasInvoices = errors.New("customer has invoices")
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// Create creates a new customer in the database
func (r *CustomerRepository) Create(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer owned by the given user
func (r *CustomerRepository) GetByID(id, userID uuid.UUID) (*models.Customer, error) {
	var customer models.Customer

	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &customer, nil
}

// Update updates a customer in the database
func (r *CustomerRepository) Update(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	if err := r.db.Save(customer).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

// Delete soft deletes a customer owned by the given user. Customers that
// still have invoices cannot be deleted.
func (r *CustomerRepository) Delete(id, userID uuid.UUID) error {
	hasInvoices, err := r.HasInvoices(id)
	if err != nil {
		return err
	}
	if hasInvoices {
		return ErrCustomerHasInvoices
	}

	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Customer{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// ListWithTotals returns the user's customers with per-customer invoice
// aggregates, filtered by the optional search query and paginated
func (r *CustomerRepository) ListWithTotals(userID uuid.UUID, filter CustomerListFilter) ([]*CustomerWithTotals, int64, error) {
	baseQuery := r.db.Model(&models.Customer{}).Where("customers.user_id = ?", userID)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		baseQuery = baseQuery.Where("LOWER(customers.name) LIKE LOWER(?) OR LOWER(customers.email) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var rows []*CustomerWithTotals
	err := baseQuery.
		Select(`customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount_cents ELSE 0 END), 0) AS total_pending_cents,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount_cents ELSE 0 END), 0) AS total_paid_cents`).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id AND invoices.deleted_at IS NULL").
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return rows, total, nil
}

// ExistsByEmail reports whether the user already has a customer with this email
func (r *CustomerRepository) ExistsByEmail(userID uuid.UUID, email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).
		Where("user_id = ? AND email = ?", userID, email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer email: %w", err)
	}

	return count > 0, nil
}

// HasInvoices reports whether any invoices reference the customer
func (r *CustomerRepository) HasInvoices(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Invoice{}).
		Where("customer_id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count customer invoices: %w", err)
	}

	return count > 0, nil
}

// CountByUser counts the user's customers
func (r *CustomerRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return count, nil
}
