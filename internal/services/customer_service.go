package services

import (
	"errors"
	"fmt"
	"log/slog"

	"invoicing-dashboard/internal/charts"
	"invoicing-dashboard/internal/dto"
	apperrors "invoicing-dashboard/internal/errors"
	"invoicing-dashboard/internal/models"
	"invoicing-dashboard/internal/repositories"

	"github.com/google/uuid"
)

// DefaultPerPage is the page size of the customer and invoice tables
const DefaultPerPage = 6

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerHasInvoices = errors.New("customer still has invoices")
)

// CustomerService handles customer management business logic
type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	views        ViewInvalidator
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repositories.CustomerRepositoryInterface,
	views ViewInvalidator,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
		views:        views,
		metrics:      metrics,
		logger:       logger,
	}
}

// List returns one page of the customer table, each row carrying the
// customer's invoice count and pending/paid totals
func (s *CustomerService) List(userID uuid.UUID, req *dto.ListCustomersRequest) (*dto.ListCustomersResponse, error) {
	page, perPage := normalizePage(req.Page, req.PerPage)

	filter := repositories.CustomerListFilter{
		Query:  req.Query,
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	}

	rows, total, err := s.customerRepo.ListWithTotals(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*dto.CustomerListItem, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, &dto.CustomerListItem{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  charts.FormatCurrency(row.TotalPendingCents),
			TotalPaid:     charts.FormatCurrency(row.TotalPaidCents),
		})
	}

	return &dto.ListCustomersResponse{
		Customers:  customers,
		Pagination: buildPagination(page, perPage, total),
	}, nil
}

// Get returns a single customer owned by the user
func (s *CustomerService) Get(userID, customerID uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(customerID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return toCustomerResponse(customer), nil
}

// Create adds a new customer for the user
func (s *CustomerService) Create(userID uuid.UUID, req *dto.CreateCustomerRequest) (*dto.MutationResult, error) {
	result := &dto.MutationResult{}

	taken, err := s.customerRepo.ExistsByEmail(userID, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer email: %w", err)
	}
	if taken {
		result.AddFieldError("email", apperrors.GetErrorMessage(apperrors.CustomerEmailTaken))
		result.Message = "Missing Fields. Failed to Create Customer."
		return result, nil
	}

	customer := &models.Customer{
		Name:     req.Name,
		Email:    req.Email,
		ImageURL: req.ImageURL,
		UserID:   userID,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		"customer_id", customer.ID,
		"user_id", userID)
	s.incrementCounter("customer_created", nil)
	s.invalidateCustomerViews()

	result.RedirectTo = PathCustomers
	return result, nil
}

// Update modifies an existing customer. Only the fields present in the
// request change.
func (s *CustomerService) Update(userID, customerID uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.MutationResult, error) {
	customer, err := s.customerRepo.GetByID(customerID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	result := &dto.MutationResult{}
	updatedFields := make([]string, 0, 3)

	if req.Email != nil && *req.Email != customer.Email {
		taken, err := s.customerRepo.ExistsByEmail(userID, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check customer email: %w", err)
		}
		if taken {
			result.AddFieldError("email", apperrors.GetErrorMessage(apperrors.CustomerEmailTaken))
			result.Message = "Missing Fields. Failed to Update Customer."
			return result, nil
		}
		customer.Email = *req.Email
		updatedFields = append(updatedFields, "email")
	}

	if req.Name != nil && *req.Name != customer.Name {
		customer.Name = *req.Name
		updatedFields = append(updatedFields, "name")
	}

	if req.ImageURL != nil && *req.ImageURL != customer.ImageURL {
		customer.ImageURL = *req.ImageURL
		updatedFields = append(updatedFields, "image_url")
	}

	if len(updatedFields) > 0 {
		if err := s.customerRepo.Update(customer); err != nil {
			return nil, fmt.Errorf("failed to update customer: %w", err)
		}

		for _, field := range updatedFields {
			s.incrementCounter("customer_updated", map[string]string{"field": field})
		}
		s.invalidateCustomerViews()
	}

	s.logger.Info("customer updated",
		"customer_id", customer.ID,
		"user_id", userID,
		"fields", updatedFields)

	result.RedirectTo = PathCustomers
	return result, nil
}

// Delete removes a customer. Customers that still have invoices are
// protected and come back as a message on the MutationResult.
func (s *CustomerService) Delete(userID, customerID uuid.UUID) (*dto.MutationResult, error) {
	if err := s.customerRepo.Delete(customerID, userID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		if errors.Is(err, repositories.ErrCustomerHasInvoices) {
			return &dto.MutationResult{
				Message: apperrors.GetErrorMessage(apperrors.CustomerHasInvoices),
			}, nil
		}
		return nil, fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.Info("customer deleted",
		"customer_id", customerID,
		"user_id", userID)
	s.incrementCounter("customer_deleted", nil)
	s.invalidateCustomerViews()

	return &dto.MutationResult{}, nil
}

func (s *CustomerService) invalidateCustomerViews() {
	if s.views == nil {
		return
	}
	s.views.Invalidate(PathCustomers)
	s.views.Invalidate(PathDashboard)
}

func (s *CustomerService) incrementCounter(name string, tags map[string]string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(name, tags)
}

func toCustomerResponse(customer *models.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		ImageURL:  customer.ImageURL,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// normalizePage applies the table defaults to raw pagination input
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return page, perPage
}

// buildPagination derives the pagination metadata for one table page
func buildPagination(page, perPage int, total int64) dto.PaginationMeta {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	return dto.PaginationMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Window:     charts.GeneratePagination(page, totalPages),
	}
}
