package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"invoicing-dashboard/internal/cache"
	"invoicing-dashboard/internal/charts"
	"invoicing-dashboard/internal/dto"
	apperrors "invoicing-dashboard/internal/errors"
	"invoicing-dashboard/internal/models"
	"invoicing-dashboard/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LatestInvoicesLimit is the number of invoices on the dashboard's latest
// invoices card
const LatestInvoicesLimit = 5

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceService handles invoice management business logic
type InvoiceService struct {
	invoiceRepo  repositories.InvoiceRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	views        *DashboardViewCache
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repositories.InvoiceRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	views *DashboardViewCache,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) InvoiceServiceInterface {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		views:        views,
		metrics:      metrics,
		logger:       logger,
	}
}

// List returns one page of the invoice table, each row joined with its
// customer for display
func (s *InvoiceService) List(userID uuid.UUID, req *dto.ListInvoicesRequest) (*dto.ListInvoicesResponse, error) {
	page, perPage := normalizePage(req.Page, req.PerPage)

	filter := repositories.InvoiceListFilter{
		Query:  req.Query,
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	}

	rows, total, err := s.invoiceRepo.ListWithCustomer(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return &dto.ListInvoicesResponse{
		Invoices:   toInvoiceListItems(rows),
		Pagination: buildPagination(page, perPage, total),
	}, nil
}

// Get returns a single invoice owned by the user
func (s *InvoiceService) Get(userID, invoiceID uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(invoiceID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return toInvoiceResponse(invoice), nil
}

// Latest returns the five most recent invoices for the dashboard. The view
// is cached per user and refetched after any invoice mutation.
func (s *InvoiceService) Latest(userID uuid.UUID) (*dto.LatestInvoicesResponse, error) {
	key := cache.Key(PathDashboard, "latest|"+userID.String())
	if s.views != nil {
		if cached, ok := s.views.latest.Get(key); ok {
			s.recordView("latest_invoices", "hit")
			return cached, nil
		}
	}

	rows, err := s.invoiceRepo.Latest(userID, LatestInvoicesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest invoices: %w", err)
	}

	response := &dto.LatestInvoicesResponse{
		Invoices:  toInvoiceListItems(rows),
		FetchedAt: time.Now(),
	}

	if s.views != nil {
		s.views.latest.Set(key, response)
	}
	s.recordView("latest_invoices", "miss")

	return response, nil
}

// Create adds a new invoice for the user. The amount arrives in dollars and
// is stored in cents.
func (s *InvoiceService) Create(userID uuid.UUID, req *dto.CreateInvoiceRequest) (*dto.MutationResult, error) {
	result := &dto.MutationResult{}

	customerID, ok := s.resolveCustomer(userID, req.CustomerID, result)
	amountCents := validateAmount(req.Amount, result)
	validateStatus(req.Status, result)

	if !ok || !result.OK() {
		result.Message = "Missing Fields. Failed to Create Invoice."
		return result, nil
	}

	invoice := &models.Invoice{
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      req.Status,
		Date:        time.Now(),
		UserID:      userID,
	}

	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.logger.Info("invoice created",
		"invoice_id", invoice.ID,
		"customer_id", invoice.CustomerID,
		"user_id", userID,
		"amount_cents", invoice.AmountCents,
		"status", invoice.Status)
	s.incrementCounter("invoice_created", map[string]string{"status": invoice.Status})
	s.recordAmount(req.Amount)
	s.invalidateInvoiceViews()

	result.RedirectTo = PathInvoices
	return result, nil
}

// Update modifies an existing invoice. Only the fields present in the
// request change.
func (s *InvoiceService) Update(userID, invoiceID uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.MutationResult, error) {
	invoice, err := s.invoiceRepo.GetByID(invoiceID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	result := &dto.MutationResult{}
	changed := false

	if req.CustomerID != nil {
		customerID, ok := s.resolveCustomer(userID, *req.CustomerID, result)
		if ok && customerID != invoice.CustomerID {
			invoice.CustomerID = customerID
			changed = true
		}
	}

	if req.Amount != nil {
		amountCents := validateAmount(*req.Amount, result)
		if amountCents > 0 && amountCents != invoice.AmountCents {
			invoice.AmountCents = amountCents
			changed = true
		}
	}

	if req.Status != nil {
		validateStatus(*req.Status, result)
		if *req.Status != invoice.Status {
			invoice.Status = *req.Status
			changed = true
		}
	}

	if !result.OK() {
		result.Message = "Missing Fields. Failed to Update Invoice."
		return result, nil
	}

	if changed {
		if err := s.invoiceRepo.Update(invoice); err != nil {
			return nil, fmt.Errorf("failed to update invoice: %w", err)
		}

		s.logger.Info("invoice updated",
			"invoice_id", invoice.ID,
			"user_id", userID)
		s.incrementCounter("invoice_updated", map[string]string{"status": invoice.Status})
		s.invalidateInvoiceViews()
	}

	result.RedirectTo = PathInvoices
	return result, nil
}

// Delete removes an invoice
func (s *InvoiceService) Delete(userID, invoiceID uuid.UUID) (*dto.MutationResult, error) {
	if err := s.invoiceRepo.Delete(invoiceID, userID); err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to delete invoice: %w", err)
	}

	s.logger.Info("invoice deleted",
		"invoice_id", invoiceID,
		"user_id", userID)
	s.incrementCounter("invoice_deleted", nil)
	s.invalidateInvoiceViews()

	return &dto.MutationResult{}, nil
}

// resolveCustomer parses the customer ID and confirms the customer belongs
// to the user, recording a field error otherwise
func (s *InvoiceService) resolveCustomer(userID uuid.UUID, rawID string, result *dto.MutationResult) (uuid.UUID, bool) {
	customerID, err := uuid.Parse(rawID)
	if err != nil {
		result.AddFieldError("customer_id", "Please select a customer.")
		return uuid.Nil, false
	}

	if _, err := s.customerRepo.GetByID(customerID, userID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			result.AddFieldError("customer_id", "Please select a customer.")
			return uuid.Nil, false
		}
		result.AddFieldError("customer_id", apperrors.GetErrorMessage(apperrors.SystemDatabaseError))
		return uuid.Nil, false
	}

	return customerID, true
}

func (s *InvoiceService) invalidateInvoiceViews() {
	if s.views == nil {
		return
	}
	s.views.Invalidate(PathInvoices)
	s.views.Invalidate(PathDashboard)
}

func (s *InvoiceService) incrementCounter(name string, tags map[string]string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(name, tags)
}

func (s *InvoiceService) recordAmount(amount float64) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordGauge("invoice_amount", amount, nil)
}

func (s *InvoiceService) recordView(view, cacheState string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("dashboard_view_request", map[string]string{
		"view":  view,
		"cache": cacheState,
	})
}

// validateAmount converts a dollar amount to cents, recording a field error
// when it is not positive. Decimal arithmetic avoids float drift on inputs
// like 19.99 before the half-up rounding to whole cents.
func validateAmount(amount float64, result *dto.MutationResult) int64 {
	cents := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents <= 0 {
		result.AddFieldError("amount", apperrors.GetErrorMessage(apperrors.InvoiceInvalidAmount))
		return 0
	}
	return cents
}

// validateStatus records a field error when the status is not a known one
func validateStatus(status string, result *dto.MutationResult) {
	if status != models.InvoiceStatusPending && status != models.InvoiceStatusPaid {
		result.AddFieldError("status", apperrors.GetErrorMessage(apperrors.InvoiceInvalidStatus))
	}
}

func toInvoiceListItems(rows []*repositories.InvoiceWithCustomer) []*dto.InvoiceListItem {
	items := make([]*dto.InvoiceListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &dto.InvoiceListItem{
			ID:            row.ID,
			CustomerID:    row.CustomerID,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			ImageURL:      row.ImageURL,
			Amount:        charts.FormatCurrency(row.AmountCents),
			Status:        row.Status,
			Date:          row.Date.Format("Jan 2, 2006"),
		})
	}
	return items
}

func toInvoiceResponse(invoice *models.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:          invoice.ID,
		CustomerID:  invoice.CustomerID,
		AmountCents: invoice.AmountCents,
		Amount:      charts.FormatCurrency(invoice.AmountCents),
		Status:      invoice.Status,
		Date:        invoice.Date.Format("2006-01-02"),
	}
}
