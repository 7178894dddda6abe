package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"invoicing-dashboard/internal/models"
	"invoicing-dashboard/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// DemoDataService fills a user's workspace with generated customers and
// invoices so a fresh account has something to look at
type DemoDataService struct {
	customerRepo repositories.CustomerRepositoryInterface
	invoiceRepo  repositories.InvoiceRepositoryInterface
	views        ViewInvalidator
	logger       *slog.Logger
}

// NewDemoDataService creates a new demo data service
func NewDemoDataService(
	customerRepo repositories.CustomerRepositoryInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
	views ViewInvalidator,
	logger *slog.Logger,
) DemoDataServiceInterface {
	return &DemoDataService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		views:        views,
		logger:       logger,
	}
}

// Seed generates customerCount customers and invoiceCount invoices spread
// randomly across them, all owned by the given user
func (s *DemoDataService) Seed(userID uuid.UUID, customerCount, invoiceCount int) error {
	if customerCount < 1 {
		customerCount = 1
	}

	customers := make([]*models.Customer, 0, customerCount)
	for i := 0; i < customerCount; i++ {
		name := gofakeit.Name()
		customer := &models.Customer{
			Name:     name,
			Email:    gofakeit.Email(),
			ImageURL: avatarURL(name),
			UserID:   userID,
		}

		if err := s.customerRepo.Create(customer); err != nil {
			return fmt.Errorf("failed to seed customer: %w", err)
		}
		customers = append(customers, customer)
	}

	now := time.Now()
	earliest := now.AddDate(0, -11, 0)
	statuses := []string{models.InvoiceStatusPending, models.InvoiceStatusPaid}

	for i := 0; i < invoiceCount; i++ {
		customer := customers[gofakeit.Number(0, len(customers)-1)]
		invoice := &models.Invoice{
			CustomerID:  customer.ID,
			AmountCents: int64(gofakeit.Number(500, 2500000)),
			Status:      gofakeit.RandomString(statuses),
			Date:        gofakeit.DateRange(earliest, now),
			UserID:      userID,
		}

		if err := s.invoiceRepo.Create(invoice); err != nil {
			return fmt.Errorf("failed to seed invoice: %w", err)
		}
	}

	if s.views != nil {
		s.views.Invalidate(PathDashboard)
		s.views.Invalidate(PathInvoices)
		s.views.Invalidate(PathCustomers)
	}

	s.logger.Info("demo data seeded",
		"user_id", userID,
		"customers", customerCount,
		"invoices", invoiceCount)

	return nil
}

// avatarURL derives a stable-looking avatar address from a generated name
func avatarURL(name string) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return fmt.Sprintf("https://avatars.example.com/%s.png", slug)
}
