package services

import (
	"fmt"
	"log/slog"
	"time"

	"invoicing-dashboard/internal/cache"
	"invoicing-dashboard/internal/charts"
	"invoicing-dashboard/internal/dto"
	"invoicing-dashboard/internal/repositories"

	"github.com/google/uuid"
)

// DashboardService assembles the aggregated dashboard views from invoice and
// customer data. Both views are cached per user and dropped whenever a
// mutation invalidates the dashboard path.
type DashboardService struct {
	invoiceRepo  repositories.InvoiceRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	views        *DashboardViewCache
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	invoiceRepo repositories.InvoiceRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	views *DashboardViewCache,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		views:        views,
		metrics:      metrics,
		logger:       logger,
	}
}

// Revenue returns the trailing twelve month revenue series, zero-filled for
// months without paid or pending invoices, together with the Y-axis labels
// the chart should render
func (s *DashboardService) Revenue(userID uuid.UUID) (*dto.RevenueResponse, error) {
	key := cache.Key(PathDashboard, "revenue|"+userID.String())
	if s.views != nil {
		if cached, ok := s.views.revenue.Get(key); ok {
			s.recordView("revenue", "hit")
			return cached, nil
		}
	}

	started := time.Now()

	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	rows, err := s.invoiceRepo.MonthlyRevenue(userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly revenue: %w", err)
	}

	raw := make([]charts.RevenueRow, 0, len(rows))
	for _, row := range rows {
		raw = append(raw, charts.RevenueRow{
			Month:        row.Month,
			RevenueCents: row.RevenueCents,
		})
	}

	series := charts.LastTwelveMonths(raw, userID.String(), now)
	yAxis, topLabel := charts.GenerateYAxis(series)

	points := make([]dto.MonthlyRevenuePoint, 0, len(series))
	for _, month := range series {
		points = append(points, dto.MonthlyRevenuePoint{
			Month:   month.Month,
			Revenue: month.Revenue,
			UserID:  month.UserID,
		})
	}

	response := &dto.RevenueResponse{
		Revenue:  points,
		YAxis:    yAxis,
		TopLabel: topLabel,
	}

	if s.views != nil {
		s.views.revenue.Set(key, response)
	}
	s.recordView("revenue", "miss")
	s.recordDuration(time.Since(started))

	return response, nil
}

// Cards returns the four dashboard summary cards: customer count, invoice
// count, and the collected and pending totals
func (s *DashboardService) Cards(userID uuid.UUID) (*dto.CardsResponse, error) {
	key := cache.Key(PathDashboard, "cards|"+userID.String())
	if s.views != nil {
		if cached, ok := s.views.cards.Get(key); ok {
			s.recordView("cards", "hit")
			return cached, nil
		}
	}

	started := time.Now()

	totals, err := s.invoiceRepo.CardTotals(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice totals: %w", err)
	}

	customerCount, err := s.customerRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	response := &dto.CardsResponse{
		NumberOfCustomers: customerCount,
		NumberOfInvoices:  totals.InvoiceCount,
		TotalPaid:         charts.FormatCurrency(totals.TotalPaidCents),
		TotalPending:      charts.FormatCurrency(totals.TotalPendingCents),
	}

	if s.views != nil {
		s.views.cards.Set(key, response)
	}
	s.recordView("cards", "miss")
	s.recordDuration(time.Since(started))

	return response, nil
}

func (s *DashboardService) recordView(view, cacheState string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("dashboard_view_request", map[string]string{
		"view":  view,
		"cache": cacheState,
	})
}

func (s *DashboardService) recordDuration(duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordProcessingTime("dashboard_view", duration)
}
