package services

import (
	"log/slog"
	"testing"
	"time"

	"invoicing-dashboard/internal/config"
	"invoicing-dashboard/internal/dto"
	"invoicing-dashboard/internal/models"
	"invoicing-dashboard/internal/repositories"
	"invoicing-dashboard/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	invoiceRepo    *repository_mocks.MockInvoiceRepositoryInterface
	customerRepo   *repository_mocks.MockCustomerRepositoryInterface
	views          *DashboardViewCache
	invoiceService InvoiceServiceInterface
	userID         uuid.UUID
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.invoiceRepo = repository_mocks.NewMockInvoiceRepositoryInterface(s.ctrl)
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.views = NewDashboardViewCache(&config.CacheConfig{
		ViewTTL:        time.Minute,
		ViewMaxEntries: 16,
	})
	s.invoiceService = NewInvoiceService(s.invoiceRepo, s.customerRepo, s.views, nil, slog.Default())
	s.userID = uuid.New()
}

func (s *InvoiceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInvoiceServiceSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

func (s *InvoiceServiceTestSuite) newCustomer() *models.Customer {
	return &models.Customer{
		ID:     uuid.New(),
		Name:   "Amy Burns",
		Email:  "amy@example.com",
		UserID: s.userID,
	}
}

func (s *InvoiceServiceTestSuite) TestList_FormatsRows() {
	rows := []*repositories.InvoiceWithCustomer{
		{
			ID:            uuid.New(),
			CustomerID:    uuid.New(),
			CustomerName:  "Amy Burns",
			CustomerEmail: "amy@example.com",
			ImageURL:      "/uploads/amy-1a2b.png",
			AmountCents:   150000,
			Status:        models.InvoiceStatusPaid,
			Date:          time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	s.invoiceRepo.EXPECT().
		ListWithCustomer(s.userID, repositories.InvoiceListFilter{Offset: 0, Limit: DefaultPerPage}).
		Return(rows, int64(1), nil).Times(1)

	resp, err := s.invoiceService.List(s.userID, &dto.ListInvoicesRequest{})

	s.NoError(err)
	s.Len(resp.Invoices, 1)
	s.Equal("$1,500.00", resp.Invoices[0].Amount)
	s.Equal("Jun 5, 2026", resp.Invoices[0].Date)
	s.Equal("Amy Burns", resp.Invoices[0].CustomerName)
}

func (s *InvoiceServiceTestSuite) TestLatest_CachesPerUser() {
	rows := []*repositories.InvoiceWithCustomer{
		{
			ID:           uuid.New(),
			CustomerName: "Amy Burns",
			AmountCents:  9900,
			Status:       models.InvoiceStatusPending,
			Date:         time.Now(),
		},
	}

	s.invoiceRepo.EXPECT().Latest(s.userID, LatestInvoicesLimit).Return(rows, nil).Times(1)

	first, err := s.invoiceService.Latest(s.userID)
	s.NoError(err)
	s.Len(first.Invoices, 1)

	// Second call is served from the view cache, no repository hit
	second, err := s.invoiceService.Latest(s.userID)
	s.NoError(err)
	s.Equal(first, second)
}

func (s *InvoiceServiceTestSuite) TestCreate_ConvertsDollarsToCents() {
	customer := s.newCustomer()

	s.customerRepo.EXPECT().GetByID(customer.ID, s.userID).Return(customer, nil).Times(1)
	s.invoiceRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(invoice *models.Invoice) error {
		s.Equal(int64(25075), invoice.AmountCents)
		s.Equal(models.InvoiceStatusPending, invoice.Status)
		s.Equal(s.userID, invoice.UserID)
		s.Equal(customer.ID, invoice.CustomerID)
		return nil
	}).Times(1)

	result, err := s.invoiceService.Create(s.userID, &dto.CreateInvoiceRequest{
		CustomerID: customer.ID.String(),
		Amount:     250.75,
		Status:     models.InvoiceStatusPending,
	})

	s.NoError(err)
	s.True(result.OK())
	s.Equal(PathInvoices, result.RedirectTo)
}

func (s *InvoiceServiceTestSuite) TestCreate_InvalidatesLatestView() {
	customer := s.newCustomer()

	s.invoiceRepo.EXPECT().Latest(s.userID, LatestInvoicesLimit).Return(nil, nil).Times(2)
	s.customerRepo.EXPECT().GetByID(customer.ID, s.userID).Return(customer, nil).Times(1)
	s.invoiceRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	_, err := s.invoiceService.Latest(s.userID)
	s.Require().NoError(err)

	_, err = s.invoiceService.Create(s.userID, &dto.CreateInvoiceRequest{
		CustomerID: customer.ID.String(),
		Amount:     100,
		Status:     models.InvoiceStatusPaid,
	})
	s.Require().NoError(err)

	// The cached view was dropped, so this fetches again
	_, err = s.invoiceService.Latest(s.userID)
	s.NoError(err)
}

func (s *InvoiceServiceTestSuite) TestCreate_RejectsZeroAmount() {
	customer := s.newCustomer()

	s.customerRepo.EXPECT().GetByID(customer.ID, s.userID).Return(customer, nil).Times(1)

	result, err := s.invoiceService.Create(s.userID, &dto.CreateInvoiceRequest{
		CustomerID: customer.ID.String(),
		Amount:     0,
		Status:     models.InvoiceStatusPending,
	})

	s.NoError(err)
	s.False(result.OK())
	s.Contains(result.Errors["amount"], "Please enter an amount greater than $0.")
	s.Equal("Missing Fields. Failed to Create Invoice.", result.Message)
}

func (s *InvoiceServiceTestSuite) TestCreate_RejectsUnknownStatus() {
	customer := s.newCustomer()

	s.customerRepo.EXPECT().GetByID(customer.ID, s.userID).Return(customer, nil).Times(1)

	result, err := s.invoiceService.Create(s.userID, &dto.CreateInvoiceRequest{
		CustomerID: customer.ID.String(),
		Amount:     100,
		Status:     "overdue",
	})

	s.NoError(err)
	s.False(result.OK())
	s.Contains(result.Errors["status"], "Please select an invoice status.")
}

func (s *InvoiceServiceTestSuite) TestCreate_RejectsForeignCustomer() {
	customerID := uuid.New()

	s.customerRepo.EXPECT().GetByID(customerID, s.userID).
		Return(nil, repositories.ErrCustomerNotFound).Times(1)

	result, err := s.invoiceService.Create(s.userID, &dto.CreateInvoiceRequest{
		CustomerID: customerID.String(),
		Amount:     100,
		Status:     models.InvoiceStatusPaid,
	})

	s.NoError(err)
	s.False(result.OK())
	s.Contains(result.Errors["customer_id"], "Please select a customer.")
}

func (s *InvoiceServiceTestSuite) TestUpdate_ChangesStatus() {
	invoice := &models.Invoice{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		AmountCents: 10000,
		Status:      models.InvoiceStatusPending,
		Date:        time.Now(),
		UserID:      s.userID,
	}
	paid := models.InvoiceStatusPaid

	s.invoiceRepo.EXPECT().GetByID(invoice.ID, s.userID).Return(invoice, nil).Times(1)
	s.invoiceRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Invoice) error {
		s.Equal(models.InvoiceStatusPaid, updated.Status)
		s.Equal(int64(10000), updated.AmountCents)
		return nil
	}).Times(1)

	result, err := s.invoiceService.Update(s.userID, invoice.ID, &dto.UpdateInvoiceRequest{Status: &paid})

	s.NoError(err)
	s.True(result.OK())
	s.Equal(PathInvoices, result.RedirectTo)
}

func (s *InvoiceServiceTestSuite) TestUpdate_NotFound() {
	invoiceID := uuid.New()

	s.invoiceRepo.EXPECT().GetByID(invoiceID, s.userID).
		Return(nil, repositories.ErrInvoiceNotFound).Times(1)

	result, err := s.invoiceService.Update(s.userID, invoiceID, &dto.UpdateInvoiceRequest{})

	s.Equal(ErrInvoiceNotFound, err)
	s.Nil(result)
}

func (s *InvoiceServiceTestSuite) TestDelete_Success() {
	invoiceID := uuid.New()

	s.invoiceRepo.EXPECT().Delete(invoiceID, s.userID).Return(nil).Times(1)

	result, err := s.invoiceService.Delete(s.userID, invoiceID)

	s.NoError(err)
	s.True(result.OK())
	s.Empty(result.RedirectTo)
}

func (s *InvoiceServiceTestSuite) TestDelete_NotFound() {
	invoiceID := uuid.New()

	s.invoiceRepo.EXPECT().Delete(invoiceID, s.userID).
		Return(repositories.ErrInvoiceNotFound).Times(1)

	result, err := s.invoiceService.Delete(s.userID, invoiceID)

	s.Equal(ErrInvoiceNotFound, err)
	s.Nil(result)
}
