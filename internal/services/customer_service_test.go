package services

import (
	"log/slog"
	"testing"

	"invoicing-dashboard/internal/dto"
	"invoicing-dashboard/internal/models"
	"invoicing-dashboard/internal/repositories"
	"invoicing-dashboard/internal/repositories/repository_mocks"
	"invoicing-dashboard/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	customerRepo    *repository_mocks.MockCustomerRepositoryInterface
	views           *service_mocks.MockViewInvalidator
	customerService CustomerServiceInterface
	userID          uuid.UUID
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.views = service_mocks.NewMockViewInvalidator(s.ctrl)
	s.customerService = NewCustomerService(s.customerRepo, s.views, nil, slog.Default())
	s.userID = uuid.New()
}

func (s *CustomerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (s *CustomerServiceTestSuite) expectInvalidation() {
	s.views.EXPECT().Invalidate(PathCustomers).Return(0).Times(1)
	s.views.EXPECT().Invalidate(PathDashboard).Return(0).Times(1)
}

func (s *CustomerServiceTestSuite) TestList_FormatsTotals() {
	rows := []*repositories.CustomerWithTotals{
		{
			ID:                uuid.New(),
			Name:              "Amy Burns",
			Email:             "amy@example.com",
			ImageURL:          "/uploads/amy-1a2b.png",
			TotalInvoices:     3,
			TotalPendingCents: 125000,
			TotalPaidCents:    350099,
		},
	}

	s.customerRepo.EXPECT().
		ListWithTotals(s.userID, repositories.CustomerListFilter{Query: "amy", Offset: 0, Limit: DefaultPerPage}).
		Return(rows, int64(1), nil).Times(1)

	resp, err := s.customerService.List(s.userID, &dto.ListCustomersRequest{Query: "amy"})

	s.NoError(err)
	s.Len(resp.Customers, 1)
	s.Equal("$1,250.00", resp.Customers[0].TotalPending)
	s.Equal("$3,500.99", resp.Customers[0].TotalPaid)
	s.Equal(int64(3), resp.Customers[0].TotalInvoices)
	s.Equal(1, resp.Pagination.Page)
	s.Equal(int64(1), resp.Pagination.Total)
	s.Equal([]int{1}, resp.Pagination.Window)
}

func (s *CustomerServiceTestSuite) TestList_SecondPageOffsets() {
	s.customerRepo.EXPECT().
		ListWithTotals(s.userID, repositories.CustomerListFilter{Offset: DefaultPerPage, Limit: DefaultPerPage}).
		Return(nil, int64(13), nil).Times(1)

	resp, err := s.customerService.List(s.userID, &dto.ListCustomersRequest{Page: 2})

	s.NoError(err)
	s.Equal(2, resp.Pagination.Page)
	s.Equal(3, resp.Pagination.TotalPages)
}

func (s *CustomerServiceTestSuite) TestGet_NotFound() {
	customerID := uuid.New()

	s.customerRepo.EXPECT().GetByID(customerID, s.userID).
		Return(nil, repositories.ErrCustomerNotFound).Times(1)

	resp, err := s.customerService.Get(s.userID, customerID)

	s.Equal(ErrCustomerNotFound, err)
	s.Nil(resp)
}

func (s *CustomerServiceTestSuite) TestCreate_Success() {
	req := &dto.CreateCustomerRequest{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		ImageURL: "/uploads/avatar-1a2b.png",
	}

	s.customerRepo.EXPECT().ExistsByEmail(s.userID, req.Email).Return(false, nil).Times(1)
	s.customerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(customer *models.Customer) error {
		s.Equal(req.Name, customer.Name)
		s.Equal(s.userID, customer.UserID)
		return nil
	}).Times(1)
	s.expectInvalidation()

	result, err := s.customerService.Create(s.userID, req)

	s.NoError(err)
	s.True(result.OK())
	s.Equal(PathCustomers, result.RedirectTo)
}

func (s *CustomerServiceTestSuite) TestCreate_EmailTaken() {
	req := &dto.CreateCustomerRequest{
		Name:     "Amy Burns",
		Email:    "taken@example.com",
		ImageURL: "https://example.com/amy.png",
	}

	s.customerRepo.EXPECT().ExistsByEmail(s.userID, req.Email).Return(true, nil).Times(1)

	result, err := s.customerService.Create(s.userID, req)

	s.NoError(err)
	s.False(result.OK())
	s.Contains(result.Errors["email"], "A customer with this email already exists")
}

func (s *CustomerServiceTestSuite) TestUpdate_ChangesOnlyProvidedFields() {
	customer := &models.Customer{
		ID:       uuid.New(),
		Name:     "Amy Burns",
		Email:    "amy@example.com",
		ImageURL: "https://example.com/amy.png",
		UserID:   s.userID,
	}
	newName := "Amy B. Burns"

	s.customerRepo.EXPECT().GetByID(customer.ID, s.userID).Return(customer, nil).Times(1)
	s.customerRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Customer) error {
		s.Equal(newName, updated.Name)
		s.Equal("amy@example.com", updated.Email)
		return nil
	}).Times(1)
	s.expectInvalidation()

	result, err := s.customerService.Update(s.userID, customer.ID, &dto.UpdateCustomerRequest{Name: &newName})

	s.NoError(err)
	s.True(result.OK())
	s.Equal(PathCustomers, result.RedirectTo)
}

func (s *CustomerServiceTestSuite) TestUpdate_EmailTaken() {
	customer := &models.Customer{
		ID:     uuid.New(),
		Name:   "Amy Burns",
		Email:  "amy@example.com",
		UserID: s.userID,
	}
	takenEmail := "taken@example.com"

	s.customerRepo.EXPECT().GetByID(customer.ID, s.userID).Return(customer, nil).Times(1)
	s.customerRepo.EXPECT().ExistsByEmail(s.userID, takenEmail).Return(true, nil).Times(1)

	result, err := s.customerService.Update(s.userID, customer.ID, &dto.UpdateCustomerRequest{Email: &takenEmail})

	s.NoError(err)
	s.False(result.OK())
	s.Contains(result.Errors["email"], "A customer with this email already exists")
}

func (s *CustomerServiceTestSuite) TestUpdate_NoChangesSkipsWrite() {
	customer := &models.Customer{
		ID:     uuid.New(),
		Name:   "Amy Burns",
		Email:  "amy@example.com",
		UserID: s.userID,
	}
	sameName := customer.Name

	s.customerRepo.EXPECT().GetByID(customer.ID, s.userID).Return(customer, nil).Times(1)

	result, err := s.customerService.Update(s.userID, customer.ID, &dto.UpdateCustomerRequest{Name: &sameName})

	s.NoError(err)
	s.True(result.OK())
}

func (s *CustomerServiceTestSuite) TestDelete_Success() {
	customerID := uuid.New()

	s.customerRepo.EXPECT().Delete(customerID, s.userID).Return(nil).Times(1)
	s.expectInvalidation()

	result, err := s.customerService.Delete(s.userID, customerID)

	s.NoError(err)
	s.True(result.OK())
	s.Empty(result.RedirectTo)
}

func (s *CustomerServiceTestSuite) TestDelete_ProtectedByInvoices() {
	customerID := uuid.New()

	s.customerRepo.EXPECT().Delete(customerID, s.userID).
		Return(repositories.ErrCustomerHasInvoices).Times(1)

	result, err := s.customerService.Delete(s.userID, customerID)

	s.NoError(err)
	s.False(result.OK())
	s.Equal("Customer still has invoices and cannot be deleted", result.Message)
}

func (s *CustomerServiceTestSuite) TestDelete_NotFound() {
	customerID := uuid.New()

	s.customerRepo.EXPECT().Delete(customerID, s.userID).
		Return(repositories.ErrCustomerNotFound).Times(1)

	result, err := s.customerService.Delete(s.userID, customerID)

	s.Equal(ErrCustomerNotFound, err)
	s.Nil(result)
}
