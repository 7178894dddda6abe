package repositories

import (
	"testing"
	"time"

	"invoicing-dashboard/internal/database"
	"invoicing-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InvoiceRepositoryTestSuite struct {
	suite.Suite
	db       *database.DB
	repo     InvoiceRepositoryInterface
	user     *models.User
	customer *models.Customer
}

func TestInvoiceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryTestSuite))
}

func (s *InvoiceRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewInvoiceRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.customer = database.CreateTestCustomer(s.T(), s.db, s.user.ID, "Evil Rabbit", "evil@rabbit.com")
}

func (s *InvoiceRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *InvoiceRepositoryTestSuite) createInvoice(amountCents int64, status string, date time.Time) *models.Invoice {
	invoice := &models.Invoice{
		CustomerID:  s.customer.ID,
		AmountCents: amountCents,
		Status:      status,
		Date:        date,
		UserID:      s.user.ID,
	}
	s.Require().NoError(s.repo.Create(invoice))
	return invoice
}

func (s *InvoiceRepositoryTestSuite) TestCreate_Success() {
	invoice := &models.Invoice{
		CustomerID:  s.customer.ID,
		AmountCents: 66600,
		Status:      models.InvoiceStatusPending,
		Date:        time.Now(),
		UserID:      s.user.ID,
	}

	err := s.repo.Create(invoice)

	s.NoError(err)
	s.NotEqual(uuid.Nil, invoice.ID)
}

func (s *InvoiceRepositoryTestSuite) TestCreate_NilInvoice() {
	err := s.repo.Create(nil)
	s.Error(err)
}

func (s *InvoiceRepositoryTestSuite) TestGetByID_Success() {
	invoice := s.createInvoice(5000, models.InvoiceStatusPending, time.Now())

	found, err := s.repo.GetByID(invoice.ID, s.user.ID)

	s.NoError(err)
	s.Equal(invoice.ID, found.ID)
	s.Equal(int64(5000), found.AmountCents)
}

func (s *InvoiceRepositoryTestSuite) TestGetByID_WrongOwner() {
	invoice := s.createInvoice(5000, models.InvoiceStatusPending, time.Now())
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	found, err := s.repo.GetByID(invoice.ID, other.ID)

	s.ErrorIs(err, ErrInvoiceNotFound)
	s.Nil(found)
}

func (s *InvoiceRepositoryTestSuite) TestUpdate_Success() {
	invoice := s.createInvoice(5000, models.InvoiceStatusPending, time.Now())

	invoice.Status = models.InvoiceStatusPaid
	invoice.AmountCents = 7500
	err := s.repo.Update(invoice)
	s.NoError(err)

	found, err := s.repo.GetByID(invoice.ID, s.user.ID)
	s.NoError(err)
	s.Equal(models.InvoiceStatusPaid, found.Status)
	s.Equal(int64(7500), found.AmountCents)
}

func (s *InvoiceRepositoryTestSuite) TestDelete_Success() {
	invoice := s.createInvoice(5000, models.InvoiceStatusPending, time.Now())

	err := s.repo.Delete(invoice.ID, s.user.ID)
	s.NoError(err)

	found, err := s.repo.GetByID(invoice.ID, s.user.ID)
	s.ErrorIs(err, ErrInvoiceNotFound)
	s.Nil(found)
}

func (s *InvoiceRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(uuid.New(), s.user.ID)
	s.ErrorIs(err, ErrInvoiceNotFound)
}

func (s *InvoiceRepositoryTestSuite) TestListWithCustomer_JoinsCustomerFields() {
	s.createInvoice(5000, models.InvoiceStatusPending, time.Now())

	rows, total, err := s.repo.ListWithCustomer(s.user.ID, InvoiceListFilter{Offset: 0, Limit: 10})

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(rows, 1)
	s.Equal("Evil Rabbit", rows[0].CustomerName)
	s.Equal("evil@rabbit.com", rows[0].CustomerEmail)
	s.Equal(int64(5000), rows[0].AmountCents)
}

func (s *InvoiceRepositoryTestSuite) TestListWithCustomer_SearchByCustomerName() {
	lee := database.CreateTestCustomer(s.T(), s.db, s.user.ID, "Lee Robinson", "lee@example.com")
	s.createInvoice(5000, models.InvoiceStatusPending, time.Now())

	other := &models.Invoice{
		CustomerID:  lee.ID,
		AmountCents: 9900,
		Status:      models.InvoiceStatusPaid,
		Date:        time.Now(),
		UserID:      s.user.ID,
	}
	s.Require().NoError(s.repo.Create(other))

	rows, total, err := s.repo.ListWithCustomer(s.user.ID, InvoiceListFilter{Query: "rabbit", Offset: 0, Limit: 10})

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(rows, 1)
	s.Equal("Evil Rabbit", rows[0].CustomerName)
}

func (s *InvoiceRepositoryTestSuite) TestListWithCustomer_NewestFirst() {
	old := s.createInvoice(1000, models.InvoiceStatusPaid, time.Now().AddDate(0, -2, 0))
	recent := s.createInvoice(2000, models.InvoiceStatusPending, time.Now())

	rows, _, err := s.repo.ListWithCustomer(s.user.ID, InvoiceListFilter{Offset: 0, Limit: 10})

	s.NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(recent.ID, rows[0].ID)
	s.Equal(old.ID, rows[1].ID)
}

func (s *InvoiceRepositoryTestSuite) TestLatest_LimitsResults() {
	for i := 0; i < 7; i++ {
		s.createInvoice(int64(1000*(i+1)), models.InvoiceStatusPaid, time.Now().AddDate(0, 0, -i))
	}

	rows, err := s.repo.Latest(s.user.ID, 5)

	s.NoError(err)
	s.Len(rows, 5)
	s.Equal(int64(1000), rows[0].AmountCents)
}

func (s *InvoiceRepositoryTestSuite) TestMonthlyRevenue_GroupsByMonth() {
	jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	s.createInvoice(5000, models.InvoiceStatusPaid, jan)
	s.createInvoice(3000, models.InvoiceStatusPending, jan)
	s.createInvoice(2000, models.InvoiceStatusPaid, feb)

	since := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	rows, err := s.repo.MonthlyRevenue(s.user.ID, since)

	s.NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("2024-01", rows[0].Month)
	s.Equal(int64(8000), rows[0].RevenueCents)
	s.Equal("2024-02", rows[1].Month)
	s.Equal(int64(2000), rows[1].RevenueCents)
}

func (s *InvoiceRepositoryTestSuite) TestMonthlyRevenue_ExcludesOlderInvoices() {
	s.createInvoice(5000, models.InvoiceStatusPaid, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC))
	s.createInvoice(2000, models.InvoiceStatusPaid, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))

	since := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	rows, err := s.repo.MonthlyRevenue(s.user.ID, since)

	s.NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("2024-03", rows[0].Month)
}

func (s *InvoiceRepositoryTestSuite) TestCardTotals() {
	s.createInvoice(5000, models.InvoiceStatusPaid, time.Now())
	s.createInvoice(3000, models.InvoiceStatusPaid, time.Now())
	s.createInvoice(2000, models.InvoiceStatusPending, time.Now())

	totals, err := s.repo.CardTotals(s.user.ID)

	s.NoError(err)
	s.Equal(int64(3), totals.InvoiceCount)
	s.Equal(int64(8000), totals.TotalPaidCents)
	s.Equal(int64(2000), totals.TotalPendingCents)
}

func (s *InvoiceRepositoryTestSuite) TestCardTotals_Empty() {
	totals, err := s.repo.CardTotals(s.user.ID)

	s.NoError(err)
	s.Equal(int64(0), totals.InvoiceCount)
	s.Equal(int64(0), totals.TotalPaidCents)
	s.Equal(int64(0), totals.TotalPendingCents)
}
