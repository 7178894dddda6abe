package repositories

import (
	"testing"

	"invoicing-dashboard/internal/database"
	"invoicing-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositoryTestSuite) TestCreate_Success() {
	user := &models.User{
		Name:         "Evil Rabbit",
		Email:        "evil@rabbit.com",
		PasswordHash: "hashed_password",
	}

	err := s.repo.Create(user)

	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.False(user.CreatedAt.IsZero())
}

func (s *UserRepositoryTestSuite) TestCreate_NilUser() {
	err := s.repo.Create(nil)
	s.Error(err)
}

func (s *UserRepositoryTestSuite) TestCreate_DuplicateEmail() {
	user := database.CreateTestUser(s.T(), s.db, "dup@example.com")
	s.NotNil(user)

	duplicate := &models.User{
		Name:         "Someone Else",
		Email:        "dup@example.com",
		PasswordHash: "hashed_password",
	}

	err := s.repo.Create(duplicate)

	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositoryTestSuite) TestGetByID_Success() {
	user := database.CreateTestUser(s.T(), s.db, "lookup@example.com")

	found, err := s.repo.GetByID(user.ID)

	s.NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal("lookup@example.com", found.Email)
}

func (s *UserRepositoryTestSuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(found)
}

func (s *UserRepositoryTestSuite) TestGetByEmail_Success() {
	user := database.CreateTestUser(s.T(), s.db, "byemail@example.com")

	found, err := s.repo.GetByEmail("byemail@example.com")

	s.NoError(err)
	s.Equal(user.ID, found.ID)
}

func (s *UserRepositoryTestSuite) TestGetByEmail_NotFound() {
	found, err := s.repo.GetByEmail("nobody@example.com")

	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(found)
}

func (s *UserRepositoryTestSuite) TestExistsByEmail() {
	database.CreateTestUser(s.T(), s.db, "exists@example.com")

	exists, err := s.repo.ExistsByEmail("exists@example.com")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByEmail("missing@example.com")
	s.NoError(err)
	s.False(exists)
}
