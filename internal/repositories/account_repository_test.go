package repositories

import (
	"testing"

	"finmentor/internal/database"
	"finmentor/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     AccountRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "accounts@example.com")
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) TestCreate() {
	account := &models.Account{
		UserID:  s.testUser.ID,
		Name:    "Holiday Fund",
		Type:    models.AccountTypeSavings,
		Balance: decimal.NewFromInt(100),
	}

	s.NoError(s.repo.Create(account))
	s.NotEqual(uuid.Nil, account.ID)
	s.NotZero(account.CreatedAt)
}

func (s *AccountRepositorySuite) TestGetByID() {
	created := database.CreateTestAccount(s.T(), s.db, s.testUser, "Main Account")

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal("Main Account", found.Name)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestGetByUserID_OldestFirst() {
	database.CreateTestAccount(s.T(), s.db, s.testUser, "First")
	database.CreateTestAccount(s.T(), s.db, s.testUser, "Second")

	other := database.CreateTestUser(s.T(), s.db, "someoneelse@example.com")
	database.CreateTestAccount(s.T(), s.db, other, "Not Mine")

	accounts, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal("First", accounts[0].Name)
	s.Equal("Second", accounts[1].Name)
}

func (s *AccountRepositorySuite) TestUpdate() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, "Old Name")

	account.Name = "New Name"
	s.NoError(s.repo.Update(account))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal("New Name", found.Name)
}

func (s *AccountRepositorySuite) TestDelete() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, "Doomed")

	s.NoError(s.repo.Delete(account.ID, s.testUser.ID))

	_, err := s.repo.GetByID(account.ID)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestDelete_ScopedToUser() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, "Protected")
	other := database.CreateTestUser(s.T(), s.db, "intruder@example.com")

	s.ErrorIs(s.repo.Delete(account.ID, other.ID), ErrAccountNotFound)

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal("Protected", found.Name)
}

func (s *AccountRepositorySuite) TestClearDefaultForUser() {
	first := database.CreateTestAccount(s.T(), s.db, s.testUser, "First")
	second := database.CreateTestAccount(s.T(), s.db, s.testUser, "Second")

	first.IsDefault = true
	s.Require().NoError(s.repo.Update(first))

	s.NoError(s.repo.ClearDefaultForUser(s.testUser.ID))

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		account, err := s.repo.GetByID(id)
		s.NoError(err)
		s.False(account.IsDefault)
	}
}

func (s *AccountRepositorySuite) TestCountByUserID() {
	count, err := s.repo.CountByUserID(s.testUser.ID)
	s.NoError(err)
	s.Zero(count)

	database.CreateTestAccount(s.T(), s.db, s.testUser, "One")
	database.CreateTestAccount(s.T(), s.db, s.testUser, "Two")

	count, err = s.repo.CountByUserID(s.testUser.ID)
	s.NoError(err)
	s.EqualValues(2, count)
}
