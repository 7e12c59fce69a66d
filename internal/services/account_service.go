package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finmentor/internal/dto"
	"finmentor/internal/models"
	"finmentor/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxAccountsPerUser bounds how many accounts one user can open.
const maxAccountsPerUser = 20

var ErrAccountLimitReached = errors.New("account limit reached")

type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
}

func NewAccountService(accountRepo repositories.AccountRepositoryInterface) AccountServiceInterface {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
	count, err := s.accountRepo.CountByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	if count >= maxAccountsPerUser {
		return nil, ErrAccountLimitReached
	}

	account := &models.Account{
		UserID:  userID,
		Name:    req.Name,
		Type:    req.Type,
		Balance: decimal.Zero,
		// The first account a user opens becomes their default.
		IsDefault: count == 0,
	}

	if err := s.accountRepo.Create(account); err != nil {
		slog.Error("failed to create account", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("account created",
		"user_id", userID,
		"account_id", account.ID,
		"type", account.Type)

	return account, nil
}

// CreateDefaultAccount opens the starter account a new user gets on
// registration.
func (s *accountService) CreateDefaultAccount(userID uuid.UUID) (*models.Account, error) {
	return s.CreateAccount(userID, &dto.CreateAccountRequest{
		Name: "Main Account",
		Type: models.AccountTypeCurrent,
	})
}

func (s *accountService) GetUserAccounts(userID uuid.UUID) ([]models.Account, error) {
	accounts, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) GetAccount(accountID, userID uuid.UUID) (*models.Account, error) {
	account, err := s.fetchOwnedAccount(accountID, userID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) UpdateAccount(accountID, userID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.fetchOwnedAccount(accountID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}

	// Promoting an account to default demotes the previous one so at
	// most one default exists per user.
	if req.IsDefault != nil && *req.IsDefault && !account.IsDefault {
		if err := s.accountRepo.ClearDefaultForUser(userID); err != nil {
			return nil, fmt.Errorf("failed to clear previous default: %w", err)
		}
		account.IsDefault = true
	}

	if err := s.accountRepo.Update(account); err != nil {
		slog.Error("failed to update account",
			"account_id", accountID,
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

func (s *accountService) DeleteAccount(accountID, userID uuid.UUID) error {
	if err := s.accountRepo.Delete(accountID, userID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	slog.Info("account deleted", "account_id", accountID, "user_id", userID)
	return nil
}

// fetchOwnedAccount loads an account and verifies ownership. A hit on
// another user's account is reported as not found, never as forbidden,
// so account ids are not probeable.
func (s *accountService) fetchOwnedAccount(accountID, userID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	if account.UserID != userID {
		return nil, ErrNotFound
	}
	return account, nil
}
