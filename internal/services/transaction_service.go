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

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// CreateTransaction records a transaction against one of the user's
// accounts and applies the amount to the account balance atomically.
// Income credits the balance, expense debits it.
func (s *transactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid account id", ErrInvalidInput)
	}

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

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		Type:        req.Type,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	}

	if err := s.transactionRepo.CreateWithBalanceUpdate(transaction); err != nil {
		slog.Error("failed to create transaction",
			"user_id", userID,
			"account_id", accountID,
			"error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Info("transaction created",
		"user_id", userID,
		"account_id", accountID,
		"type", transaction.Type,
		"amount", transaction.Amount.String(),
		"category", transaction.Category)

	return transaction, nil
}

func (s *transactionService) ListTransactions(userID uuid.UUID, page, pageSize int) (*dto.TransactionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultTransactionPageSize
	}
	if pageSize > maxTransactionPageSize {
		pageSize = maxTransactionPageSize
	}

	offset := (page - 1) * pageSize
	transactions, total, err := s.transactionRepo.GetByUserID(userID, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		items = append(items, dto.TransactionResponse{
			ID:          t.ID.String(),
			AccountID:   t.AccountID.String(),
			Type:        t.Type,
			Amount:      t.Amount.InexactFloat64(),
			Category:    t.Category,
			Description: t.Description,
			Date:        t.Date,
			CreatedAt:   t.CreatedAt,
		})
	}

	return &dto.TransactionListResponse{
		Transactions: items,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}
