package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finmentor/internal/models"
	"finmentor/internal/repositories"

	"github.com/google/uuid"
)

const (
	// reportTransactionWindow is how many recent transactions are loaded
	// per account when building a report.
	reportTransactionWindow = 100
	// reportRecentTransactions is how many of those are included in the
	// per-account section of the report.
	reportRecentTransactions = 10
)

type reportService struct {
	userRepo        repositories.UserRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewReportService(
	userRepo repositories.UserRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// BuildFinancialReport assembles the full report object for a user: one
// section per account with its recent transactions plus overall totals.
// The returned report owns all of its data; accounts and transactions
// read from the store are never mutated.
func (s *reportService) BuildFinancialReport(userID uuid.UUID) (*models.FinancialReport, error) {
	started := time.Now()

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		slog.Error("failed to load user for report", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	accounts, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to load accounts for report", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	report := &models.FinancialReport{
		UserName:    user.Name,
		UserEmail:   user.Email,
		GeneratedAt: time.Now().UTC(),
		Accounts:    make([]models.ReportAccount, 0, len(accounts)),
	}

	totalTransactions := 0
	for i := range accounts {
		account := &accounts[i]

		transactions, err := s.transactionRepo.GetRecentByAccountID(account.ID, reportTransactionWindow)
		if err != nil {
			slog.Error("failed to load transactions for report",
				"user_id", userID,
				"account_id", account.ID,
				"error", err)
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}

		section := models.ReportAccount{
			Name:               account.Name,
			Balance:            account.Balance.InexactFloat64(),
			Type:               account.Type,
			TransactionCount:   len(transactions),
			RecentTransactions: buildReportTransactions(transactions, reportRecentTransactions),
		}

		report.Summary.TotalBalance += section.Balance
		totalTransactions += section.TransactionCount
		report.Accounts = append(report.Accounts, section)
	}

	report.Summary.TotalAccounts = len(accounts)
	report.Summary.TotalTransactions = totalTransactions

	s.metrics.RecordProcessingTime("report_build", time.Since(started))

	slog.Info("financial report built",
		"user_id", userID,
		"accounts", report.Summary.TotalAccounts,
		"transactions", report.Summary.TotalTransactions)

	return report, nil
}

func buildReportTransactions(transactions []models.Transaction, limit int) []models.ReportTransaction {
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}

	result := make([]models.ReportTransaction, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		result = append(result, models.ReportTransaction{
			Date:        t.Date,
			Description: t.Description,
			Type:        t.Type,
			Category:    t.Category,
			Amount:      t.Amount.InexactFloat64(),
		})
	}
	return result
}
