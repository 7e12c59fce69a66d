package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"finmentor/internal/dto"
	"finmentor/internal/models"
	"finmentor/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type aggregationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewAggregationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
) AggregationServiceInterface {
	return &aggregationService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		metrics:         metrics,
	}
}

// Summarize aggregates a transaction slice. Income and expense totals are
// summed by type, top categories cover expenses only, sorted by amount
// descending with category name ascending as the tie-break, capped at 5.
func (s *aggregationService) Summarize(transactions []models.Transaction, accountsCount int) *models.ReportSummary {
	summary := models.ZeroReportSummary()
	summary.AccountsCount = accountsCount
	summary.TransactionCount = len(transactions)

	if len(transactions) == 0 {
		return &summary
	}

	categoryTotals := make(map[string]decimal.Decimal)
	for i := range transactions {
		t := &transactions[i]
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case models.TransactionTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
			categoryTotals[t.Category] = categoryTotals[t.Category].Add(t.Amount)
		}
	}

	summary.TopCategories = topCategories(categoryTotals, models.MaxTopCategories)
	return &summary
}

func (s *aggregationService) MonthlyReport(userID uuid.UUID) (*dto.MonthlySummaryResponse, error) {
	now := time.Now().UTC()
	return s.SummarizeRange(userID, now.Year(), now.Month())
}

func (s *aggregationService) SummarizeRange(userID uuid.UUID, year int, month time.Month) (*dto.MonthlySummaryResponse, error) {
	startDate := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0).Add(-time.Second)

	transactions, err := s.transactionRepo.GetByUserIDAndDateRange(userID, startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch transactions for monthly summary",
			"user_id", userID,
			"month", startDate.Format("2006-01"),
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	accountsCount, err := s.accountRepo.CountByUserID(userID)
	if err != nil {
		slog.Error("failed to count accounts for monthly summary",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	summary := s.Summarize(transactions, int(accountsCount))

	s.metrics.IncrementCounter("monthly_summary_generated", map[string]string{"status": "success"})

	slog.Info("monthly summary generated",
		"user_id", userID,
		"month", startDate.Format("2006-01"),
		"transaction_count", summary.TransactionCount,
		"total_income", summary.TotalIncome.String(),
		"total_expenses", summary.TotalExpenses.String())

	return buildMonthlySummaryResponse(startDate, summary), nil
}

func buildMonthlySummaryResponse(startDate time.Time, summary *models.ReportSummary) *dto.MonthlySummaryResponse {
	topCategories := make([]dto.CategoryAmountResponse, 0, len(summary.TopCategories))
	for _, c := range summary.TopCategories {
		topCategories = append(topCategories, dto.CategoryAmountResponse{
			Category: c.Category,
			Amount:   c.Amount.InexactFloat64(),
		})
	}

	return &dto.MonthlySummaryResponse{
		Month:            startDate.Format("2006-01"),
		TotalIncome:      summary.TotalIncome.InexactFloat64(),
		TotalExpenses:    summary.TotalExpenses.InexactFloat64(),
		NetSavings:       summary.TotalIncome.Sub(summary.TotalExpenses).InexactFloat64(),
		TransactionCount: summary.TransactionCount,
		AccountsCount:    summary.AccountsCount,
		TopCategories:    topCategories,
		GeneratedAt:      time.Now().UTC(),
	}
}

// topCategories orders expense categories by amount descending; equal
// amounts fall back to category name ascending so the ordering is
// deterministic.
func topCategories(totals map[string]decimal.Decimal, limit int) []models.CategoryAmount {
	entries := make([]models.CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		entries = append(entries, models.CategoryAmount{
			Category: category,
			Amount:   amount,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		cmp := entries[i].Amount.Cmp(entries[j].Amount)
		if cmp != 0 {
			return cmp > 0
		}
		return entries[i].Category < entries[j].Category
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
