package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxTopCategories caps the top-categories list in a monthly summary.
const MaxTopCategories = 5

// CategoryAmount is one entry of the top-categories ranking.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ReportSummary is the derived monthly aggregate for one user. It is
// never persisted; it is recomputed from transactions on demand.
type ReportSummary struct {
	TotalIncome      decimal.Decimal  `json:"total_income"`
	TotalExpenses    decimal.Decimal  `json:"total_expenses"`
	TransactionCount int              `json:"transaction_count"`
	AccountsCount    int              `json:"accounts_count"`
	TopCategories    []CategoryAmount `json:"top_categories"`
}

// ZeroReportSummary returns a summary with all totals at zero, used
// when a user has no transactions in the period.
func ZeroReportSummary() ReportSummary {
	return ReportSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		TopCategories: []CategoryAmount{},
	}
}

// ReportTransaction is a transaction as it appears inside an export.
// Amounts are plain floats: decimals must be coerced before
// serialization so every encoder sees the same numeric form.
type ReportTransaction struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
}

// ReportAccount is one account section of a financial report.
type ReportAccount struct {
	Name               string              `json:"name"`
	Balance            float64             `json:"balance"`
	Type               string              `json:"type"`
	TransactionCount   int                 `json:"transaction_count"`
	RecentTransactions []ReportTransaction `json:"recent_transactions"`
}

// ReportTotals is the overall summary block of a financial report.
type ReportTotals struct {
	TotalBalance      float64 `json:"total_balance"`
	TotalAccounts     int     `json:"total_accounts"`
	TotalTransactions int     `json:"total_transactions"`
}

// FinancialReport is the serializable report object handed to the
// export encoders. It owns its data; building it never mutates the
// accounts or transactions it was derived from.
type FinancialReport struct {
	UserName    string          `json:"user_name"`
	UserEmail   string          `json:"user_email"`
	GeneratedAt time.Time       `json:"generated_at"`
	Accounts    []ReportAccount `json:"accounts"`
	Summary     ReportTotals    `json:"summary"`
}
