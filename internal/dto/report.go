package dto

import "time"

// Report Request DTOs

// MonthlySummaryRequest selects the month to aggregate
type MonthlySummaryRequest struct {
	Month string `query:"month" validate:"required,report_month"`
}

// ExportReportRequest selects the export format
type ExportReportRequest struct {
	Format string `query:"format" validate:"omitempty,oneof=json csv html pdf"`
}

// Report Response DTOs

// CategoryAmountResponse is one entry of the top expense categories
type CategoryAmountResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// MonthlySummaryResponse is the aggregated view of one calendar month
type MonthlySummaryResponse struct {
	Month            string                   `json:"month"`
	TotalIncome      float64                  `json:"totalIncome"`
	TotalExpenses    float64                  `json:"totalExpenses"`
	NetSavings       float64                  `json:"netSavings"`
	TransactionCount int                      `json:"transactionCount"`
	AccountsCount    int                      `json:"accountsCount"`
	TopCategories    []CategoryAmountResponse `json:"topCategories"`
	GeneratedAt      time.Time                `json:"generatedAt"`
}
