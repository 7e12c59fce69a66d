package dto

import "time"

// Transaction Request DTOs

// CreateTransactionRequest contains data for recording a transaction
type CreateTransactionRequest struct {
	AccountID   string    `json:"accountId" validate:"required,uuid"`
	Type        string    `json:"type" validate:"required,transaction_type"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Category    string    `json:"category" validate:"required,min=1,max=50"`
	Description string    `json:"description" validate:"max=255"`
	Date        time.Time `json:"date" validate:"required"`
}

// ListTransactionsRequest contains pagination parameters
type ListTransactionsRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"pageSize" validate:"omitempty,min=1,max=100"`
}

// Transaction Response DTOs

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TransactionListResponse wraps a page of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
}
