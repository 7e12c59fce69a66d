package dto

import "time"

// Account Request DTOs

// CreateAccountRequest contains data for opening a new account
type CreateAccountRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"required,account_type"`
}

// UpdateAccountRequest contains mutable account fields
type UpdateAccountRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

// Account Response DTOs

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   float64   `json:"balance"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AccountListResponse wraps a user's accounts
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}
