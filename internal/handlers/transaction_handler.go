package handlers

import (
	stderrors "errors"
	"net/http"

	"finmentor/internal/dto"
	"finmentor/internal/errors"
	"finmentor/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Create logs a transaction and applies it to the account balance
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrNotFound):
			return SendError(c, errors.AccountNotFound)
		case stderrors.Is(err, services.ErrInvalidInput):
			return SendError(c, errors.TransactionInvalidAmount)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.TransactionResponse{
			ID:          transaction.ID.String(),
			AccountID:   transaction.AccountID.String(),
			Type:        transaction.Type,
			Amount:      transaction.Amount.InexactFloat64(),
			Category:    transaction.Category,
			Description: transaction.Description,
			Date:        transaction.Date,
			CreatedAt:   transaction.CreatedAt,
		},
		Message: "Transaction recorded successfully",
	})
}

// List returns the user's transactions, newest first
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	page := getIntParam(c, "page", 1)
	pageSize := getIntParam(c, "pageSize", 0)

	result, err := h.transactionService.ListTransactions(userID, page, pageSize)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}
