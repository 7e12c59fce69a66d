package handlers

import (
	stderrors "errors"
	"net/http"

	"finmentor/internal/dto"
	"finmentor/internal/errors"
	"finmentor/internal/models"
	"finmentor/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles account endpoints
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Create opens a new account for the authenticated user
func (h *AccountHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountService.CreateAccount(userID, &req)
	if err != nil {
		if stderrors.Is(err, services.ErrAccountLimitReached) {
			return SendError(c, errors.AccountLimitReached)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toAccountResponse(account),
		Message: "Account created successfully",
	})
}

// List returns all accounts owned by the authenticated user
func (h *AccountHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	accounts, err := h.accountService.GetUserAccounts(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, toAccountResponse(&accounts[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AccountListResponse{Accounts: responses, Total: len(responses)},
	})
}

// Get returns a single account by id
func (h *AccountHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("Account ID must be a valid UUID"))
	}

	account, err := h.accountService.GetAccount(accountID, userID)
	if err != nil {
		if stderrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toAccountResponse(account)})
}

// Update changes an account's name or default flag
func (h *AccountHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("Account ID must be a valid UUID"))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountService.UpdateAccount(accountID, userID, &req)
	if err != nil {
		if stderrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toAccountResponse(account),
		Message: "Account updated successfully",
	})
}

// Delete removes an account
func (h *AccountHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("Account ID must be a valid UUID"))
	}

	if err := h.accountService.DeleteAccount(accountID, userID); err != nil {
		if stderrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Account deleted successfully"})
}

func toAccountResponse(account *models.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Type:      account.Type,
		Balance:   account.Balance.InexactFloat64(),
		IsDefault: account.IsDefault,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
