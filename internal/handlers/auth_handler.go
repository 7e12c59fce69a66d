package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"finmentor/internal/dto"
	"finmentor/internal/errors"
	"finmentor/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account together with its default
// account and welcome notifications
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserAlreadyExists):
			return SendError(c, errors.AuthUserAlreadyExists)
		case stderrors.Is(err, services.ErrInvalidInput):
			return SendError(c, errors.ValidationGeneral,
				errors.WithDetails("Password does not meet requirements"))
		default:
			slog.Error("User registration failed",
				"trace_id", getTraceID(c),
				"email", req.Email,
				"error", err.Error(),
			)
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.UserProfileResponse{
			ID:        user.ID.String(),
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
		Message: "Account created successfully",
	})
}

// Login verifies credentials and issues a token pair
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		slog.Error("Login failed",
			"trace_id", getTraceID(c),
			"error", err.Error(),
		)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: tokens})
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req dto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := h.authService.RefreshTokens(req.RefreshToken)
	if err != nil {
		if err == services.ErrUnauthorized {
			return SendError(c, errors.AuthInvalidToken)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: tokens})
}

// Logout revokes the submitted refresh token
func (h *AuthHandler) Logout(c echo.Context) error {
	var req dto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out successfully"})
}

// Profile returns the authenticated user's profile
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	profile, err := h.authService.GetProfile(userID)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.AuthInvalidToken)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: profile})
}
