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

// NotificationHandler handles the notification feed and preference
// endpoints
type NotificationHandler struct {
	notificationService services.NotificationServiceInterface
	preferenceService   services.PreferenceServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(
	notificationService services.NotificationServiceInterface,
	preferenceService services.PreferenceServiceInterface,
) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		preferenceService:   preferenceService,
	}
}

// ListFeed returns the user's most recent notifications with the
// unread count
func (h *NotificationHandler) ListFeed(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	feed, err := h.notificationService.ListFeed(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: feed})
}

// MarkRead marks one of the user's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("Notification ID must be a valid UUID"))
	}

	if err := h.notificationService.MarkRead(notificationID, userID); err != nil {
		if stderrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.NotificationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Notification marked as read"})
}

// GetPreferences returns the user's notification preferences, falling
// back to the defaults when nothing has been saved yet
func (h *NotificationHandler) GetPreferences(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	preferences, err := h.preferenceService.GetPreferences(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toPreferencesResponse(preferences)})
}

// UpdatePreferences merges the submitted flags over the stored row and
// saves the result. Fields the client did not send keep their current
// value; an explicit false is honored.
func (h *NotificationHandler) UpdatePreferences(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	var req dto.UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	preferences, err := h.preferenceService.Reconcile(userID, &req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidInput) {
			return SendError(c, errors.NotificationInvalidPreference)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toPreferencesResponse(preferences),
		Message: "Preferences updated successfully",
	})
}

func toPreferencesResponse(p *models.NotificationPreference) dto.PreferencesResponse {
	return dto.PreferencesResponse{
		BudgetAlerts:         p.BudgetAlerts,
		MonthlyReports:       p.MonthlyReports,
		TransactionReminders: p.TransactionReminders,
		GoalAchievements:     p.GoalAchievements,
		WeeklyDigest:         p.WeeklyDigest,
		EmailFrequency:       p.EmailFrequency,
		UpdatedAt:            p.UpdatedAt,
	}
}
