package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finmentor/internal/dto"
	"finmentor/internal/models"
	"finmentor/internal/repositories"

	"github.com/google/uuid"
)

type preferenceService struct {
	preferenceRepo repositories.PreferenceRepositoryInterface
	metrics        MetricsRecorderInterface
}

func NewPreferenceService(
	preferenceRepo repositories.PreferenceRepositoryInterface,
	metrics MetricsRecorderInterface,
) PreferenceServiceInterface {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
		metrics:        metrics,
	}
}

// Reconcile merges the submitted flags over the user's stored row, or
// over the defaults when no row exists yet. Presence is checked on the
// pointer, not the value, so an explicit false is stored as false.
// The result is upserted keyed on user_id; saving twice with the same
// input leaves one identical row.
func (s *preferenceService) Reconcile(userID uuid.UUID, input *dto.UpdatePreferencesRequest) (*models.NotificationPreference, error) {
	current, err := s.loadOrDefault(userID)
	if err != nil {
		return nil, err
	}

	if input != nil {
		applyPreferenceInput(current, input)
	}

	if err := current.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.preferenceRepo.Upsert(current); err != nil {
		slog.Error("failed to save notification preferences",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	s.metrics.IncrementCounter("preference_update", map[string]string{"status": "success"})

	slog.Info("notification preferences saved",
		"user_id", userID,
		"monthly_reports", current.MonthlyReports,
		"weekly_digest", current.WeeklyDigest)

	return current, nil
}

// GetPreferences returns the stored row, or the defaults when the user
// has never saved preferences.
func (s *preferenceService) GetPreferences(userID uuid.UUID) (*models.NotificationPreference, error) {
	return s.loadOrDefault(userID)
}

func (s *preferenceService) loadOrDefault(userID uuid.UUID) (*models.NotificationPreference, error) {
	pref, err := s.preferenceRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrPreferenceNotFound) {
			return models.DefaultNotificationPreference(userID), nil
		}
		slog.Error("failed to load notification preferences",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return pref, nil
}

func applyPreferenceInput(pref *models.NotificationPreference, input *dto.UpdatePreferencesRequest) {
	if input.BudgetAlerts != nil {
		pref.BudgetAlerts = *input.BudgetAlerts
	}
	if input.MonthlyReports != nil {
		pref.MonthlyReports = *input.MonthlyReports
	}
	if input.TransactionReminders != nil {
		pref.TransactionReminders = *input.TransactionReminders
	}
	if input.GoalAchievements != nil {
		pref.GoalAchievements = *input.GoalAchievements
	}
	if input.WeeklyDigest != nil {
		pref.WeeklyDigest = *input.WeeklyDigest
	}
	if input.EmailFrequency != nil {
		pref.EmailFrequency = *input.EmailFrequency
	}
}
