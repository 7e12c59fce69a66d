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

// notificationFeedSize is how many notifications the feed endpoint
// returns, newest first.
const notificationFeedSize = 10

type notificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	metrics          MetricsRecorderInterface
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	metrics MetricsRecorderInterface,
) NotificationServiceInterface {
	return &notificationService{
		notificationRepo: notificationRepo,
		metrics:          metrics,
	}
}

func (s *notificationService) Create(userID uuid.UUID, notificationType, title, message, priority string) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:   userID,
		Type:     notificationType,
		Title:    title,
		Message:  message,
		Priority: priority,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		slog.Error("failed to create notification",
			"user_id", userID,
			"type", notificationType,
			"error", err)
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.metrics.IncrementCounter("notification_created", map[string]string{"type": notificationType})

	return notification, nil
}

func (s *notificationService) ListFeed(userID uuid.UUID) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListRecentByUserID(userID, notificationFeedSize)
	if err != nil {
		slog.Error("failed to list notifications", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		slog.Error("failed to count unread notifications", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		items = append(items, dto.NotificationResponse{
			ID:        n.ID.String(),
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Priority:  n.Priority,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	return &dto.NotificationListResponse{
		Notifications: items,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks one of the user's notifications as read. Ownership is
// enforced in the repository predicate; another user's notification id
// comes back as not found.
func (s *notificationService) MarkRead(notificationID, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(notificationID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return ErrNotFound
		}
		slog.Error("failed to mark notification read",
			"notification_id", notificationID,
			"user_id", userID,
			"error", err)
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *notificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// CreateWelcomeSet seeds a new user's feed with onboarding notifications.
func (s *notificationService) CreateWelcomeSet(userID uuid.UUID) error {
	welcome := []struct {
		notificationType string
		title            string
		message          string
		priority         string
	}{
		{
			notificationType: models.NotificationTypeGoalAchieved,
			title:            "Welcome to FinMentor",
			message:          "Your account is ready. Add your first transaction to start tracking.",
			priority:         models.PriorityNormal,
		},
		{
			notificationType: models.NotificationTypeBudgetAlert,
			title:            "Set up budget alerts",
			message:          "Enable budget alerts in your notification preferences to stay on top of spending.",
			priority:         models.PriorityLow,
		},
		{
			notificationType: models.NotificationTypeMonthlyReport,
			title:            "Monthly reports are on",
			message:          "You will receive a summary of your finances on the first of every month.",
			priority:         models.PriorityLow,
		},
	}

	for _, w := range welcome {
		if _, err := s.Create(userID, w.notificationType, w.title, w.message, w.priority); err != nil {
			return err
		}
	}

	slog.Info("welcome notifications created", "user_id", userID, "count", len(welcome))
	return nil
}
