package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeBudgetAlert         = "BUDGET_ALERT"
	NotificationTypeMonthlyReport       = "MONTHLY_REPORT"
	NotificationTypeTransactionReminder = "TRANSACTION_REMINDER"
	NotificationTypeGoalAchieved        = "GOAL_ACHIEVED"
	NotificationTypeWeeklyDigest        = "WEEKLY_DIGEST"

	PriorityLow      = "LOW"
	PriorityNormal   = "NORMAL"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

var (
	ErrInvalidNotificationType = errors.New("invalid notification type")
	ErrInvalidPriority         = errors.New("invalid notification priority")
)

// Notification is an in-app message shown in the user's notification
// feed. Rows are created unread and flipped to read one at a time.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"type:varchar(30);not null" json:"type"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Priority  string    `gorm:"type:varchar(10);not null;default:'NORMAL'" json:"priority"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	if n.Priority == "" {
		n.Priority = PriorityNormal
	}

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	return n.Validate()
}

// Validate checks the notification fields.
func (n *Notification) Validate() error {
	if n.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidNotificationType(n.Type) {
		return ErrInvalidNotificationType
	}

	if !IsValidPriority(n.Priority) {
		return ErrInvalidPriority
	}

	if n.Title == "" {
		return errors.New("notification title is required")
	}

	if n.Message == "" {
		return errors.New("notification message is required")
	}

	return nil
}

// TableName returns the table name for Notification
func (n *Notification) TableName() string {
	return "notifications"
}

// IsValidNotificationType checks if the notification type is valid
func IsValidNotificationType(notificationType string) bool {
	switch notificationType {
	case NotificationTypeBudgetAlert, NotificationTypeMonthlyReport,
		NotificationTypeTransactionReminder, NotificationTypeGoalAchieved,
		NotificationTypeWeeklyDigest:
		return true
	default:
		return false
	}
}

// IsValidPriority checks if the notification priority is valid
func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}
