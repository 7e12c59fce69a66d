package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailFrequencyImmediate is the only frequency the product currently
// supports; the column exists so digest batching can be added without
// a schema change.
const EmailFrequencyImmediate = "IMMEDIATE"

// NotificationPreference holds a user's email notification flags.
// Exactly one row exists per user; writes go through an upsert keyed
// on user_id.
type NotificationPreference struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BudgetAlerts         bool      `gorm:"not null;default:true" json:"budget_alerts"`
	MonthlyReports       bool      `gorm:"not null;default:true" json:"monthly_reports"`
	TransactionReminders bool      `gorm:"not null;default:false" json:"transaction_reminders"`
	GoalAchievements     bool      `gorm:"not null;default:true" json:"goal_achievements"`
	WeeklyDigest         bool      `gorm:"not null;default:false" json:"weekly_digest"`
	EmailFrequency       string    `gorm:"type:varchar(20);not null;default:'IMMEDIATE'" json:"email_frequency"`
	CreatedAt            time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time `gorm:"not null" json:"updated_at"`
}

// DefaultNotificationPreference returns the preference row a user gets
// before they have ever saved anything.
func DefaultNotificationPreference(userID uuid.UUID) *NotificationPreference {
	return &NotificationPreference{
		UserID:               userID,
		BudgetAlerts:         true,
		MonthlyReports:       true,
		TransactionReminders: false,
		GoalAchievements:     true,
		WeeklyDigest:         false,
		EmailFrequency:       EmailFrequencyImmediate,
	}
}

func (p *NotificationPreference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.EmailFrequency == "" {
		p.EmailFrequency = EmailFrequencyImmediate
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *NotificationPreference) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// Validate checks the preference fields.
func (p *NotificationPreference) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if p.EmailFrequency != EmailFrequencyImmediate {
		return errors.New("unsupported email frequency")
	}

	return nil
}

// TableName returns the table name for NotificationPreference
func (p *NotificationPreference) TableName() string {
	return "notification_preferences"
}
