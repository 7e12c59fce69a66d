package dto

import "time"

// Notification Request DTOs

// UpdatePreferencesRequest carries a user's submitted notification flags.
// Fields are pointers so an explicit false survives JSON decoding; a nil
// field means the client did not send it and the stored or default value
// should be kept.
type UpdatePreferencesRequest struct {
	BudgetAlerts         *bool   `json:"budgetAlerts,omitempty"`
	MonthlyReports       *bool   `json:"monthlyReports,omitempty"`
	TransactionReminders *bool   `json:"transactionReminders,omitempty"`
	GoalAchievements     *bool   `json:"goalAchievements,omitempty"`
	WeeklyDigest         *bool   `json:"weeklyDigest,omitempty"`
	EmailFrequency       *string `json:"emailFrequency,omitempty" validate:"omitempty,email_frequency"`
}

// Notification Response DTOs

// NotificationResponse represents a notification feed entry
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse wraps the notification feed
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unreadCount"`
}

// PreferencesResponse represents the stored notification preferences
type PreferencesResponse struct {
	BudgetAlerts         bool      `json:"budgetAlerts"`
	MonthlyReports       bool      `json:"monthlyReports"`
	TransactionReminders bool      `json:"transactionReminders"`
	GoalAchievements     bool      `json:"goalAchievements"`
	WeeklyDigest         bool      `json:"weeklyDigest"`
	EmailFrequency       string    `json:"emailFrequency"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
