package services

import (
	"time"

	"finmentor/internal/dto"
	"finmentor/internal/models"

	"github.com/google/uuid"
)

// AggregationServiceInterface defines monthly transaction aggregation
type AggregationServiceInterface interface {
	// Summarize aggregates a transaction slice into income, expense and
	// top-category totals. Pure; empty input yields a zeroed summary.
	Summarize(transactions []models.Transaction, accountsCount int) *models.ReportSummary

	// MonthlyReport aggregates the calendar month containing now.
	MonthlyReport(userID uuid.UUID) (*dto.MonthlySummaryResponse, error)

	// SummarizeRange aggregates an arbitrary calendar month.
	SummarizeRange(userID uuid.UUID, year int, month time.Month) (*dto.MonthlySummaryResponse, error)
}

// ReportServiceInterface builds the full financial report object
type ReportServiceInterface interface {
	BuildFinancialReport(userID uuid.UUID) (*models.FinancialReport, error)
}

// ExportResult is an encoded report ready to be written to the response
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ExportServiceInterface encodes a financial report into a download format
type ExportServiceInterface interface {
	Export(report *models.FinancialReport, format string) (*ExportResult, error)
}

// PreferenceServiceInterface reconciles and stores notification preferences
type PreferenceServiceInterface interface {
	// Reconcile merges the submitted flags over the stored row (or the
	// defaults when none exists) and upserts the result. Absent fields
	// keep their current value; an explicit false is preserved.
	Reconcile(userID uuid.UUID, input *dto.UpdatePreferencesRequest) (*models.NotificationPreference, error)
	GetPreferences(userID uuid.UUID) (*models.NotificationPreference, error)
}

// NotificationServiceInterface manages the notification feed
type NotificationServiceInterface interface {
	Create(userID uuid.UUID, notificationType, title, message, priority string) (*models.Notification, error)
	ListFeed(userID uuid.UUID) (*dto.NotificationListResponse, error)
	MarkRead(notificationID, userID uuid.UUID) error
	CreateWelcomeSet(userID uuid.UUID) error
	UnreadCount(userID uuid.UUID) (int64, error)
}

// ReportSchedulerInterface runs the monthly report sweep
type ReportSchedulerInterface interface {
	Start() error
	Stop()
	// RunMonthlySweep creates a MONTHLY_REPORT notification for every
	// user with monthly reports enabled, covering the previous month.
	RunMonthlySweep() error
}

// AccountServiceInterface defines account business operations
type AccountServiceInterface interface {
	CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error)
	CreateDefaultAccount(userID uuid.UUID) (*models.Account, error)
	GetUserAccounts(userID uuid.UUID) ([]models.Account, error)
	GetAccount(accountID, userID uuid.UUID) (*models.Account, error)
	UpdateAccount(accountID, userID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error)
	DeleteAccount(accountID, userID uuid.UUID) error
}

// TransactionServiceInterface defines transaction business operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, page, pageSize int) (*dto.TransactionListResponse, error)
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken string) (*dto.TokenResponse, error)
	Logout(refreshToken string) error
	GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	HashToken(tokenString string) string
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
