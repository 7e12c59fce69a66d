package repositories

import (
	"time"

	"finmentor/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastLogin(userID uuid.UUID) error
	ListIDs(offset, limit int) ([]uuid.UUID, error)
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID) ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id, userID uuid.UUID) error
	ClearDefaultForUser(userID uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	// CreateWithBalanceUpdate inserts the transaction and applies its
	// signed delta to the owning account inside one database transaction.
	CreateWithBalanceUpdate(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	GetByUserIDAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	GetRecentByAccountID(accountID uuid.UUID, limit int) ([]models.Transaction, error)
	CountByAccountID(accountID uuid.UUID) (int64, error)
}

// NotificationRepositoryInterface defines the contract for notification feed operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	ListRecentByUserID(userID uuid.UUID, limit int) ([]models.Notification, error)
	// MarkRead flips is_read for the given notification, scoped to the
	// owning user in the update predicate. Returns ErrNotificationNotFound
	// when no row matched (wrong id or another user's notification).
	MarkRead(id, userID uuid.UUID) error
	CountUnread(userID uuid.UUID) (int64, error)
}

// PreferenceRepositoryInterface defines the contract for notification preference operations
type PreferenceRepositoryInterface interface {
	// Upsert writes the preference row keyed on user_id:
	// update-if-exists-else-insert, idempotent per user.
	Upsert(pref *models.NotificationPreference) error
	GetByUserID(userID uuid.UUID) (*models.NotificationPreference, error)
	ListUserIDsWithMonthlyReports() ([]uuid.UUID, error)
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}
