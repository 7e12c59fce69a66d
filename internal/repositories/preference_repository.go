package repositories

import (
	"errors"
	"fmt"

	"finmentor/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPreferenceNotFound = errors.New("notification preference not found")

// preferenceRepository implements PreferenceRepositoryInterface
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new notification preference repository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepositoryInterface {
	return &preferenceRepository{db: db}
}

// Upsert writes the preference row keyed on user_id. An existing row is
// updated in place, so repeated saves never accumulate rows per user.
func (r *preferenceRepository) Upsert(pref *models.NotificationPreference) error {
	// The insert must only ever conflict on user_id; a carried-over id
	// would hit the primary key first and bypass the conflict target.
	pref.ID = uuid.Nil

	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"budget_alerts",
			"monthly_reports",
			"transaction_reminders",
			"goal_achievements",
			"weekly_digest",
			"email_frequency",
			"updated_at",
		}),
	}).Create(pref).Error; err != nil {
		return fmt.Errorf("failed to upsert notification preference: %w", err)
	}
	return nil
}

// GetByUserID retrieves the stored preference row for a user
func (r *preferenceRepository) GetByUserID(userID uuid.UUID) (*models.NotificationPreference, error) {
	var pref models.NotificationPreference
	if err := r.db.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to get notification preference: %w", err)
	}
	return &pref, nil
}

// ListUserIDsWithMonthlyReports returns the users who have opted in to
// monthly report notifications. Users without a stored row default to
// opted in, so they are included too.
func (r *preferenceRepository) ListUserIDsWithMonthlyReports() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&models.User{}).
		Joins("LEFT JOIN notification_preferences np ON np.user_id = users.id").
		Where("np.id IS NULL OR np.monthly_reports = ?", true).
		Pluck("users.id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list monthly report recipients: %w", err)
	}
	return ids, nil
}
