package services

import (
	"testing"

	"finmentor/internal/database"
	"finmentor/internal/dto"
	"finmentor/internal/models"
	"finmentor/internal/repositories"

	"github.com/stretchr/testify/suite"
)

// PreferenceServiceSuite defines the test suite for PreferenceServiceInterface
type PreferenceServiceSuite struct {
	suite.Suite
	db       *database.DB
	service  PreferenceServiceInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *PreferenceServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewPreferenceService(repositories.NewPreferenceRepository(s.db.DB), noopMetrics{})
	s.testUser = database.CreateTestUser(s.T(), s.db, "prefs@example.com")
}

// TearDownTest runs after each test in the suite
func (s *PreferenceServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestPreferenceServiceSuite runs the test suite
func TestPreferenceServiceSuite(t *testing.T) {
	suite.Run(t, new(PreferenceServiceSuite))
}

func boolPtr(v bool) *bool { return &v }

func (s *PreferenceServiceSuite) TestGetPreferences_DefaultsWhenNothingStored() {
	pref, err := s.service.GetPreferences(s.testUser.ID)
	s.NoError(err)
	s.Require().NotNil(pref)
	s.True(pref.BudgetAlerts)
	s.True(pref.MonthlyReports)
	s.False(pref.TransactionReminders)
	s.True(pref.GoalAchievements)
	s.False(pref.WeeklyDigest)
	s.Equal(models.EmailFrequencyImmediate, pref.EmailFrequency)
}

func (s *PreferenceServiceSuite) TestReconcile_FirstSaveOverDefaults() {
	pref, err := s.service.Reconcile(s.testUser.ID, &dto.UpdatePreferencesRequest{
		WeeklyDigest: boolPtr(true),
	})
	s.NoError(err)
	s.True(pref.WeeklyDigest)
	// Untouched fields keep the defaults
	s.True(pref.BudgetAlerts)
	s.True(pref.MonthlyReports)
	s.False(pref.TransactionReminders)
}

func (s *PreferenceServiceSuite) TestReconcile_ExplicitFalsePreserved() {
	_, err := s.service.Reconcile(s.testUser.ID, &dto.UpdatePreferencesRequest{
		BudgetAlerts: boolPtr(false),
	})
	s.NoError(err)

	// A later save that omits budgetAlerts must not flip it back to true
	pref, err := s.service.Reconcile(s.testUser.ID, &dto.UpdatePreferencesRequest{
		WeeklyDigest: boolPtr(true),
	})
	s.NoError(err)
	s.False(pref.BudgetAlerts)
	s.True(pref.WeeklyDigest)

	stored, err := s.service.GetPreferences(s.testUser.ID)
	s.NoError(err)
	s.False(stored.BudgetAlerts)
}

func (s *PreferenceServiceSuite) TestReconcile_IdempotentSingleRow() {
	input := &dto.UpdatePreferencesRequest{
		MonthlyReports: boolPtr(false),
		WeeklyDigest:   boolPtr(true),
	}

	first, err := s.service.Reconcile(s.testUser.ID, input)
	s.NoError(err)
	second, err := s.service.Reconcile(s.testUser.ID, input)
	s.NoError(err)

	s.Equal(first.MonthlyReports, second.MonthlyReports)
	s.Equal(first.WeeklyDigest, second.WeeklyDigest)

	var count int64
	s.NoError(s.db.Model(&models.NotificationPreference{}).
		Where("user_id = ?", s.testUser.ID).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *PreferenceServiceSuite) TestReconcile_NilInputKeepsStoredValues() {
	_, err := s.service.Reconcile(s.testUser.ID, &dto.UpdatePreferencesRequest{
		TransactionReminders: boolPtr(true),
	})
	s.NoError(err)

	pref, err := s.service.Reconcile(s.testUser.ID, nil)
	s.NoError(err)
	s.True(pref.TransactionReminders)
}

func (s *PreferenceServiceSuite) TestReconcile_RejectsUnsupportedFrequency() {
	frequency := "WEEKLY"
	pref, err := s.service.Reconcile(s.testUser.ID, &dto.UpdatePreferencesRequest{
		EmailFrequency: &frequency,
	})
	s.ErrorIs(err, ErrInvalidInput)
	s.Nil(pref)
}

func (s *PreferenceServiceSuite) TestReconcile_UsersAreIsolated() {
	otherUser := database.CreateTestUser(s.T(), s.db, "other-prefs@example.com")

	_, err := s.service.Reconcile(s.testUser.ID, &dto.UpdatePreferencesRequest{
		MonthlyReports: boolPtr(false),
	})
	s.NoError(err)

	otherPref, err := s.service.GetPreferences(otherUser.ID)
	s.NoError(err)
	s.True(otherPref.MonthlyReports)
}
