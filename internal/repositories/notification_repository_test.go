package repositories

import (
	"testing"
	"time"

	"finmentor/internal/database"
	"finmentor/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NotificationRepositorySuite defines the test suite for NotificationRepository
type NotificationRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     NotificationRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *NotificationRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewNotificationRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "feed@example.com")
}

// TearDownTest runs after each test in the suite
func (s *NotificationRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestNotificationRepositorySuite runs the test suite
func TestNotificationRepositorySuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositorySuite))
}

func (s *NotificationRepositorySuite) createNotification(userID uuid.UUID, title string, createdAt time.Time) *models.Notification {
	notification := &models.Notification{
		UserID:    userID,
		Type:      models.NotificationTypeBudgetAlert,
		Title:     title,
		Message:   "You are close to your budget limit",
		CreatedAt: createdAt,
	}
	s.Require().NoError(s.repo.Create(notification))
	return notification
}

func (s *NotificationRepositorySuite) TestCreate() {
	notification := s.createNotification(s.testUser.ID, "Budget alert", time.Now())
	s.NotEqual(uuid.Nil, notification.ID)
	s.Equal(models.PriorityNormal, notification.Priority)
	s.False(notification.IsRead)
}

func (s *NotificationRepositorySuite) TestListRecentByUserID_NewestFirstCapped() {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		s.createNotification(s.testUser.ID, "Alert", base.Add(time.Duration(i)*time.Hour))
	}

	recent, err := s.repo.ListRecentByUserID(s.testUser.ID, 4)
	s.NoError(err)
	s.Require().Len(recent, 4)
	s.Equal(base.Add(5*time.Hour), recent[0].CreatedAt.UTC())
	s.True(recent[0].CreatedAt.After(recent[3].CreatedAt))
}

func (s *NotificationRepositorySuite) TestListRecentByUserID_ScopedToUser() {
	other := database.CreateTestUser(s.T(), s.db, "elsewhere@example.com")
	s.createNotification(s.testUser.ID, "Mine", time.Now())
	s.createNotification(other.ID, "Theirs", time.Now())

	recent, err := s.repo.ListRecentByUserID(s.testUser.ID, 10)
	s.NoError(err)
	s.Require().Len(recent, 1)
	s.Equal("Mine", recent[0].Title)
}

func (s *NotificationRepositorySuite) TestMarkRead() {
	notification := s.createNotification(s.testUser.ID, "Alert", time.Now())

	s.NoError(s.repo.MarkRead(notification.ID, s.testUser.ID))

	var stored models.Notification
	s.NoError(s.db.First(&stored, "id = ?", notification.ID).Error)
	s.True(stored.IsRead)
}

func (s *NotificationRepositorySuite) TestMarkRead_UnknownID() {
	s.ErrorIs(s.repo.MarkRead(uuid.New(), s.testUser.ID), ErrNotificationNotFound)
}

func (s *NotificationRepositorySuite) TestMarkRead_OtherUsersNotification() {
	other := database.CreateTestUser(s.T(), s.db, "victim@example.com")
	notification := s.createNotification(other.ID, "Theirs", time.Now())

	s.ErrorIs(s.repo.MarkRead(notification.ID, s.testUser.ID), ErrNotificationNotFound)

	var stored models.Notification
	s.NoError(s.db.First(&stored, "id = ?", notification.ID).Error)
	s.False(stored.IsRead)
}

func (s *NotificationRepositorySuite) TestCountUnread() {
	count, err := s.repo.CountUnread(s.testUser.ID)
	s.NoError(err)
	s.Zero(count)

	first := s.createNotification(s.testUser.ID, "One", time.Now())
	s.createNotification(s.testUser.ID, "Two", time.Now())

	count, err = s.repo.CountUnread(s.testUser.ID)
	s.NoError(err)
	s.EqualValues(2, count)

	s.NoError(s.repo.MarkRead(first.ID, s.testUser.ID))

	count, err = s.repo.CountUnread(s.testUser.ID)
	s.NoError(err)
	s.EqualValues(1, count)
}
