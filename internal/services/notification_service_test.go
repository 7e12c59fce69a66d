package services

import (
	"fmt"
	"testing"

	"finmentor/internal/database"
	"finmentor/internal/models"
	"finmentor/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NotificationServiceSuite defines the test suite for NotificationServiceInterface
type NotificationServiceSuite struct {
	suite.Suite
	db       *database.DB
	service  NotificationServiceInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *NotificationServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewNotificationService(repositories.NewNotificationRepository(s.db.DB), noopMetrics{})
	s.testUser = database.CreateTestUser(s.T(), s.db, "notify@example.com")
}

// TearDownTest runs after each test in the suite
func (s *NotificationServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestNotificationServiceSuite runs the test suite
func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceSuite))
}

func (s *NotificationServiceSuite) TestCreate() {
	notification, err := s.service.Create(s.testUser.ID,
		models.NotificationTypeBudgetAlert, "Budget exceeded", "Food budget is over the limit", models.PriorityHigh)
	s.NoError(err)
	s.Require().NotNil(notification)
	s.NotEqual(uuid.Nil, notification.ID)
	s.False(notification.IsRead)
}

func (s *NotificationServiceSuite) TestCreate_InvalidType() {
	notification, err := s.service.Create(s.testUser.ID,
		"SHOUTING", "Title", "Message", models.PriorityNormal)
	s.Error(err)
	s.Nil(notification)
}

func (s *NotificationServiceSuite) TestListFeed_ReturnsNewestTen() {
	for i := 0; i < 15; i++ {
		_, err := s.service.Create(s.testUser.ID,
			models.NotificationTypeBudgetAlert,
			fmt.Sprintf("Alert %d", i), "message", models.PriorityNormal)
		s.NoError(err)
	}

	feed, err := s.service.ListFeed(s.testUser.ID)
	s.NoError(err)
	s.Require().NotNil(feed)
	s.Len(feed.Notifications, 10)
	s.Equal(int64(15), feed.UnreadCount)
}

func (s *NotificationServiceSuite) TestListFeed_Empty() {
	feed, err := s.service.ListFeed(s.testUser.ID)
	s.NoError(err)
	s.Empty(feed.Notifications)
	s.Zero(feed.UnreadCount)
}

func (s *NotificationServiceSuite) TestMarkRead() {
	notification, err := s.service.Create(s.testUser.ID,
		models.NotificationTypeGoalAchieved, "Goal reached", "Savings goal reached", models.PriorityNormal)
	s.NoError(err)

	s.NoError(s.service.MarkRead(notification.ID, s.testUser.ID))

	unread, err := s.service.UnreadCount(s.testUser.ID)
	s.NoError(err)
	s.Zero(unread)
}

func (s *NotificationServiceSuite) TestMarkRead_NotFound() {
	err := s.service.MarkRead(uuid.New(), s.testUser.ID)
	s.ErrorIs(err, ErrNotFound)
}

func (s *NotificationServiceSuite) TestMarkRead_OtherUsersNotification() {
	otherUser := database.CreateTestUser(s.T(), s.db, "other-notify@example.com")

	notification, err := s.service.Create(s.testUser.ID,
		models.NotificationTypeBudgetAlert, "Private", "not yours", models.PriorityNormal)
	s.NoError(err)

	err = s.service.MarkRead(notification.ID, otherUser.ID)
	s.ErrorIs(err, ErrNotFound)

	// The owner's notification stays unread
	unread, err := s.service.UnreadCount(s.testUser.ID)
	s.NoError(err)
	s.Equal(int64(1), unread)
}

func (s *NotificationServiceSuite) TestCreateWelcomeSet() {
	s.NoError(s.service.CreateWelcomeSet(s.testUser.ID))

	feed, err := s.service.ListFeed(s.testUser.ID)
	s.NoError(err)
	s.Len(feed.Notifications, 3)
	s.Equal(int64(3), feed.UnreadCount)

	titles := make([]string, 0, len(feed.Notifications))
	for _, n := range feed.Notifications {
		titles = append(titles, n.Title)
	}
	s.Contains(titles, "Welcome to FinMentor")
}
