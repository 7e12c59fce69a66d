package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finmentor/internal/database"
	"finmentor/internal/models"
	"finmentor/internal/repositories"
	"finmentor/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// NotificationHandlerSuite exercises the notification endpoints against
// a real service stack backed by an in-memory database
type NotificationHandlerSuite struct {
	suite.Suite
	db            *database.DB
	echo          *echo.Echo
	handler       *NotificationHandler
	notifications services.NotificationServiceInterface
	testUser      *models.User
}

// SetupTest runs before each test in the suite
func (s *NotificationHandlerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	s.notifications = services.NewNotificationService(
		repositories.NewNotificationRepository(s.db.DB), noopHandlerMetrics{})
	preferences := services.NewPreferenceService(
		repositories.NewPreferenceRepository(s.db.DB), noopHandlerMetrics{})

	s.handler = NewNotificationHandler(s.notifications, preferences)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.testUser = database.CreateTestUser(s.T(), s.db, "feed@example.com")
}

// TearDownTest runs after each test in the suite
func (s *NotificationHandlerSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestNotificationHandlerSuite runs the test suite
func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerSuite))
}

func (s *NotificationHandlerSuite) authedRequest(method, path, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUser.ID)
	return rec, c
}

func (s *NotificationHandlerSuite) TestListFeed() {
	_, err := s.notifications.Create(s.testUser.ID,
		models.NotificationTypeBudgetAlert, "Budget alert", "Close to the limit", models.PriorityHigh)
	s.Require().NoError(err)

	rec, c := s.authedRequest(http.MethodGet, "/api/v1/notifications", "")
	s.NoError(s.handler.ListFeed(c))
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Notifications []map[string]interface{} `json:"notifications"`
			UnreadCount   int64                    `json:"unreadCount"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Len(body.Data.Notifications, 1)
	s.EqualValues(1, body.Data.UnreadCount)
	s.Equal("Budget alert", body.Data.Notifications[0]["title"])
}

func (s *NotificationHandlerSuite) TestMarkRead() {
	created, err := s.notifications.Create(s.testUser.ID,
		models.NotificationTypeBudgetAlert, "Budget alert", "Close to the limit", models.PriorityNormal)
	s.Require().NoError(err)

	rec, c := s.authedRequest(http.MethodPut, "/api/v1/notifications/:id/read", "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	s.NoError(s.handler.MarkRead(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Notification marked as read")
}

func (s *NotificationHandlerSuite) TestMarkRead_UnknownID() {
	rec, c := s.authedRequest(http.MethodPut, "/api/v1/notifications/:id/read", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	s.NoError(s.handler.MarkRead(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "NOTIFICATION_001")
}

func (s *NotificationHandlerSuite) TestMarkRead_BadUUID() {
	rec, c := s.authedRequest(http.MethodPut, "/api/v1/notifications/:id/read", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.MarkRead(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *NotificationHandlerSuite) TestGetPreferences_Defaults() {
	rec, c := s.authedRequest(http.MethodGet, "/api/v1/notifications/preferences", "")

	s.NoError(s.handler.GetPreferences(c))
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			MonthlyReports bool   `json:"monthlyReports"`
			WeeklyDigest   bool   `json:"weeklyDigest"`
			EmailFrequency string `json:"emailFrequency"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Data.MonthlyReports)
	s.False(body.Data.WeeklyDigest)
	s.Equal(models.EmailFrequencyImmediate, body.Data.EmailFrequency)
}

func (s *NotificationHandlerSuite) TestUpdatePreferences_PartialSave() {
	rec, c := s.authedRequest(http.MethodPut, "/api/v1/notifications/preferences",
		`{"monthlyReports":false}`)

	s.NoError(s.handler.UpdatePreferences(c))
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			MonthlyReports bool `json:"monthlyReports"`
			BudgetAlerts   bool `json:"budgetAlerts"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.False(body.Data.MonthlyReports)
	// Unsent fields keep their defaults
	s.True(body.Data.BudgetAlerts)
}

func (s *NotificationHandlerSuite) TestUpdatePreferences_UnsupportedFrequency() {
	_, c := s.authedRequest(http.MethodPut, "/api/v1/notifications/preferences",
		`{"emailFrequency":"WEEKLY"}`)

	// The email_frequency rule rejects it during struct validation
	s.Error(s.handler.UpdatePreferences(c))
}

func (s *NotificationHandlerSuite) TestMissingUserContext() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListFeed(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}
