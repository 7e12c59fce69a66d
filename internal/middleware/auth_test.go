package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finmentor/internal/config"
	"finmentor/internal/models"
	"finmentor/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	testUser     *models.User
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.tokenService = services.NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "finmentor-api",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	})

	s.testUser = &models.User{
		ID:    uuid.New(),
		Email: "authed@example.com",
		Name:  "Authed User",
	}
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) request(authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return rec, s.e.NewContext(req, rec)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken(s.testUser)
	s.Require().NoError(err)

	rec, c := s.request("Bearer " + token)

	nextCalled := false
	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		nextCalled = true
		s.Equal(s.testUser.ID, c.Get("user_id"))
		s.Equal(s.testUser.Email, c.Get("user_email"))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.True(nextCalled)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	rec, c := s.request("")

	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		s.Fail("next handler should not be called")
		return nil
	})

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	rec, c := s.request("Basic dXNlcjpwYXNz")

	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		s.Fail("next handler should not be called")
		return nil
	})

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_GarbageToken() {
	rec, c := s.request("Bearer not.a.jwt")

	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		s.Fail("next handler should not be called")
		return nil
	})

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	expiredService := services.NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "finmentor-api",
		AccessTokenDuration:  -time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	})

	token, _, err := expiredService.GenerateAccessToken(s.testUser)
	s.Require().NoError(err)

	rec, c := s.request("Bearer " + token)

	handler := RequireAuth(expiredService)(func(c echo.Context) error {
		s.Fail("next handler should not be called")
		return nil
	})

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_RefreshTokenRejected() {
	refreshToken, _, err := s.tokenService.GenerateRefreshToken(s.testUser.ID)
	s.Require().NoError(err)

	rec, c := s.request("Bearer " + refreshToken)

	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		s.Fail("next handler should not be called")
		return nil
	})

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}
