package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Invalid Credentials",
			code:     AuthInvalidCredentials,
			expected: "Invalid email or password",
		},
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Account Not Found",
			code:     AccountNotFound,
			expected: "Account not found",
		},
		{
			name:     "Account Limit Reached",
			code:     AccountLimitReached,
			expected: "Account limit reached for this user",
		},
		{
			name:     "Report Invalid Month",
			code:     ReportInvalidMonth,
			expected: "Invalid report month; expected YYYY-MM",
		},
		{
			name:     "Notification Not Found",
			code:     NotificationNotFound,
			expected: "Notification not found",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	validCodes := []ErrorCode{
		AuthInvalidCredentials,
		AuthMissingToken,
		AuthExpiredToken,
		AuthInvalidToken,
		AuthUserAlreadyExists,
		ValidationGeneral,
		ValidationInvalidFormat,
		AccountNotFound,
		AccountLimitReached,
		TransactionNotFound,
		TransactionInvalidAmount,
		ReportInvalidMonth,
		ReportUnsupportedFormat,
		ReportGenerationFailed,
		ReportExportEncodingError,
		NotificationNotFound,
		NotificationInvalidPreference,
		SystemInternalError,
		SystemRateLimitExceeded,
	}

	for _, code := range validCodes {
		s.True(IsValidErrorCode(code), "expected %s to be valid", code)
	}
}

// TestIsValidErrorCode_InvalidCodes tests validation of invalid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCodes() {
	invalidCodes := []ErrorCode{
		"INVALID_CODE",
		"AUTH_999",
		"",
		"auth_001",
	}

	for _, code := range invalidCodes {
		s.False(IsValidErrorCode(code), "expected %s to be invalid", code)
	}
}
