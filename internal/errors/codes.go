package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidToken       ErrorCode = "AUTH_004"
	AuthUserAlreadyExists  ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound     ErrorCode = "ACCOUNT_001"
	AccountInvalidType  ErrorCode = "ACCOUNT_002"
	AccountLimitReached ErrorCode = "ACCOUNT_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
	TransactionInvalidDate   ErrorCode = "TRANSACTION_004"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidMonth        ErrorCode = "REPORT_001"
	ReportUnsupportedFormat   ErrorCode = "REPORT_002"
	ReportGenerationFailed    ErrorCode = "REPORT_003"
	ReportExportEncodingError ErrorCode = "REPORT_004"
)

// Notification error codes (NOTIFICATION_*)
const (
	NotificationNotFound          ErrorCode = "NOTIFICATION_001"
	NotificationInvalidPreference ErrorCode = "NOTIFICATION_002"
	NotificationInvalidFrequency  ErrorCode = "NOTIFICATION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidToken:       "Invalid or malformed authorization token",
	AuthUserAlreadyExists:  "An account with this email already exists",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound:     "Account not found",
	AccountInvalidType:  "Invalid account type",
	AccountLimitReached: "Account limit reached for this user",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionInvalidType:   "Invalid transaction type",
	TransactionInvalidDate:   "Invalid transaction date",

	// Report errors
	ReportInvalidMonth:        "Invalid report month; expected YYYY-MM",
	ReportUnsupportedFormat:   "Unsupported export format",
	ReportGenerationFailed:    "Failed to generate financial report",
	ReportExportEncodingError: "Failed to encode report export",

	// Notification errors
	NotificationNotFound:          "Notification not found",
	NotificationInvalidPreference: "Invalid notification preference",
	NotificationInvalidFrequency:  "Unsupported email frequency",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
