package validation

import (
	"reflect"
	"regexp"
	"strings"

	"finmentor/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("notification_priority", validateNotificationPriority)
	_ = v.RegisterValidation("email_frequency", validateEmailFrequency)
	_ = v.RegisterValidation("report_month", validateReportMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that transaction type is INCOME or EXPENSE
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateAccountType validates that account type is CURRENT or SAVINGS
func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(fl.Field().String())
}

// validateNotificationPriority validates the notification priority level
func validateNotificationPriority(fl validator.FieldLevel) bool {
	return models.IsValidPriority(fl.Field().String())
}

// validateEmailFrequency validates the notification email frequency
func validateEmailFrequency(fl validator.FieldLevel) bool {
	return fl.Field().String() == models.EmailFrequencyImmediate
}

var reportMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// validateReportMonth validates a YYYY-MM month selector
func validateReportMonth(fl validator.FieldLevel) bool {
	return reportMonthRegex.MatchString(fl.Field().String())
}
