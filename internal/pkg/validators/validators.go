// Package validators registers the custom validation tags used by the
// document entity, its queries and the REST payloads.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Custom tags
const (
	CountryCodeTag = "countryCode"
	DateFormatTag  = "dateFormat"
	DateFieldTag   = "dateField"
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// CountryCodeValidation accepts ISO 3166 alpha-2 codes in upper case.
func CountryCodeValidation(fl validator.FieldLevel) bool {
	return countryCodeRe.MatchString(fl.Field().String())
}

// DateFormatValidation accepts the field orders a reviewer can force on a date.
func DateFormatValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "DD/MM/YYYY", "MM/DD/YYYY", "YYYY-MM-DD":
		return true
	default:
		return false
	}
}

// DateFieldValidation accepts the names of the dates stored on a document.
func DateFieldValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "birth_date", "expiry_date", "issue_date":
		return true
	default:
		return false
	}
}

// New returns a validator with every custom tag registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	custom := map[string]validator.Func{
		CountryCodeTag: CountryCodeValidation,
		DateFormatTag:  DateFormatValidation,
		DateFieldTag:   DateFieldValidation,
	}
	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register custom validator: %w", err)
		}
	}

	return validate, nil
}

var (
	sharedOnce     sync.Once
	sharedValidate *validator.Validate
	sharedErr      error
)

// shared returns the validator used by Struct, built on first use.
func shared() (*validator.Validate, error) {
	sharedOnce.Do(func() {
		sharedValidate, sharedErr = New()
	})
	return sharedValidate, sharedErr
}

// Struct validates s and flattens validation errors into one message per field.
func Struct(s any) error {
	validate, err := shared()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
