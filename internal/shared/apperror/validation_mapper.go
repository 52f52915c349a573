package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError is one entry of a VALIDATION_ERROR details list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var titleCaser = cases.Title(language.English)

// leave_type_id -> Leave Type Id
func formatFieldName(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

func describe(e validator.FieldError) string {
	label := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	case "uuid":
		return label + " must be a valid id"
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", label, "YYYY-MM-DD")
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	default:
		return label + " is invalid"
	}
}

// ValidationDetails converts a binding error into per-field messages. Errors
// that are not validator errors (malformed JSON, wrong types) are returned as
// their text.
func ValidationDetails(err error) any {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{Field: e.Field(), Message: describe(e)})
	}
	return out
}

// MapValidationError reduces a binding error to a single INVALID_INPUT error
// for the first failing field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		if errs[0].Tag() == "required" {
			return RequiredField(formatFieldName(errs[0].Field()))
		}
		return Invalid(describe(errs[0]))
	}

	return Invalid("Invalid input")
}
