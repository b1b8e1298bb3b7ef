// Package validation wraps go-playground/validator and reports failures using
// the JSON field names clients send.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"delivery-api/pkg/apierror"
)

var (
	validate *validator.Validate
	once     sync.Once
)

type FieldError struct {
	Field   string
	Tag     string
	Message string
}

func (e FieldError) Issue() apierror.Issue {
	return apierror.Issue{
		Title:  "Invalid " + e.Field,
		Detail: e.Field + " " + e.Message,
	}
}

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Check validates s and returns every failing field, in declaration order.
// A nil slice means s is valid.
func Check(s any) []FieldError {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "body", Tag: "invalid", Message: "is invalid"}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: formatValidationError(e),
		})
	}
	return out
}

// Issues converts field errors into the problem detail list.
func Issues(errs []FieldError) []apierror.Issue {
	issues := make([]apierror.Issue, 0, len(errs))
	for _, e := range errs {
		issues = append(issues, e.Issue())
	}
	return issues
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}
