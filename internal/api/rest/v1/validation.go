package v1

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/attendance"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateBody validates a decoded request body
func validateBody(request interface{}) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation error: %w", err)
	}

	result := &RequestValidationError{}
	for _, fieldErr := range validationErrors {
		msg, errType := describe(fieldErr)
		result.Errors = append(result.Errors, FieldError{
			Loc:  []string{LocBody, fieldErr.Field()},
			Msg:  msg,
			Type: errType,
		})
	}
	return result
}

func describe(fieldErr validator.FieldError) (string, string) {
	switch fieldErr.Tag() {
	case "required":
		return "field required", "value_error.missing"
	case "email":
		return "value is not a valid email address", "value_error.email"
	case "min":
		return fmt.Sprintf("ensure this value has at least %s characters", fieldErr.Param()), "value_error.any_str.min_length"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fieldErr.Param()), "value_error.any_str.max_length"
	case "oneof":
		permitted := strings.Fields(fieldErr.Param())
		for i, value := range permitted {
			permitted[i] = "'" + value + "'"
		}
		return "value is not a valid enumeration member; permitted: " + strings.Join(permitted, ", "), "type_error.enum"
	case "datetime":
		return "invalid date format, expected YYYY-MM-DD", "value_error.date"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag()), "value_error"
	}
}

// validateDate checks a date taken from the path or query string
func validateDate(loc, field, value string) error {
	if _, err := time.Parse(attendance.DateLayout, value); err != nil {
		return newFieldError(loc, field, "invalid date format, expected YYYY-MM-DD", "value_error.date")
	}
	return nil
}
