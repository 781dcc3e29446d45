package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// InternalServerErrorDetail is the only detail ever returned with a 500
const InternalServerErrorDetail = "An internal server error occurred"

// Locations used as the first element of FieldError.Loc
const (
	LocBody  = "body"
	LocQuery = "query"
	LocPath  = "path"
)

// ErrorResponse is the body of every non-validation error
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// FieldError describes one invalid input value
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse is the 422 body
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}

// RequestValidationError is raised when request input does not match the
// expected schema. It is rendered as 422.
type RequestValidationError struct {
	Errors []FieldError
}

func (e *RequestValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fieldErr := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", strings.Join(fieldErr.Loc, "."), fieldErr.Msg)
	}
	return "request validation failed: " + strings.Join(parts, "; ")
}

func newFieldError(loc, field, msg, errType string) *RequestValidationError {
	location := []string{loc}
	if field != "" {
		location = append(location, field)
	}
	return &RequestValidationError{Errors: []FieldError{{Loc: location, Msg: msg, Type: errType}}}
}

// HTTPError carries a status code and a client-safe detail message
type HTTPError struct {
	Status int
	Detail string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Detail)
}

// NewHTTPError creates an HTTPError
func NewHTTPError(status int, detail string) *HTTPError {
	return &HTTPError{Status: status, Detail: detail}
}

var (
	errRouteNotFound    = NewHTTPError(http.StatusNotFound, "Not Found")
	errMethodNotAllowed = NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed")
)

// bindingError converts a JSON decoding failure into a validation error
func bindingError(err error) *RequestValidationError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.Is(err, io.EOF):
		return newFieldError(LocBody, "", "field required", "value_error.missing")
	case errors.As(err, &typeErr):
		return newFieldError(LocBody, typeErr.Field, fmt.Sprintf("value is not a valid %s", typeErr.Type), "type_error")
	case errors.As(err, &syntaxErr):
		return newFieldError(LocBody, "", fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset), "value_error.jsondecode")
	default:
		return newFieldError(LocBody, "", err.Error(), "value_error.jsondecode")
	}
}
