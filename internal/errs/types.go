// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldError for invalid payload fields or HTTPError for API
// responses) so clients receive meaningful and consistent error bodies.
//
//   - Return a consistent error shape to API clients (JSON).
//   - Support field-level validation details.
//   - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	// Field is the payload key the error relates to (e.g. "name").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and serializes directly
// into the API error body:
//
//	{ "error": "Validation failed", "code": "BAD_REQUEST", "details": [...] }
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST", "ITEM_NOT_FOUND").
//   - Message: human-friendly message, sent as "error".
//   - Status: HTTP status code, never serialized.
//   - Errors: per-field validation errors, sent as "details" when present.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"error"`
	Status  int          `json:"-"`
	Errors  []FieldError `json:"details,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// Printing or logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It only checks the type, not Code/Status; use errors.As to inspect those.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
