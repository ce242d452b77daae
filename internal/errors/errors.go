package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmailInUse is returned when registering with an email that already has an account.
	ErrEmailInUse = errors.New("Email already in use")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrInvalidToken is returned when a bearer or refresh token cannot be trusted.
	ErrInvalidToken = errors.New("Invalid token")
	// ErrSubjectExists is returned when a user already has a subject with the same name.
	ErrSubjectExists = errors.New("Subject already exists")
	// ErrGenerationFailed is returned when the AI provider call or its response fails.
	ErrGenerationFailed = errors.New("Error generating questions")
)

// NotFoundError reports that a record does not resolve under the caller's scope.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NotFound builds a NotFoundError for the named resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ValidationError reports a bad or missing input field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError with a formatted message.
func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var notFound *NotFoundError
	var invalid *ValidationError
	var httpErr *HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &notFound):
		return NewHTTPError(http.StatusNotFound, notFound.Error(), "NOT_FOUND")
	case errors.As(err, &invalid):
		return NewHTTPError(http.StatusBadRequest, invalid.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrEmailInUse):
		return NewHTTPError(http.StatusBadRequest, ErrEmailInUse.Error(), "EMAIL_IN_USE")
	case errors.Is(err, ErrSubjectExists):
		return NewHTTPError(http.StatusBadRequest, ErrSubjectExists.Error(), "SUBJECT_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrGenerationFailed):
		return NewHTTPError(http.StatusInternalServerError, ErrGenerationFailed.Error(), "GENERATION_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
