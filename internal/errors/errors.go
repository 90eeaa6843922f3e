package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrPersonNotFound is returned when a referenced person does not exist.
	ErrPersonNotFound = errors.New("Person not found")
	// ErrShiftNotFound is returned when a referenced shift does not exist.
	ErrShiftNotFound = errors.New("Shift not found")
	// ErrEndBeforeStart is returned when a shift would end at or before its start.
	ErrEndBeforeStart = errors.New("End time cannot be before start time")
	// ErrInvalidAPIKey is returned when the access_token header does not match.
	ErrInvalidAPIKey = errors.New("Could not validate API KEY")
	// ErrDisplayTagExhausted is returned when no unique display tag could be
	// allocated within the retry budget.
	ErrDisplayTagExhausted = errors.New("could not generate a unique display tag")
)

// InvalidOrderTypeError reports an order_type value outside asc/desc.
type InvalidOrderTypeError struct {
	OrderType string
}

func (e *InvalidOrderTypeError) Error() string {
	return fmt.Sprintf("Order type is either asc or desc, you entered %s", e.OrderType)
}

// ErrorResponse is the JSON error body used by every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, detail string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Detail: detail}
}

// ToErrorResponse converts an HTTPError to its response body.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Detail: e.Detail}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var orderErr *InvalidOrderTypeError
	switch {
	case errors.Is(err, ErrPersonNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPersonNotFound.Error())
	case errors.Is(err, ErrShiftNotFound):
		return NewHTTPError(http.StatusNotFound, ErrShiftNotFound.Error())
	case errors.Is(err, ErrEndBeforeStart):
		return NewHTTPError(http.StatusBadRequest, ErrEndBeforeStart.Error())
	case errors.As(err, &orderErr):
		return NewHTTPError(http.StatusBadRequest, orderErr.Error())
	case errors.Is(err, ErrInvalidAPIKey):
		return NewHTTPError(http.StatusForbidden, ErrInvalidAPIKey.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
