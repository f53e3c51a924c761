package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIError classifies a request failure and carries the HTTP status used
// when surfacing it. Every failure is terminal for its request and is
// written straight back to the caller as {"error": message}; there is no
// retry or partial-success handling anywhere in the service.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string { return e.Message }

// JSON writes the error to the response in the service's uniform shape.
func (e APIError) JSON(c echo.Context) error {
	return c.JSON(e.Status, echo.Map{"error": e.Message})
}

// validationError covers missing or malformed required fields.
func validationError(msg string) APIError {
	return APIError{Status: http.StatusBadRequest, Message: msg}
}

// rangeError covers values outside their allowed bounds (age).
func rangeError(msg string) APIError {
	return APIError{Status: http.StatusBadRequest, Message: msg}
}

// emptyBodyError covers requests with no payload at all.
func emptyBodyError() APIError {
	return APIError{Status: http.StatusBadRequest, Message: "No input data provided"}
}

// authError covers credential mismatches. Unknown username and wrong
// password intentionally produce the identical error so the endpoint leaks
// no username-existence signal.
func authError() APIError {
	return APIError{Status: http.StatusUnauthorized, Message: "Invalid username or password"}
}

// storageError covers failed store operations; the underlying message is
// surfaced to the caller.
func storageError(msg string) APIError {
	return APIError{Status: http.StatusInternalServerError, Message: msg}
}
