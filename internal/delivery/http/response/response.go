// Package response defines the JSON envelope every HTTP endpoint answers with.
package response

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ORDER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// FromOutcome writes a use case outcome. Successful outcomes use successStatus
// and carry data; failed ones take status and code from the outcome's Failure
// and carry no data. The diagnostic cause in Outcome.Error is never sent.
func FromOutcome(c echo.Context, successStatus int, outcome usecase.Outcome, data any) error {
	if outcome.Success {
		return Success(c, successStatus, data, outcome.Message)
	}

	status := http.StatusInternalServerError
	info := &ErrorInfo{Code: "INTERNAL_ERROR"}
	if outcome.Failure != nil {
		status = outcome.Failure.HTTPCode()
		info.Code = outcome.Failure.ErrorCode()
		info.Details = outcome.Failure.Details()
	}

	message := outcome.Message
	if message == "" {
		message = http.StatusText(status)
	}

	return c.JSON(status, Response{
		Success: false,
		Code:    status,
		Message: message,
		Error:   info,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}
