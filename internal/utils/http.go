package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
)

// ErrorResponse is the error body returned by every failing endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the plain success body
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse sends a resource payload
func SuccessResponse(c echo.Context, statusCode int, payload interface{}) error {
	return c.JSON(statusCode, payload)
}

// MessageResponseHandler sends a success message body
func MessageResponseHandler(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{Error: errorMessage})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// badRequestErrors are the sentinel failures served as 400
var badRequestErrors = []error{
	apperrors.ErrMissingFields,
	apperrors.ErrInvalidDomain,
	apperrors.ErrInvalidRole,
	apperrors.ErrInvalidMobileNumber,
	apperrors.ErrInvalidAttendanceStatus,
	apperrors.ErrEmailNotRegistered,
	apperrors.ErrEmailTaken,
	apperrors.ErrDepartmentTaken,
	apperrors.ErrProfileExists,
	apperrors.ErrUpdateFailed,
	apperrors.ErrOTPExpired,
	apperrors.ErrOTPMismatch,
	apperrors.ErrResetProofInvalid,
}

// MapErrorResponse converts a usecase failure into the HTTP status and
// body the API contract defines. Unrecognized errors are served as an
// opaque 500.
func MapErrorResponse(c echo.Context, err error) error {
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			return BadRequestResponse(c, sentinel.Error())
		}
	}
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return UnauthorizedResponse(c, apperrors.ErrInvalidCredentials.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, apperrors.ErrNotFound.Error())
	case errors.Is(err, apperrors.ErrSendFailed):
		return InternalServerErrorResponse(c, apperrors.ErrSendFailed.Error())
	default:
		return InternalServerErrorResponse(c, "")
	}
}
