package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMessageResponseHandler(t *testing.T) {
	c, rec := newTestContext()

	err := MessageResponseHandler(c, http.StatusOK, "OTP sent successfully")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OTP sent successfully", body["message"])
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext()

	err := BadRequestResponse(c, "missing required fields")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing required fields", body["error"])
}

func TestMapErrorResponse(t *testing.T) {
	testCases := []struct {
		err        error
		wantStatus int
	}{
		{apperrors.ErrMissingFields, http.StatusBadRequest},
		{apperrors.ErrInvalidDomain, http.StatusBadRequest},
		{apperrors.ErrOTPExpired, http.StatusBadRequest},
		{apperrors.ErrOTPMismatch, http.StatusBadRequest},
		{apperrors.ErrDepartmentTaken, http.StatusBadRequest},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{apperrors.ErrSendFailed, http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", apperrors.ErrInvalidCredentials), http.StatusUnauthorized},
		{fmt.Errorf("some database failure"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		c, rec := newTestContext()
		assert.NoError(t, MapErrorResponse(c, tc.err))
		assert.Equal(t, tc.wantStatus, rec.Code, "error: %v", tc.err)
	}
}
