package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/internal/utils"
	"github.com/snsce/attendance/services/campus"
)

// AuthHandler serves registration, login and password-reset endpoints
type AuthHandler struct {
	campusUC campus.CampusUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(campusUC campus.CampusUC) *AuthHandler {
	return &AuthHandler{campusUC: campusUC}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	id, err := h.campusUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, map[string]string{
		"message": "registered successfully",
		"id":      id,
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.campusUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp)
}

// ForgotPassword handles POST /api/forgot-password and
// POST /api/send-reset-otp.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.EmailOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "OTP sent to registered email")
}

// VerifyResetOTP handles POST /api/verify-reset-otp. A valid code
// yields a one-time reset token the reset step must present.
func (h *AuthHandler) VerifyResetOTP(c echo.Context) error {
	var req models.EmailOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	token, err := h.campusUC.VerifyResetOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, map[string]string{
		"message":     "OTP verified",
		"reset_token": token,
	})
}

// ResetPassword handles POST /api/reset-password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.ResetPassword(c.Request().Context(), &req); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "password reset successfully")
}
