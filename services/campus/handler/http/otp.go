package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/internal/utils"
	"github.com/snsce/attendance/services/campus"
)

// OTPHandler serves the transient and signup OTP endpoints
type OTPHandler struct {
	campusUC campus.CampusUC
}

// NewOTPHandler creates a new OTP handler
func NewOTPHandler(campusUC campus.CampusUC) *OTPHandler {
	return &OTPHandler{campusUC: campusUC}
}

// SendOTP handles POST /api/send-otp
func (h *OTPHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.SendOTP(c.Request().Context(), &req); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "OTP sent successfully")
}

// VerifyOTP handles POST /api/verify-otp
func (h *OTPHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.VerifyOTP(c.Request().Context(), &req); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "OTP verified")
}

// SendSignupOTP handles POST /api/send-signup-otp
func (h *OTPHandler) SendSignupOTP(c echo.Context) error {
	var req models.EmailOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.SendSignupOTP(c.Request().Context(), req.Email); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "OTP sent successfully")
}

// VerifySignupOTP handles POST /api/verify-signup-otp
func (h *OTPHandler) VerifySignupOTP(c echo.Context) error {
	var req models.EmailOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.VerifySignupOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "OTP verified")
}

// SendMobileOTP handles POST /api/send-mobile-otp
func (h *OTPHandler) SendMobileOTP(c echo.Context) error {
	var req models.MobileOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.SendMobileOTP(c.Request().Context(), req.MobileNumber); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "OTP sent successfully")
}

// VerifyMobileOTP handles POST /api/verify-mobile-otp
func (h *OTPHandler) VerifyMobileOTP(c echo.Context) error {
	var req models.VerifyMobileOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.VerifyMobileOTP(c.Request().Context(), &req); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "OTP verified")
}
