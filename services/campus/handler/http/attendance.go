package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/internal/utils"
	"github.com/snsce/attendance/services/campus"
)

// AttendanceHandler serves the attendance endpoints
type AttendanceHandler struct {
	campusUC campus.CampusUC
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(campusUC campus.CampusUC) *AttendanceHandler {
	return &AttendanceHandler{campusUC: campusUC}
}

// MarkAttendance handles POST /api/attendance/mark
func (h *AttendanceHandler) MarkAttendance(c echo.Context) error {
	var req models.MarkAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.MarkAttendance(c.Request().Context(), &req); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "attendance marked")
}

// GetStudentAttendance handles GET /api/attendance/student/:email
func (h *AttendanceHandler) GetStudentAttendance(c echo.Context) error {
	email := c.Param("email")

	result, err := h.campusUC.GetStudentAttendance(c.Request().Context(), email)
	if err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, result)
}

// GetAttendanceReport handles GET /api/attendance/report. The date
// query parameter defaults to today.
func (h *AttendanceHandler) GetAttendanceReport(c echo.Context) error {
	date := c.QueryParam("date")

	report, err := h.campusUC.GetAttendanceReport(c.Request().Context(), date)
	if err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, report)
}
