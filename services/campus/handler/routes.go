package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/snsce/attendance/services/campus"
	httphandler "github.com/snsce/attendance/services/campus/handler/http"
)

// Handler aggregates the campus HTTP handlers
type Handler struct {
	auth       *httphandler.AuthHandler
	otp        *httphandler.OTPHandler
	campus     *httphandler.CampusHandler
	attendance *httphandler.AttendanceHandler
}

// NewHandler creates the handler set over a campus usecase
func NewHandler(campusUC campus.CampusUC) *Handler {
	return &Handler{
		auth:       httphandler.NewAuthHandler(campusUC),
		otp:        httphandler.NewOTPHandler(campusUC),
		campus:     httphandler.NewCampusHandler(campusUC),
		attendance: httphandler.NewAttendanceHandler(campusUC),
	}
}

// RegisterRoutes attaches every campus endpoint under /api
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// authentication
	api.POST("/register", h.auth.Register)
	api.POST("/login", h.auth.Login)
	api.POST("/forgot-password", h.auth.ForgotPassword)
	api.POST("/send-reset-otp", h.auth.ForgotPassword)
	api.POST("/verify-reset-otp", h.auth.VerifyResetOTP)
	api.POST("/reset-password", h.auth.ResetPassword)

	// OTP lifecycle
	api.POST("/send-otp", h.otp.SendOTP)
	api.POST("/verify-otp", h.otp.VerifyOTP)
	api.POST("/send-signup-otp", h.otp.SendSignupOTP)
	api.POST("/verify-signup-otp", h.otp.VerifySignupOTP)
	api.POST("/send-mobile-otp", h.otp.SendMobileOTP)
	api.POST("/verify-mobile-otp", h.otp.VerifyMobileOTP)

	// profile and directory
	api.POST("/update-profile", h.campus.UpdateProfile)
	api.POST("/student-data", h.campus.SubmitStudentData)
	api.GET("/get-student-profile/:id", h.campus.GetStudentProfile)
	api.GET("/get-registered-counts", h.campus.GetRegisteredCounts)
	api.GET("/get-registered-members", h.campus.GetRegisteredMembers)
	api.POST("/add-staff", h.campus.AddStaff)
	api.POST("/assign-staff-to-department", h.campus.AssignStaffToDepartment)
	api.POST("/remove-staff-from-department", h.campus.RemoveStaffFromDepartment)

	// attendance
	api.POST("/attendance/mark", h.attendance.MarkAttendance)
	api.GET("/attendance/student/:email", h.attendance.GetStudentAttendance)
	api.GET("/attendance/report", h.attendance.GetAttendanceReport)
}
