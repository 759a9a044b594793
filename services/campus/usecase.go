package campus

import (
	"context"

	"github.com/snsce/attendance/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/snsce/attendance/services/campus CampusUC

// CampusUC represents the campus usecase interface
type CampusUC interface {
	// authentication flow
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (string, error)

	// OTP lifecycle
	SendOTP(ctx context.Context, req *models.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error
	SendSignupOTP(ctx context.Context, email string) error
	VerifySignupOTP(ctx context.Context, email, code string) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, code string) (string, error)
	SendMobileOTP(ctx context.Context, mobileNumber string) error
	VerifyMobileOTP(ctx context.Context, req *models.VerifyMobileOTPRequest) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error

	// profile and directory
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) error
	SubmitStudentData(ctx context.Context, profile *models.StudentProfile) error
	GetStudentProfile(ctx context.Context, id string) (*models.StudentRecord, error)
	GetRegisteredCounts(ctx context.Context) (*models.RegisteredCounts, error)
	ListStudents(ctx context.Context) ([]*models.StudentRecord, error)
	ListStaff(ctx context.Context) ([]*models.User, error)
	AddStaff(ctx context.Context, req *models.RegisterRequest) (string, error)
	AssignStaffToDepartment(ctx context.Context, email, department string) error
	RemoveStaffFromDepartment(ctx context.Context, email string) error

	// attendance
	MarkAttendance(ctx context.Context, req *models.MarkAttendanceRequest) error
	GetStudentAttendance(ctx context.Context, email string) (*models.StudentAttendance, error)
	GetAttendanceReport(ctx context.Context, date string) (*models.AttendanceReport, error)
}
