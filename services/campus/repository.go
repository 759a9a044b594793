package campus

import (
	"context"
	"time"

	"github.com/snsce/attendance/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/snsce/attendance/services/campus CampusRepo

// CampusRepo represents the campus repository interface. Lookup methods
// keyed by email return (nil, nil) when no record exists; lookups by ID
// return ErrNotFound.
type CampusRepo interface {
	// students
	GetStudentByEmail(ctx context.Context, email string) (*models.User, error)
	GetStudentByID(ctx context.Context, id string) (*models.User, error)
	CreateStudent(ctx context.Context, user *models.User) error
	UpdateStudentField(ctx context.Context, id, field, value string) (bool, error)
	UpdateStudentPassword(ctx context.Context, email, passwordHash string) error
	CountStudents(ctx context.Context) (int, error)
	ListStudents(ctx context.Context) ([]*models.StudentRecord, error)

	// staff and admins
	GetStaffByEmail(ctx context.Context, email string) (*models.User, error)
	CreateStaff(ctx context.Context, user *models.User) error
	UpdateStaffField(ctx context.Context, id, field, value string) (bool, error)
	UpdateStaffPassword(ctx context.Context, email, passwordHash string) error
	CountStaff(ctx context.Context) (int, error)
	ListStaff(ctx context.Context) ([]*models.User, error)
	GetStaffByDepartment(ctx context.Context, department string) (*models.User, error)
	SetStaffDepartment(ctx context.Context, email string, department *string) error

	// extended student profiles
	GetStudentProfileByEmail(ctx context.Context, email string) (*models.StudentProfile, error)
	CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error

	// OTP entries and reset proofs (Redis, TTL-enforced)
	StoreOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error
	GetOTP(ctx context.Context, purpose models.OTPPurpose, identifier string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, purpose models.OTPPurpose, identifier string) error
	StoreResetProof(ctx context.Context, proof *models.ResetProof, ttl time.Duration) error
	GetResetProof(ctx context.Context, email string) (*models.ResetProof, error)
	DeleteResetProof(ctx context.Context, email string) error

	// attendance
	UpsertAttendance(ctx context.Context, attendance *models.Attendance) error
	ListAttendanceByStudent(ctx context.Context, email string) ([]*models.Attendance, error)
	GetAttendanceByDate(ctx context.Context, date string) ([]*models.DepartmentAttendance, error)
}
