package errors

import "errors"

// Sentinel errors for the campus service. Handlers map these onto HTTP
// statuses; lower layers wrap them with context via fmt.Errorf("%w").
var (
	// validation / domain violations (400)
	ErrMissingFields           = errors.New("missing required fields")
	ErrInvalidDomain           = errors.New("please use a valid institutional email address")
	ErrInvalidRole             = errors.New("invalid user type")
	ErrInvalidMobileNumber     = errors.New("invalid mobile number")
	ErrInvalidAttendanceStatus = errors.New("invalid attendance status")
	ErrEmailNotRegistered      = errors.New("email not registered")
	ErrEmailTaken              = errors.New("email already registered")
	ErrDepartmentTaken         = errors.New("department already has a staff member assigned")
	ErrProfileExists           = errors.New("student data already exists")
	ErrUpdateFailed            = errors.New("failed to update profile")

	// OTP lifecycle (400)
	ErrOTPExpired        = errors.New("OTP expired")
	ErrOTPMismatch       = errors.New("invalid OTP")
	ErrResetProofInvalid = errors.New("reset verification required")

	// credentials (401)
	ErrInvalidCredentials = errors.New("invalid credentials")

	// lookups (404)
	ErrNotFound = errors.New("record not found")

	// collaborators (500)
	ErrSendFailed = errors.New("failed to send OTP")
)
