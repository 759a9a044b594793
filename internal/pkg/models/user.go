package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which identity collection and login flow a request
// targets. The set is closed; unrecognized hints are rejected before
// any storage access.
type Role string

const (
	RoleStudent    Role = "user"
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "Superadmin"
)

// ParseRole maps a caller-supplied role hint to a known role. An empty
// hint defaults to student, matching the original API.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleStaff, RoleAdmin, RoleSuperadmin:
		return Role(s), true
	case "":
		return RoleStudent, true
	default:
		return "", false
	}
}

// User is an identity record for a student, staff member or admin.
// Students live in their own table; staff and admin share one.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	MobileNumber string    `json:"mobile_number" db:"mobile_number"`
	Password     string    `json:"-" db:"password"`
	Role         Role      `json:"user_type" db:"role"`
	Department   string    `json:"department,omitempty" db:"department"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest represents a request to create an identity record
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
	UserType     string `json:"user_type"`
}

// LoginRequest represents a request to authenticate
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

// AuthResponse is the normalized identity payload returned on login.
// HasStudentData is only populated on the student path.
type AuthResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	UserType       Role   `json:"user_type"`
	IsStudent      bool   `json:"is_student"`
	Name           string `json:"name"`
	MobileNumber   string `json:"mobile_number"`
	HasStudentData *bool  `json:"has_student_data,omitempty"`
}

// UpdateProfileRequest updates a single whitelisted field on the
// identity record owning the given ID.
type UpdateProfileRequest struct {
	UserID string `json:"user_id"`
	Field  string `json:"field"`
	Value  string `json:"value"`
}

// RegisteredCounts reports how many identities exist per kind
type RegisteredCounts struct {
	StudentCount int `json:"student_count"`
	StaffCount   int `json:"staff_count"`
}

// DepartmentRequest assigns or removes a staff member's department
type DepartmentRequest struct {
	Email      string `json:"email"`
	Department string `json:"department"`
}
