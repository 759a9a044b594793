package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfile is the extended data a student submits after first
// login. It lives apart from the identity record and is keyed by email.
type StudentProfile struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	Email              string    `json:"email" db:"email"`
	Name               string    `json:"name" db:"name"`
	MobileNumber       string    `json:"mobile_number" db:"mobile_number"`
	AcademicYear       string    `json:"academic_year" db:"academic_year"`
	Department         string    `json:"department" db:"department"`
	DateOfBirth        string    `json:"date_of_birth" db:"date_of_birth"`
	Gender             string    `json:"gender" db:"gender"`
	Address            string    `json:"address" db:"address"`
	ParentName         string    `json:"parent_name" db:"parent_name"`
	ParentMobileNumber string    `json:"parent_mobile_number" db:"parent_mobile_number"`
	BloodGroup         string    `json:"blood_group" db:"blood_group"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// StudentRecord is the merged identity + extended-profile view returned
// by profile and directory endpoints.
type StudentRecord struct {
	ID                 string `json:"id" db:"id"`
	Email              string `json:"email" db:"email"`
	Name               string `json:"name" db:"name"`
	MobileNumber       string `json:"mobile_number" db:"mobile_number"`
	AcademicYear       string `json:"academic_year" db:"academic_year"`
	Department         string `json:"department" db:"department"`
	DateOfBirth        string `json:"date_of_birth" db:"date_of_birth"`
	Gender             string `json:"gender" db:"gender"`
	Address            string `json:"address" db:"address"`
	ParentName         string `json:"parent_name" db:"parent_name"`
	ParentMobileNumber string `json:"parent_mobile_number" db:"parent_mobile_number"`
	BloodGroup         string `json:"blood_group" db:"blood_group"`
}

// MergeStudentProfile combines an identity record with its extended
// profile. Identity fields win when set; the profile fills everything
// else. A nil profile yields the identity fields alone.
func MergeStudentProfile(student *User, profile *StudentProfile) *StudentRecord {
	record := &StudentRecord{
		ID:           student.ID.String(),
		Email:        student.Email,
		Name:         student.Name,
		MobileNumber: student.MobileNumber,
	}

	if profile == nil {
		return record
	}

	if record.Name == "" {
		record.Name = profile.Name
	}
	if record.MobileNumber == "" {
		record.MobileNumber = profile.MobileNumber
	}
	record.AcademicYear = profile.AcademicYear
	record.Department = profile.Department
	record.DateOfBirth = profile.DateOfBirth
	record.Gender = profile.Gender
	record.Address = profile.Address
	record.ParentName = profile.ParentName
	record.ParentMobileNumber = profile.ParentMobileNumber
	record.BloodGroup = profile.BloodGroup

	return record
}
