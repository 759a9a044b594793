package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus is the recorded state for a student on a given day
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// ParseAttendanceStatus validates a caller-supplied status value
func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	switch AttendanceStatus(s) {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return AttendanceStatus(s), true
	default:
		return "", false
	}
}

// Attendance is one marking for one student on one date. At most one
// row exists per (student, date); re-marking overwrites.
type Attendance struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	StudentEmail string           `json:"student_email" db:"student_email"`
	Date         string           `json:"date" db:"date"`
	Status       AttendanceStatus `json:"status" db:"status"`
	MarkedBy     string           `json:"marked_by" db:"marked_by"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
}

// MarkAttendanceRequest records attendance for a student. Date defaults
// to today when empty.
type MarkAttendanceRequest struct {
	StudentEmail string `json:"student_email"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	MarkedBy     string `json:"marked_by"`
}

// AttendanceSummary counts a student's markings by status
type AttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

// StudentAttendance is a student's full attendance history
type StudentAttendance struct {
	Email   string            `json:"email"`
	Records []*Attendance     `json:"records"`
	Summary AttendanceSummary `json:"summary"`
}

// DepartmentAttendance aggregates one department's markings for a day
type DepartmentAttendance struct {
	Department string `json:"department"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Late       int    `json:"late"`
}

// AttendanceReport is the per-department daily roll-up
type AttendanceReport struct {
	Date        string                  `json:"date"`
	Departments []*DepartmentAttendance `json:"departments"`
}
