package models

import (
	"time"
)

// UserRegisteredEvent is published after an identity record is created
type UserRegisteredEvent struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AttendanceMarkedEvent is published after an attendance row is written
type AttendanceMarkedEvent struct {
	StudentEmail string           `json:"student_email"`
	Date         string           `json:"date"`
	Status       AttendanceStatus `json:"status"`
	MarkedBy     string           `json:"marked_by"`
}
