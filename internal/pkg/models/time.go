package models

import (
	"time"
)

// DateLayout is the wire and storage format for attendance dates
const DateLayout = "2006-01-02"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// Today returns the current UTC date in storage format
func Today() string {
	return Now().Format(DateLayout)
}
