package constants

// NSQ topics for domain events
const (
	TopicUserRegistered   = "user.registered"
	TopicAttendanceMarked = "attendance.marked"
)
