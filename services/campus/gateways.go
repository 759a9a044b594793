package campus

import (
	"context"

	"github.com/snsce/attendance/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/snsce/attendance/services/campus CampusGW

// CampusGW represents the outbound gateway interface: OTP delivery
// channels and fire-and-forget domain events.
type CampusGW interface {
	SendEmailOTP(ctx context.Context, email, code string) error
	SendSMSOTP(ctx context.Context, mobileNumber, code string) error

	PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error
	PublishAttendanceMarked(ctx context.Context, event *models.AttendanceMarkedEvent) error
}
