package gateway

import (
	"context"

	"github.com/snsce/attendance/internal/pkg/constants"
	"github.com/snsce/attendance/internal/pkg/models"
)

// PublishUserRegistered emits a user.registered event. A nil producer
// means event publishing is disabled.
func (gw *CampusGW) PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error {
	if gw.producer == nil {
		return nil
	}
	return gw.producer.Publish(constants.TopicUserRegistered, event)
}

// PublishAttendanceMarked emits an attendance.marked event
func (gw *CampusGW) PublishAttendanceMarked(ctx context.Context, event *models.AttendanceMarkedEvent) error {
	if gw.producer == nil {
		return nil
	}
	return gw.producer.Publish(constants.TopicAttendanceMarked, event)
}
