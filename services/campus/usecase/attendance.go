package usecase

import (
	"context"
	"fmt"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/logger"
	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/internal/utils"
)

// MarkAttendance records one student's status for a date. A second
// marking for the same (student, date) overwrites the first. Date
// defaults to today.
func (uc *CampusUC) MarkAttendance(ctx context.Context, req *models.MarkAttendanceRequest) error {
	if req.StudentEmail == "" || req.Status == "" {
		return apperrors.ErrMissingFields
	}

	status, ok := models.ParseAttendanceStatus(req.Status)
	if !ok {
		return fmt.Errorf("status %q: %w", req.Status, apperrors.ErrInvalidAttendanceStatus)
	}

	student, err := uc.campusRepo.GetStudentByEmail(ctx, req.StudentEmail)
	if err != nil {
		return err
	}
	if student == nil {
		return apperrors.ErrEmailNotRegistered
	}

	date := req.Date
	if date == "" {
		date = models.Today()
	}

	attendance := &models.Attendance{
		StudentEmail: req.StudentEmail,
		Date:         date,
		Status:       status,
		MarkedBy:     req.MarkedBy,
	}
	if err := uc.campusRepo.UpsertAttendance(ctx, attendance); err != nil {
		return err
	}

	event := &models.AttendanceMarkedEvent{
		StudentEmail: req.StudentEmail,
		Date:         date,
		Status:       status,
		MarkedBy:     req.MarkedBy,
	}
	if err := uc.campusGW.PublishAttendanceMarked(ctx, event); err != nil {
		logger.Warn("failed to publish attendance marked event", logger.Fields{
			"email": utils.MaskEmail(req.StudentEmail),
			"error": err.Error(),
		})
	}

	return nil
}

// GetStudentAttendance returns a student's full history with a summary
// folded from the records.
func (uc *CampusUC) GetStudentAttendance(ctx context.Context, email string) (*models.StudentAttendance, error) {
	if email == "" {
		return nil, apperrors.ErrMissingFields
	}

	student, err := uc.campusRepo.GetStudentByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf("student %s: %w", email, apperrors.ErrNotFound)
	}

	records, err := uc.campusRepo.ListAttendanceByStudent(ctx, email)
	if err != nil {
		return nil, err
	}

	result := &models.StudentAttendance{
		Email:   email,
		Records: records,
	}
	for _, rec := range records {
		switch rec.Status {
		case models.AttendancePresent:
			result.Summary.Present++
		case models.AttendanceAbsent:
			result.Summary.Absent++
		case models.AttendanceLate:
			result.Summary.Late++
		}
	}

	return result, nil
}

// GetAttendanceReport aggregates one day's markings per department.
// Date defaults to today.
func (uc *CampusUC) GetAttendanceReport(ctx context.Context, date string) (*models.AttendanceReport, error) {
	if date == "" {
		date = models.Today()
	}

	departments, err := uc.campusRepo.GetAttendanceByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &models.AttendanceReport{
		Date:        date,
		Departments: departments,
	}, nil
}
