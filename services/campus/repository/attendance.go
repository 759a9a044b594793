package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/snsce/attendance/internal/pkg/models"
)

// UpsertAttendance records a marking for a student on a date. A second
// marking for the same (student, date) overwrites the first.
func (r *CampusRepo) UpsertAttendance(ctx context.Context, attendance *models.Attendance) error {
	attendance.ID = uuid.New()
	attendance.CreatedAt = models.Now()

	query := `
		INSERT INTO attendance (id, student_email, date, status, marked_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (student_email, date)
		DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by
	`
	_, err := r.db.ExecContext(ctx, query,
		attendance.ID, attendance.StudentEmail, attendance.Date,
		attendance.Status, attendance.MarkedBy, attendance.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}

// ListAttendanceByStudent returns a student's markings, newest first
func (r *CampusRepo) ListAttendanceByStudent(ctx context.Context, email string) ([]*models.Attendance, error) {
	query := `
		SELECT id, student_email, date, status, marked_by, created_at
		FROM attendance
		WHERE student_email = $1
		ORDER BY date DESC
	`

	var records []*models.Attendance
	if err := r.db.SelectContext(ctx, &records, query, email); err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// GetAttendanceByDate aggregates one day's markings per department.
// Students without a submitted profile fall into an empty department
// bucket.
func (r *CampusRepo) GetAttendanceByDate(ctx context.Context, date string) ([]*models.DepartmentAttendance, error) {
	query := `
		SELECT COALESCE(p.department, '') AS department,
			COUNT(*) FILTER (WHERE a.status = 'present') AS present,
			COUNT(*) FILTER (WHERE a.status = 'absent') AS absent,
			COUNT(*) FILTER (WHERE a.status = 'late') AS late
		FROM attendance a
		LEFT JOIN student_profiles p ON p.email = a.student_email
		WHERE a.date = $1
		GROUP BY COALESCE(p.department, '')
		ORDER BY department
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attendance: %w", err)
	}
	defer rows.Close()

	var departments []*models.DepartmentAttendance
	for rows.Next() {
		var dept models.DepartmentAttendance
		if err := rows.Scan(&dept.Department, &dept.Present, &dept.Absent, &dept.Late); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		departments = append(departments, &dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return departments, nil
}
