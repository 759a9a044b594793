package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/models"
)

// studentFields are the columns a profile update may touch directly on
// the identity record.
var studentFields = map[string]bool{
	"name":          true,
	"mobile_number": true,
	"password":      true,
}

// GetStudentByEmail retrieves a student identity record by email.
// Returns (nil, nil) when no record exists.
func (r *CampusRepo) GetStudentByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, name, mobile_number, password, created_at, updated_at
		FROM students
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.MobileNumber,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	user.Role = models.RoleStudent
	return &user, nil
}

// GetStudentByID retrieves a student identity record by ID
func (r *CampusRepo) GetStudentByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, name, mobile_number, password, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.MobileNumber,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("student %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	user.Role = models.RoleStudent
	return &user, nil
}

// CreateStudent inserts a new student identity record. Name and mobile
// number may be empty for auto-provisioned stubs.
func (r *CampusRepo) CreateStudent(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := models.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO students (id, email, name, mobile_number, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.MobileNumber, user.Password,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}

	return nil
}

// UpdateStudentField merges a single column on a student record. The
// caller validates the field against the whitelist; unknown fields are
// rejected here as well.
func (r *CampusRepo) UpdateStudentField(ctx context.Context, id, field, value string) (bool, error) {
	if !studentFields[field] {
		return false, fmt.Errorf("field %q: %w", field, apperrors.ErrUpdateFailed)
	}

	query := fmt.Sprintf(`
		UPDATE students SET %s = $1, updated_at = $2 WHERE id = $3
	`, field)

	res, err := r.db.ExecContext(ctx, query, value, models.Now(), id)
	if err != nil {
		return false, fmt.Errorf("failed to update student: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return rows > 0, nil
}

// UpdateStudentPassword replaces a student's credential hash
func (r *CampusRepo) UpdateStudentPassword(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE students SET password = $1, updated_at = $2 WHERE email = $3`

	res, err := r.db.ExecContext(ctx, query, passwordHash, models.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to update student password: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("student %s: %w", email, apperrors.ErrNotFound)
	}
	return nil
}

// CountStudents returns the number of student identity records
func (r *CampusRepo) CountStudents(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM students`); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// ListStudents returns all students joined with their extended profile
// data, mirroring the original collection lookup.
func (r *CampusRepo) ListStudents(ctx context.Context) ([]*models.StudentRecord, error) {
	query := `
		SELECT s.id, s.email,
			CASE WHEN s.name <> '' THEN s.name ELSE COALESCE(p.name, '') END AS name,
			CASE WHEN s.mobile_number <> '' THEN s.mobile_number ELSE COALESCE(p.mobile_number, '') END AS mobile_number,
			COALESCE(p.academic_year, '') AS academic_year,
			COALESCE(p.department, '') AS department,
			COALESCE(p.date_of_birth, '') AS date_of_birth,
			COALESCE(p.gender, '') AS gender,
			COALESCE(p.address, '') AS address,
			COALESCE(p.parent_name, '') AS parent_name,
			COALESCE(p.parent_mobile_number, '') AS parent_mobile_number,
			COALESCE(p.blood_group, '') AS blood_group
		FROM students s
		LEFT JOIN student_profiles p ON p.email = s.email
		ORDER BY s.email
	`

	var records []*models.StudentRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return records, nil
}
