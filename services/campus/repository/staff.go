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

var staffFields = map[string]bool{
	"name":          true,
	"mobile_number": true,
	"password":      true,
}

// GetStaffByEmail retrieves a staff or admin record by email.
// Returns (nil, nil) when no record exists.
func (r *CampusRepo) GetStaffByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, name, mobile_number, password, role, COALESCE(department, '') AS department,
			created_at, updated_at
		FROM staff
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.MobileNumber,
		&user.Password,
		&user.Role,
		&user.Department,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	return &user, nil
}

// CreateStaff inserts a new staff or admin record
func (r *CampusRepo) CreateStaff(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := models.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO staff (id, email, name, mobile_number, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.MobileNumber, user.Password,
		user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}

	return nil
}

// UpdateStaffField merges a single column on a staff record
func (r *CampusRepo) UpdateStaffField(ctx context.Context, id, field, value string) (bool, error) {
	if !staffFields[field] {
		return false, fmt.Errorf("field %q: %w", field, apperrors.ErrUpdateFailed)
	}

	query := fmt.Sprintf(`
		UPDATE staff SET %s = $1, updated_at = $2 WHERE id = $3
	`, field)

	res, err := r.db.ExecContext(ctx, query, value, models.Now(), id)
	if err != nil {
		return false, fmt.Errorf("failed to update staff: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return rows > 0, nil
}

// UpdateStaffPassword replaces a staff member's credential hash
func (r *CampusRepo) UpdateStaffPassword(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE staff SET password = $1, updated_at = $2 WHERE email = $3`

	res, err := r.db.ExecContext(ctx, query, passwordHash, models.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to update staff password: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("staff %s: %w", email, apperrors.ErrNotFound)
	}
	return nil
}

// CountStaff returns the number of staff and admin records
func (r *CampusRepo) CountStaff(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM staff`); err != nil {
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return count, nil
}

// ListStaff returns all staff and admin records
func (r *CampusRepo) ListStaff(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, email, name, mobile_number, password, role, COALESCE(department, '') AS department,
			created_at, updated_at
		FROM staff
		ORDER BY email
	`

	var users []*models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return users, nil
}

// GetStaffByDepartment retrieves the staff member assigned to a
// department, or (nil, nil) when the department is unassigned.
func (r *CampusRepo) GetStaffByDepartment(ctx context.Context, department string) (*models.User, error) {
	query := `
		SELECT id, email, name, mobile_number, password, role, COALESCE(department, '') AS department,
			created_at, updated_at
		FROM staff
		WHERE department = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, department).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.MobileNumber,
		&user.Password,
		&user.Role,
		&user.Department,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff by department: %w", err)
	}

	return &user, nil
}

// SetStaffDepartment assigns or clears a staff member's department
func (r *CampusRepo) SetStaffDepartment(ctx context.Context, email string, department *string) error {
	query := `UPDATE staff SET department = $1, updated_at = $2 WHERE email = $3`

	res, err := r.db.ExecContext(ctx, query, department, models.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to set staff department: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("staff %s: %w", email, apperrors.ErrNotFound)
	}
	return nil
}
