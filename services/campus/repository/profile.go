package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/snsce/attendance/internal/pkg/models"
)

// GetStudentProfileByEmail retrieves a student's extended profile.
// Returns (nil, nil) when none has been submitted.
func (r *CampusRepo) GetStudentProfileByEmail(ctx context.Context, email string) (*models.StudentProfile, error) {
	query := `
		SELECT id, email, name, mobile_number, academic_year, department, date_of_birth,
			gender, address, parent_name, parent_mobile_number, blood_group, created_at
		FROM student_profiles
		WHERE email = $1
	`

	var profile models.StudentProfile
	err := r.db.GetContext(ctx, &profile, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student profile: %w", err)
	}

	return &profile, nil
}

// CreateStudentProfile inserts a student's extended profile
func (r *CampusRepo) CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	profile.ID = uuid.New()
	profile.CreatedAt = models.Now()

	query := `
		INSERT INTO student_profiles (id, email, name, mobile_number, academic_year, department,
			date_of_birth, gender, address, parent_name, parent_mobile_number, blood_group, created_at)
		VALUES (:id, :email, :name, :mobile_number, :academic_year, :department,
			:date_of_birth, :gender, :address, :parent_name, :parent_mobile_number, :blood_group, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("failed to insert student profile: %w", err)
	}

	return nil
}
