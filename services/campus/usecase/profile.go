package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/models"
)

// updatableFields are the identity columns a caller may change directly
var updatableFields = map[string]bool{
	"name":          true,
	"mobile_number": true,
	"password":      true,
}

// UpdateProfile changes a single whitelisted field on whichever
// identity record owns the given ID. Passwords are hashed before they
// reach storage.
func (uc *CampusUC) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) error {
	if req.UserID == "" || req.Field == "" {
		return apperrors.ErrMissingFields
	}
	if !updatableFields[req.Field] {
		return fmt.Errorf("field %q: %w", req.Field, apperrors.ErrUpdateFailed)
	}

	value := req.Value
	if req.Field == "password" {
		hash, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		value = string(hash)
	}

	updated, err := uc.campusRepo.UpdateStudentField(ctx, req.UserID, req.Field, value)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}

	updated, err = uc.campusRepo.UpdateStaffField(ctx, req.UserID, req.Field, value)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.ErrUpdateFailed
	}
	return nil
}

// SubmitStudentData stores a student's extended profile, once
func (uc *CampusUC) SubmitStudentData(ctx context.Context, profile *models.StudentProfile) error {
	if profile.Email == "" || profile.Name == "" {
		return apperrors.ErrMissingFields
	}
	if !strings.HasSuffix(profile.Email, uc.cfg.Auth.StudentEmailDomain) {
		return apperrors.ErrInvalidDomain
	}

	existing, err := uc.campusRepo.GetStudentProfileByEmail(ctx, profile.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrProfileExists
	}

	return uc.campusRepo.CreateStudentProfile(ctx, profile)
}

// GetStudentProfile returns the merged identity + extended-profile view
// for a student ID.
func (uc *CampusUC) GetStudentProfile(ctx context.Context, id string) (*models.StudentRecord, error) {
	if id == "" {
		return nil, apperrors.ErrMissingFields
	}

	student, err := uc.campusRepo.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := uc.campusRepo.GetStudentProfileByEmail(ctx, student.Email)
	if err != nil {
		return nil, err
	}

	return models.MergeStudentProfile(student, profile), nil
}

// GetRegisteredCounts reports how many identities exist per kind
func (uc *CampusUC) GetRegisteredCounts(ctx context.Context) (*models.RegisteredCounts, error) {
	students, err := uc.campusRepo.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	staff, err := uc.campusRepo.CountStaff(ctx)
	if err != nil {
		return nil, err
	}

	return &models.RegisteredCounts{
		StudentCount: students,
		StaffCount:   staff,
	}, nil
}

// ListStudents returns the full student directory with merged profiles
func (uc *CampusUC) ListStudents(ctx context.Context) ([]*models.StudentRecord, error) {
	return uc.campusRepo.ListStudents(ctx)
}

// ListStaff returns all staff and admin records
func (uc *CampusUC) ListStaff(ctx context.Context) ([]*models.User, error) {
	return uc.campusRepo.ListStaff(ctx)
}

// AddStaff registers a staff or admin record on behalf of an admin
func (uc *CampusUC) AddStaff(ctx context.Context, req *models.RegisterRequest) (string, error) {
	if req.UserType == "" {
		req.UserType = string(models.RoleStaff)
	}
	role, ok := models.ParseRole(req.UserType)
	if !ok || (role != models.RoleStaff && role != models.RoleAdmin) {
		return "", fmt.Errorf("user type %q: %w", req.UserType, apperrors.ErrInvalidRole)
	}

	return uc.Register(ctx, req)
}

// AssignStaffToDepartment gives a staff member exclusive charge of a
// department. Assignment fails while another staff member holds it.
func (uc *CampusUC) AssignStaffToDepartment(ctx context.Context, email, department string) error {
	if email == "" || department == "" {
		return apperrors.ErrMissingFields
	}

	staff, err := uc.campusRepo.GetStaffByEmail(ctx, email)
	if err != nil {
		return err
	}
	if staff == nil {
		return fmt.Errorf("staff %s: %w", email, apperrors.ErrNotFound)
	}

	holder, err := uc.campusRepo.GetStaffByDepartment(ctx, department)
	if err != nil {
		return err
	}
	if holder != nil && holder.Email != email {
		return apperrors.ErrDepartmentTaken
	}

	return uc.campusRepo.SetStaffDepartment(ctx, email, &department)
}

// RemoveStaffFromDepartment clears a staff member's department
func (uc *CampusUC) RemoveStaffFromDepartment(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.ErrMissingFields
	}

	staff, err := uc.campusRepo.GetStaffByEmail(ctx, email)
	if err != nil {
		return err
	}
	if staff == nil {
		return fmt.Errorf("staff %s: %w", email, apperrors.ErrNotFound)
	}

	return uc.campusRepo.SetStaffDepartment(ctx, email, nil)
}
