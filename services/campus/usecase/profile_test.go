package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/models"
)

func TestUpdateProfileStudent(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	id := uuid.New().String()

	repo.EXPECT().UpdateStudentField(ctx, id, "name", "New Name").Return(true, nil)

	err := uc.UpdateProfile(ctx, &models.UpdateProfileRequest{UserID: id, Field: "name", Value: "New Name"})
	require.NoError(t, err)
}

func TestUpdateProfileFallsBackToStaff(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	id := uuid.New().String()

	repo.EXPECT().UpdateStudentField(ctx, id, "mobile_number", "9876543210").Return(false, nil)
	repo.EXPECT().UpdateStaffField(ctx, id, "mobile_number", "9876543210").Return(true, nil)

	err := uc.UpdateProfile(ctx, &models.UpdateProfileRequest{UserID: id, Field: "mobile_number", Value: "9876543210"})
	require.NoError(t, err)
}

func TestUpdateProfileNoMatch(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	id := uuid.New().String()

	repo.EXPECT().UpdateStudentField(ctx, id, "name", "X").Return(false, nil)
	repo.EXPECT().UpdateStaffField(ctx, id, "name", "X").Return(false, nil)

	err := uc.UpdateProfile(ctx, &models.UpdateProfileRequest{UserID: id, Field: "name", Value: "X"})
	assert.ErrorIs(t, err, apperrors.ErrUpdateFailed)
}

func TestUpdateProfileRejectsUnknownField(t *testing.T) {
	uc, _, _ := setupUC(t)

	err := uc.UpdateProfile(context.Background(), &models.UpdateProfileRequest{
		UserID: uuid.New().String(), Field: "role", Value: "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrUpdateFailed)
}

func TestUpdateProfileHashesPassword(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	id := uuid.New().String()

	repo.EXPECT().UpdateStudentField(ctx, id, "password", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _, value string) (bool, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(value), []byte("newpass")))
			return true, nil
		})

	err := uc.UpdateProfile(ctx, &models.UpdateProfileRequest{UserID: id, Field: "password", Value: "newpass"})
	require.NoError(t, err)
}

func TestSubmitStudentDataOnce(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	profile := &models.StudentProfile{Email: "a@snsce.ac.in", Name: "Asha", Department: "CSE"}
	repo.EXPECT().GetStudentProfileByEmail(ctx, "a@snsce.ac.in").Return(nil, nil)
	repo.EXPECT().CreateStudentProfile(ctx, profile).Return(nil)

	require.NoError(t, uc.SubmitStudentData(ctx, profile))
}

func TestSubmitStudentDataTwiceFails(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	profile := &models.StudentProfile{Email: "a@snsce.ac.in", Name: "Asha"}
	repo.EXPECT().GetStudentProfileByEmail(ctx, "a@snsce.ac.in").Return(profile, nil)

	err := uc.SubmitStudentData(ctx, profile)
	assert.ErrorIs(t, err, apperrors.ErrProfileExists)
}

func TestSubmitStudentDataWrongDomain(t *testing.T) {
	uc, _, _ := setupUC(t)

	err := uc.SubmitStudentData(context.Background(), &models.StudentProfile{
		Email: "a@gmail.com", Name: "Asha",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDomain)
}

func TestGetStudentProfileMerges(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	id := uuid.New()

	student := &models.User{ID: id, Email: "a@snsce.ac.in", Name: "Asha"}
	profile := &models.StudentProfile{
		Email:      "a@snsce.ac.in",
		Name:       "Ignored",
		Department: "CSE",
	}
	repo.EXPECT().GetStudentByID(ctx, id.String()).Return(student, nil)
	repo.EXPECT().GetStudentProfileByEmail(ctx, "a@snsce.ac.in").Return(profile, nil)

	record, err := uc.GetStudentProfile(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, "Asha", record.Name)
	assert.Equal(t, "CSE", record.Department)
}

func TestGetStudentProfileNotFound(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()
	id := uuid.New().String()

	repo.EXPECT().GetStudentByID(ctx, id).Return(nil, apperrors.ErrNotFound)

	_, err := uc.GetStudentProfile(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetRegisteredCounts(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	repo.EXPECT().CountStudents(ctx).Return(120, nil)
	repo.EXPECT().CountStaff(ctx).Return(14, nil)

	counts, err := uc.GetRegisteredCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, counts.StudentCount)
	assert.Equal(t, 14, counts.StaffCount)
}

func TestAddStaffDefaultsToStaffRole(t *testing.T) {
	uc, repo, gw := setupUC(t)
	ctx := context.Background()

	repo.EXPECT().GetStaffByEmail(ctx, "ravi@snsce.ac.in").Return(nil, nil)
	repo.EXPECT().CreateStaff(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			assert.Equal(t, models.RoleStaff, u.Role)
			u.ID = uuid.New()
			return nil
		})
	gw.EXPECT().PublishUserRegistered(ctx, gomock.Any()).Return(nil)

	id, err := uc.AddStaff(ctx, &models.RegisterRequest{
		Name:         "Ravi",
		Email:        "ravi@snsce.ac.in",
		MobileNumber: "9876543210",
		Password:     "pass123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestAddStaffRejectsStudentRole(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.AddStaff(context.Background(), &models.RegisterRequest{
		Name:     "X",
		Email:    "x@snsce.ac.in",
		Password: "pass123",
		UserType: "user",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestAssignStaffToDepartment(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	staff := &models.User{Email: "ravi@snsce.ac.in", Role: models.RoleStaff}
	repo.EXPECT().GetStaffByEmail(ctx, "ravi@snsce.ac.in").Return(staff, nil)
	repo.EXPECT().GetStaffByDepartment(ctx, "CSE").Return(nil, nil)
	repo.EXPECT().SetStaffDepartment(ctx, "ravi@snsce.ac.in", gomock.Any()).Return(nil)

	require.NoError(t, uc.AssignStaffToDepartment(ctx, "ravi@snsce.ac.in", "CSE"))
}

func TestAssignStaffToDepartmentTaken(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	staff := &models.User{Email: "ravi@snsce.ac.in", Role: models.RoleStaff}
	holder := &models.User{Email: "other@snsce.ac.in", Role: models.RoleStaff, Department: "CSE"}
	repo.EXPECT().GetStaffByEmail(ctx, "ravi@snsce.ac.in").Return(staff, nil)
	repo.EXPECT().GetStaffByDepartment(ctx, "CSE").Return(holder, nil)

	err := uc.AssignStaffToDepartment(ctx, "ravi@snsce.ac.in", "CSE")
	assert.ErrorIs(t, err, apperrors.ErrDepartmentTaken)
}

func TestAssignStaffToDepartmentIdempotent(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	staff := &models.User{Email: "ravi@snsce.ac.in", Role: models.RoleStaff, Department: "CSE"}
	repo.EXPECT().GetStaffByEmail(ctx, "ravi@snsce.ac.in").Return(staff, nil)
	repo.EXPECT().GetStaffByDepartment(ctx, "CSE").Return(staff, nil)
	repo.EXPECT().SetStaffDepartment(ctx, "ravi@snsce.ac.in", gomock.Any()).Return(nil)

	require.NoError(t, uc.AssignStaffToDepartment(ctx, "ravi@snsce.ac.in", "CSE"))
}

func TestRemoveStaffFromDepartment(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	staff := &models.User{Email: "ravi@snsce.ac.in", Role: models.RoleStaff, Department: "CSE"}
	repo.EXPECT().GetStaffByEmail(ctx, "ravi@snsce.ac.in").Return(staff, nil)
	repo.EXPECT().SetStaffDepartment(ctx, "ravi@snsce.ac.in", gomock.Nil()).Return(nil)

	require.NoError(t, uc.RemoveStaffFromDepartment(ctx, "ravi@snsce.ac.in"))
}

func TestRemoveStaffFromDepartmentUnknownStaff(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	repo.EXPECT().GetStaffByEmail(ctx, "nobody@snsce.ac.in").Return(nil, nil)

	err := uc.RemoveStaffFromDepartment(ctx, "nobody@snsce.ac.in")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
