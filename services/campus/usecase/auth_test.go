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
	"github.com/snsce/attendance/services/campus/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Auth: models.AuthConfig{
			SuperadminEmail:    "principal@snsce.ac.in",
			SuperadminPassword: "supersecret",
			SuperadminName:     "Principal",
			StudentEmailDomain: "@snsce.ac.in",
			TransientOTPTTL:    60,
			ResetOTPTTL:        600,
		},
	}
}

func setupUC(t *testing.T) (*CampusUC, *mocks.MockCampusRepo, *mocks.MockCampusGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockCampusRepo(ctrl)
	gw := mocks.NewMockCampusGW(ctrl)
	uc := NewCampusUC(testConfig(), repo, gw)
	return uc, repo, gw
}

func hashOf(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginSuperadmin(t *testing.T) {
	uc, _, _ := setupUC(t)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "principal@snsce.ac.in",
		Password: "supersecret",
		UserType: "Superadmin",
	})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", resp.ID)
	assert.Equal(t, models.RoleSuperadmin, resp.UserType)
}

func TestLoginSuperadminWrongPassword(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "principal@snsce.ac.in",
		Password: "wrong",
		UserType: "Superadmin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginStudentWrongDomain(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "someone@gmail.com",
		Password: "pass123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDomain)
}

func TestLoginStudentAutoProvisions(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	repo.EXPECT().GetStudentByEmail(ctx, "new@snsce.ac.in").Return(nil, nil)
	repo.EXPECT().CreateStudent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		})
	repo.EXPECT().GetStudentProfileByEmail(ctx, "new@snsce.ac.in").Return(nil, nil)

	resp, err := uc.Login(ctx, &models.LoginRequest{
		Email:    "new@snsce.ac.in",
		Password: "firstpass",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsStudent)
	require.NotNil(t, resp.HasStudentData)
	assert.False(t, *resp.HasStudentData)
}

func TestLoginStudentWrongPassword(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	student := &models.User{
		ID:       uuid.New(),
		Email:    "existing@snsce.ac.in",
		Password: hashOf(t, "correct"),
	}
	repo.EXPECT().GetStudentByEmail(ctx, "existing@snsce.ac.in").Return(student, nil)

	_, err := uc.Login(ctx, &models.LoginRequest{
		Email:    "existing@snsce.ac.in",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginStudentWithProfile(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	student := &models.User{
		ID:       uuid.New(),
		Email:    "existing@snsce.ac.in",
		Name:     "Asha",
		Password: hashOf(t, "correct"),
	}
	repo.EXPECT().GetStudentByEmail(ctx, "existing@snsce.ac.in").Return(student, nil)
	repo.EXPECT().GetStudentProfileByEmail(ctx, "existing@snsce.ac.in").
		Return(&models.StudentProfile{Email: "existing@snsce.ac.in"}, nil)

	resp, err := uc.Login(ctx, &models.LoginRequest{
		Email:    "existing@snsce.ac.in",
		Password: "correct",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.HasStudentData)
	assert.True(t, *resp.HasStudentData)
}

func TestLoginStaff(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	staff := &models.User{
		ID:       uuid.New(),
		Email:    "teacher@snsce.ac.in",
		Name:     "Ravi",
		Role:     models.RoleStaff,
		Password: hashOf(t, "staffpass"),
	}
	repo.EXPECT().GetStaffByEmail(ctx, "teacher@snsce.ac.in").Return(staff, nil)

	resp, err := uc.Login(ctx, &models.LoginRequest{
		Email:    "teacher@snsce.ac.in",
		Password: "staffpass",
		UserType: "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, resp.UserType)
	assert.False(t, resp.IsStudent)
}

func TestLoginStaffRoleMismatch(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	staff := &models.User{
		ID:       uuid.New(),
		Email:    "teacher@snsce.ac.in",
		Role:     models.RoleStaff,
		Password: hashOf(t, "staffpass"),
	}
	repo.EXPECT().GetStaffByEmail(ctx, "teacher@snsce.ac.in").Return(staff, nil)

	_, err := uc.Login(ctx, &models.LoginRequest{
		Email:    "teacher@snsce.ac.in",
		Password: "staffpass",
		UserType: "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownRole(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "x@snsce.ac.in",
		Password: "pass",
		UserType: "root",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestLoginMissingFields(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.Login(context.Background(), &models.LoginRequest{Email: "x@snsce.ac.in"})
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)
}

func TestRegisterStudentWrongDomain(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:         "Someone",
		Email:        "someone@gmail.com",
		MobileNumber: "9876543210",
		Password:     "pass123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDomain)
}

func TestRegisterMissingMobileNumber(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@snsce.ac.in",
		Password: "pass123",
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)
}

func TestRegisterStudent(t *testing.T) {
	uc, repo, gw := setupUC(t)
	ctx := context.Background()

	repo.EXPECT().GetStudentByEmail(ctx, "asha@snsce.ac.in").Return(nil, nil)
	repo.EXPECT().CreateStudent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			assert.NotEqual(t, "pass123", u.Password)
			u.ID = uuid.New()
			return nil
		})
	gw.EXPECT().PublishUserRegistered(ctx, gomock.Any()).Return(nil)

	id, err := uc.Register(ctx, &models.RegisterRequest{
		Name:         "Asha",
		Email:        "asha@snsce.ac.in",
		MobileNumber: "9876543210",
		Password:     "pass123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestRegisterEmailTaken(t *testing.T) {
	uc, repo, _ := setupUC(t)
	ctx := context.Background()

	repo.EXPECT().GetStudentByEmail(ctx, "asha@snsce.ac.in").
		Return(&models.User{Email: "asha@snsce.ac.in"}, nil)

	_, err := uc.Register(ctx, &models.RegisterRequest{
		Name:         "Asha",
		Email:        "asha@snsce.ac.in",
		MobileNumber: "9876543210",
		Password:     "pass123",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestRegisterStaffSucceedsWhenPublishFails(t *testing.T) {
	uc, repo, gw := setupUC(t)
	ctx := context.Background()

	repo.EXPECT().GetStaffByEmail(ctx, "ravi@snsce.ac.in").Return(nil, nil)
	repo.EXPECT().CreateStaff(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		})
	gw.EXPECT().PublishUserRegistered(ctx, gomock.Any()).Return(assert.AnError)

	id, err := uc.Register(ctx, &models.RegisterRequest{
		Name:         "Ravi",
		Email:        "ravi@snsce.ac.in",
		MobileNumber: "9876543210",
		Password:     "pass123",
		UserType:     "staff",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestRegisterSuperadminRejected(t *testing.T) {
	uc, _, _ := setupUC(t)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:         "Evil",
		Email:        "evil@snsce.ac.in",
		MobileNumber: "9876543210",
		Password:     "pass123",
		UserType:     "Superadmin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}
