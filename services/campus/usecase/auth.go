package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/logger"
	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/internal/utils"
)

// Login authenticates a caller against the collection its role hint
// selects. Students are auto-provisioned on first login with a valid
// institutional address; the superadmin is matched against configured
// credentials without touching storage.
func (uc *CampusUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrMissingFields
	}

	role, ok := models.ParseRole(req.UserType)
	if !ok {
		return nil, fmt.Errorf("user type %q: %w", req.UserType, apperrors.ErrInvalidRole)
	}

	switch role {
	case models.RoleSuperadmin:
		return uc.loginSuperadmin(req)
	case models.RoleStudent:
		return uc.loginStudent(ctx, req)
	default:
		return uc.loginStaff(ctx, req, role)
	}
}

// loginSuperadmin checks the configured credentials in constant time.
// Both comparisons always run so timing does not reveal which one
// failed.
func (uc *CampusUC) loginSuperadmin(req *models.LoginRequest) (*models.AuthResponse, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(uc.cfg.Auth.SuperadminEmail))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(uc.cfg.Auth.SuperadminPassword))
	if emailOK&passOK != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &models.AuthResponse{
		ID:       "superadmin",
		Email:    uc.cfg.Auth.SuperadminEmail,
		UserType: models.RoleSuperadmin,
		Name:     uc.cfg.Auth.SuperadminName,
	}, nil
}

func (uc *CampusUC) loginStudent(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if !strings.HasSuffix(req.Email, uc.cfg.Auth.StudentEmailDomain) {
		return nil, apperrors.ErrInvalidDomain
	}

	student, err := uc.campusRepo.GetStudentByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if student == nil {
		student, err = uc.provisionStudent(ctx, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
	} else if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	profile, err := uc.campusRepo.GetStudentProfileByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	hasData := profile != nil

	return &models.AuthResponse{
		ID:             student.ID.String(),
		Email:          student.Email,
		UserType:       models.RoleStudent,
		IsStudent:      true,
		Name:           student.Name,
		MobileNumber:   student.MobileNumber,
		HasStudentData: &hasData,
	}, nil
}

// provisionStudent creates a stub identity record on first login. The
// supplied password becomes the credential.
func (uc *CampusUC) provisionStudent(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.User{
		Email:    email,
		Password: string(hash),
		Role:     models.RoleStudent,
	}
	if err := uc.campusRepo.CreateStudent(ctx, student); err != nil {
		return nil, err
	}

	logger.Info("auto-provisioned student on first login", logger.Fields{
		"email": utils.MaskEmail(email),
	})
	return student, nil
}

func (uc *CampusUC) loginStaff(ctx context.Context, req *models.LoginRequest, role models.Role) (*models.AuthResponse, error) {
	user, err := uc.campusRepo.GetStaffByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != role {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &models.AuthResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		UserType:     user.Role,
		Name:         user.Name,
		MobileNumber: user.MobileNumber,
	}, nil
}

// Register creates an identity record and returns its ID. Students must
// carry the institutional domain; staff and admins may not already
// exist under the same email.
func (uc *CampusUC) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.MobileNumber == "" || req.Password == "" {
		return "", apperrors.ErrMissingFields
	}

	role, ok := models.ParseRole(req.UserType)
	if !ok || role == models.RoleSuperadmin {
		return "", fmt.Errorf("user type %q: %w", req.UserType, apperrors.ErrInvalidRole)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Password:     string(hash),
		Role:         role,
	}

	if role == models.RoleStudent {
		if !strings.HasSuffix(req.Email, uc.cfg.Auth.StudentEmailDomain) {
			return "", apperrors.ErrInvalidDomain
		}
		existing, err := uc.campusRepo.GetStudentByEmail(ctx, req.Email)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return "", apperrors.ErrEmailTaken
		}
		if err := uc.campusRepo.CreateStudent(ctx, user); err != nil {
			return "", err
		}
	} else {
		existing, err := uc.campusRepo.GetStaffByEmail(ctx, req.Email)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return "", apperrors.ErrEmailTaken
		}
		if err := uc.campusRepo.CreateStaff(ctx, user); err != nil {
			return "", err
		}
	}

	event := &models.UserRegisteredEvent{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	if err := uc.campusGW.PublishUserRegistered(ctx, event); err != nil {
		logger.Warn("failed to publish user registered event", logger.Fields{
			"email": utils.MaskEmail(user.Email),
			"error": err.Error(),
		})
	}

	return user.ID.String(), nil
}
