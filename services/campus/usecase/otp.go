package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/logger"
	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/internal/utils"
)

// generateOTP produces a 6-digit numeric code from a CSPRNG
func generateOTP() (string, error) {
	max := big.NewInt(900000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (uc *CampusUC) transientTTL() time.Duration {
	return time.Duration(uc.cfg.Auth.TransientOTPTTL) * time.Second
}

func (uc *CampusUC) resetTTL() time.Duration {
	return time.Duration(uc.cfg.Auth.ResetOTPTTL) * time.Second
}

// issueOTP generates, stores and dispatches a code. The entry is rolled
// back if dispatch fails so a stale code can never verify.
func (uc *CampusUC) issueOTP(ctx context.Context, purpose models.OTPPurpose, identifier string, role models.Role, ttl time.Duration,
	send func(ctx context.Context, identifier, code string) error) error {

	code, err := generateOTP()
	if err != nil {
		return err
	}

	now := models.Now()
	otp := &models.OTP{
		Identifier: identifier,
		Purpose:    purpose,
		Code:       code,
		Role:       role,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	if err := uc.campusRepo.StoreOTP(ctx, otp, ttl); err != nil {
		return err
	}

	if err := send(ctx, identifier, code); err != nil {
		if delErr := uc.campusRepo.DeleteOTP(ctx, purpose, identifier); delErr != nil {
			logger.Error("failed to roll back OTP after dispatch failure", logger.Fields{
				"purpose": purpose,
				"error":   delErr.Error(),
			})
		}
		return fmt.Errorf("%w: %v", apperrors.ErrSendFailed, err)
	}

	return nil
}

// verifyOTP consumes a stored code. A mismatched code leaves the entry
// in place for retry; a matching one removes it so it verifies exactly
// once.
func (uc *CampusUC) verifyOTP(ctx context.Context, purpose models.OTPPurpose, identifier, code string) (*models.OTP, error) {
	otp, err := uc.campusRepo.GetOTP(ctx, purpose, identifier)
	if err != nil {
		return nil, err
	}
	if otp == nil {
		return nil, apperrors.ErrOTPExpired
	}
	if otp.Code != code {
		return nil, apperrors.ErrOTPMismatch
	}

	if err := uc.campusRepo.DeleteOTP(ctx, purpose, identifier); err != nil {
		return nil, err
	}
	return otp, nil
}

// SendOTP issues a transient verification code to the channel named by
// req.Type: "email" goes out over email, anything else over SMS.
func (uc *CampusUC) SendOTP(ctx context.Context, req *models.SendOTPRequest) error {
	if req.Type == "email" {
		if req.Email == "" {
			return apperrors.ErrMissingFields
		}
		if !utils.IsValidEmail(req.Email) {
			return apperrors.ErrInvalidDomain
		}
		return uc.issueOTP(ctx, models.OTPPurposeEmail, req.Email, "", uc.transientTTL(), uc.campusGW.SendEmailOTP)
	}

	if req.Phone == "" {
		return apperrors.ErrMissingFields
	}
	return uc.SendMobileOTP(ctx, req.Phone)
}

// VerifyOTP consumes a transient verification code, dispatching on
// req.Type the same way SendOTP does.
func (uc *CampusUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error {
	if req.OTP == "" {
		return apperrors.ErrMissingFields
	}

	if req.Type == "email" {
		if req.Email == "" {
			return apperrors.ErrMissingFields
		}
		_, err := uc.verifyOTP(ctx, models.OTPPurposeEmail, req.Email, req.OTP)
		return err
	}

	if req.Phone == "" {
		return apperrors.ErrMissingFields
	}
	_, err := uc.verifyOTP(ctx, models.OTPPurposeMobile, req.Phone, req.OTP)
	return err
}

// SendSignupOTP issues a signup code to an address not yet registered
func (uc *CampusUC) SendSignupOTP(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.ErrMissingFields
	}
	if !utils.IsValidEmail(email) {
		return apperrors.ErrInvalidDomain
	}

	student, err := uc.campusRepo.GetStudentByEmail(ctx, email)
	if err != nil {
		return err
	}
	if student != nil {
		return apperrors.ErrEmailTaken
	}
	staff, err := uc.campusRepo.GetStaffByEmail(ctx, email)
	if err != nil {
		return err
	}
	if staff != nil {
		return apperrors.ErrEmailTaken
	}

	return uc.issueOTP(ctx, models.OTPPurposeSignup, email, "", uc.resetTTL(), uc.campusGW.SendEmailOTP)
}

// VerifySignupOTP consumes a signup code
func (uc *CampusUC) VerifySignupOTP(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return apperrors.ErrMissingFields
	}
	_, err := uc.verifyOTP(ctx, models.OTPPurposeSignup, email, code)
	return err
}

// ForgotPassword issues a reset code to a registered address. The
// stored entry remembers which collection the address belongs to.
func (uc *CampusUC) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.ErrMissingFields
	}

	role, err := uc.lookupRole(ctx, email)
	if err != nil {
		return err
	}

	return uc.issueOTP(ctx, models.OTPPurposeReset, email, role, uc.resetTTL(), uc.campusGW.SendEmailOTP)
}

// lookupRole finds which collection holds the given email, students
// first.
func (uc *CampusUC) lookupRole(ctx context.Context, email string) (models.Role, error) {
	student, err := uc.campusRepo.GetStudentByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if student != nil {
		return models.RoleStudent, nil
	}

	staff, err := uc.campusRepo.GetStaffByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if staff != nil {
		return staff.Role, nil
	}

	return "", apperrors.ErrEmailNotRegistered
}

// VerifyResetOTP consumes a reset code and hands back a one-time proof
// token the reset step must present.
func (uc *CampusUC) VerifyResetOTP(ctx context.Context, email, code string) (string, error) {
	if email == "" || code == "" {
		return "", apperrors.ErrMissingFields
	}

	otp, err := uc.verifyOTP(ctx, models.OTPPurposeReset, email, code)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateRandomHex(32)
	if err != nil {
		return "", err
	}

	proof := &models.ResetProof{
		Email:     email,
		Token:     token,
		Role:      otp.Role,
		ExpiresAt: models.Now().Add(uc.resetTTL()),
	}
	if err := uc.campusRepo.StoreResetProof(ctx, proof, uc.resetTTL()); err != nil {
		return "", err
	}

	return token, nil
}

// SendMobileOTP issues a transient verification code over SMS
func (uc *CampusUC) SendMobileOTP(ctx context.Context, mobileNumber string) error {
	if mobileNumber == "" {
		return apperrors.ErrMissingFields
	}
	if !utils.IsValidPhoneNumber(mobileNumber) {
		return apperrors.ErrInvalidMobileNumber
	}

	return uc.issueOTP(ctx, models.OTPPurposeMobile, mobileNumber, "", uc.transientTTL(), uc.campusGW.SendSMSOTP)
}

// VerifyMobileOTP consumes a mobile verification code
func (uc *CampusUC) VerifyMobileOTP(ctx context.Context, req *models.VerifyMobileOTPRequest) error {
	if req.MobileNumber == "" || req.OTP == "" {
		return apperrors.ErrMissingFields
	}
	_, err := uc.verifyOTP(ctx, models.OTPPurposeMobile, req.MobileNumber, req.OTP)
	return err
}

// ResetPassword replaces a credential. The caller must present the
// proof token issued by VerifyResetOTP; the proof is consumed either
// way the update goes.
func (uc *CampusUC) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if req.Email == "" || req.ResetToken == "" || req.NewPassword == "" {
		return apperrors.ErrMissingFields
	}

	proof, err := uc.campusRepo.GetResetProof(ctx, req.Email)
	if err != nil {
		return err
	}
	if proof == nil || proof.Token != req.ResetToken {
		return apperrors.ErrResetProofInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if proof.Role == models.RoleStudent {
		err = uc.campusRepo.UpdateStudentPassword(ctx, req.Email, string(hash))
	} else {
		err = uc.campusRepo.UpdateStaffPassword(ctx, req.Email, string(hash))
	}
	if err != nil {
		return err
	}

	if err := uc.campusRepo.DeleteResetProof(ctx, req.Email); err != nil {
		logger.Warn("failed to consume reset proof", logger.Fields{
			"email": utils.MaskEmail(req.Email),
			"error": err.Error(),
		})
	}

	return nil
}
