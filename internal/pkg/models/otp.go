package models

import (
	"time"
)

// OTPPurpose tags what a one-time password proves. Transient purposes
// (email, mobile) use the short TTL; signup and reset use the long one.
type OTPPurpose string

const (
	OTPPurposeEmail  OTPPurpose = "email"
	OTPPurposeMobile OTPPurpose = "mobile"
	OTPPurposeSignup OTPPurpose = "signup"
	OTPPurposeReset  OTPPurpose = "reset"
)

// OTP is a stored one-time password bound to an identifier and purpose.
// At most one live entry exists per (purpose, identifier) key; a new
// issue overwrites the previous one.
type OTP struct {
	Identifier string     `json:"identifier"`
	Purpose    OTPPurpose `json:"purpose"`
	Code       string     `json:"code"`
	Role       Role       `json:"role,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

// ResetProof is the one-time token handed out by a successful reset-OTP
// verification and required by the password-reset step.
type ResetProof struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SendOTPRequest issues a transient verification code to an email
// address or phone number, selected by Type ("email" or "mobile").
type SendOTPRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
}

// VerifyOTPRequest consumes a transient verification code
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
	OTP   string `json:"otp"`
}

// EmailOTPRequest carries the email-only OTP operations (signup,
// forgot-password, reset)
type EmailOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// MobileOTPRequest issues a mobile verification code
type MobileOTPRequest struct {
	MobileNumber string `json:"mobile_number"`
}

// VerifyMobileOTPRequest consumes a mobile verification code
type VerifyMobileOTPRequest struct {
	MobileNumber string `json:"mobile_number"`
	OTP          string `json:"otp"`
	Type         string `json:"type"`
}

// ResetPasswordRequest replaces a credential after OTP verification.
// ResetToken must match the proof issued by the verify step.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}
