package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// GenerateRandomHex generates a random hex string of the specified length
func GenerateRandomHex(length int) (string, error) {
	bytes := make([]byte, length/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhoneNumber checks if a string is a plausible phone number
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// MaskEmail masks the local part of an email address for logging
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	if len(localPart) <= 2 {
		return localPart + "@" + parts[1]
	}
	return localPart[:2] + strings.Repeat("*", len(localPart)-2) + "@" + parts[1]
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}
	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
