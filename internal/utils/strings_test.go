package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		want  bool
	}{
		{"valid institutional", "a.student@snsce.ac.in", true},
		{"valid gmail", "someone@gmail.com", true},
		{"missing at", "someone.gmail.com", false},
		{"missing tld", "someone@gmail", false},
		{"empty", "", false},
		{"leading dot", ".someone@gmail.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("9876543210"))
	assert.True(t, IsValidPhoneNumber("+919876543210"))
	assert.False(t, IsValidPhoneNumber("123"))
	assert.False(t, IsValidPhoneNumber("not-a-number"))
}

func TestGenerateRandomHex(t *testing.T) {
	token, err := GenerateRandomHex(32)
	assert.NoError(t, err)
	assert.Len(t, token, 32)

	other, err := GenerateRandomHex(32)
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ar*****@snsce.ac.in", MaskEmail("aravind@snsce.ac.in"))
	assert.Equal(t, "ab@snsce.ac.in", MaskEmail("ab@snsce.ac.in"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "******3210", MaskPhoneNumber("9876543210"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
}
