package constants

// Redis key formats
const (
	KeyOTP        = "otp:%s:%s"      // Format: otp:{purpose}:{identifier}
	KeyResetProof = "reset:proof:%s" // Format: reset:proof:{email}
)
