package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/snsce/attendance/internal/pkg/constants"
	"github.com/snsce/attendance/internal/pkg/models"
)

// StoreOTP stores an OTP entry under its (purpose, identifier) key with
// the given TTL, overwriting any live entry for the same key.
func (r *CampusRepo) StoreOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyOTP, otp.Purpose, otp.Identifier)

	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}
	return nil
}

// GetOTP retrieves the live OTP entry for a (purpose, identifier) key.
// Returns (nil, nil) when the entry is absent or has expired.
func (r *CampusRepo) GetOTP(ctx context.Context, purpose models.OTPPurpose, identifier string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyOTP, purpose, identifier)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}
	return &otp, nil
}

// DeleteOTP removes the OTP entry for a (purpose, identifier) key
func (r *CampusRepo) DeleteOTP(ctx context.Context, purpose models.OTPPurpose, identifier string) error {
	key := fmt.Sprintf(constants.KeyOTP, purpose, identifier)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}
	return nil
}

// StoreResetProof stores the one-time proof issued by a successful
// reset-OTP verification.
func (r *CampusRepo) StoreResetProof(ctx context.Context, proof *models.ResetProof, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyResetProof, proof.Email)

	data, err := json.Marshal(proof)
	if err != nil {
		return fmt.Errorf("failed to marshal reset proof: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store reset proof in Redis: %w", err)
	}
	return nil
}

// GetResetProof retrieves the live reset proof for an email.
// Returns (nil, nil) when absent or expired.
func (r *CampusRepo) GetResetProof(ctx context.Context, email string) (*models.ResetProof, error) {
	key := fmt.Sprintf(constants.KeyResetProof, email)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reset proof from Redis: %w", err)
	}

	var proof models.ResetProof
	if err := json.Unmarshal([]byte(val), &proof); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reset proof: %w", err)
	}
	return &proof, nil
}

// DeleteResetProof removes the reset proof for an email
func (r *CampusRepo) DeleteResetProof(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyResetProof, email)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete reset proof from Redis: %w", err)
	}
	return nil
}
