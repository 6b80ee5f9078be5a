package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

const (
	otpKeyPrefix        = "otp:"
	resetGrantKeyPrefix = "reset-grant:"
)

// IOTPRepository stores short-lived password-reset state keyed by admin email
type IOTPRepository interface {
	StoreOTP(ctx context.Context, email, otp string, ttl time.Duration) error
	ConsumeOTP(ctx context.Context, email string) (string, error)
	GrantReset(ctx context.Context, email string, ttl time.Duration) error
	ConsumeResetGrant(ctx context.Context, email string) error
}

// OTPRepository keeps OTPs and reset grants in redis. Entries expire on
// their own and are consumed exactly once via GETDEL.
type OTPRepository struct {
	client *redis.Client
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(client *redis.Client) *OTPRepository {
	return &OTPRepository{
		client: client,
	}
}

// StoreOTP saves an OTP for an email, replacing any previous one
func (r *OTPRepository) StoreOTP(ctx context.Context, email, otp string, ttl time.Duration) error {
	if err := r.client.Set(ctx, otpKeyPrefix+email, otp, ttl).Err(); err != nil {
		return fmt.Errorf("error storing OTP: %w", err)
	}
	return nil
}

// ConsumeOTP retrieves and deletes the OTP stored for an email. Expired or
// absent entries return ErrOTPInvalid.
func (r *OTPRepository) ConsumeOTP(ctx context.Context, email string) (string, error) {
	otp, err := r.client.GetDel(ctx, otpKeyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrOTPInvalid
		}
		return "", fmt.Errorf("error consuming OTP: %w", err)
	}
	return otp, nil
}

// GrantReset records that the email's OTP was verified, authorizing one
// password reset within the TTL window
func (r *OTPRepository) GrantReset(ctx context.Context, email string, ttl time.Duration) error {
	if err := r.client.Set(ctx, resetGrantKeyPrefix+email, "1", ttl).Err(); err != nil {
		return fmt.Errorf("error storing reset grant: %w", err)
	}
	return nil
}

// ConsumeResetGrant checks and removes the reset authorization for an email
func (r *OTPRepository) ConsumeResetGrant(ctx context.Context, email string) error {
	err := r.client.GetDel(ctx, resetGrantKeyPrefix+email).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrResetNotAllowed
		}
		return fmt.Errorf("error consuming reset grant: %w", err)
	}
	return nil
}
