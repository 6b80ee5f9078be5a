package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in a generated one-time password.
const OTPLength = 6

// GenerateOTP generates a fixed-length numeric one-time password using
// a cryptographically secure random source.
func GenerateOTP() (string, error) {
	const digits = "0123456789"
	result := make([]byte, OTPLength)

	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP: %w", err)
		}
		result[i] = digits[n.Int64()]
	}

	return string(result), nil
}
