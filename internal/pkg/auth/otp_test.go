package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP()
	require.NoError(t, err)

	assert.Len(t, otp, OTPLength)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9', "OTP must be numeric, got %q", otp)
	}
}

func TestGenerateOTPVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		seen[otp] = true
	}

	// 20 draws from a million-value space colliding down to one value
	// would mean the generator is broken
	assert.Greater(t, len(seen), 1)
}
