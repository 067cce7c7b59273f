package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecoveryCodes(t *testing.T) {
	codes, err := GenerateRecoveryCodes(5)
	require.NoError(t, err)
	assert.Len(t, codes, 5)

	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		assert.Len(t, code, 6)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}

	codes, err = GenerateRecoveryCodes(0)
	require.NoError(t, err)
	assert.Len(t, codes, DefaultRecoveryCodeCount)
}

func TestVerifyRecoveryCode(t *testing.T) {
	hash := HashRecoveryCode("a1b2c3")

	assert.True(t, VerifyRecoveryCode("a1b2c3", hash))
	assert.False(t, VerifyRecoveryCode("d4e5f6", hash))
	assert.False(t, VerifyRecoveryCode("a1b2c3", "bogus"))
}
