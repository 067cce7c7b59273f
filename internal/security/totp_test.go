package security

import (
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTOTPKey = []byte("0123456789abcdef0123456789abcdef")

func TestGenerateSecretAndCheck(t *testing.T) {
	m := NewTOTPManager(testTOTPKey, "school-backend")

	uri, encrypted, err := m.GenerateSecret("anna@example.com")
	require.NoError(t, err)
	assert.Contains(t, uri, "otpauth://totp/")
	assert.Contains(t, uri, "school-backend")

	key, err := otp.NewKeyFromURL(uri)
	require.NoError(t, err)
	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)

	ok, err := m.Check(code, encrypted)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Check("000000", encrypted)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckRejectsCorruptSecret(t *testing.T) {
	m := NewTOTPManager(testTOTPKey, "school-backend")

	_, err := m.decryptSecret([]byte("short"))
	assert.ErrorIs(t, err, ErrTOTPSecretTooShort)

	_, encrypted, err := m.GenerateSecret("anna@example.com")
	require.NoError(t, err)
	encrypted[len(encrypted)-1] ^= 0xff
	_, err = m.Check("000000", encrypted)
	assert.Error(t, err)
}

func TestSecretsAreEncryptedPerCall(t *testing.T) {
	m := NewTOTPManager(testTOTPKey, "school-backend")

	encrypted, err := m.encryptSecret("JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	again, err := m.encryptSecret("JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	assert.NotEqual(t, encrypted, again)

	secret, err := m.decryptSecret(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", secret)
}
