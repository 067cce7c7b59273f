package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// DefaultRecoveryCodeCount is how many recovery codes an enrollment issues.
const DefaultRecoveryCodeCount = 10

// GenerateRecoveryCodes returns count random recovery codes as short hex
// strings. Only the hashes should be persisted.
func GenerateRecoveryCodes(count int) ([]string, error) {
	if count <= 0 {
		count = DefaultRecoveryCodeCount
	}
	codes := make([]string, 0, count)
	for i := 0; i < count; i++ {
		code, err := randomHex(3)
		if err != nil {
			return nil, fmt.Errorf("generate recovery code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// HashRecoveryCode returns the hex SHA-256 digest of code.
func HashRecoveryCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// VerifyRecoveryCode reports whether code matches the stored digest.
func VerifyRecoveryCode(code, codeHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashRecoveryCode(code)), []byte(codeHash)) == 1
}
