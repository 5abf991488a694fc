package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	passwordLength   = 8
	usernameSuffixMax = 10000
)

// GeneratePassword returns a random uppercase alphanumeric password of
// fixed length. Disclosed to the caller exactly once at provisioning.
func GeneratePassword() (string, error) {
	var sb strings.Builder
	for i := 0; i < passwordLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		sb.WriteByte(passwordAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// GenerateUsername derives a candidate username from the first name plus
// a random numeric suffix. Callers must check the store for collisions.
func GenerateUsername(firstName string) (string, error) {
	base := strings.ToLower(strings.TrimSpace(firstName))
	if base == "" {
		base = "user"
	}

	n, err := rand.Int(rand.Reader, big.NewInt(usernameSuffixMax))
	if err != nil {
		return "", fmt.Errorf("generate username: %w", err)
	}
	return fmt.Sprintf("%s%04d", base, n.Int64()), nil
}
