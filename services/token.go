package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const confirmationTokenBytes = 32

// GenerateConfirmationToken returns a hex-encoded random token used in
// account confirmation links. Tokens are single use; no uniqueness check is
// performed against existing tokens, 32 bytes of entropy makes a collision
// negligible.
func GenerateConfirmationToken() (string, error) {
	buf := make([]byte, confirmationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate confirmation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
