package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewCertificateID generates the public credential for an issued certificate:
// 16 lowercase hex characters, independent of the row's database ID.
func NewCertificateID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate certificate id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewResetToken generates an opaque password-reset token.
func NewResetToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
