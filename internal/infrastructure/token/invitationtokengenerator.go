package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const tokenRandomBytes = 32

// InvitationTokenGenerator produces hex-encoded random invitation tokens.
type InvitationTokenGenerator struct{}

func NewInvitationTokenGenerator() *InvitationTokenGenerator {
	return &InvitationTokenGenerator{}
}

func (g *InvitationTokenGenerator) Generate() (string, error) {
	randomBytes := make([]byte, tokenRandomBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(randomBytes), nil
}
