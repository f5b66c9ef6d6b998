// Package id generates cryptographically random short identifiers used for
// slug disambiguation suffixes and human-readable ticket references.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// lowerAlphabet is used for URL-safe lowercase identifiers such as slug suffixes.
	lowerAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12

	// SlugSuffixLength is the length of the random suffix appended to
	// organization slugs on collision.
	SlugSuffixLength = 6
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	return generateFrom(alphabet, length)
}

// GenerateLower creates a random lowercase alphanumeric ID. Suitable for
// slug suffixes where the result must match [a-z0-9-]+.
func GenerateLower(length int) (string, error) {
	return generateFrom(lowerAlphabet, length)
}

func generateFrom(chars string, length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	charsLen := big.NewInt(int64(len(chars)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, charsLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = chars[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
// Use this only when you're certain the generation won't fail.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// MustGenerateLower creates a random lowercase ID and panics on error.
func MustGenerateLower(length int) string {
	id, err := GenerateLower(length)
	if err != nil {
		panic(err)
	}
	return id
}
