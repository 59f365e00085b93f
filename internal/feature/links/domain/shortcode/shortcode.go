// Package shortcode derives short codes from long URLs.
package shortcode

import (
	"crypto/sha256"
	"encoding/base64"
)

const (
	// DefaultLength is the short-code length used when none is configured.
	DefaultLength = 8

	// MaxLength is the length of an unpadded base64 SHA-256 digest.
	MaxLength = 43
)

// Generator maps a long URL to a fixed-length code.
// The same input always yields the same code; there is no salt and no retry.
type Generator struct {
	length int
}

// NewGenerator returns a Generator producing codes of the given length.
// Lengths outside [1, MaxLength] fall back to DefaultLength.
func NewGenerator(length int) Generator {
	if length <= 0 || length > MaxLength {
		length = DefaultLength
	}
	return Generator{length: length}
}

// Length reports the length of every code the generator produces.
func (g Generator) Length() int {
	return g.length
}

// Generate hashes longURL with SHA-256, encodes the digest with the
// URL-safe base64 alphabet without padding, and keeps the first Length
// characters.
func (g Generator) Generate(longURL string) string {
	sum := sha256.Sum256([]byte(longURL))
	encoded := base64.RawURLEncoding.EncodeToString(sum[:])
	return encoded[:g.length]
}
