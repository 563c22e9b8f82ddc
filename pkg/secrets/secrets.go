package secrets

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
)

const (
	// DefaultSecretSize is the entropy in bytes behind a generated hex secret.
	DefaultSecretSize = 32

	// DefaultTokenSize is the entropy in bytes behind a generated URL-safe token.
	DefaultTokenSize = 16
)

// GenerateSecret returns a hex-encoded secret carrying n bytes of entropy.
// Non-positive n falls back to DefaultSecretSize.
func GenerateSecret(n int) (string, error) {
	data, err := randomBytes(n, DefaultSecretSize)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// GenerateToken returns a padding-free base64url token carrying n bytes of
// entropy, safe for use in URLs and HTTP headers. Non-positive n falls back
// to DefaultTokenSize.
func GenerateToken(n int) (string, error) {
	data, err := randomBytes(n, DefaultTokenSize)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// SecureCompare reports whether two secrets are equal without early exit on
// the first mismatch, so comparison time does not leak where they diverge.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func randomBytes(n, fallback int) ([]byte, error) {
	if n <= 0 {
		n = fallback
	}
	data := make([]byte, n)
	if _, err := rand.Read(data); err != nil {
		return nil, errors.Join(ErrRandomSource, err)
	}
	return data, nil
}
