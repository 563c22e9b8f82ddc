package signer

import (
	"time"

	"github.com/sealkit/sealkit/pkg/secrets"
)

// TimestampValidator decides whether a token's creation time is still
// acceptable for the requested maxAge.
type TimestampValidator interface {
	ValidTimestamp(issuedAt time.Time, maxAge time.Duration) bool
}

// TimestampValidatorFunc adapts a plain function to TimestampValidator.
type TimestampValidatorFunc func(issuedAt time.Time, maxAge time.Duration) bool

func (f TimestampValidatorFunc) ValidTimestamp(issuedAt time.Time, maxAge time.Duration) bool {
	return f(issuedAt, maxAge)
}

// SignatureValidator compares the signature carried by a token against the
// recomputed one. Implementations must be constant-time.
type SignatureValidator interface {
	Equal(provided, expected string) bool
}

// SignatureValidatorFunc adapts a plain function to SignatureValidator.
type SignatureValidatorFunc func(provided, expected string) bool

func (f SignatureValidatorFunc) Equal(provided, expected string) bool {
	return f(provided, expected)
}

// DefaultTimestampValidator accepts a token iff the absolute difference
// between now and the token's timestamp is strictly less than maxAge, with
// maxAge <= 0 disabling the check. The absolute difference tolerates clock
// skew between issuing and validating hosts, which also means a token dated
// in the future validates as long as it stays inside the window.
var DefaultTimestampValidator TimestampValidator = TimestampValidatorFunc(
	func(issuedAt time.Time, maxAge time.Duration) bool {
		if maxAge <= 0 {
			return true
		}
		delta := time.Since(issuedAt)
		if delta < 0 {
			delta = -delta
		}
		return delta < maxAge
	})

// DefaultSignatureValidator compares signatures in constant time to prevent
// timing side-channels on signature verification.
var DefaultSignatureValidator SignatureValidator = SignatureValidatorFunc(secrets.SecureCompare)
