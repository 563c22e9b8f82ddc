package signer

import (
	"errors"
	"fmt"
)

var (
	// Construction errors.
	ErrMissingKey      = errors.New("signer: missing secret key")
	ErrUnsafeSeparator = errors.New("signer: unsafe separator")

	// ErrDecode reports a token segment that could not be decoded.
	ErrDecode = errors.New("signer: malformed token segment")

	// Validation failure reasons carried by BadTokenError.
	ErrSeparatorNotFound = errors.New("signer: separator not found in token")
	ErrInvalidStructure  = errors.New("signer: invalid token structure")
	ErrTokenExpired      = errors.New("signer: token has expired")
	ErrSignatureMismatch = errors.New("signer: signatures do not match")
)

// BadTokenError is returned by Validate for every rejected token. Reason is
// one of the package sentinels above; Token carries the offending raw token
// for logging and audit.
type BadTokenError struct {
	Reason error
	Token  string
	cause  error
}

func (e *BadTokenError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%v: %v", e.Reason, e.cause)
	}
	return e.Reason.Error()
}

// Unwrap exposes the reason sentinel, and the decode cause if any, so
// errors.Is works through BadTokenError.
func (e *BadTokenError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Reason, e.cause}
	}
	return []error{e.Reason}
}

func badToken(reason error, token string) *BadTokenError {
	return &BadTokenError{Reason: reason, Token: token}
}
