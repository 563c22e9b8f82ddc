package signer

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// defaultSalt distinguishes this signer class from other consumers of
	// the same key when no purpose-specific salt is supplied.
	defaultSalt = "sealkit/pkg/signer.Signer"

	defaultSeparator = "."
	timestampSize    = 8
)

// tokenAlphabet matches any character that can occur in an encoded token
// segment, including base64 padding. A separator containing one of these
// would make the three-part split ambiguous.
var tokenAlphabet = regexp.MustCompile(`[A-Za-z0-9_=-]`)

// Signer signs string values into self-contained tokens and validates them.
// All fields are fixed at construction; the zero value is not usable, use New.
type Signer struct {
	sep        string
	salt       string
	algorithm  func() hash.Hash
	byteOrder  binary.ByteOrder
	derivedKey []byte
}

// Option configures a Signer at construction.
type Option func(*Signer)

// WithSeparator sets the delimiter joining the three token parts. It must be
// non-empty and contain no character from the token alphabet [A-Za-z0-9_=-].
func WithSeparator(sep string) Option {
	return func(s *Signer) { s.sep = sep }
}

// WithSalt sets the purpose string mixed into key derivation. Signers with
// different salts never accept each other's tokens even under the same key.
func WithSalt(salt string) Option {
	return func(s *Signer) {
		if salt != "" {
			s.salt = salt
		}
	}
}

// WithAlgorithm sets the digest used for both key derivation and the HMAC.
// Defaults to sha256.New; pass sha1.New to validate tokens issued by legacy
// SHA-1 signers. Nil constructors are ignored.
func WithAlgorithm(algorithm func() hash.Hash) Option {
	return func(s *Signer) {
		if algorithm != nil {
			s.algorithm = algorithm
		}
	}
}

// WithByteOrder sets the byte order of the embedded timestamp. Defaults to
// binary.BigEndian. Nil orders are ignored.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(s *Signer) {
		if order != nil {
			s.byteOrder = order
		}
	}
}

// New creates an immutable Signer for the given secret key. The derived
// signing key is computed once here; the returned Signer is safe for
// concurrent use.
func New(key string, opts ...Option) (*Signer, error) {
	if key == "" {
		return nil, ErrMissingKey
	}

	s := &Signer{
		sep:       defaultSeparator,
		salt:      defaultSalt,
		algorithm: sha256.New,
		byteOrder: binary.BigEndian,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.sep == "" || tokenAlphabet.MatchString(s.sep) {
		return nil, fmt.Errorf("%w: %q (cannot be empty or contain characters from [A-Za-z0-9_=-])",
			ErrUnsafeSeparator, s.sep)
	}

	s.derivedKey = deriveKey(s.salt, key, s.algorithm)
	return s, nil
}

// signature computes the encoded MAC over the plaintext value and decimal
// timestamp joined by a literal dot. Binding the plaintext rather than the
// encoded segments keeps previously issued signatures valid even if the
// byte order or separator changes.
func (s *Signer) signature(value string, timestamp int64) string {
	message := value + "." + strconv.FormatInt(timestamp, 10)
	return encodeBytes(computeMAC(s.derivedKey, message, s.algorithm))
}

// Sign generates a token embedding value and the current time.
func (s *Signer) Sign(value string) string {
	return s.SignAt(value, time.Now())
}

// SignAt generates a token embedding value and the given creation time.
// Signing is deterministic: identical inputs produce identical tokens.
func (s *Signer) SignAt(value string, issuedAt time.Time) string {
	timestamp := issuedAt.Unix()
	return strings.Join([]string{
		encodeValue(value),
		s.encodeInt(uint64(timestamp)),
		s.signature(value, timestamp),
	}, s.sep)
}

type validateOptions struct {
	maxAge             time.Duration
	timestampValidator TimestampValidator
	signatureValidator SignatureValidator
}

// ValidateOption configures a single Validate call.
type ValidateOption func(*validateOptions)

// WithMaxAge rejects tokens whose timestamp is further than maxAge from the
// current time. Zero or negative values disable the expiry check, which is
// also the default.
func WithMaxAge(maxAge time.Duration) ValidateOption {
	return func(o *validateOptions) { o.maxAge = maxAge }
}

// WithTimestampValidator replaces the expiry predicate, e.g. with a frozen
// clock in tests. Nil validators are ignored.
func WithTimestampValidator(v TimestampValidator) ValidateOption {
	return func(o *validateOptions) {
		if v != nil {
			o.timestampValidator = v
		}
	}
}

// WithSignatureValidator replaces the signature comparison predicate.
// Implementations must be constant-time. Nil validators are ignored.
func WithSignatureValidator(v SignatureValidator) ValidateOption {
	return func(o *validateOptions) {
		if v != nil {
			o.signatureValidator = v
		}
	}
}

// Validate parses the token and returns the originally signed value.
// Checks run in a fixed order: structure, decoding, expiry, signature. An
// expired replay therefore reports expiry rather than forgery, which aids
// diagnostics without weakening the MAC check for altered values.
//
// Every rejection is a *BadTokenError wrapping one of the package sentinels.
func (s *Signer) Validate(token string, opts ...ValidateOption) (string, error) {
	options := validateOptions{
		timestampValidator: DefaultTimestampValidator,
		signatureValidator: DefaultSignatureValidator,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if !strings.Contains(token, s.sep) {
		return "", badToken(ErrSeparatorNotFound, token)
	}
	parts := strings.Split(token, s.sep)
	if len(parts) != 3 {
		return "", badToken(ErrInvalidStructure, token)
	}

	timestamp, err := s.decodeInt(parts[1])
	if err != nil {
		return "", &BadTokenError{Reason: ErrInvalidStructure, Token: token, cause: err}
	}
	value, err := decodeValue(parts[0])
	if err != nil {
		return "", &BadTokenError{Reason: ErrInvalidStructure, Token: token, cause: err}
	}

	issuedAt := time.Unix(int64(timestamp), 0)
	if !options.timestampValidator.ValidTimestamp(issuedAt, options.maxAge) {
		return "", badToken(ErrTokenExpired, token)
	}
	if !options.signatureValidator.Equal(parts[2], s.signature(value, int64(timestamp))) {
		return "", badToken(ErrSignatureMismatch, token)
	}

	return value, nil
}
