// Package signer produces compact, URL-safe, self-contained signed tokens.
//
// A token embeds an arbitrary string value, its creation timestamp, and a
// keyed HMAC over both, so it can be handed to an untrusted party and later
// validated without any server-side state. Suitable for email confirmation
// links, password resets, unsubscribe links, and similar short-lived
// artifacts.
//
// Token format: base64url(value) + sep + base64url(timestamp) + sep +
// base64url(signature), where sep defaults to "." and every segment is
// padding-free base64url. The signature binds the plaintext value and
// decimal timestamp, not the encoded segments, so the encoding and byte
// order can change without invalidating previously issued tokens.
//
// The signing key is never used directly: it is first normalized through an
// unkeyed digest of salt and key, giving each purpose (salt) its own derived
// key. Two signers with different keys or salts never accept each other's
// tokens.
//
// # Usage
//
//	import "github.com/sealkit/sealkit/pkg/signer"
//
//	s, err := signer.New("somesupersecretvalue", signer.WithSalt("validate-email"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token := s.Sign(userID)
//
//	value, err := s.Validate(token, signer.WithMaxAge(5*time.Minute))
//	if err != nil {
//	    // token was tampered with, malformed, or expired
//	}
//
// Validate returns *BadTokenError for every rejected token; match the stage
// that rejected it with errors.Is against ErrSeparatorNotFound,
// ErrInvalidStructure, ErrTokenExpired, or ErrSignatureMismatch.
//
// A Signer is immutable after construction and safe for concurrent use.
package signer
