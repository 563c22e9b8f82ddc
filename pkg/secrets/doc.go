// Package secrets provides stateless helpers for generating and comparing
// secret material.
//
// GenerateSecret produces hex-encoded secrets suitable for signing keys,
// GenerateToken produces padding-free base64url tokens safe for URLs and
// HTTP headers, and SecureCompare checks two secrets for equality in
// constant time. All functions draw from crypto/rand and hold no state, so
// they are safe for concurrent use.
//
// # Usage
//
//	import "github.com/sealkit/sealkit/pkg/secrets"
//
//	key, err := secrets.GenerateSecret(0) // 32 bytes of entropy, hex encoded
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !secrets.SecureCompare(provided, expected) {
//	    // reject
//	}
//
// The only failure mode is ErrRandomSource, returned when the system
// entropy source cannot be read.
package secrets
