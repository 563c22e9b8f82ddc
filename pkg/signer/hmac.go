package signer

import (
	"crypto/hmac"
	"hash"
)

// deriveKey normalizes key material by hashing salt and key through the
// unkeyed digest. Handing salt+key straight to HMAC would trigger the
// block-size key handling for long inputs, which not every HMAC
// implementation applies identically; pre-hashing keeps the derived key
// stable across implementations and gives each salt its own key.
func deriveKey(salt, key string, algorithm func() hash.Hash) []byte {
	h := algorithm()
	h.Write([]byte(salt))
	h.Write([]byte(key))
	return h.Sum(nil)
}

// computeMAC returns the raw keyed digest of message under derivedKey.
func computeMAC(derivedKey []byte, message string, algorithm func() hash.Hash) []byte {
	mac := hmac.New(algorithm, derivedKey)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}
