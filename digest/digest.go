// Package digest wraps the 32 byte hash function used across the
// wallet (BLAKE2b-256) behind a small seam so callers can be tested
// against deterministic fakes.
package digest

import "golang.org/x/crypto/blake2b"

// Size is the digest length in bytes.
const Size = 32

// Hasher computes 32 byte digests.
type Hasher interface {
	Hash(data []byte) [Size]byte
}

// Blake2b is the production Hasher.
type Blake2b struct{}

// Hash implements Hasher.
func (Blake2b) Hash(data []byte) [Size]byte {
	return blake2b.Sum256(data)
}

// Hash returns the BLAKE2b-256 digest of data.
func Hash(data []byte) [Size]byte {
	return blake2b.Sum256(data)
}

// HashString returns the BLAKE2b-256 digest of the UTF-8 bytes of s.
func HashString(s string) [Size]byte {
	return blake2b.Sum256([]byte(s))
}
