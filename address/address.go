// Package address implements the checksummed account address codec.
//
// An address is the last 20 bytes of the BLAKE2b-256 digest of the
// account's compressed public key. Its string form is
// "H" + base58(raw) + checksum, where the checksum is the first 4
// characters of base58(BLAKE2b-256(raw)).
package address

import (
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/hyconio/go-wallet/digest"
)

// Size is the raw address length in bytes.
const Size = 20

// Prefix tags every address string.
const Prefix = "H"

const checksumLen = 4

var (
	// ErrInvalidAddressFormat ...
	ErrInvalidAddressFormat = errors.New(`address must be "H" + base58(20 bytes) + 4 character checksum`)
	// ErrChecksumMismatch ...
	ErrChecksumMismatch = errors.New("address checksum does not match its payload")
)

// Address is a raw 20 byte account address.
type Address [Size]byte

// FromPublicKey derives the address of a serialized compressed public
// key. The digest's last 20 bytes form the address; the first 12 are
// discarded.
func FromPublicKey(publicKey []byte) Address {
	sum := digest.Hash(publicKey)

	var addr Address
	copy(addr[:], sum[digest.Size-Size:])
	return addr
}

// FromString decodes and validates a checksummed address string.
func FromString(s string) (Address, error) {
	var addr Address

	if len(s) <= len(Prefix)+checksumLen || !strings.HasPrefix(s, Prefix) {
		return addr, errors.Wrapf(ErrInvalidAddressFormat, "decoding %q", s)
	}
	body := s[len(Prefix) : len(s)-checksumLen]
	check := s[len(s)-checksumLen:]

	raw, err := base58.Decode(body)
	if err != nil {
		return addr, errors.Wrapf(ErrInvalidAddressFormat, "decoding %q: %v", s, err)
	}
	if len(raw) != Size {
		return addr, errors.Wrapf(ErrInvalidAddressFormat, "decoding %q: payload is %d bytes", s, len(raw))
	}
	if Checksum(raw) != check {
		return addr, errors.Wrapf(ErrChecksumMismatch, "decoding %q", s)
	}

	copy(addr[:], raw)
	return addr, nil
}

// Checksum returns the 4 character checksum of raw address bytes.
func Checksum(raw []byte) string {
	sum := digest.Hash(raw)
	return base58.Encode(sum[:])[:checksumLen]
}

// String encodes the address with its prefix and checksum.
func (a Address) String() string {
	return Prefix + base58.Encode(a[:]) + Checksum(a[:])
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	raw := make([]byte, Size)
	copy(raw, a[:])
	return raw
}
