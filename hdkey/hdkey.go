// Package hdkey derives hierarchical deterministic wallet keys: a
// BIP39 seed from a mnemonic, a BIP32 master key from the seed, and
// child keys by index or by an absolute derivation path.
package hdkey

import (
	"crypto/sha512"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// HardenedOffset is the first hardened child index. Derivation at or
// above it uses the parent private key, below it the public key.
const HardenedOffset = bip32.FirstHardenedChild

// BIP39 key stretching parameters.
const (
	seedIterations = 2048
	seedLength     = 64
)

var (
	// ErrMalformedExtendedKey ...
	ErrMalformedExtendedKey = errors.New("extended key is not a valid base58check serialization")
	// ErrDerivation ...
	ErrDerivation = errors.New("child key derivation failed")
	// ErrInvalidDerivationPath ...
	ErrInvalidDerivationPath = errors.New(`derivation path must look like "m/44'/1397'/0'/0"`)
)

// NewSeed stretches a mnemonic and passphrase into a 64 byte seed.
// Both inputs are NFKD normalized first, per BIP39.
func NewSeed(mnemonic, passphrase string) []byte {
	return pbkdf2.Key(
		[]byte(norm.NFKD.String(mnemonic)),
		[]byte("mnemonic"+norm.NFKD.String(passphrase)),
		seedIterations,
		seedLength,
		sha512.New,
	)
}

// NewMaster derives the master extended private key of a mnemonic.
func NewMaster(mnemonic, passphrase string) (*bip32.Key, error) {
	key, err := bip32.NewMasterKey(NewSeed(mnemonic, passphrase))
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "master key: %v", err)
	}
	return key, nil
}

// FromString parses the standard serialized form of an extended key.
func FromString(serialized string) (*bip32.Key, error) {
	key, err := bip32.B58Deserialize(serialized)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedExtendedKey, "parsing extended key: %v", err)
	}
	return key, nil
}

// DeriveChild derives one child of key. The result is a pure function
// of (key, index).
func DeriveChild(key *bip32.Key, index uint32) (*bip32.Key, error) {
	child, err := key.NewChildKey(index)
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "child %d: %v", index, err)
	}
	return child, nil
}

// DerivePath walks an absolute derivation path down from the master
// key, one child derivation per segment.
func DerivePath(master *bip32.Key, path string) (*bip32.Key, error) {
	indexes, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	key := master
	for _, index := range indexes {
		if key, err = DeriveChild(key, index); err != nil {
			return nil, err
		}
	}
	return key, nil
}
