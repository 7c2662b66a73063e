package signer

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// SignatureSize is the r||s signature length in bytes.
const SignatureSize = 64

// ECDSA produces recoverable signatures over 32 byte digests.
type ECDSA interface {
	// Sign returns the 64 byte r||s signature of hash and the recovery
	// id of the signing key's public key.
	Sign(hash []byte, privateKey []byte) (signature []byte, recovery byte, err error)
}

// Secp256k1 is the production ECDSA implementation: deterministic
// (RFC 6979) low-s signatures over the secp256k1 curve.
type Secp256k1 struct{}

// Sign implements ECDSA.
func (Secp256k1) Sign(hash []byte, privateKey []byte) ([]byte, byte, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, 0, errors.Wrap(err, "invalid private key")
	}

	sig, err := crypto.Sign(hash, key)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to sign digest")
	}
	return sig[:SignatureSize], sig[SignatureSize], nil
}
