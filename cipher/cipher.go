// Package cipher encrypts wallet payloads under a password: AES-256 in
// CBC mode with PKCS#7 padding, keyed by the BLAKE2b-256 digest of the
// password. The scheme carries no authentication tag, so tampering is
// only detected as far as padding corruption goes.
package cipher

import (
	"crypto/aes"
	cryptocipher "crypto/cipher"
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/hyconio/go-wallet/digest"
)

const ivSize = aes.BlockSize

// ErrDecryptFailure reports a wrong password or a corrupted payload.
// A wrong password is an expected, routine condition; it must never
// surface as anything other than this value.
var ErrDecryptFailure = errors.New("decryption failed: wrong password or corrupted payload")

// Payload is an encrypted byte payload. Both fields are lowercase hex.
type Payload struct {
	IV         string
	Ciphertext string
}

// Encrypt encrypts plaintext under a key derived from password. A
// fresh random IV is drawn from crypto/rand on every call, so two
// encryptions of the same input never produce the same payload.
func Encrypt(password string, plaintext []byte) (*Payload, error) {
	key := digest.HashString(password)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate IV")
	}

	padded := pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cryptocipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return &Payload{
		IV:         hex.EncodeToString(iv),
		Ciphertext: hex.EncodeToString(ciphertext),
	}, nil
}

// Decrypt reverses Encrypt. Every failure mode, malformed hex, wrong
// payload length, bad padding or a wrong password, is recovered
// locally and reported as ErrDecryptFailure.
func Decrypt(password, ivHex, ciphertextHex string) ([]byte, error) {
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != ivSize {
		return nil, ErrDecryptFailure
	}
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrDecryptFailure
	}

	key := digest.HashString(password)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, ErrDecryptFailure
	}

	plaintext := make([]byte, len(ciphertext))
	cryptocipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return unpad(plaintext)
}

// pad appends PKCS#7 padding up to the next block boundary.
func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	padded := make([]byte, len(b)+n)
	copy(padded, b)
	for i := len(b); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// unpad strips PKCS#7 padding, rejecting an inconsistent tail.
func unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, ErrDecryptFailure
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrDecryptFailure
		}
	}
	return b[:len(b)-n], nil
}
