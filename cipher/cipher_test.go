package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyconio/go-wallet/cipher"
)

const (
	goldenPassword   = "open sesame"
	goldenIV         = "000102030405060708090a0b0c0d0e0f"
	goldenCiphertext = "c634bda9c3c9106916f0c94215c7c5a7af6e933c0d387c8919912b9744c124b8dda6d08a033120c1e7c071f755dcdcad"
	goldenPlaintext  = "ring crime symptom enough erupt lady"
)

func TestDecryptGolden(t *testing.T) {
	plaintext, err := cipher.Decrypt(goldenPassword, goldenIV, goldenCiphertext)
	require.NoError(t, err)
	assert.Equal(t, goldenPlaintext, string(plaintext))
}

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("m"),
		[]byte("a mnemonic worth protecting"),
		make([]byte, 16),  // exactly one block, forces a full padding block
		make([]byte, 256), // multiple blocks
		{},
	}

	for _, plaintext := range payloads {
		payload, err := cipher.Encrypt("correct horse battery staple", plaintext)
		require.NoError(t, err)
		assert.Len(t, payload.IV, 32)

		decrypted, err := cipher.Decrypt("correct horse battery staple", payload.IV, payload.Ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestEncryptIsRandomized(t *testing.T) {
	first, err := cipher.Encrypt("pw", []byte("payload"))
	require.NoError(t, err)
	second, err := cipher.Encrypt("pw", []byte("payload"))
	require.NoError(t, err)

	assert.NotEqual(t, first.IV, second.IV)
	assert.NotEqual(t, first.Ciphertext, second.Ciphertext)
}

func TestDecryptWrongPassword(t *testing.T) {
	// with this exact payload a wrong key decrypts to invalid padding
	_, err := cipher.Decrypt("not the password", goldenIV, goldenCiphertext)
	assert.ErrorIs(t, err, cipher.ErrDecryptFailure)
}

func TestDecryptWrongPasswordNeverSilentlyWrong(t *testing.T) {
	payload, err := cipher.Encrypt("right", []byte("the actual secret"))
	require.NoError(t, err)

	// CBC without a MAC cannot always detect a wrong key, but it must
	// either fail or at minimum never hand back the real plaintext
	plaintext, err := cipher.Decrypt("wrong", payload.IV, payload.Ciphertext)
	if err == nil {
		assert.NotEqual(t, []byte("the actual secret"), plaintext)
	} else {
		assert.ErrorIs(t, err, cipher.ErrDecryptFailure)
	}
}

func TestDecryptMalformedInputs(t *testing.T) {
	tests := []struct {
		name       string
		iv         string
		ciphertext string
	}{
		{name: "iv not hex", iv: "zz", ciphertext: goldenCiphertext},
		{name: "iv too short", iv: "0001", ciphertext: goldenCiphertext},
		{name: "ciphertext not hex", iv: goldenIV, ciphertext: "nothex"},
		{name: "ciphertext empty", iv: goldenIV, ciphertext: ""},
		{name: "ciphertext not block aligned", iv: goldenIV, ciphertext: "c634bda9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cipher.Decrypt(goldenPassword, tt.iv, tt.ciphertext)
			assert.ErrorIs(t, err, cipher.ErrDecryptFailure)
		})
	}
}
