package signer

import (
	"context"
	"time"
)

// Service signs canonical transactions under both serialization
// schemas in force around the protocol cutover.
type Service interface {
	// SignTx signs a transaction with an explicit private key.
	SignTx(ctx context.Context, req *SignTxRequest) (*SignTxResponse, error)

	// SignTxWithHDKey derives the signing key from an extended key and
	// signs with it. The sender address is computed from the derived
	// public key.
	SignTxWithHDKey(ctx context.Context, req *SignTxWithHDKeyRequest) (*SignTxResponse, error)
}

// SignTxRequest represents a request to sign a transaction.
type SignTxRequest struct {
	From       string    // Checksummed sender address
	To         string    // Checksummed recipient address
	Amount     string    // Amount in coins, up to 9 decimal places
	Fee        string    // Fee in coins, up to 9 decimal places
	Nonce      uint32    // Sender account nonce
	PrivateKey string    // 32 byte secp256k1 private key, hex
	AsOf       time.Time // Protocol reference instant; selects ActiveSchema only
}

// SignTxWithHDKeyRequest signs from a derived child of an extended
// private key instead of a raw key.
type SignTxWithHDKeyRequest struct {
	ExtendedKey string    // Serialized extended private key (xprv...)
	Index       uint32    // Child index to sign with
	To          string    // Checksummed recipient address
	Amount      string    // Amount in coins, up to 9 decimal places
	Fee         string    // Fee in coins, up to 9 decimal places
	Nonce       uint32    // Sender account nonce
	AsOf        time.Time // Protocol reference instant; selects ActiveSchema only
}

// SignTxResponse carries one signature per schema. Both are always
// produced, so callers straddling the cutover can validate against
// either wire form.
type SignTxResponse struct {
	Signature    string // Legacy schema signature, 64 byte r||s hex
	Recovery     uint8  // Legacy schema public key recovery id
	NewSignature string // Network schema signature, 64 byte r||s hex
	NewRecovery  uint8  // Network schema public key recovery id
	ActiveSchema Schema // Schema in force at the request's AsOf instant
}
