package wallet

import "github.com/pkg/errors"

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic must not be null")
	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("mnemonic is not a valid BIP39 word sequence")
	// ErrNullExtendedKey ...
	ErrNullExtendedKey = errors.New("extended key must not be null")
	// ErrNotPrivateExtendedKey ...
	ErrNotPrivateExtendedKey = errors.New("extended key must be a private key")
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = errors.New("entropy size must be a multiple of 32 bits between 128 and 256")
)
