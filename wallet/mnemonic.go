package wallet

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

const defaultEntropySize = 128

// NewMnemonicOpts is the struct given to the NewMnemonic method.
type NewMnemonicOpts struct {
	// EntropySize is the entropy length in bits. Zero means 128, which
	// yields a 12 word mnemonic.
	EntropySize int
}

func (o NewMnemonicOpts) validate() error {
	if o.EntropySize == 0 {
		return nil
	}
	if o.EntropySize < 128 || o.EntropySize > 256 || o.EntropySize%32 != 0 {
		return ErrInvalidEntropySize
	}
	return nil
}

// NewMnemonic generates a fresh BIP39 mnemonic from system randomness.
func NewMnemonic(opts NewMnemonicOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	size := opts.EntropySize
	if size == 0 {
		size = defaultEntropySize
	}

	entropy, err := bip39.NewEntropy(size)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode mnemonic")
	}
	return mnemonic, nil
}

// ValidateMnemonic reports whether mnemonic is a well formed BIP39
// word sequence with a correct embedded checksum.
func ValidateMnemonic(mnemonic string) error {
	if mnemonic == "" {
		return ErrNullMnemonic
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}
