// Package wallet turns mnemonics and extended keys into spendable
// accounts: a checksummed address plus the matching private key.
package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/tyler-smith/go-bip32"

	"github.com/hyconio/go-wallet/address"
	"github.com/hyconio/go-wallet/hdkey"
	"github.com/hyconio/go-wallet/internal/config"
)

// Wallet is a single derived account.
type Wallet struct {
	// Address is the checksummed string form of the account address.
	Address string
	// PrivateKey is the account's 32 byte secp256k1 key, hex encoded.
	PrivateKey string
}

// CreateOpts is the struct given to the Create method.
type CreateOpts struct {
	Mnemonic   string
	Passphrase string
	// Path is the account-level derivation path. Empty means the
	// configured default.
	Path string
	// Index is the child index appended to Path as a final
	// non-hardened segment.
	Index uint32
}

func (o CreateOpts) validate() error {
	if o.Mnemonic == "" {
		return ErrNullMnemonic
	}
	return nil
}

// Create derives a single account wallet from a mnemonic. The seed is
// stretched per BIP39 without enforcing the mnemonic checksum; use
// ValidateMnemonic first when the input comes from a user.
func Create(opts CreateOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	master, err := hdkey.NewMaster(opts.Mnemonic, opts.Passphrase)
	if err != nil {
		return nil, err
	}

	path := opts.Path
	if path == "" {
		path = config.DefaultWalletConfigFromEnv().DerivationPath
	}

	key, err := hdkey.DerivePath(master, fmt.Sprintf("%s/%d", path, opts.Index))
	if err != nil {
		return nil, err
	}
	return walletFromKey(key), nil
}

// CreateHDOpts is the struct given to the CreateHD method.
type CreateHDOpts struct {
	Mnemonic   string
	Passphrase string
}

func (o CreateHDOpts) validate() error {
	if o.Mnemonic == "" {
		return ErrNullMnemonic
	}
	return nil
}

// CreateHD derives the serialized master extended private key of a
// mnemonic, for callers that manage child derivation themselves.
func CreateHD(opts CreateHDOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	master, err := hdkey.NewMaster(opts.Mnemonic, opts.Passphrase)
	if err != nil {
		return "", err
	}
	return master.B58Serialize(), nil
}

// FromExtendedKeyOpts is the struct given to the FromExtendedKey method.
type FromExtendedKeyOpts struct {
	ExtendedKey string
	Index       uint32
}

func (o FromExtendedKeyOpts) validate() error {
	if o.ExtendedKey == "" {
		return ErrNullExtendedKey
	}
	return nil
}

// FromExtendedKey derives one child account from a serialized extended
// private key.
func FromExtendedKey(opts FromExtendedKeyOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	key, err := hdkey.FromString(opts.ExtendedKey)
	if err != nil {
		return nil, err
	}
	if !key.IsPrivate {
		return nil, ErrNotPrivateExtendedKey
	}

	child, err := hdkey.DeriveChild(key, opts.Index)
	if err != nil {
		return nil, err
	}
	return walletFromKey(child), nil
}

func walletFromKey(key *bip32.Key) *Wallet {
	return &Wallet{
		Address:    address.FromPublicKey(key.PublicKey().Key).String(),
		PrivateKey: hex.EncodeToString(key.Key),
	}
}
