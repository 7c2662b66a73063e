package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Wallet holds the protocol defaults for key derivation and
// transaction signing. Every field can be overridden through the
// environment, e.g. WALLET_NETWORK_ID or WALLET_DERIVATION_PATH.
type Wallet struct {
	// NetworkID is the network identifier mixed into post-cutover
	// transaction payloads.
	NetworkID string `split_words:"true" default:"hycon"`
	// DerivationPath is the account-level BIP44 path; the address index
	// is appended as a final non-hardened segment.
	DerivationPath string `split_words:"true" default:"m/44'/1397'/0'/0"`
	// AddressIndex is the default child index for single-account wallets.
	AddressIndex uint32 `split_words:"true" default:"0"`
	// ProtocolCutover is the instant (unix seconds) the transaction
	// serialization schema switched from legacy to network-tagged.
	ProtocolCutover int64 `split_words:"true" default:"1544162400"`
}

// CutoverTime returns the protocol cutover as a time.Time.
func (w Wallet) CutoverTime() time.Time {
	return time.Unix(w.ProtocolCutover, 0).UTC()
}

// DefaultWalletConfigFromEnv returns the wallet defaults merged with
// any WALLET_* environment overrides.
func DefaultWalletConfigFromEnv() Wallet {
	var cfg Wallet
	if err := envconfig.Process("wallet", &cfg); err != nil {
		log.Panic().Err(err).Msg("Failed to parse wallet config from env")
	}
	return cfg
}
