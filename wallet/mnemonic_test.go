package wallet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyconio/go-wallet/wallet"
)

func TestNewMnemonic(t *testing.T) {
	mnemonic, err := wallet.NewMnemonic(wallet.NewMnemonicOpts{})
	require.NoError(t, err)

	assert.Len(t, strings.Fields(mnemonic), 12)
	assert.NoError(t, wallet.ValidateMnemonic(mnemonic))
}

func TestNewMnemonicEntropySizes(t *testing.T) {
	tests := []struct {
		size  int
		words int
	}{
		{size: 128, words: 12},
		{size: 160, words: 15},
		{size: 192, words: 18},
		{size: 224, words: 21},
		{size: 256, words: 24},
	}

	for _, tt := range tests {
		mnemonic, err := wallet.NewMnemonic(wallet.NewMnemonicOpts{EntropySize: tt.size})
		require.NoError(t, err)
		assert.Len(t, strings.Fields(mnemonic), tt.words)
	}
}

func TestNewMnemonicInvalidEntropySize(t *testing.T) {
	for _, size := range []int{1, 96, 130, 288} {
		mnemonic, err := wallet.NewMnemonic(wallet.NewMnemonicOpts{EntropySize: size})
		assert.Empty(t, mnemonic)
		assert.ErrorIs(t, err, wallet.ErrInvalidEntropySize)
	}
}

func TestNewMnemonicIsRandom(t *testing.T) {
	first, err := wallet.NewMnemonic(wallet.NewMnemonicOpts{})
	require.NoError(t, err)
	second, err := wallet.NewMnemonic(wallet.NewMnemonicOpts{})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateMnemonic(t *testing.T) {
	assert.ErrorIs(t, wallet.ValidateMnemonic(""), wallet.ErrNullMnemonic)
	assert.ErrorIs(
		t,
		wallet.ValidateMnemonic("definitely not twelve valid words"),
		wallet.ErrInvalidMnemonic,
	)
}
