package signer

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyconio/go-wallet/address"
)

func mustAddress(t *testing.T, s string) address.Address {
	t.Helper()
	addr, err := address.FromString(s)
	require.NoError(t, err)
	return addr
}

func TestLegacyEncoder(t *testing.T) {
	tx := &Tx{
		From:   mustAddress(t, "H3N2sCstx81NvvVy3hkrhGsNS43834YWw"),
		To:     mustAddress(t, "H497fHm8gbPZxaXySKpV17a7beYBF9Ut3"),
		Amount: 1,
		Fee:    1,
		Nonce:  1024,
	}

	wire := LegacyEncoder{}.Encode(tx)
	assert.Equal(
		t,
		"0a14a9961e18748b1b76e3ebfaef491cef3ab2d5bb08"+
			"1214e161124d4aa41ca0df6bafecb0408971cff6c096"+
			"1801"+
			"2001"+
			"288008",
		hex.EncodeToString(wire),
	)
	assert.Equal(t, SchemaLegacy, LegacyEncoder{}.Schema())
}

func TestNetworkEncoder(t *testing.T) {
	tx := &Tx{
		From:   mustAddress(t, "H3N2sCstx81NvvVy3hkrhGsNS43834YWw"),
		To:     mustAddress(t, "H497fHm8gbPZxaXySKpV17a7beYBF9Ut3"),
		Amount: 1,
		Fee:    1,
		Nonce:  1024,
	}

	enc := NetworkEncoder{NetworkID: "hycon"}
	legacy := LegacyEncoder{}.Encode(tx)
	wire := enc.Encode(tx)

	// The network form is the legacy form plus a trailing network id.
	assert.Equal(t, legacy, wire[:len(legacy)])
	assert.Equal(t, "52056879636f6e", hex.EncodeToString(wire[len(legacy):]))
	assert.Equal(t, SchemaNetwork, enc.Schema())
}

func TestEncodeOmitsZeroScalars(t *testing.T) {
	tx := &Tx{
		From: mustAddress(t, "H3N2sCstx81NvvVy3hkrhGsNS43834YWw"),
		To:   mustAddress(t, "H497fHm8gbPZxaXySKpV17a7beYBF9Ut3"),
	}

	wire := LegacyEncoder{}.Encode(tx)
	assert.Equal(
		t,
		"0a14a9961e18748b1b76e3ebfaef491cef3ab2d5bb08"+
			"1214e161124d4aa41ca0df6bafecb0408971cff6c096",
		hex.EncodeToString(wire),
	)
}

func TestNetworkEncoderEmptyID(t *testing.T) {
	tx := &Tx{
		From:  mustAddress(t, "H3N2sCstx81NvvVy3hkrhGsNS43834YWw"),
		To:    mustAddress(t, "H497fHm8gbPZxaXySKpV17a7beYBF9Ut3"),
		Nonce: 1,
	}

	assert.Equal(t, LegacyEncoder{}.Encode(tx), NetworkEncoder{}.Encode(tx))
}
