package signer

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/hyconio/go-wallet/address"
)

// Schema identifies a transaction serialization variant.
type Schema string

const (
	// SchemaLegacy is the pre-cutover wire form without a network id.
	SchemaLegacy Schema = "legacy"
	// SchemaNetwork is the post-cutover wire form carrying a network id.
	SchemaNetwork Schema = "network"
)

// Canonical wire field numbers. These are fixed by the protocol and
// must never be renumbered.
const (
	fieldFrom      = 1
	fieldTo        = 2
	fieldAmount    = 3
	fieldFee       = 4
	fieldNonce     = 5
	fieldNetworkID = 10
)

// Tx is the canonical transaction record that gets serialized and
// hashed for signing.
type Tx struct {
	From   address.Address
	To     address.Address
	Amount uint64 // Base units (10^-9 coins)
	Fee    uint64 // Base units
	Nonce  uint32
}

// Encoder serializes the canonical record under one schema.
type Encoder interface {
	Schema() Schema
	Encode(tx *Tx) []byte
}

// LegacyEncoder emits the pre-cutover wire form.
type LegacyEncoder struct{}

// Schema implements Encoder.
func (LegacyEncoder) Schema() Schema { return SchemaLegacy }

// Encode implements Encoder.
func (LegacyEncoder) Encode(tx *Tx) []byte {
	return appendTxFields(nil, tx)
}

// NetworkEncoder emits the post-cutover wire form, which adds the
// network id to the signed payload.
type NetworkEncoder struct {
	NetworkID string
}

// Schema implements Encoder.
func (NetworkEncoder) Schema() Schema { return SchemaNetwork }

// Encode implements Encoder.
func (e NetworkEncoder) Encode(tx *Tx) []byte {
	buf := appendTxFields(nil, tx)
	if e.NetworkID != "" {
		buf = protowire.AppendTag(buf, fieldNetworkID, protowire.BytesType)
		buf = protowire.AppendBytes(buf, []byte(e.NetworkID))
	}
	return buf
}

// appendTxFields writes the protobuf wire form of tx. Zero valued
// scalars are omitted, matching proto3 encoding of the node's schema.
func appendTxFields(buf []byte, tx *Tx) []byte {
	buf = protowire.AppendTag(buf, fieldFrom, protowire.BytesType)
	buf = protowire.AppendBytes(buf, tx.From[:])
	buf = protowire.AppendTag(buf, fieldTo, protowire.BytesType)
	buf = protowire.AppendBytes(buf, tx.To[:])
	if tx.Amount != 0 {
		buf = protowire.AppendTag(buf, fieldAmount, protowire.VarintType)
		buf = protowire.AppendVarint(buf, tx.Amount)
	}
	if tx.Fee != 0 {
		buf = protowire.AppendTag(buf, fieldFee, protowire.VarintType)
		buf = protowire.AppendVarint(buf, tx.Fee)
	}
	if tx.Nonce != 0 {
		buf = protowire.AppendTag(buf, fieldNonce, protowire.VarintType)
		buf = protowire.AppendVarint(buf, uint64(tx.Nonce))
	}
	return buf
}
