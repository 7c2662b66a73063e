package signer

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/hyconio/go-wallet/address"
	"github.com/hyconio/go-wallet/amount"
	"github.com/hyconio/go-wallet/digest"
	"github.com/hyconio/go-wallet/hdkey"
	"github.com/hyconio/go-wallet/internal/config"
	"github.com/hyconio/go-wallet/internal/util"
)

type service struct {
	hasher  digest.Hasher
	ecdsa   ECDSA
	legacy  Encoder
	network Encoder
	cutover time.Time
}

// NewService returns a transaction signing service configured with the
// protocol defaults in cfg.
//
//nolint:ireturn
func NewService(cfg config.Wallet) (Service, error) {
	log.Info().
		Str("component", "signer").
		Str("network_id", cfg.NetworkID).
		Time("cutover", cfg.CutoverTime()).
		Msg("Initializing signer service")

	return &service{
		hasher:  digest.Blake2b{},
		ecdsa:   Secp256k1{},
		legacy:  LegacyEncoder{},
		network: NetworkEncoder{NetworkID: cfg.NetworkID},
		cutover: cfg.CutoverTime(),
	}, nil
}

func (s *service) SignTx(ctx context.Context, req *SignTxRequest) (*SignTxResponse, error) {
	logger := util.LogFromContext(ctx)

	from, err := address.FromString(req.From)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode sender address")
	}

	privateKey, err := hex.DecodeString(req.PrivateKey)
	if err != nil || len(privateKey) != 32 {
		return nil, ErrInvalidPrivateKey
	}

	resp, err := s.sign(from, privateKey, req.To, req.Amount, req.Fee, req.Nonce, req.AsOf)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("from", req.From).
		Str("to", req.To).
		Uint32("nonce", req.Nonce).
		Str("schema", string(resp.ActiveSchema)).
		Msg("Signed transaction")
	return resp, nil
}

func (s *service) SignTxWithHDKey(ctx context.Context, req *SignTxWithHDKeyRequest) (*SignTxResponse, error) {
	logger := util.LogFromContext(ctx)

	key, err := hdkey.FromString(req.ExtendedKey)
	if err != nil {
		return nil, err
	}

	child, err := hdkey.DeriveChild(key, req.Index)
	if err != nil {
		return nil, err
	}

	from := address.FromPublicKey(child.PublicKey().Key)
	resp, err := s.sign(from, child.Key, req.To, req.Amount, req.Fee, req.Nonce, req.AsOf)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("from", from.String()).
		Str("to", req.To).
		Uint32("index", req.Index).
		Uint32("nonce", req.Nonce).
		Str("schema", string(resp.ActiveSchema)).
		Msg("Signed transaction with derived key")
	return resp, nil
}

// sign builds the canonical record, then signs its digest under both
// schemas. AsOf only selects which schema is reported active; both
// signatures are always produced.
func (s *service) sign(
	from address.Address,
	privateKey []byte,
	to, amountStr, feeStr string,
	nonce uint32,
	asOf time.Time,
) (*SignTxResponse, error) {
	toAddr, err := address.FromString(to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode recipient address")
	}

	amt, err := amount.FromString(amountStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse amount")
	}

	fee, err := amount.FromString(feeStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse fee")
	}

	tx := &Tx{
		From:   from,
		To:     toAddr,
		Amount: amt,
		Fee:    fee,
		Nonce:  nonce,
	}

	legacyHash := s.hasher.Hash(s.legacy.Encode(tx))
	legacySig, legacyRec, err := s.ecdsa.Sign(legacyHash[:], privateKey)
	if err != nil {
		return nil, err
	}

	networkHash := s.hasher.Hash(s.network.Encode(tx))
	networkSig, networkRec, err := s.ecdsa.Sign(networkHash[:], privateKey)
	if err != nil {
		return nil, err
	}

	active := SchemaNetwork
	if asOf.Before(s.cutover) {
		active = SchemaLegacy
	}

	return &SignTxResponse{
		Signature:    hex.EncodeToString(legacySig),
		Recovery:     legacyRec,
		NewSignature: hex.EncodeToString(networkSig),
		NewRecovery:  networkRec,
		ActiveSchema: active,
	}, nil
}
