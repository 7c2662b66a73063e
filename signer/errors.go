package signer

import "github.com/pkg/errors"

// ErrInvalidPrivateKey ...
var ErrInvalidPrivateKey = errors.New("private key must be 32 bytes of hex")
