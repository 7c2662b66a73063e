// Package amount converts between the protocol's decimal string form
// and its unsigned 64 bit fixed-point representation. One coin is 10^9
// base units.
package amount

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Precision is the number of fractional decimal digits.
const Precision = 9

// unit is the number of base units per whole coin.
const unit = uint64(1_000_000_000)

var (
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be an unsigned decimal with at most 9 fractional digits")
	// ErrAmountOverflow ...
	ErrAmountOverflow = errors.New("amount exceeds the maximum representable value")
)

// ToString formats n as a decimal string, trimming trailing zeros from
// the fractional part.
func ToString(n uint64) string {
	whole, frac := n/unit, n%unit
	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}

	fracStr := strconv.FormatUint(frac, 10)
	fracStr = strings.Repeat("0", Precision-len(fracStr)) + fracStr
	return strconv.FormatUint(whole, 10) + "." + strings.TrimRight(fracStr, "0")
}

// FromString parses a decimal string into base units. The empty string
// parses to zero and a trailing "." reads as ".0". Fractional digits
// beyond the ninth are truncated, not rounded; the signer depends on
// this exact behavior. Overflow is a hard ErrAmountOverflow, never a
// silent wraparound.
func FromString(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if len(fracPart) > Precision {
			fracPart = fracPart[:Precision]
		}
	}

	var whole uint64
	if intPart != "" {
		var err error
		whole, err = strconv.ParseUint(intPart, 10, 64)
		if err != nil {
			if isRange(err) {
				return 0, errors.Wrapf(ErrAmountOverflow, "parsing %q", s)
			}
			return 0, errors.Wrapf(ErrInvalidAmount, "parsing %q", s)
		}
	}
	if whole > math.MaxUint64/unit {
		return 0, errors.Wrapf(ErrAmountOverflow, "parsing %q", s)
	}
	n := whole * unit

	if fracPart != "" {
		frac, err := strconv.ParseUint(fracPart, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidAmount, "parsing %q", s)
		}
		for i := len(fracPart); i < Precision; i++ {
			frac *= 10
		}
		if n > math.MaxUint64-frac {
			return 0, errors.Wrapf(ErrAmountOverflow, "parsing %q", s)
		}
		n += frac
	}
	return n, nil
}

func isRange(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && numErr.Err == strconv.ErrRange
}
