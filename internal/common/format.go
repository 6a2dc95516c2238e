package common

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	// Display precision for native-unit amounts and fees.
	AmountDisplayDecimals = 6
	// Display precision for fiat-denominated values.
	FiatDisplayDecimals = 2
)

// ParseUnsigned parses a base-10 unsigned integer field as delivered by the
// indexing API. Overflowing 256 bits is a malformed record.
func ParseUnsigned(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, NewValidationError("amount", "not an unsigned decimal integer: "+s)
	}
	return v, nil
}

// FormatUnits scales a raw integer amount down by the given number of token
// decimals and renders it with the requested display precision, rounding half
// away from zero. Scaling happens on exact decimals only; no floats involved.
func FormatUnits(raw *uint256.Int, tokenDecimals int, displayDecimals int32) string {
	d := decimal.NewFromBigInt(raw.ToBig(), -int32(tokenDecimals))
	return d.StringFixed(displayDecimals)
}

// FormatBigUnits is FormatUnits for values already held as *big.Int
// (node balance reads).
func FormatBigUnits(raw *big.Int, tokenDecimals int, displayDecimals int32) string {
	d := decimal.NewFromBigInt(raw, -int32(tokenDecimals))
	return d.StringFixed(displayDecimals)
}

// FiatValue prices a raw integer amount: (raw / 10^tokenDecimals) * price,
// rendered with fiat display precision.
func FiatValue(raw *big.Int, tokenDecimals int, price decimal.Decimal) string {
	amount := decimal.NewFromBigInt(raw, -int32(tokenDecimals))
	return amount.Mul(price).StringFixed(FiatDisplayDecimals)
}
