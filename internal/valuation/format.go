package valuation

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// FormatNative renders a native amount in whole units, e.g. 1500000000 -> "1.5".
func FormatNative(amount uint64) string {
	return FormatUnits(amount, NativeDecimals)
}

// FormatUnits renders amount with decimals fractional digits.
func FormatUnits(amount uint64, decimals uint8) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals)).String()
}

// ParseUnits parses a positive decimal string into integer units with the
// given precision. "1.25" with 6 decimals is 1250000.
func ParseUnits(s string, decimals uint8) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("amount %q must be positive", s)
	}
	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than %d fractional digits", s, decimals)
	}
	bi := shifted.BigInt()
	if !bi.IsUint64() {
		return 0, domain.ErrOverflow
	}
	return bi.Uint64(), nil
}

// ParseNative parses a whole-unit native amount, e.g. "0.5" -> 500000000.
func ParseNative(s string) (uint64, error) {
	return ParseUnits(s, NativeDecimals)
}

// PriceDecimal returns the observed value of p as a decimal.
func PriceDecimal(p domain.Price) decimal.Decimal {
	return decimal.New(p.Value, p.Expo)
}
