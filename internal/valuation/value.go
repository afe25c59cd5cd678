// Package valuation converts physical weight and fixed-decimals prices into
// native currency amounts using confidence-adjusted oracle prices.
//
// All intermediate products are 128-bit and checked; nothing wraps silently.
package valuation

import (
	"github.com/gaze-network/uint128"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const (
	// NativeDecimals is the precision of the native currency.
	NativeDecimals = 9
	// NativePerWhole is the number of smallest native units in one whole unit.
	NativePerWhole uint64 = 1_000_000_000
	// Calibration converts the commodity feed's quotation unit into weight units.
	Calibration uint64 = 283
)

// Value returns the native amount of weight units priced by commodity and
// converted through currency. The commodity price is taken at the top of its
// confidence band and the currency price at the bottom.
func Value(commodity, currency domain.Price, weight uint64) (uint64, error) {
	if weight == 0 {
		return 0, domain.ErrInvalidWeight
	}
	if !commodity.Positive() || !currency.Positive() {
		return 0, domain.ErrNegativePrice
	}

	upper, err := add(uint128.From64(uint64(commodity.Value)), uint128.From64(commodity.Conf))
	if err != nil {
		return 0, err
	}
	num, err := mulAll(upper, uint128.From64(weight), uint128.From64(NativePerWhole))
	if err != nil {
		return 0, err
	}

	lower, err := lowerBound(currency)
	if err != nil {
		return 0, err
	}
	den, err := mul(lower, uint128.From64(Calibration))
	if err != nil {
		return 0, err
	}

	diff := int64(commodity.Expo) - int64(currency.Expo)
	if diff > 0 {
		num, err = scale(num, diff)
	} else {
		den, err = scale(den, -diff)
	}
	if err != nil {
		return 0, err
	}

	return quotient(num, den)
}

// ListingPrice converts a listing price expressed with decimals fractional
// digits of the quote currency into native units using the currency feed.
func ListingPrice(price uint64, decimals uint8, currency domain.Price) (uint64, error) {
	if price == 0 {
		return 0, domain.ErrPriceCalculationFail
	}
	if !currency.Positive() {
		return 0, domain.ErrNegativePrice
	}

	num, err := mul(uint128.From64(price), uint128.From64(NativePerWhole))
	if err != nil {
		return 0, err
	}
	den, err := lowerBound(currency)
	if err != nil {
		return 0, err
	}

	diff := -int64(decimals) - int64(currency.Expo)
	if diff >= 0 {
		num, err = scale(num, diff)
	} else {
		den, err = scale(den, -diff)
	}
	if err != nil {
		return 0, err
	}

	return quotient(num, den)
}

// lowerBound returns price − conf. A band that reaches zero cannot be
// divided by; one that crosses it makes the amount negative.
func lowerBound(p domain.Price) (uint128.Uint128, error) {
	v := uint64(p.Value)
	switch {
	case p.Conf == v:
		return uint128.Uint128{}, domain.ErrOverflow
	case p.Conf > v:
		return uint128.Uint128{}, domain.ErrPriceCalculationFail
	}
	return uint128.From64(v - p.Conf), nil
}

func quotient(num, den uint128.Uint128) (uint64, error) {
	if den.IsZero() {
		return 0, domain.ErrOverflow
	}
	q := num.Div(den)
	if q.IsZero() {
		return 0, domain.ErrPriceCalculationFail
	}
	if q.Hi != 0 {
		return 0, domain.ErrOverflow
	}
	return q.Lo, nil
}
