package valuation

import (
	"github.com/gaze-network/uint128"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// maxPow10 is the largest n with 10^n < 2^128.
const maxPow10 = 38

func add(a, b uint128.Uint128) (uint128.Uint128, error) {
	s := a.AddWrap(b)
	if s.Cmp(a) < 0 {
		return uint128.Uint128{}, domain.ErrOverflow
	}
	return s, nil
}

func mul(a, b uint128.Uint128) (uint128.Uint128, error) {
	if a.IsZero() || b.IsZero() {
		return uint128.Uint128{}, nil
	}
	p := a.MulWrap(b)
	if p.Div(a).Cmp(b) != 0 {
		return uint128.Uint128{}, domain.ErrOverflow
	}
	return p, nil
}

func mulAll(first uint128.Uint128, rest ...uint128.Uint128) (uint128.Uint128, error) {
	acc := first
	for _, v := range rest {
		var err error
		if acc, err = mul(acc, v); err != nil {
			return uint128.Uint128{}, err
		}
	}
	return acc, nil
}

func pow10(n int64) (uint128.Uint128, error) {
	if n < 0 || n > maxPow10 {
		return uint128.Uint128{}, domain.ErrOverflow
	}
	p := uint128.From64(1)
	ten := uint128.From64(10)
	for range n {
		p = p.MulWrap(ten)
	}
	return p, nil
}

// scale multiplies v by 10^n.
func scale(v uint128.Uint128, n int64) (uint128.Uint128, error) {
	if n == 0 {
		return v, nil
	}
	p, err := pow10(n)
	if err != nil {
		return uint128.Uint128{}, err
	}
	return mul(v, p)
}
