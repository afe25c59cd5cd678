package domain

import "time"

// Price is one oracle observation: Value × 10^Expo with a ±Conf band.
type Price struct {
	Value       int64
	Conf        uint64
	Expo        int32
	PublishTime time.Time
}

// Positive reports whether the observed value is strictly positive.
func (p Price) Positive() bool { return p.Value > 0 }

// Quote pairs the two feeds consumed by valuation.
type Quote struct {
	Commodity Price
	Currency  Price
}
