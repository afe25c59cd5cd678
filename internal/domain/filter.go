package domain

import "github.com/google/uuid"

// ListingFilter contains filtering/pagination parameters for listing searches.
// Price bounds are inclusive.
type ListingFilter struct {
	Owner    *uuid.UUID
	MinPrice *uint64
	MaxPrice *uint64
	Limit    int
	Offset   int
}

// InRange reports whether price satisfies both bounds.
func (f ListingFilter) InRange(price uint64) bool {
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	return true
}
