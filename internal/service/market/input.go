package market

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// ListInput offers an asset for sale.
type ListInput struct {
	AssetID uuid.UUID
	Price   uint64
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.AssetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "asset_id", Message: "required"})
	}
	if i.Price == 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePriceInput reprices an open listing.
type UpdatePriceInput struct {
	AssetID uuid.UUID
	Price   uint64
}

// Validate checks all fields and collects all errors.
func (i UpdatePriceInput) Validate() error {
	return ListInput(i).Validate()
}

// BuyInput names the listing and the seller the buyer expects.
type BuyInput struct {
	AssetID uuid.UUID
	Seller  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i BuyInput) Validate() error {
	var errs []domain.FieldError

	if i.AssetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "asset_id", Message: "required"})
	}
	if i.Seller == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "seller", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func normalizeFilter(f domain.ListingFilter) domain.ListingFilter {
	if f.Limit <= 0 || f.Limit > maxPageSize {
		f.Limit = defaultPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
