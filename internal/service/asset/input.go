package asset

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// MintInput describes a new asset.
type MintInput struct {
	Name   string
	Symbol string
	URI    string
	Weight uint64
	// Recipient defaults to the caller.
	Recipient uuid.UUID
}

// Validate checks all fields and collects all errors.
// A zero weight is an economic error, not a field error.
func (i MintInput) Validate() error {
	errs := domain.ValidateMetadataInput("", i.Name, i.Symbol, i.URI)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	if i.Weight == 0 {
		return domain.ErrInvalidWeight
	}
	return nil
}

// Part is one side of a fractionalization.
type Part struct {
	Name   string
	Symbol string
	URI    string
	Weight uint64
}

func (p Part) metadata() domain.Metadata {
	return domain.Metadata{Name: p.Name, Symbol: p.Symbol, URI: p.URI}
}

// FractionalizeInput splits AssetID into A (kept in place) and B (new asset).
type FractionalizeInput struct {
	AssetID uuid.UUID
	A       Part
	B       Part
}

// Validate checks all fields and collects all errors.
func (i FractionalizeInput) Validate() error {
	var errs []domain.FieldError

	if i.AssetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "asset_id", Message: "required"})
	}
	errs = append(errs, domain.ValidateMetadataInput("a.", i.A.Name, i.A.Symbol, i.A.URI)...)
	errs = append(errs, domain.ValidateMetadataInput("b.", i.B.Name, i.B.Symbol, i.B.URI)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMetadataFieldInput changes one base metadata field.
type UpdateMetadataFieldInput struct {
	AssetID uuid.UUID
	Field   domain.MetadataField
	Value   string
}

// Validate checks all fields and collects all errors.
func (i UpdateMetadataFieldInput) Validate() error {
	var errs []domain.FieldError

	if i.AssetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "asset_id", Message: "required"})
	}
	switch i.Field {
	case domain.MetadataFieldName:
		errs = append(errs, domain.ValidateMetadataInput("", i.Value, "", "")...)
	case domain.MetadataFieldSymbol:
		if len(i.Value) > domain.MaxSymbolLen {
			errs = append(errs, domain.FieldError{Field: "value", Message: "max 10 characters"})
		}
	case domain.MetadataFieldURI:
		if len(i.Value) > domain.MaxURILen {
			errs = append(errs, domain.FieldError{Field: "value", Message: "max 200 characters"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "field", Message: "must be one of name, symbol, uri"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateFractions checks that the parts conserve the source weight and
// that neither part is empty.
func validateFractions(weight, a, b uint64) error {
	if a == 0 || b == 0 {
		return domain.ErrInvalidWeight
	}
	sum := a + b
	if sum < a {
		return domain.ErrOverflow
	}
	if sum != weight {
		return domain.ErrInvalidWeight
	}
	return nil
}
