package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrArithmetic    = errors.New("arithmetic error")
	ErrEconomic      = errors.New("economic constraint violated")
	ErrExternalData  = errors.New("external data rejected")
)

// ErrorKind groups registry errors by the class of failure.
type ErrorKind string

const (
	KindAuthorization ErrorKind = "AUTHORIZATION"
	KindState         ErrorKind = "STATE"
	KindArithmetic    ErrorKind = "ARITHMETIC"
	KindEconomic      ErrorKind = "ECONOMIC"
	KindExternalData  ErrorKind = "EXTERNAL_DATA"
)

func (k ErrorKind) String() string { return string(k) }

// sentinel returns the layer-wide sentinel that errors of this kind match.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindAuthorization:
		return ErrForbidden
	case KindState:
		return ErrConflict
	case KindArithmetic:
		return ErrArithmetic
	case KindEconomic:
		return ErrEconomic
	case KindExternalData:
		return ErrExternalData
	}
	return nil
}

// Error is a typed registry failure. errors.Is matches both the specific
// value (e.g. ErrStalePrice) and the sentinel of its kind (e.g. ErrExternalData).
type Error struct {
	Code    string
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Kind.sentinel() }

func newError(kind ErrorKind, code, message string) *Error {
	return &Error{Code: code, Kind: kind, Message: message}
}

// Registry errors.
var (
	ErrSameAuthority              = newError(KindState, "SameAuthority", "new authority equals the current one")
	ErrOnlyAdminAllowed           = newError(KindAuthorization, "OnlyAdminAllowed", "only the registry authority may do this")
	ErrOnlyFutureAuthorityAllowed = newError(KindAuthorization, "OnlyFutureAuthorityAllowed", "only the proposed authority may accept")
	ErrNoFutureAuthority          = newError(KindState, "NoFutureAuthority", "no authority transfer is pending")
	ErrNotOwner                   = newError(KindAuthorization, "NotOwner", "caller is not the owner")

	ErrOverflow             = newError(KindArithmetic, "Overflow", "arithmetic overflow")
	ErrPriceCalculationFail = newError(KindArithmetic, "PriceCalculationFail", "price calculation produced a non-positive amount")

	ErrInsufficientFunds = newError(KindEconomic, "InsufficientFunds", "amount exceeds the withdrawable balance")
	ErrInvalidWeight     = newError(KindEconomic, "InvalidWeight", "invalid weight")

	ErrStalePrice    = newError(KindExternalData, "StalePrice", "oracle price is older than the allowed age")
	ErrNegativePrice = newError(KindExternalData, "NegativePrice", "oracle price is not positive")

	ErrInvalidMetadata          = newError(KindState, "InvalidMetadata", "required metadata key is missing or malformed")
	ErrInvalidCollection        = newError(KindState, "InvalidCollection", "asset does not belong to the registry collection")
	ErrInvalidListing           = newError(KindState, "InvalidListing", "listing does not exist or is already closed")
	ErrInvalidFinalizeData      = newError(KindState, "InvalidFinalizeData", "no pending finalize record")
	ErrMintFinalizeDataMismatch = newError(KindState, "MintFinalizeDataMismatch", "pending record belongs to another asset")
	ErrInvalidTokenAccount      = newError(KindState, "InvalidTokenAccount", "caller does not hold the asset")
	ErrInvalidMintSupply        = newError(KindState, "InvalidMintSupply", "asset supply must be exactly one")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
