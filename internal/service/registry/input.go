package registry

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// InitInput holds the initial fee rates.
type InitInput struct {
	FractionalizeFee uint32
	SellFee          uint32
}

// Validate checks all fields and collects all errors.
func (i InitInput) Validate() error {
	var errs []domain.FieldError
	limit := uint32(domain.NewFeesCollector(0, 0).Denominator())

	if i.FractionalizeFee > limit {
		errs = append(errs, domain.FieldError{Field: "fractionalize_fee", Message: "must not exceed 100%"})
	}
	if i.SellFee > limit {
		errs = append(errs, domain.FieldError{Field: "sell_fee", Message: "must not exceed 100%"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFeeInput selects a fee rate and its new value.
type UpdateFeeInput struct {
	Kind domain.FeeKind
	Rate uint32
}

// Validate checks all fields and collects all errors.
func (i UpdateFeeInput) Validate() error {
	if !i.Kind.IsValid() {
		return domain.NewValidationError("kind", "must be FRACTIONALIZE or SELL")
	}
	return nil
}

// AdminWithdrawInput moves protocol revenue out of a pool.
type AdminWithdrawInput struct {
	Pool   domain.FeePool
	Amount uint64
	// Recipient defaults to the caller.
	Recipient uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AdminWithdrawInput) Validate() error {
	var errs []domain.FieldError

	if !i.Pool.IsValid() {
		errs = append(errs, domain.FieldError{Field: "pool", Message: "must be GENERAL or MINT"})
	}
	if i.Amount == 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
