package domain

import (
	"math"
	"time"

	"github.com/gaze-network/uint128"
	"github.com/google/uuid"
)

// FeeDecimals is the fixed precision of fee rates: a rate of 500 means 5%.
const FeeDecimals uint8 = 4

// PendingAuthority is the optional successor slot of the registry.
// The zero value means no transfer is in progress.
type PendingAuthority struct {
	id  uuid.UUID
	set bool
}

// NoPendingAuthority returns an empty slot.
func NoPendingAuthority() PendingAuthority { return PendingAuthority{} }

// PendingAuthorityOf returns a slot holding id.
func PendingAuthorityOf(id uuid.UUID) PendingAuthority {
	return PendingAuthority{id: id, set: true}
}

// Get returns the proposed authority and whether one is set.
func (p PendingAuthority) Get() (uuid.UUID, bool) { return p.id, p.set }

// IsSet reports whether a transfer is in progress.
func (p PendingAuthority) IsSet() bool { return p.set }

// Ptr returns nil for an empty slot; used by storage adapters.
func (p PendingAuthority) Ptr() *uuid.UUID {
	if !p.set {
		return nil
	}
	id := p.id
	return &id
}

// PendingAuthorityFromPtr is the inverse of Ptr.
func PendingAuthorityFromPtr(id *uuid.UUID) PendingAuthority {
	if id == nil {
		return NoPendingAuthority()
	}
	return PendingAuthorityOf(*id)
}

// Registry is the process-wide singleton that owns protocol authority,
// the canonical collection and the discriminant counter.
type Registry struct {
	Authority    uuid.UUID
	Pending      PendingAuthority
	Collection   uuid.UUID
	Discriminant uint64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RequireAuthority fails with ErrOnlyAdminAllowed unless caller is the authority.
func (r *Registry) RequireAuthority(caller uuid.UUID) error {
	if caller != r.Authority {
		return ErrOnlyAdminAllowed
	}
	return nil
}

// SetAuthority replaces the authority and clears any pending transfer.
func (r *Registry) SetAuthority(newAuthority uuid.UUID) error {
	if newAuthority == r.Authority {
		return ErrSameAuthority
	}
	r.Authority = newAuthority
	r.Pending = NoPendingAuthority()
	return nil
}

// ProposeAuthority opens a two-step transfer to newAuthority.
func (r *Registry) ProposeAuthority(signer, newAuthority uuid.UUID) error {
	if err := r.RequireAuthority(signer); err != nil {
		return err
	}
	if newAuthority == signer {
		return ErrSameAuthority
	}
	r.Pending = PendingAuthorityOf(newAuthority)
	return nil
}

// AcceptAuthority completes a pending transfer on behalf of caller.
func (r *Registry) AcceptAuthority(caller uuid.UUID) error {
	pending, ok := r.Pending.Get()
	if !ok {
		return ErrNoFutureAuthority
	}
	if caller != pending {
		return ErrOnlyFutureAuthorityAllowed
	}
	return r.SetAuthority(caller)
}

// NextDiscriminant returns the current counter value and advances it.
// The returned value is the identity seed of the asset being minted.
func (r *Registry) NextDiscriminant() (uint64, error) {
	if r.Discriminant == math.MaxUint64 {
		return 0, ErrOverflow
	}
	d := r.Discriminant
	r.Discriminant++
	return d, nil
}

// FeeKind selects one of the configurable fee rates.
type FeeKind string

const (
	FeeKindFractionalize FeeKind = "FRACTIONALIZE"
	FeeKindSell          FeeKind = "SELL"
)

func (k FeeKind) String() string { return string(k) }

func (k FeeKind) IsValid() bool {
	switch k {
	case FeeKindFractionalize, FeeKindSell:
		return true
	}
	return false
}

// FeesCollector holds the protocol fee rates. Its balance lives in the
// currency ledger under FeesCollectorAccount.
type FeesCollector struct {
	FractionalizeFee uint32
	SellFee          uint32
	FeeDecimals      uint8
}

// NewFeesCollector returns a collector with the fixed fee precision.
func NewFeesCollector(fractionalizeFee, sellFee uint32) FeesCollector {
	return FeesCollector{
		FractionalizeFee: fractionalizeFee,
		SellFee:          sellFee,
		FeeDecimals:      FeeDecimals,
	}
}

// Denominator returns 10^FeeDecimals.
func (f FeesCollector) Denominator() uint64 {
	d := uint64(1)
	for range f.FeeDecimals {
		d *= 10
	}
	return d
}

// Rate returns the configured rate for kind.
func (f FeesCollector) Rate(kind FeeKind) uint32 {
	if kind == FeeKindSell {
		return f.SellFee
	}
	return f.FractionalizeFee
}

// SetRate validates and stores a new rate.
func (f *FeesCollector) SetRate(kind FeeKind, rate uint32) error {
	if !kind.IsValid() {
		return NewValidationError("fee", "unknown fee kind")
	}
	if uint64(rate) > f.Denominator() {
		return NewValidationError("rate", "must not exceed 100%")
	}
	switch kind {
	case FeeKindFractionalize:
		f.FractionalizeFee = rate
	case FeeKindSell:
		f.SellFee = rate
	}
	return nil
}

// Fee returns amount × rate / 10^decimals, truncated.
func (f FeesCollector) Fee(kind FeeKind, amount uint64) (uint64, error) {
	q := uint128.From64(amount).Mul64(uint64(f.Rate(kind))).Div64(f.Denominator())
	if q.Hi != 0 {
		return 0, ErrOverflow
	}
	return q.Lo, nil
}

// FeePool selects one of the two protocol revenue pools.
type FeePool string

const (
	FeePoolGeneral FeePool = "GENERAL"
	FeePoolMint    FeePool = "MINT"
)

func (p FeePool) String() string { return string(p) }

func (p FeePool) IsValid() bool {
	switch p {
	case FeePoolGeneral, FeePoolMint:
		return true
	}
	return false
}

// Account returns the ledger account of the pool.
func (p FeePool) Account() AccountKey {
	if p == FeePoolMint {
		return MintFeesCollectorAccount
	}
	return FeesCollectorAccount
}

// Size returns the declared record size of the pool.
func (p FeePool) Size() int {
	if p == FeePoolMint {
		return MintFeesCollectorSize
	}
	return FeesCollectorSize
}
