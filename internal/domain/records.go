package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingMint lives between mint and finalize_mint.
type PendingMint struct {
	AssetID   uuid.UUID
	Weight    uint64
	Payer     uuid.UUID
	CreatedAt time.Time
}

// PendingFractionalize carries the deferred data of a fractionalized child.
// AssetID is the child; SourceAssetID is the asset it was split from.
type PendingFractionalize struct {
	AssetID       uuid.UUID
	SourceAssetID uuid.UUID
	Weight        uint64
	Name          string
	Symbol        string
	URI           string
	Payer         uuid.UUID
	CreatedAt     time.Time
}

// Listing is an escrowed sale offer. The asset unit is held by Escrow,
// a capability derived from the listing key.
type Listing struct {
	AssetID   uuid.UUID
	Owner     uuid.UUID
	Price     uint64
	Escrow    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserVault is the opt-in proceeds account of a holder.
// Balance is read from the currency ledger and is not persisted here.
type UserVault struct {
	Owner     uuid.UUID
	Balance   uint64
	CreatedAt time.Time
}
