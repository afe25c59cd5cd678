package domain

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// AccountKey addresses a balance in the currency ledger. Every record that
// holds native currency has one: tag + seed.
type AccountKey string

func (k AccountKey) String() string { return string(k) }

// Singleton accounts.
const (
	FeesCollectorAccount     AccountKey = "fees:sale"
	MintFeesCollectorAccount AccountKey = "fees:mint"
)

// WalletAccount is the spendable balance of an external caller.
func WalletAccount(owner uuid.UUID) AccountKey { return AccountKey("wallet:" + owner.String()) }

// VaultAccount is the proceeds vault of owner.
func VaultAccount(owner uuid.UUID) AccountKey { return AccountKey("vault:" + owner.String()) }

// ListingAccount holds the reserve of the listing for asset.
func ListingAccount(asset uuid.UUID) AccountKey { return AccountKey("listing:" + asset.String()) }

// PendingMintAccount holds the reserve of the pending mint record.
func PendingMintAccount(asset uuid.UUID) AccountKey { return AccountKey("pending-mint:" + asset.String()) }

// PendingFractionalizeAccount holds the reserve of the pending fractionalize record.
func PendingFractionalizeAccount(asset uuid.UUID) AccountKey {
	return AccountKey("pending-split:" + asset.String())
}

// MetadataAccount holds the reserve of the asset's metadata record.
func MetadataAccount(asset uuid.UUID) AccountKey { return AccountKey("metadata:" + asset.String()) }

// registryNamespace seeds every deterministic identifier of the registry.
var registryNamespace = uuid.MustParse("6f1c2b4e-3a57-4d8e-9c61-0b7e5a2f9d13")

// AssetIDFor derives the asset identity from a discriminant.
func AssetIDFor(discriminant uint64) uuid.UUID {
	seed := make([]byte, 0, 13)
	seed = append(seed, "asset"...)
	seed = binary.LittleEndian.AppendUint64(seed, discriminant)
	return uuid.NewSHA1(registryNamespace, seed)
}

// CollectionID is the identity of the registry collection.
func CollectionID() uuid.UUID {
	return uuid.NewSHA1(registryNamespace, []byte("collection"))
}

// EscrowAuthority derives the holder identity of a listing's escrow.
// No external key maps to it, so only the listing workflow can move the unit.
func EscrowAuthority(asset uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(registryNamespace, []byte("escrow:"+ListingAccount(asset)))
}
