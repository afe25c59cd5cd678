package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies the operation that produced an event.
type EventKind string

const (
	EventRegistryInitialized   EventKind = "REGISTRY_INITIALIZED"
	EventFeeUpdated            EventKind = "FEE_UPDATED"
	EventAuthorityProposed     EventKind = "AUTHORITY_PROPOSED"
	EventAuthorityTransferred  EventKind = "AUTHORITY_TRANSFERRED"
	EventAdminWithdraw         EventKind = "ADMIN_WITHDRAW"
	EventMint                  EventKind = "MINT"
	EventFinalizeMint          EventKind = "FINALIZE_MINT"
	EventFractionalize         EventKind = "FRACTIONALIZE"
	EventFinalizeFractionalize EventKind = "FINALIZE_FRACTIONALIZE"
	EventBurn                  EventKind = "BURN"
	EventMetadataUpdated       EventKind = "METADATA_UPDATED"
	EventList                  EventKind = "LIST"
	EventListingPriceUpdated   EventKind = "LISTING_PRICE_UPDATED"
	EventDelist                EventKind = "DELIST"
	EventBuy                   EventKind = "BUY"
	EventVaultCreated          EventKind = "VAULT_CREATED"
	EventUserWithdraw          EventKind = "USER_WITHDRAW"
)

func (k EventKind) String() string { return string(k) }

// Event is an append-only record written in the same transaction as the
// operation that produced it.
type Event struct {
	ID        uuid.UUID
	Kind      EventKind
	AssetID   *uuid.UUID
	Actor     uuid.UUID
	Payload   map[string]any
	CreatedAt time.Time
}

// NewEvent builds an event with a fresh id and the current time.
func NewEvent(kind EventKind, actor uuid.UUID, payload map[string]any) Event {
	return Event{
		ID:        uuid.New(),
		Kind:      kind,
		Actor:     actor,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}

// ForAsset attaches the asset the event concerns.
func (e Event) ForAsset(id uuid.UUID) Event {
	e.AssetID = &id
	return e
}
