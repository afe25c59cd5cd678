package memory

import (
	"context"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// EventRepo is the append-only operation log.
type EventRepo struct {
	store *Store
}

func (r *EventRepo) Log(ctx context.Context, event domain.Event) error {
	return r.store.view(ctx, func(st *state) error {
		event.Payload = maps.Clone(event.Payload)
		st.events = append(st.events, event)
		return nil
	})
}

// ListByAsset returns the events of assetID in the order they were written.
// A non-positive limit returns all of them.
func (r *EventRepo) ListByAsset(ctx context.Context, assetID uuid.UUID, limit int) ([]domain.Event, error) {
	var out []domain.Event
	err := r.store.view(ctx, func(st *state) error {
		for _, e := range st.events {
			if e.AssetID != nil && *e.AssetID == assetID {
				out = append(out, e)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page(out, limit, 0), nil
}

// List returns the most recent events across all assets, newest first.
func (r *EventRepo) List(ctx context.Context, limit int) ([]domain.Event, error) {
	var out []domain.Event
	err := r.store.view(ctx, func(st *state) error {
		for i := len(st.events) - 1; i >= 0; i-- {
			out = append(out, st.events[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// DeleteOlderThan removes events created before cutoff and returns how many
// were removed.
func (r *EventRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := r.store.view(ctx, func(st *state) error {
		kept := st.events[:0]
		for _, e := range st.events {
			if e.CreatedAt.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		st.events = kept
		return nil
	})
	return removed, err
}
