package asset

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Get returns one asset.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	a, err := s.assets.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

// ListByHolder returns the assets held by holder.
func (s *Service) ListByHolder(ctx context.Context, holder uuid.UUID, limit, offset int) ([]domain.Asset, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	assets, err := s.assets.ListByHolder(ctx, holder, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

// History returns the events recorded for an asset, oldest first.
func (s *Service) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.Event, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	events, err := s.events.ListByAsset(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// RecentEvents returns the latest events across the registry, newest first.
func (s *Service) RecentEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	events, err := s.events.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
