package oracle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// StaticSource serves fixed prices. Prices without a publish time are
// reported as published at the moment of the read.
type StaticSource struct {
	mu     sync.RWMutex
	prices map[string]domain.Price
	now    func() time.Time
}

// NewStaticSource creates a StaticSource from a feed-id → price map.
func NewStaticSource(prices map[string]domain.Price) *StaticSource {
	cp := make(map[string]domain.Price, len(prices))
	for k, v := range prices {
		cp[k] = v
	}
	return &StaticSource{prices: cp, now: time.Now}
}

// Set replaces the price of feedID.
func (s *StaticSource) Set(feedID string, p domain.Price) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[feedID] = p
}

// Latest returns the configured price of feedID.
func (s *StaticSource) Latest(_ context.Context, feedID string) (domain.Price, error) {
	s.mu.RLock()
	p, ok := s.prices[feedID]
	s.mu.RUnlock()
	if !ok {
		return domain.Price{}, fmt.Errorf("static feed %s: %w", feedID, domain.ErrNotFound)
	}
	if p.PublishTime.IsZero() {
		p.PublishTime = s.now()
	}
	return p, nil
}
