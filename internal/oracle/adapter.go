// Package oracle guards price feed reads: every observation handed to the
// valuation engine is positive and no older than the configured age.
package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
)

// DefaultMaxAge is the oldest publish time accepted, in seconds (three days).
const DefaultMaxAge = 259200 * time.Second

type feedSource interface {
	Latest(ctx context.Context, feedID string) (domain.Price, error)
}

// Feeds names the two price feeds consumed by the registry.
type Feeds struct {
	Commodity string
	Currency  string
}

// Adapter reads prices from a feed source and rejects stale or
// non-positive observations. It never retries.
type Adapter struct {
	source feedSource
	feeds  Feeds
	maxAge time.Duration
	now    func() time.Time
	log    *slog.Logger
}

// NewAdapter creates an Adapter. A zero maxAge selects DefaultMaxAge.
func NewAdapter(log *slog.Logger, source feedSource, feeds Feeds, maxAge time.Duration) *Adapter {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Adapter{
		source: source,
		feeds:  feeds,
		maxAge: maxAge,
		now:    time.Now,
		log:    log.With("adapter", "oracle"),
	}
}

// WithClock replaces the time source. Intended for tests.
func (a *Adapter) WithClock(now func() time.Time) *Adapter {
	a.now = now
	return a
}

// PriceNoOlderThan reads feedID and validates age and sign.
func (a *Adapter) PriceNoOlderThan(ctx context.Context, feedID string) (domain.Price, error) {
	p, err := a.source.Latest(ctx, feedID)
	if err != nil {
		return domain.Price{}, fmt.Errorf("read feed %s: %w", feedID, err)
	}

	age := a.now().Unix() - p.PublishTime.Unix()
	if age > int64(a.maxAge/time.Second) {
		a.log.WarnContext(ctx, "stale price rejected",
			slog.String("feed", feedID),
			slog.Int64("age_seconds", age),
		)
		return domain.Price{}, fmt.Errorf("feed %s: %w", feedID, domain.ErrStalePrice)
	}
	if !p.Positive() {
		return domain.Price{}, fmt.Errorf("feed %s: %w", feedID, domain.ErrNegativePrice)
	}

	a.log.DebugContext(ctx, "price read",
		slog.String("feed", feedID),
		slog.String("price", valuation.PriceDecimal(p).String()),
		slog.Int64("age_seconds", age),
	)
	return p, nil
}

// Quote reads the commodity and currency feeds.
func (a *Adapter) Quote(ctx context.Context) (domain.Quote, error) {
	commodity, err := a.PriceNoOlderThan(ctx, a.feeds.Commodity)
	if err != nil {
		return domain.Quote{}, err
	}
	currency, err := a.PriceNoOlderThan(ctx, a.feeds.Currency)
	if err != nil {
		return domain.Quote{}, err
	}
	return domain.Quote{Commodity: commodity, Currency: currency}, nil
}

// CurrencyPrice reads the currency feed only.
func (a *Adapter) CurrencyPrice(ctx context.Context) (domain.Price, error) {
	return a.PriceNoOlderThan(ctx, a.feeds.Currency)
}
