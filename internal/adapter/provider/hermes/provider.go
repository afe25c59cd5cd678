// Package hermes reads price feeds from a Hermes-compatible price service.
package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const (
	defaultBaseURL = "https://hermes.pyth.network"
	defaultTimeout = 10 * time.Second
	latestPath     = "/v2/updates/price/latest"
)

// Provider fetches the latest parsed price update of a feed.
// Requests are never retried; a failed read aborts the calling operation.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the public Hermes endpoint.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, defaultTimeout, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL and timeout.
func NewProviderWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "hermes"),
	}
}

// Latest returns the most recent price of feedID.
func (p *Provider) Latest(ctx context.Context, feedID string) (domain.Price, error) {
	id := normalizeID(feedID)

	q := url.Values{}
	q.Add("ids[]", id)
	q.Set("parsed", "true")
	reqURL := p.baseURL + latestPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Price{}, fmt.Errorf("hermes: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "hermes request failed", slog.String("feed", id), slog.String("error", err.Error()))
		return domain.Price{}, fmt.Errorf("hermes: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Price{}, fmt.Errorf("hermes: feed %s: %w", id, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Price{}, fmt.Errorf("hermes: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Price{}, fmt.Errorf("hermes: read body: %w", err)
	}

	var latest apiLatest
	if err := json.Unmarshal(body, &latest); err != nil {
		return domain.Price{}, fmt.Errorf("hermes: decode json: %w", err)
	}

	for _, u := range latest.Parsed {
		if normalizeID(u.ID) != id {
			continue
		}
		price, err := toDomainPrice(u.Price)
		if err != nil {
			return domain.Price{}, fmt.Errorf("hermes: feed %s: %w", id, err)
		}
		p.log.DebugContext(ctx, "hermes response",
			slog.String("feed", id),
			slog.Int64("price", price.Value),
			slog.Int("expo", int(price.Expo)),
		)
		return price, nil
	}

	return domain.Price{}, fmt.Errorf("hermes: feed %s missing from response: %w", id, domain.ErrNotFound)
}

func toDomainPrice(ap apiPrice) (domain.Price, error) {
	value, err := strconv.ParseInt(ap.Price, 10, 64)
	if err != nil {
		return domain.Price{}, fmt.Errorf("parse price %q: %w", ap.Price, err)
	}
	conf, err := strconv.ParseUint(ap.Conf, 10, 64)
	if err != nil {
		return domain.Price{}, fmt.Errorf("parse conf %q: %w", ap.Conf, err)
	}
	return domain.Price{
		Value:       value,
		Conf:        conf,
		Expo:        ap.Expo,
		PublishTime: time.Unix(ap.PublishTime, 0).UTC(),
	}, nil
}

// normalizeID lowercases a feed id and strips the 0x prefix.
func normalizeID(id string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(id)), "0x")
}
