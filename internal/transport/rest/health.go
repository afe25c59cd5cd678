package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const healthCheckTimeout = 3 * time.Second

// Component states. A degraded registry still serves reads but cannot price
// mints, splits or oracle-mode purchases.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type storePinger interface {
	Ping(ctx context.Context) error
}

type quoteSource interface {
	Quote(ctx context.Context) (domain.Quote, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   storePinger
	prices  quoteSource
	version string
}

// NewHealthHandler creates a HealthHandler. prices may be nil, in which case
// the oracle component is not reported.
func NewHealthHandler(store storePinger, prices quoteSource, version string) *HealthHandler {
	return &HealthHandler{store: store, prices: prices, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 while the record store answers, 503
// otherwise. Oracle trouble does not take the instance out of rotation.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    statusDown,
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Health reports every component with latencies and the build version.
// A store failure is "down" (503); an oracle failure is "degraded" (200).
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := statusOK

	store := probe(func() error { return h.store.Ping(ctx) }, statusDown)
	components["store"] = store
	if store.Status != statusOK {
		overall = statusDown
	}

	if h.prices != nil {
		oracle := probe(func() error {
			_, err := h.prices.Quote(ctx)
			return err
		}, statusDegraded)
		components["oracle"] = oracle
		if oracle.Status != statusOK && overall == statusOK {
			overall = statusDegraded
		}
	}

	status := http.StatusOK
	if overall == statusDown {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(check func() error, failStatus string) CompStatus {
	start := time.Now()
	err := check()
	latency := time.Since(start)

	if err != nil {
		return CompStatus{Status: failStatus, Error: err.Error()}
	}
	return CompStatus{Status: statusOK, Latency: latency.String()}
}
