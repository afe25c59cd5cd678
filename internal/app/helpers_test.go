package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/bullion-registry/internal/adapter/memory"
	"github.com/heartmarshall/bullion-registry/internal/app"
	"github.com/heartmarshall/bullion-registry/internal/auth"
	"github.com/heartmarshall/bullion-registry/internal/config"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const (
	// One whole native unit.
	whole = 1_000_000_000
	// With a commodity price of 2000 and a currency price of 100, weight 283
	// is worth exactly 20 whole units.
	testWeight = 283
	testValue  = 20 * whole
)

// testServer wraps the full REST stack over an in-memory store.
type testServer struct {
	URL    string
	Client *http.Client
	Store  *app.Storage
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		Oracle: config.OracleConfig{
			Source:          config.OracleSourceStatic,
			MaxAge:          72 * time.Hour,
			CommodityFeedID: "commodity",
			CurrencyFeedID:  "currency",
			StaticCommodity: config.StaticPrice{Value: 2000},
			StaticCurrency:  config.StaticPrice{Value: 100},
		},
		Market: config.MarketConfig{PriceMode: config.PriceModeStatic, ListingPriceDecimals: 6},
		Reserve: config.ReserveConfig{
			OverheadBytes: domain.DefaultReserveSchedule().OverheadBytes,
			PerByte:       domain.DefaultReserveSchedule().PerByte,
		},
		Events: config.EventsConfig{RetentionDays: 365},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		Dev: config.DevConfig{AirdropEnabled: true},
	}
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWith(t, testConfig())
}

func setupTestServerWith(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	st := app.MemoryStorage(memory.NewStore())
	prices := app.NewPriceOracle(cfg.Oracle, logger)
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handler, stop := app.NewHTTPHandler(cfg, st, app.NewServices(cfg, st, prices, logger), jwtMgr, logger)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Store: st, jwt: jwtMgr}
}

// account is an authenticated caller.
type account struct {
	ID    uuid.UUID
	Token string
}

// newAccount issues a token for a fresh account and airdrops funds to it.
func (ts *testServer) newAccount(t *testing.T, funds uint64) account {
	t.Helper()

	id := uuid.New()
	token, err := ts.jwt.GenerateAccessToken(id)
	require.NoError(t, err)

	acc := account{ID: id, Token: token}
	if funds > 0 {
		status, _ := ts.do(t, acc, http.MethodPost, "/api/v1/dev/airdrop", map[string]any{"amount": amountStr(funds)})
		require.Equal(t, http.StatusOK, status)
	}
	return acc
}

// do sends a JSON request and returns the status and decoded body.
// A nil body sends no payload; an empty response decodes to nil.
func (ts *testServer) do(t *testing.T, acc account, method, path string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := ts.doRaw(t, acc, method, path, body)
	if len(raw) == 0 {
		return status, nil
	}
	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return status, result
}

// doList is do for endpoints answering with a JSON array.
func (ts *testServer) doList(t *testing.T, acc account, method, path string) (int, []map[string]any) {
	t.Helper()

	status, raw := ts.doRaw(t, acc, method, path, nil)
	var result []map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return status, result
}

func (ts *testServer) doRaw(t *testing.T, acc account, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if acc.Token != "" {
		req.Header.Set("Authorization", "Bearer "+acc.Token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// initRegistry makes admin the authority with a 0.1% fractionalize fee and
// a 2.5% sell fee.
func (ts *testServer) initRegistry(t *testing.T, admin account) map[string]any {
	t.Helper()

	status, body := ts.do(t, admin, http.MethodPost, "/api/v1/registry", map[string]any{
		"fractionalizeFee": 10,
		"sellFee":          250,
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	return body
}

// mintFinalized mints testWeight for acc and finalizes it.
func (ts *testServer) mintFinalized(t *testing.T, acc account) string {
	t.Helper()

	status, body := ts.do(t, acc, http.MethodPost, "/api/v1/assets", map[string]any{
		"name":   "Gold Bar",
		"symbol": "GLD",
		"uri":    "https://example.com/gold.json",
		"weight": testWeight,
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	id := body["asset"].(map[string]any)["id"].(string)

	status, body = ts.do(t, acc, http.MethodPost, "/api/v1/assets/"+id+"/finalize", nil)
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	return id
}

func (ts *testServer) walletBalance(t *testing.T, id uuid.UUID) uint64 {
	t.Helper()

	status, body := ts.do(t, account{}, http.MethodGet, "/api/v1/wallets/"+id.String(), nil)
	require.Equal(t, http.StatusOK, status)
	return amountOf(t, body["balance"])
}

func amountStr(v uint64) string { return strconv.FormatUint(v, 10) }

// amountOf parses a JSON amount, which the API encodes as a decimal string.
func amountOf(t *testing.T, v any) uint64 {
	t.Helper()

	s, ok := v.(string)
	require.True(t, ok, "amount %v is not a string", v)
	n, err := strconv.ParseUint(s, 10, 64)
	require.NoError(t, err)
	return n
}
