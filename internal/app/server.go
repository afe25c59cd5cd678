package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bullion-registry/internal/auth"
	"github.com/heartmarshall/bullion-registry/internal/config"
	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/oracle"
	"github.com/heartmarshall/bullion-registry/internal/service/asset"
	"github.com/heartmarshall/bullion-registry/internal/service/market"
	"github.com/heartmarshall/bullion-registry/internal/service/registry"
	"github.com/heartmarshall/bullion-registry/internal/service/vault"
	"github.com/heartmarshall/bullion-registry/internal/transport/middleware"
	"github.com/heartmarshall/bullion-registry/internal/transport/rest"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
)

// Services groups the registry's business services.
type Services struct {
	Registry *registry.Service
	Asset    *asset.Service
	Market   *market.Service
	Vault    *vault.Service

	// Prices is reported by the health endpoint.
	Prices *oracle.Adapter
}

// NewServices wires the services over st.
func NewServices(cfg *config.Config, st *Storage, prices *oracle.Adapter, log *slog.Logger) Services {
	reserve := domain.ReserveSchedule{
		OverheadBytes: cfg.Reserve.OverheadBytes,
		PerByte:       cfg.Reserve.PerByte,
	}

	return Services{
		Registry: registry.NewService(log, st.Registries, st.Ledger, st.Events, st.Tx, reserve),
		Asset: asset.NewService(log, asset.Deps{
			Registries: st.Registries,
			Assets:     st.Assets,
			Pending:    st.Pending,
			Ledger:     st.Ledger,
			Prices:     prices,
			Events:     st.Events,
			Tx:         st.Tx,
			Reserve:    reserve,
		}),
		Market: market.NewService(log, market.Deps{
			Registries: st.Registries,
			Assets:     st.Assets,
			Listings:   st.Listings,
			Vaults:     st.Vaults,
			Ledger:     st.Ledger,
			Prices:     prices,
			Events:     st.Events,
			Tx:         st.Tx,
			Reserve:    reserve,
		}, market.Settings{
			PriceMode:       market.PriceMode(cfg.Market.PriceMode),
			ListingDecimals: cfg.Market.ListingPriceDecimals,
		}),
		Vault:  vault.NewService(log, st.Vaults, st.Ledger, st.Events, st.Tx, reserve),
		Prices: prices,
	}
}

// NewHTTPHandler mounts the REST API behind the middleware chain. The
// returned stop func releases the rate limiter.
func NewHTTPHandler(cfg *config.Config, st *Storage, svcs Services, tokens *auth.JWTManager, log *slog.Logger) (http.Handler, func()) {
	// Decimal "priceUnits" follow the unit listing prices are quoted in.
	priceDecimals := uint8(valuation.NativeDecimals)
	if cfg.Market.PriceMode == config.PriceModeOracle {
		priceDecimals = cfg.Market.ListingPriceDecimals
	}

	mux := http.NewServeMux()
	rest.Handlers{
		Health:         rest.NewHealthHandler(st.DB, svcs.Prices, CurrentBuild().String()),
		Registry:       rest.NewRegistryHandler(svcs.Registry, log),
		Asset:          rest.NewAssetHandler(svcs.Asset, log),
		Market:         rest.NewMarketHandler(svcs.Market, priceDecimals, log),
		Vault:          rest.NewVaultHandler(svcs.Vault, log),
		AirdropEnabled: cfg.Dev.AirdropEnabled,
	}.Register(mux)

	probePaths := []string{"/live", "/ready", "/health"}
	stop := func() {}
	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		limit = middleware.ExceptPaths(limiter.Limit(cfg.RateLimit.PerMinute), probePaths...)
		stop = limiter.Stop
	}

	chain := middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Logger(log, probePaths...),
		middleware.When(cfg.CORS.AllowedOrigins != "", middleware.CORS(cfg.CORS)),
		middleware.Auth(tokens),
		limit,
	)

	return chain(mux), stop
}
