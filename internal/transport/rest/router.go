package rest

import "net/http"

// Handlers groups every REST handler mounted by the router.
type Handlers struct {
	Health   *HealthHandler
	Registry *RegistryHandler
	Asset    *AssetHandler
	Market   *MarketHandler
	Vault    *VaultHandler

	// AirdropEnabled mounts POST /api/v1/dev/airdrop.
	AirdropEnabled bool
}

// Register mounts all routes on mux.
func (h Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/v1/registry", h.Registry.Get)
	mux.HandleFunc("POST /api/v1/registry", h.Registry.Init)
	mux.HandleFunc("PUT /api/v1/registry/fees", h.Registry.UpdateFee)
	mux.HandleFunc("POST /api/v1/registry/withdraw", h.Registry.Withdraw)
	mux.HandleFunc("POST /api/v1/registry/authority/propose", h.Registry.ProposeAuthority)
	mux.HandleFunc("POST /api/v1/registry/authority/accept", h.Registry.AcceptAuthority)

	mux.HandleFunc("POST /api/v1/assets", h.Asset.Mint)
	mux.HandleFunc("GET /api/v1/assets", h.Asset.List)
	mux.HandleFunc("GET /api/v1/assets/{id}", h.Asset.Get)
	mux.HandleFunc("DELETE /api/v1/assets/{id}", h.Asset.Burn)
	mux.HandleFunc("POST /api/v1/assets/{id}/finalize", h.Asset.FinalizeMint)
	mux.HandleFunc("POST /api/v1/assets/{id}/fractionalize", h.Asset.Fractionalize)
	mux.HandleFunc("POST /api/v1/assets/{id}/finalize-fractionalize", h.Asset.FinalizeFractionalize)
	mux.HandleFunc("PATCH /api/v1/assets/{id}/metadata", h.Asset.UpdateMetadata)
	mux.HandleFunc("GET /api/v1/assets/{id}/events", h.Asset.History)
	mux.HandleFunc("GET /api/v1/events", h.Asset.Events)

	mux.HandleFunc("POST /api/v1/listings", h.Market.List)
	mux.HandleFunc("GET /api/v1/listings", h.Market.Search)
	mux.HandleFunc("GET /api/v1/listings/{id}", h.Market.Get)
	mux.HandleFunc("PUT /api/v1/listings/{id}/price", h.Market.UpdatePrice)
	mux.HandleFunc("DELETE /api/v1/listings/{id}", h.Market.Delist)
	mux.HandleFunc("POST /api/v1/listings/{id}/buy", h.Market.Buy)

	mux.HandleFunc("POST /api/v1/vaults", h.Vault.Create)
	mux.HandleFunc("POST /api/v1/vaults/withdraw", h.Vault.Withdraw)
	mux.HandleFunc("GET /api/v1/vaults/{owner}", h.Vault.Get)
	mux.HandleFunc("GET /api/v1/wallets/{owner}", h.Vault.Wallet)

	if h.AirdropEnabled {
		mux.HandleFunc("POST /api/v1/dev/airdrop", h.Vault.Airdrop)
	}
}
