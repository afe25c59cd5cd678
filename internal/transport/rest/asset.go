package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/service/asset"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
)

type assetService interface {
	Mint(ctx context.Context, input asset.MintInput) (*asset.MintResult, error)
	FinalizeMint(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error)
	Fractionalize(ctx context.Context, input asset.FractionalizeInput) (*asset.FractionalizeResult, error)
	FinalizeFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error)
	Burn(ctx context.Context, assetID uuid.UUID) error
	UpdateMetadataField(ctx context.Context, input asset.UpdateMetadataFieldInput) (*domain.Asset, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	ListByHolder(ctx context.Context, holder uuid.UUID, limit, offset int) ([]domain.Asset, error)
	History(ctx context.Context, id uuid.UUID, limit int) ([]domain.Event, error)
	RecentEvents(ctx context.Context, limit int) ([]domain.Event, error)
}

// AssetHandler serves asset lifecycle endpoints.
type AssetHandler struct {
	svc assetService
	log *slog.Logger
}

// NewAssetHandler creates an AssetHandler.
func NewAssetHandler(svc assetService, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{svc: svc, log: logger.With("handler", "asset")}
}

type mintRequest struct {
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	URI       string    `json:"uri"`
	Weight    uint64    `json:"weight"`
	Recipient uuid.UUID `json:"recipient"`
}

type mintResponse struct {
	Asset        assetResponse `json:"asset"`
	Value        Amount        `json:"value"`
	ValueDisplay string        `json:"valueDisplay"`
}

type partRequest struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	URI    string `json:"uri"`
	Weight uint64 `json:"weight"`
}

func (p partRequest) toPart() asset.Part {
	return asset.Part{Name: p.Name, Symbol: p.Symbol, URI: p.URI, Weight: p.Weight}
}

type fractionalizeRequest struct {
	A partRequest `json:"a"`
	B partRequest `json:"b"`
}

type fractionalizeResponse struct {
	Source assetResponse `json:"source"`
	Child  assetResponse `json:"child"`
	Fee    Amount        `json:"fee"`
}

type updateMetadataRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Mint handles POST /api/v1/assets.
func (h *AssetHandler) Mint(w http.ResponseWriter, r *http.Request) {
	var req mintRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Mint(r.Context(), asset.MintInput{
		Name:      req.Name,
		Symbol:    req.Symbol,
		URI:       req.URI,
		Weight:    req.Weight,
		Recipient: req.Recipient,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mintResponse{
		Asset:        toAssetResponse(res.Asset),
		Value:        Amount(res.Value),
		ValueDisplay: valuation.FormatNative(res.Value),
	})
}

// FinalizeMint handles POST /api/v1/assets/{id}/finalize.
func (h *AssetHandler) FinalizeMint(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.svc.FinalizeMint(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetResponse(a))
}

// Fractionalize handles POST /api/v1/assets/{id}/fractionalize.
func (h *AssetHandler) Fractionalize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req fractionalizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Fractionalize(r.Context(), asset.FractionalizeInput{
		AssetID: id,
		A:       req.A.toPart(),
		B:       req.B.toPart(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fractionalizeResponse{
		Source: toAssetResponse(res.Source),
		Child:  toAssetResponse(res.Child),
		Fee:    Amount(res.Fee),
	})
}

// FinalizeFractionalize handles POST /api/v1/assets/{id}/finalize-fractionalize.
func (h *AssetHandler) FinalizeFractionalize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.svc.FinalizeFractionalize(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetResponse(a))
}

// Burn handles DELETE /api/v1/assets/{id}.
func (h *AssetHandler) Burn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Burn(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateMetadata handles PATCH /api/v1/assets/{id}/metadata.
func (h *AssetHandler) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateMetadataRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.UpdateMetadataField(r.Context(), asset.UpdateMetadataFieldInput{
		AssetID: id,
		Field:   domain.MetadataField(strings.ToLower(req.Field)),
		Value:   req.Value,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetResponse(a))
}

// Get handles GET /api/v1/assets/{id}.
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetResponse(a))
}

// List handles GET /api/v1/assets?holder=...&limit=50&offset=0.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	holder, err := queryUUID(r, "holder")
	if err != nil || holder == nil {
		writeError(w, http.StatusBadRequest, "holder is required")
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	assets, err := h.svc.ListByHolder(r.Context(), *holder, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetResponses(assets))
}

// History handles GET /api/v1/assets/{id}/events.
func (h *AssetHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.svc.History(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events))
}

// Events handles GET /api/v1/events?limit=50.
func (h *AssetHandler) Events(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.svc.RecentEvents(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events))
}
