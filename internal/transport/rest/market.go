package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/service/market"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
)

type marketService interface {
	List(ctx context.Context, input market.ListInput) (*domain.Listing, error)
	UpdateListingPrice(ctx context.Context, input market.UpdatePriceInput) (*domain.Listing, error)
	Delist(ctx context.Context, assetID uuid.UUID) error
	Buy(ctx context.Context, input market.BuyInput) (*market.BuyResult, error)
	GetListing(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error)
	ListListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
}

// MarketHandler serves listing and purchase endpoints.
type MarketHandler struct {
	svc           marketService
	priceDecimals uint8
	log           *slog.Logger
}

// NewMarketHandler creates a MarketHandler. priceDecimals is the precision
// used to parse decimal "priceUnits" request fields.
func NewMarketHandler(svc marketService, priceDecimals uint8, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{svc: svc, priceDecimals: priceDecimals, log: logger.With("handler", "market")}
}

type priceRequest struct {
	Price      Amount `json:"price"`
	PriceUnits string `json:"priceUnits"`
}

// resolve returns the integer price. An explicit integer price wins over
// priceUnits.
func (p priceRequest) resolve(decimals uint8) (uint64, error) {
	if p.Price != 0 || p.PriceUnits == "" {
		return uint64(p.Price), nil
	}
	v, err := valuation.ParseUnits(p.PriceUnits, decimals)
	if err != nil {
		return 0, domain.NewValidationError("priceUnits", err.Error())
	}
	return v, nil
}

type listRequest struct {
	AssetID uuid.UUID `json:"assetId"`
	priceRequest
}

type buyRequest struct {
	Seller uuid.UUID `json:"seller"`
}

type buyResponse struct {
	Listing    listingResponse `json:"listing"`
	Settlement Amount          `json:"settlement"`
	Fee        Amount          `json:"fee"`
}

// List handles POST /api/v1/listings.
func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	price, err := req.resolve(h.priceDecimals)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.List(r.Context(), market.ListInput{AssetID: req.AssetID, Price: price})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListingResponse(l))
}

// Search handles GET /api/v1/listings?owner=&minPrice=&maxPrice=&limit=&offset=.
func (h *MarketHandler) Search(w http.ResponseWriter, r *http.Request) {
	var filter domain.ListingFilter
	var err error

	if filter.Owner, err = queryUUID(r, "owner"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MinPrice, err = queryUint(r, "minPrice"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MaxPrice, err = queryUint(r, "maxPrice"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Limit, err = queryInt(r, "limit", 0); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Offset, err = queryInt(r, "offset", 0); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listings, err := h.svc.ListListings(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]listingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, toListingResponse(&listings[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/listings/{id}.
func (h *MarketHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := h.svc.GetListing(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(l))
}

// UpdatePrice handles PUT /api/v1/listings/{id}/price.
func (h *MarketHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req priceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	price, err := req.resolve(h.priceDecimals)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.UpdateListingPrice(r.Context(), market.UpdatePriceInput{AssetID: id, Price: price})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(l))
}

// Delist handles DELETE /api/v1/listings/{id}.
func (h *MarketHandler) Delist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delist(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Buy handles POST /api/v1/listings/{id}/buy.
func (h *MarketHandler) Buy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req buyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Buy(r.Context(), market.BuyInput{AssetID: id, Seller: req.Seller})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, buyResponse{
		Listing:    toListingResponse(&res.Listing),
		Settlement: Amount(res.Settlement),
		Fee:        Amount(res.Fee),
	})
}
