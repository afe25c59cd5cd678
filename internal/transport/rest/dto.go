package rest

import (
	"time"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
)

type registryResponse struct {
	Authority          string      `json:"authority"`
	PendingAuthority   *string     `json:"pendingAuthority"`
	Collection         string      `json:"collection"`
	Discriminant       uint64      `json:"discriminant"`
	Fees               feesPayload `json:"fees"`
	FeePoolBalance     Amount      `json:"feePoolBalance"`
	MintFeePoolBalance Amount      `json:"mintFeePoolBalance"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

type feesPayload struct {
	FractionalizeFee uint32 `json:"fractionalizeFee"`
	SellFee          uint32 `json:"sellFee"`
	FeeDecimals      uint8  `json:"feeDecimals"`
}

func toFeesPayload(f domain.FeesCollector) feesPayload {
	return feesPayload{
		FractionalizeFee: f.FractionalizeFee,
		SellFee:          f.SellFee,
		FeeDecimals:      f.FeeDecimals,
	}
}

func toRegistryResponse(reg *domain.Registry, fees domain.FeesCollector, general, mint uint64) registryResponse {
	resp := registryResponse{
		Authority:          reg.Authority.String(),
		Collection:         reg.Collection.String(),
		Discriminant:       reg.Discriminant,
		Fees:               toFeesPayload(fees),
		FeePoolBalance:     Amount(general),
		MintFeePoolBalance: Amount(mint),
		UpdatedAt:          reg.UpdatedAt,
	}
	if id, ok := reg.Pending.Get(); ok {
		s := id.String()
		resp.PendingAuthority = &s
	}
	return resp
}

type metadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type assetResponse struct {
	ID           string          `json:"id"`
	Discriminant uint64          `json:"discriminant"`
	Holder       string          `json:"holder"`
	Supply       uint64          `json:"supply"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	URI          string          `json:"uri"`
	Weight       *uint64         `json:"weight"`
	Finalized    bool            `json:"finalized"`
	Additional   []metadataEntry `json:"additional"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toAssetResponse(a *domain.Asset) assetResponse {
	resp := assetResponse{
		ID:           a.ID.String(),
		Discriminant: a.Discriminant,
		Holder:       a.Holder.String(),
		Supply:       a.Supply,
		Name:         a.Metadata.Name,
		Symbol:       a.Metadata.Symbol,
		URI:          a.Metadata.URI,
		Additional:   make([]metadataEntry, 0, len(a.Metadata.Additional)),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if w, err := a.Metadata.Weight(); err == nil {
		resp.Weight = &w
		_, cerr := a.Metadata.Collection()
		resp.Finalized = cerr == nil
	}
	for _, e := range a.Metadata.Additional {
		resp.Additional = append(resp.Additional, metadataEntry{Key: e.Key, Value: e.Value})
	}
	return resp
}

func toAssetResponses(assets []domain.Asset) []assetResponse {
	out := make([]assetResponse, 0, len(assets))
	for i := range assets {
		out = append(out, toAssetResponse(&assets[i]))
	}
	return out
}

type listingResponse struct {
	AssetID   string    `json:"assetId"`
	Owner     string    `json:"owner"`
	Price     Amount    `json:"price"`
	Escrow    string    `json:"escrow"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toListingResponse(l *domain.Listing) listingResponse {
	return listingResponse{
		AssetID:   l.AssetID.String(),
		Owner:     l.Owner.String(),
		Price:     Amount(l.Price),
		Escrow:    l.Escrow.String(),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

type vaultResponse struct {
	Owner          string    `json:"owner"`
	Balance        Amount    `json:"balance"`
	BalanceDisplay string    `json:"balanceDisplay"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toVaultResponse(v *domain.UserVault) vaultResponse {
	return vaultResponse{
		Owner:          v.Owner.String(),
		Balance:        Amount(v.Balance),
		BalanceDisplay: valuation.FormatNative(v.Balance),
		CreatedAt:      v.CreatedAt,
	}
}

type balanceResponse struct {
	Owner   string `json:"owner"`
	Balance Amount `json:"balance"`
	Display string `json:"display"`
}

type eventResponse struct {
	ID        string         `json:"id"`
	Kind      string         `json:"kind"`
	AssetID   *string        `json:"assetId"`
	Actor     string         `json:"actor"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp := eventResponse{
			ID:        e.ID.String(),
			Kind:      e.Kind.String(),
			Actor:     e.Actor.String(),
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		}
		if e.AssetID != nil {
			s := e.AssetID.String()
			resp.AssetID = &s
		}
		out = append(out, resp)
	}
	return out
}
