package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/service/registry"
)

type registryService interface {
	Init(ctx context.Context, input registry.InitInput) (*domain.Registry, error)
	Get(ctx context.Context) (*registry.Overview, error)
	UpdateFee(ctx context.Context, input registry.UpdateFeeInput) (domain.FeesCollector, error)
	AdminWithdraw(ctx context.Context, input registry.AdminWithdrawInput) error
	ProposeAuthority(ctx context.Context, newAuthority uuid.UUID) error
	AcceptAuthority(ctx context.Context) (*domain.Registry, error)
}

// RegistryHandler serves registry administration endpoints.
type RegistryHandler struct {
	svc registryService
	log *slog.Logger
}

// NewRegistryHandler creates a RegistryHandler.
func NewRegistryHandler(svc registryService, logger *slog.Logger) *RegistryHandler {
	return &RegistryHandler{svc: svc, log: logger.With("handler", "registry")}
}

type initRequest struct {
	FractionalizeFee uint32 `json:"fractionalizeFee"`
	SellFee          uint32 `json:"sellFee"`
}

type updateFeeRequest struct {
	Kind string `json:"kind"`
	Rate uint32 `json:"rate"`
}

type withdrawRequest struct {
	Pool      string    `json:"pool"`
	Amount    Amount    `json:"amount"`
	Recipient uuid.UUID `json:"recipient"`
}

type proposeAuthorityRequest struct {
	NewAuthority uuid.UUID `json:"newAuthority"`
}

// Get handles GET /api/v1/registry.
func (h *RegistryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegistryResponse(ov.Registry, ov.Fees, ov.FeePoolBalance, ov.MintFeePoolBalance))
}

// Init handles POST /api/v1/registry. The caller becomes the authority.
func (h *RegistryHandler) Init(w http.ResponseWriter, r *http.Request) {
	var req initRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.svc.Init(r.Context(), registry.InitInput{
		FractionalizeFee: req.FractionalizeFee,
		SellFee:          req.SellFee,
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ov, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRegistryResponse(ov.Registry, ov.Fees, ov.FeePoolBalance, ov.MintFeePoolBalance))
}

// UpdateFee handles PUT /api/v1/registry/fees.
func (h *RegistryHandler) UpdateFee(w http.ResponseWriter, r *http.Request) {
	var req updateFeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fees, err := h.svc.UpdateFee(r.Context(), registry.UpdateFeeInput{
		Kind: domain.FeeKind(strings.ToUpper(req.Kind)),
		Rate: req.Rate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeesPayload(fees))
}

// Withdraw handles POST /api/v1/registry/withdraw.
func (h *RegistryHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.AdminWithdraw(r.Context(), registry.AdminWithdrawInput{
		Pool:      domain.FeePool(strings.ToUpper(req.Pool)),
		Amount:    uint64(req.Amount),
		Recipient: req.Recipient,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ProposeAuthority handles POST /api/v1/registry/authority/propose.
func (h *RegistryHandler) ProposeAuthority(w http.ResponseWriter, r *http.Request) {
	var req proposeAuthorityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.ProposeAuthority(r.Context(), req.NewAuthority); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AcceptAuthority handles POST /api/v1/registry/authority/accept.
func (h *RegistryHandler) AcceptAuthority(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.AcceptAuthority(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ov, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegistryResponse(ov.Registry, ov.Fees, ov.FeePoolBalance, ov.MintFeePoolBalance))
}
