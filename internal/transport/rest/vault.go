package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/service/vault"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

type vaultService interface {
	CreateUserVault(ctx context.Context) (*domain.UserVault, error)
	UserWithdraw(ctx context.Context, input vault.UserWithdrawInput) error
	Get(ctx context.Context, owner uuid.UUID) (*domain.UserVault, error)
	WalletBalance(ctx context.Context, owner uuid.UUID) (uint64, error)
	Airdrop(ctx context.Context, amount uint64) (uint64, error)
}

// VaultHandler serves vault and wallet endpoints.
type VaultHandler struct {
	svc vaultService
	log *slog.Logger
}

// NewVaultHandler creates a VaultHandler.
func NewVaultHandler(svc vaultService, logger *slog.Logger) *VaultHandler {
	return &VaultHandler{svc: svc, log: logger.With("handler", "vault")}
}

type vaultWithdrawRequest struct {
	Owner  uuid.UUID `json:"owner"`
	Amount Amount    `json:"amount"`
}

type airdropRequest struct {
	Amount Amount `json:"amount"`
}

// Create handles POST /api/v1/vaults.
func (h *VaultHandler) Create(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.CreateUserVault(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVaultResponse(v))
}

// Get handles GET /api/v1/vaults/{owner}.
func (h *VaultHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := pathUUID(w, r, "owner")
	if !ok {
		return
	}

	v, err := h.svc.Get(r.Context(), owner)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVaultResponse(v))
}

// Withdraw handles POST /api/v1/vaults/withdraw.
func (h *VaultHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req vaultWithdrawRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.UserWithdraw(r.Context(), vault.UserWithdrawInput{
		Owner:  req.Owner,
		Amount: uint64(req.Amount),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Wallet handles GET /api/v1/wallets/{owner}.
func (h *VaultHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	owner, ok := pathUUID(w, r, "owner")
	if !ok {
		return
	}

	balance, err := h.svc.WalletBalance(r.Context(), owner)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{
		Owner:   owner.String(),
		Balance: Amount(balance),
		Display: valuation.FormatNative(balance),
	})
}

// Airdrop handles POST /api/v1/dev/airdrop. It is only routed when
// development funding is enabled.
func (h *VaultHandler) Airdrop(w http.ResponseWriter, r *http.Request) {
	var req airdropRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	balance, err := h.svc.Airdrop(r.Context(), uint64(req.Amount))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	owner, _ := ctxutil.AccountIDFromCtx(r.Context())
	writeJSON(w, http.StatusOK, balanceResponse{
		Owner:   owner.String(),
		Balance: Amount(balance),
		Display: valuation.FormatNative(balance),
	})
}
