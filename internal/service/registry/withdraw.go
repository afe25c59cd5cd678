package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// AdminWithdraw moves revenue from a fee pool to the recipient's wallet.
// The pool keeps strictly more than its reserve floor: amount must be
// below balance − floor.
func (s *Service) AdminWithdraw(ctx context.Context, input AdminWithdrawInput) error {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	recipient := input.Recipient
	if recipient == uuid.Nil {
		recipient = callerID
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, err := s.registries.GetForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("get registry: %w", err)
		}
		if err := reg.RequireAuthority(callerID); err != nil {
			return err
		}

		balance, err := s.ledger.Balance(txCtx, input.Pool.Account())
		if err != nil {
			return fmt.Errorf("pool balance: %w", err)
		}
		withdrawable := s.reserve.Withdrawable(balance, input.Pool.Size())
		if input.Amount >= withdrawable {
			return domain.ErrInsufficientFunds
		}

		if err := s.ledger.Transfer(txCtx, input.Pool.Account(), domain.WalletAccount(recipient), input.Amount); err != nil {
			return fmt.Errorf("transfer from %s pool: %w", input.Pool, err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventAdminWithdraw, callerID, map[string]any{
			"pool":      input.Pool.String(),
			"amount":    amount(input.Amount),
			"recipient": recipient.String(),
		}))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "admin withdraw",
		slog.String("pool", input.Pool.String()),
		slog.String("amount", amount(input.Amount)),
		slog.String("recipient", recipient.String()),
	)

	return nil
}
