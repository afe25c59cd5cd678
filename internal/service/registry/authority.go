package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// ProposeAuthority opens a handoff of the registry to newAuthority.
// Only the current authority may propose.
func (s *Service) ProposeAuthority(ctx context.Context, newAuthority uuid.UUID) error {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if newAuthority == uuid.Nil {
		return domain.NewValidationError("new_authority", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, err := s.registries.GetForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("get registry: %w", err)
		}

		if err := reg.ProposeAuthority(callerID, newAuthority); err != nil {
			return err
		}

		if err := s.registries.Update(txCtx, reg); err != nil {
			return fmt.Errorf("update registry: %w", err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventAuthorityProposed, callerID, map[string]any{
			"proposed": newAuthority.String(),
		}))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "authority transfer proposed",
		slog.String("authority", callerID.String()),
		slog.String("proposed", newAuthority.String()),
	)

	return nil
}

// AcceptAuthority completes a pending handoff. Only the proposed account may accept.
func (s *Service) AcceptAuthority(ctx context.Context) (*domain.Registry, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		reg      *domain.Registry
		previous uuid.UUID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		reg, err = s.registries.GetForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("get registry: %w", err)
		}

		previous = reg.Authority
		if err := reg.AcceptAuthority(callerID); err != nil {
			return err
		}

		if err := s.registries.Update(txCtx, reg); err != nil {
			return fmt.Errorf("update registry: %w", err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventAuthorityTransferred, callerID, map[string]any{
			"previous": previous.String(),
		}))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "authority transferred",
		slog.String("previous", previous.String()),
		slog.String("authority", callerID.String()),
	)

	return reg, nil
}
