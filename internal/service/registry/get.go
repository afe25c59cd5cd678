package registry

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// Get returns the registry, its fee rates and both pool balances.
func (s *Service) Get(ctx context.Context) (*Overview, error) {
	reg, err := s.registries.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get registry: %w", err)
	}
	fees, err := s.registries.GetFees(ctx)
	if err != nil {
		return nil, fmt.Errorf("get fees: %w", err)
	}
	general, err := s.ledger.Balance(ctx, domain.FeesCollectorAccount)
	if err != nil {
		return nil, fmt.Errorf("fee pool balance: %w", err)
	}
	mint, err := s.ledger.Balance(ctx, domain.MintFeesCollectorAccount)
	if err != nil {
		return nil, fmt.Errorf("mint fee pool balance: %w", err)
	}

	return &Overview{
		Registry:           reg,
		Fees:               fees,
		FeePoolBalance:     general,
		MintFeePoolBalance: mint,
	}, nil
}
