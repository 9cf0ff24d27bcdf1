package db

import (
	"context"
	"fmt"

	"campaign-vault/internal/config/configs"
	"campaign-vault/internal/core/domain"
)

// Funder is a ledger that can open balances and set allowances. Both the
// postgres and the in-memory ledgers implement it.
type Funder interface {
	MintIfAbsent(ctx context.Context, account domain.Identity, amount domain.Amount) (bool, error)
	Approve(ctx context.Context, owner, spender domain.Identity, amount domain.Amount) error
}

// Seed funds the demo contributors and approves the campaign vault to pull
// their whole balance, so deposits work right after startup. Accounts the
// ledger already knows are skipped, which makes repeated startups a no-op.
// It returns the number of accounts funded by this call.
func Seed(ctx context.Context, ledger Funder, seed configs.Seed, vault domain.Identity) (int, error) {
	funded := 0
	for _, name := range seed.Contributors {
		account := domain.Identity(name)
		created, err := ledger.MintIfAbsent(ctx, account, domain.Amount(seed.Balance))
		if err != nil {
			return funded, fmt.Errorf("mint %s: %w", account, err)
		}
		if !created {
			continue
		}
		if err = ledger.Approve(ctx, account, vault, domain.Amount(seed.Balance)); err != nil {
			return funded, fmt.Errorf("approve %s: %w", account, err)
		}
		funded++
	}
	return funded, nil
}
