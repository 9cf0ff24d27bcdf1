package port

import (
	"context"

	"campaign-vault/internal/core/domain"
)

// AssetLedger is the fungible-asset system contributors move value
// through. A false return and an error are both transfer failures.
type AssetLedger interface {
	// Transfer moves amount from the from account, acting as its owner.
	Transfer(ctx context.Context, from, to domain.Identity, amount domain.Amount) (bool, error)
	// TransferFrom moves amount out of from on behalf of spender, consuming
	// an allowance previously granted by from.
	TransferFrom(ctx context.Context, spender, from, to domain.Identity, amount domain.Amount) (bool, error)
	BalanceOf(ctx context.Context, holder domain.Identity) (domain.Amount, error)
}
