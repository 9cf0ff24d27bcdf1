package port

import (
	"context"
	"time"

	"campaign-vault/internal/core/domain"
)

// VaultUseCase defines the business operations exposed by the campaign
// vault. This interface represents the primary port into the application
// domain; withdrawals are always routed through the settlement gate.
type VaultUseCase interface {
	// Status returns the campaign, its derived settlement phase and the
	// vault's ledger balance.
	Status(ctx context.Context) (*CampaignStatus, error)

	// Deposit pulls amount from the contributor's ledger account and mints
	// shares. The contributor must have approved the vault beforehand.
	Deposit(ctx context.Context, contributor domain.Identity, amount domain.Amount) (domain.Amount, error)

	// Holding returns the holder's shares and current pro-rata entitlement.
	Holding(ctx context.Context, holder domain.Identity) (*HoldingView, error)

	// PreviewWithdraw returns the shares that withdrawing assets would burn.
	PreviewWithdraw(ctx context.Context, assets domain.Amount) (domain.Amount, error)

	// Settle sweeps the vault to the beneficiary once the target is reached.
	Settle(ctx context.Context, caller domain.Identity) (*Settlement, error)

	// Refund pays the caller back pro rata after the campaign expired
	// without reaching its target. Zero assets refunds the full entitlement.
	Refund(ctx context.Context, caller domain.Identity, assets domain.Amount, receiver domain.Identity) (*Refund, error)

	// ExtendExpiration moves the deadline to now + ttl.
	ExtendExpiration(ctx context.Context, caller domain.Identity, ttl time.Duration) (time.Time, error)

	// Events returns the most recent vault events, newest first.
	Events(ctx context.Context, limit int) ([]domain.Event, error)
}

// CampaignStatus is a read model of the campaign used by the HTTP layer.
type CampaignStatus struct {
	Campaign domain.Campaign
	Phase    domain.Phase
	Balance  domain.Amount
	Now      time.Time
}

// HoldingView is a holder's position: the shares held and the assets they
// could be redeemed for right now.
type HoldingView struct {
	Holder      domain.Identity
	Shares      domain.Amount
	MaxWithdraw domain.Amount
}

// Settlement is the outcome of a beneficiary sweep.
type Settlement struct {
	Net domain.Amount
	Fee domain.Amount
}

// Refund is the outcome of a contributor refund. Receiver is the account
// that was paid.
type Refund struct {
	Shares   domain.Amount
	Assets   domain.Amount
	Receiver domain.Identity
}
