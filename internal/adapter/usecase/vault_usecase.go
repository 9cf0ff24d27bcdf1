package usecase

import (
	"context"
	"time"

	"campaign-vault/internal/core/domain"
	"campaign-vault/internal/core/port"
)

// VaultUseCase implements port.VaultUseCase by combining the vault's
// deposit and query operations with the settlement gate's withdrawals.
type VaultUseCase struct {
	vault *Vault
	gate  *SettlementGate
}

// NewVaultUseCase creates the use case over a vault and its gate.
func NewVaultUseCase(vault *Vault, gate *SettlementGate) *VaultUseCase {
	return &VaultUseCase{vault: vault, gate: gate}
}

// Status returns the campaign together with the live ledger balance and the
// settlement phase derived from it. The phase is computed by the gate at
// read time, so it reflects donations that bypassed Deposit.
func (u *VaultUseCase) Status(ctx context.Context) (*port.CampaignStatus, error) {
	c, err := u.vault.Campaign(ctx)
	if err != nil {
		return nil, err
	}
	phase, snap, err := u.gate.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return &port.CampaignStatus{
		Campaign: *c,
		Phase:    phase,
		Balance:  snap.Balance,
		Now:      snap.Now,
	}, nil
}

// Deposit pulls amount from the contributor's approved allowance into the
// vault and returns the shares minted for it.
func (u *VaultUseCase) Deposit(ctx context.Context, contributor domain.Identity, amount domain.Amount) (domain.Amount, error) {
	return u.vault.Deposit(ctx, contributor, amount)
}

// Holding returns the holder's shares and the assets they are currently
// worth. Unknown holders get a zero view rather than an error.
func (u *VaultUseCase) Holding(ctx context.Context, holder domain.Identity) (*port.HoldingView, error) {
	c, err := u.vault.Campaign(ctx)
	if err != nil {
		return nil, err
	}
	h, err := u.vault.Holding(ctx, holder)
	if err != nil {
		return nil, err
	}
	maxAssets, err := c.MaxWithdraw(h.Shares)
	if err != nil {
		return nil, err
	}
	return &port.HoldingView{Holder: holder, Shares: h.Shares, MaxWithdraw: maxAssets}, nil
}

// PreviewWithdraw returns the shares a withdrawal of assets would burn at
// the current exchange rate.
func (u *VaultUseCase) PreviewWithdraw(ctx context.Context, assets domain.Amount) (domain.Amount, error) {
	return u.vault.PreviewWithdraw(ctx, assets)
}

// Settle sweeps the vault to the beneficiary through the settlement gate.
// It succeeds only once the target is reached, and returns the net amount
// paid to the beneficiary and the platform fee.
func (u *VaultUseCase) Settle(ctx context.Context, caller domain.Identity) (*port.Settlement, error) {
	res, err := u.gate.SettleToBeneficiary(ctx, caller)
	if err != nil {
		return nil, err
	}
	return &port.Settlement{Net: res.Net, Fee: res.Fee}, nil
}

// Refund returns assets of the caller's holding to receiver through the
// settlement gate. An empty receiver refunds the caller, and zero assets
// refunds the caller's whole entitlement. Refunds open only after an
// unsuccessful campaign expires.
func (u *VaultUseCase) Refund(ctx context.Context, caller domain.Identity, assets domain.Amount, receiver domain.Identity) (*port.Refund, error) {
	if receiver == "" {
		receiver = caller
	}
	res, err := u.gate.Refund(ctx, caller, assets, receiver)
	if err != nil {
		return nil, err
	}
	return &port.Refund{Shares: res.Shares, Assets: res.Assets, Receiver: receiver}, nil
}

// ExtendExpiration moves the campaign deadline to now + ttl and returns the
// new deadline. Only the beneficiary may do this.
func (u *VaultUseCase) ExtendExpiration(ctx context.Context, caller domain.Identity, ttl time.Duration) (time.Time, error) {
	return u.gate.ExtendExpiration(ctx, caller, ttl)
}

// Events lists recent vault events, newest first. A limit outside 1..500
// falls back to 100.
func (u *VaultUseCase) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return u.vault.Events(ctx, limit)
}
