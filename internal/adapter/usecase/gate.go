package usecase

import (
	"context"
	"log/slog"
	"time"

	"campaign-vault/internal/core/domain"
	"campaign-vault/internal/core/port"
)

// vaultReader is the read side of the vault the gate decides on.
type vaultReader interface {
	Campaign(ctx context.Context) (*domain.Campaign, error)
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	MaxWithdraw(ctx context.Context, holder domain.Identity) (domain.Amount, error)
}

// SettlementGate decides which withdrawal flow a campaign currently permits
// and issues the corresponding command through the authorization wallet.
// It keeps no state and never moves funds itself: every command carries the
// same predicate as a guard, re-evaluated by the vault under its lock.
type SettlementGate struct {
	id     domain.Identity
	vault  vaultReader
	wallet port.AuthorizationWallet
	logger *slog.Logger
}

// NewSettlementGate creates a gate issuing commands as module id.
func NewSettlementGate(id domain.Identity, vault vaultReader, wallet port.AuthorizationWallet, logger *slog.Logger) *SettlementGate {
	return &SettlementGate{id: id, vault: vault, wallet: wallet, logger: logger}
}

// Evaluate returns the current settlement phase of the campaign.
func (g *SettlementGate) Evaluate(ctx context.Context) (domain.Phase, domain.Snapshot, error) {
	snap, err := g.vault.Snapshot(ctx)
	if err != nil {
		return 0, domain.Snapshot{}, err
	}
	return snap.Phase(), snap, nil
}

// SettleToBeneficiary sweeps the vault to the beneficiary. Either the
// beneficiary or the platform beneficiary may trigger it; funds always go
// to the configured recipients.
func (g *SettlementGate) SettleToBeneficiary(ctx context.Context, caller domain.Identity) (port.Result, error) {
	c, err := g.vault.Campaign(ctx)
	if err != nil {
		return port.Result{}, err
	}
	if caller != c.Beneficiary && caller != c.PlatformBeneficiary {
		return port.Result{}, &domain.NotAuthorizedError{Caller: caller}
	}
	snap, err := g.vault.Snapshot(ctx)
	if err != nil {
		return port.Result{}, err
	}
	if err = snap.CheckBeneficiaryWithdraw(); err != nil {
		return port.Result{}, err
	}
	return g.execute(ctx, caller, port.BeneficiaryWithdrawCommand{
		Guard: domain.Snapshot.CheckBeneficiaryWithdraw,
	})
}

// Refund withdraws assets of the caller's holding to receiver. Zero assets
// means the caller's whole entitlement at the moment of the call; an empty
// receiver means the caller.
func (g *SettlementGate) Refund(ctx context.Context, caller domain.Identity, assets domain.Amount, receiver domain.Identity) (port.Result, error) {
	if receiver == "" {
		receiver = caller
	}
	snap, err := g.vault.Snapshot(ctx)
	if err != nil {
		return port.Result{}, err
	}
	if err = snap.CheckContributorRefund(); err != nil {
		return port.Result{}, err
	}
	if assets == 0 {
		if assets, err = g.vault.MaxWithdraw(ctx, caller); err != nil {
			return port.Result{}, err
		}
		if assets == 0 {
			return port.Result{}, domain.ErrZeroAmount
		}
	}
	return g.execute(ctx, caller, port.ContributorWithdrawCommand{
		Holder:   caller,
		Assets:   assets,
		Receiver: receiver,
		Guard:    domain.Snapshot.CheckContributorRefund,
	})
}

// ExtendExpiration moves the deadline to now + ttl on behalf of the
// beneficiary.
func (g *SettlementGate) ExtendExpiration(ctx context.Context, caller domain.Identity, ttl time.Duration) (time.Time, error) {
	c, err := g.vault.Campaign(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if caller != c.Beneficiary {
		return time.Time{}, &domain.NotAuthorizedError{Caller: caller}
	}
	res, err := g.execute(ctx, caller, port.SetExpirationCommand{TTL: ttl})
	if err != nil {
		return time.Time{}, err
	}
	return res.Expiration, nil
}

func (g *SettlementGate) execute(ctx context.Context, caller domain.Identity, cmd port.Command) (port.Result, error) {
	g.logger.Debug("issuing command",
		slog.String("command", cmd.Name()),
		slog.String("caller", string(caller)))
	return g.wallet.ExecuteAsModule(ctx, g.id, cmd)
}
