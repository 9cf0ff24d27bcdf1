package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaign-vault/internal/core/domain"
	"campaign-vault/internal/core/port"
)

// Vault owns the share accounting of one campaign. Every mutating operation
// runs inside a single CampaignRepository.Update so it either commits all of
// its share, total and ledger effects or none of them.
type Vault struct {
	campaignID uuid.UUID
	repo       port.CampaignRepository
	ledger     port.AssetLedger
	metrics    port.Metrics
	logger     *slog.Logger
	now        func() time.Time
	// requireGuard rejects withdrawals issued without a guard.
	requireGuard bool
}

// VaultOption configures optional Vault collaborators.
type VaultOption func(*Vault)

// WithClock overrides the time source.
func WithClock(now func() time.Time) VaultOption {
	return func(v *Vault) { v.now = now }
}

// WithMetrics registers a metrics sink.
func WithMetrics(m port.Metrics) VaultOption {
	return func(v *Vault) { v.metrics = m }
}

// RequireGuards closes the unguarded withdrawal path. Withdrawals must then
// carry a guard, which in practice means they come through a settlement gate.
func RequireGuards() VaultOption {
	return func(v *Vault) { v.requireGuard = true }
}

// NewVault creates a vault for the campaign stored under campaignID.
func NewVault(campaignID uuid.UUID, repo port.CampaignRepository, ledger port.AssetLedger, logger *slog.Logger, opts ...VaultOption) *Vault {
	v := &Vault{
		campaignID: campaignID,
		repo:       repo,
		ledger:     ledger,
		metrics:    nopMetrics{},
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Deposit transfers amount from contributor into the vault and mints shares.
// The first deposit prices shares 1:1; later deposits mint
// floor(amount * totalShares / totalAssets).
func (v *Vault) Deposit(ctx context.Context, contributor domain.Identity, amount domain.Amount) (domain.Amount, error) {
	if amount == 0 {
		return 0, v.reject("deposit", domain.ErrZeroAmount)
	}
	var minted domain.Amount
	err := v.repo.Update(ctx, v.campaignID, func(ctx context.Context, unit port.CampaignUnit) error {
		c := unit.Campaign()
		now := v.now()
		if c.Settled() {
			return domain.ErrCampaignSettled
		}
		if !now.Before(c.Expiration) {
			return &domain.CampaignExpiredError{Expiration: c.Expiration}
		}
		shares, err := c.ConvertToShares(amount)
		if err != nil {
			return err
		}
		h, err := unit.Holding(ctx, contributor)
		if err != nil {
			return err
		}
		totalShares, err := c.TotalShares.Add(shares)
		if err != nil {
			return err
		}
		totalAssets, err := c.TotalAssets.Add(amount)
		if err != nil {
			return err
		}
		holderShares, err := h.Shares.Add(shares)
		if err != nil {
			return err
		}

		// Shares are staged only after the ledger accepted the transfer.
		if err = v.transferFrom(ctx, contributor, c.Vault, amount); err != nil {
			return err
		}

		c.TotalShares, c.TotalAssets = totalShares, totalAssets
		h.Shares = holderShares
		if err = unit.PutHolding(ctx, h); err != nil {
			return err
		}
		unit.Emit(domain.NewFunded(c.ID, contributor, amount, shares, now))
		minted = shares
		return nil
	})
	if err != nil {
		return 0, v.reject("deposit", err)
	}
	v.logger.Info("funded",
		slog.String("contributor", string(contributor)),
		slog.Uint64("amount", uint64(amount)),
		slog.Uint64("shares", uint64(minted)))
	v.metrics.Deposited(amount, minted)
	return minted, nil
}

// PreviewWithdraw returns ceil(assets * totalShares / totalAssets).
func (v *Vault) PreviewWithdraw(ctx context.Context, assets domain.Amount) (domain.Amount, error) {
	c, err := v.Campaign(ctx)
	if err != nil {
		return 0, err
	}
	return c.PreviewWithdraw(assets)
}

// MaxWithdraw returns floor(shares * totalAssets / totalShares) for holder.
func (v *Vault) MaxWithdraw(ctx context.Context, holder domain.Identity) (domain.Amount, error) {
	c, err := v.Campaign(ctx)
	if err != nil {
		return 0, err
	}
	h, err := v.repo.GetHolding(ctx, v.campaignID, holder)
	if err != nil {
		return 0, err
	}
	return c.MaxWithdraw(h.Shares)
}

// ContributorWithdraw burns the holder's shares for assets and pays them to
// receiver. caller must be the holder itself or the beneficiary's wallet
// acting for the settlement gate. guard, when set, runs under the campaign
// lock before anything is changed. A nil guard is refused when the vault was
// built with RequireGuards.
//
// If the withdrawal burns the last outstanding shares, paid is raised to the
// whole remaining pool so no assets are left without shares against them.
func (v *Vault) ContributorWithdraw(ctx context.Context, caller, holder domain.Identity, assets domain.Amount, receiver domain.Identity, guard domain.Guard) (shares, paid domain.Amount, err error) {
	if guard == nil && v.requireGuard {
		return 0, 0, v.reject("contributor_withdraw", domain.ErrGuardRequired)
	}
	if assets == 0 {
		return 0, 0, v.reject("contributor_withdraw", domain.ErrZeroAmount)
	}
	if receiver == "" {
		receiver = holder
	}
	err = v.repo.Update(ctx, v.campaignID, func(ctx context.Context, unit port.CampaignUnit) error {
		c := unit.Campaign()
		now := v.now()
		if caller != holder && caller != c.Beneficiary {
			return &domain.NotAuthorizedError{Caller: caller}
		}
		if c.Settled() {
			return domain.ErrCampaignSettled
		}
		if guard != nil {
			snap, err := v.snapshot(ctx, c, now)
			if err != nil {
				return err
			}
			if err = guard(snap); err != nil {
				return err
			}
		}

		h, err := unit.Holding(ctx, holder)
		if err != nil {
			return err
		}
		maxAssets, err := c.MaxWithdraw(h.Shares)
		if err != nil {
			return err
		}
		if assets > maxAssets {
			return &domain.ExceededMaxWithdrawError{Holder: holder, Requested: assets, Max: maxAssets}
		}
		burn, err := c.PreviewWithdraw(assets)
		if err != nil {
			return err
		}
		if burn > h.Shares {
			return domain.ErrInsufficientShares
		}

		out := assets
		if burn == c.TotalShares {
			out = c.TotalAssets
		}
		if err = v.transfer(ctx, c.Vault, receiver, out); err != nil {
			return err
		}

		h.Shares -= burn
		c.TotalShares -= burn
		c.TotalAssets -= out
		if err = unit.PutHolding(ctx, h); err != nil {
			return err
		}
		unit.Emit(domain.NewRefunded(c.ID, holder, receiver, out, burn, now))
		shares, paid = burn, out
		return nil
	})
	if err != nil {
		return 0, 0, v.reject("contributor_withdraw", err)
	}
	v.logger.Info("refunded",
		slog.String("holder", string(holder)),
		slog.String("receiver", string(receiver)),
		slog.Uint64("assets", uint64(paid)),
		slog.Uint64("shares", uint64(shares)))
	v.metrics.Refunded(paid, shares)
	return shares, paid, nil
}

// BeneficiaryWithdraw sweeps the vault's entire ledger balance: the platform
// fee to the platform beneficiary and the rest to the beneficiary. Share
// accounting is left as is; the campaign is marked settled, which closes
// refunds and deposits for good.
//
// The fee transfer runs first. If it fails nothing has moved. If the
// beneficiary transfer fails afterwards the fee is already paid out: the
// call fails with ErrPartialSettlement, the campaign stays unsettled and the
// condition is logged for manual reconciliation.
func (v *Vault) BeneficiaryWithdraw(ctx context.Context, caller domain.Identity, guard domain.Guard) (net, fee domain.Amount, err error) {
	if guard == nil && v.requireGuard {
		return 0, 0, v.reject("beneficiary_withdraw", domain.ErrGuardRequired)
	}
	err = v.repo.Update(ctx, v.campaignID, func(ctx context.Context, unit port.CampaignUnit) error {
		c := unit.Campaign()
		now := v.now()
		if caller != c.Beneficiary {
			return &domain.NotAuthorizedError{Caller: caller}
		}
		if c.Settled() {
			return domain.ErrCampaignSettled
		}
		snap, err := v.snapshot(ctx, c, now)
		if err != nil {
			return err
		}
		if guard != nil {
			if err = guard(snap); err != nil {
				return err
			}
		}

		n, f, err := c.SplitFee(snap.Balance)
		if err != nil {
			return err
		}
		if f > 0 {
			if err = v.transfer(ctx, c.Vault, c.PlatformBeneficiary, f); err != nil {
				return err
			}
		}
		if n > 0 {
			if err = v.transfer(ctx, c.Vault, c.Beneficiary, n); err != nil {
				if f > 0 {
					v.logger.Error("partial settlement: fee paid, beneficiary transfer failed",
						slog.String("campaign", c.ID.String()),
						slog.String("platform_beneficiary", string(c.PlatformBeneficiary)),
						slog.Uint64("fee", uint64(f)),
						slog.Uint64("net", uint64(n)),
						slog.Any("error", err))
					return errors.Join(domain.ErrPartialSettlement, err)
				}
				return err
			}
		}

		settledAt := now.UTC()
		c.SettledAt = &settledAt
		unit.Emit(domain.NewWithdrawal(c.ID, c.Beneficiary, snap.Balance, now))
		if f > 0 {
			unit.Emit(domain.NewFee(c.ID, c.PlatformBeneficiary, f, now))
		}
		net, fee = n, f
		return nil
	})
	if err != nil {
		return 0, 0, v.reject("beneficiary_withdraw", err)
	}
	v.logger.Info("withdrawal",
		slog.Uint64("net", uint64(net)),
		slog.Uint64("fee", uint64(fee)))
	v.metrics.Settled(net, fee)
	return net, fee, nil
}

// SetExpiration sets the campaign deadline to now + ttl. Only the
// beneficiary may move it, and only while the campaign is still open.
func (v *Vault) SetExpiration(ctx context.Context, caller domain.Identity, ttl time.Duration) (time.Time, error) {
	if ttl <= 0 {
		return time.Time{}, v.reject("set_expiration", domain.ErrInvalidTTL)
	}
	var expiration time.Time
	err := v.repo.Update(ctx, v.campaignID, func(ctx context.Context, unit port.CampaignUnit) error {
		c := unit.Campaign()
		now := v.now()
		if caller != c.Beneficiary {
			return &domain.NotAuthorizedError{Caller: caller}
		}
		if c.Settled() {
			return domain.ErrCampaignSettled
		}
		if !now.Before(c.Expiration) {
			return &domain.CampaignExpiredError{Expiration: c.Expiration}
		}
		c.Expiration = now.Add(ttl).UTC()
		unit.Emit(domain.NewExpirationExtended(c.ID, c.Expiration, now))
		expiration = c.Expiration
		return nil
	})
	if err != nil {
		return time.Time{}, v.reject("set_expiration", err)
	}
	v.logger.Info("expiration set", slog.Time("expiration", expiration))
	return expiration, nil
}

// Campaign returns the current campaign state.
func (v *Vault) Campaign(ctx context.Context) (*domain.Campaign, error) {
	return v.repo.GetCampaign(ctx, v.campaignID)
}

// Holding returns the holder's share balance.
func (v *Vault) Holding(ctx context.Context, holder domain.Identity) (domain.Holding, error) {
	return v.repo.GetHolding(ctx, v.campaignID, holder)
}

// Events returns at most limit recent vault events, newest first. A
// limit of zero or less returns nothing.
func (v *Vault) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		return []domain.Event{}, nil
	}
	return v.repo.ListEvents(ctx, v.campaignID, limit)
}

// Snapshot reads the settlement inputs outside of any lock. Gates use it for
// early rejection; the authoritative check runs again under the lock.
func (v *Vault) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	c, err := v.Campaign(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap, err := v.snapshot(ctx, c, v.now())
	if err != nil {
		return domain.Snapshot{}, err
	}
	v.metrics.Observe(snap, c.TotalShares, c.TotalAssets)
	return snap, nil
}

func (v *Vault) snapshot(ctx context.Context, c *domain.Campaign, now time.Time) (domain.Snapshot, error) {
	balance, err := v.ledger.BalanceOf(ctx, c.Vault)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("balance of %s: %w", c.Vault, err)
	}
	return domain.NewSnapshot(c, balance, now), nil
}

func (v *Vault) transfer(ctx context.Context, from, to domain.Identity, amount domain.Amount) error {
	ok, err := v.ledger.Transfer(ctx, from, to, amount)
	if err != nil || !ok {
		return &domain.TransferError{Op: "transfer", From: from, To: to, Amount: amount, Err: err}
	}
	return nil
}

func (v *Vault) transferFrom(ctx context.Context, from, to domain.Identity, amount domain.Amount) error {
	// The vault account is the spender of the contributor's allowance.
	ok, err := v.ledger.TransferFrom(ctx, to, from, to, amount)
	if err != nil || !ok {
		return &domain.TransferError{Op: "transferFrom", From: from, To: to, Amount: amount, Err: err}
	}
	return nil
}

func (v *Vault) reject(op string, err error) error {
	v.logger.Warn("vault operation rejected",
		slog.String("op", op),
		slog.String("kind", domain.ErrorKind(err)),
		slog.Any("error", err))
	v.metrics.Rejected(op, err)
	return err
}

type nopMetrics struct{}

func (nopMetrics) Deposited(domain.Amount, domain.Amount) {}
func (nopMetrics) Refunded(domain.Amount, domain.Amount) {}
func (nopMetrics) Settled(domain.Amount, domain.Amount) {}
func (nopMetrics) Rejected(string, error) {}
func (nopMetrics) Observe(domain.Snapshot, domain.Amount, domain.Amount) {}
