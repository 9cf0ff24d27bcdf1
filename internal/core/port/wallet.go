package port

import (
	"context"
	"time"

	"campaign-vault/internal/core/domain"
)

// AuthorizationWallet holds settled funds on behalf of the beneficiary and
// executes commands issued by exactly one registered controller module.
type AuthorizationWallet interface {
	// ExecuteAsModule applies cmd with the wallet's identity as the acting
	// principal. It fails with *domain.NotAuthorizedError unless caller is
	// the registered module.
	ExecuteAsModule(ctx context.Context, caller domain.Identity, cmd Command) (Result, error)
}

// CommandTarget is the privileged surface of the vault that wallet
// commands are applied to.
type CommandTarget interface {
	BeneficiaryWithdraw(ctx context.Context, caller domain.Identity, guard domain.Guard) (net, fee domain.Amount, err error)
	ContributorWithdraw(ctx context.Context, caller, holder domain.Identity, assets domain.Amount, receiver domain.Identity, guard domain.Guard) (shares, paid domain.Amount, err error)
	SetExpiration(ctx context.Context, caller domain.Identity, ttl time.Duration) (time.Time, error)
}

// Command is a privileged call routed through the wallet.
type Command interface {
	Name() string
	Apply(ctx context.Context, actor domain.Identity, target CommandTarget) (Result, error)
}

// Result carries whatever the applied command produced.
type Result struct {
	Net        domain.Amount
	Fee        domain.Amount
	Shares     domain.Amount
	Assets     domain.Amount
	Expiration time.Time
}

// BeneficiaryWithdrawCommand sweeps the vault to the beneficiary.
type BeneficiaryWithdrawCommand struct {
	Guard domain.Guard
}

func (BeneficiaryWithdrawCommand) Name() string { return "beneficiary_withdraw" }

func (c BeneficiaryWithdrawCommand) Apply(ctx context.Context, actor domain.Identity, target CommandTarget) (Result, error) {
	net, fee, err := target.BeneficiaryWithdraw(ctx, actor, c.Guard)
	if err != nil {
		return Result{}, err
	}
	return Result{Net: net, Fee: fee, Assets: net + fee}, nil
}

// ContributorWithdrawCommand refunds a holder pro rata.
type ContributorWithdrawCommand struct {
	Holder   domain.Identity
	Assets   domain.Amount
	Receiver domain.Identity
	Guard    domain.Guard
}

func (ContributorWithdrawCommand) Name() string { return "contributor_withdraw" }

func (c ContributorWithdrawCommand) Apply(ctx context.Context, actor domain.Identity, target CommandTarget) (Result, error) {
	shares, paid, err := target.ContributorWithdraw(ctx, actor, c.Holder, c.Assets, c.Receiver, c.Guard)
	if err != nil {
		return Result{}, err
	}
	return Result{Shares: shares, Assets: paid}, nil
}

// SetExpirationCommand moves the campaign deadline to now + TTL.
type SetExpirationCommand struct {
	TTL time.Duration
}

func (SetExpirationCommand) Name() string { return "set_expiration" }

func (c SetExpirationCommand) Apply(ctx context.Context, actor domain.Identity, target CommandTarget) (Result, error) {
	exp, err := target.SetExpiration(ctx, actor, c.TTL)
	if err != nil {
		return Result{}, err
	}
	return Result{Expiration: exp}, nil
}
