package wallet

import (
	"context"
	"log/slog"

	"campaign-vault/internal/core/domain"
	"campaign-vault/internal/core/port"
)

// Wallet implements port.AuthorizationWallet. It is owned by the campaign
// beneficiary and registers exactly one controller module; commands from
// any other caller are refused before they reach the vault.
type Wallet struct {
	owner  domain.Identity
	module domain.Identity
	target port.CommandTarget
	logger *slog.Logger
}

// New returns a wallet acting as owner that accepts commands from module only.
func New(owner, module domain.Identity, target port.CommandTarget, logger *slog.Logger) *Wallet {
	return &Wallet{owner: owner, module: module, target: target, logger: logger}
}

// ExecuteAsModule validates the sender against the registered module and
// applies cmd with the wallet owner as acting principal.
func (w *Wallet) ExecuteAsModule(ctx context.Context, caller domain.Identity, cmd port.Command) (port.Result, error) {
	if w.module == "" || caller != w.module {
		w.logger.Warn("module call refused",
			slog.String("caller", string(caller)),
			slog.String("command", cmd.Name()))
		return port.Result{}, &domain.NotAuthorizedError{Caller: caller}
	}
	res, err := cmd.Apply(ctx, w.owner, w.target)
	if err != nil {
		return port.Result{}, err
	}
	w.logger.Info("module call executed",
		slog.String("command", cmd.Name()),
		slog.String("owner", string(w.owner)))
	return res, nil
}

// Module returns the registered controller identity.
func (w *Wallet) Module() domain.Identity {
	return w.module
}
