package memory

import (
	"context"
	"sync"

	"campaign-vault/internal/core/domain"
)

type allowanceKey struct {
	owner   domain.Identity
	spender domain.Identity
}

// Ledger is an in-process fungible asset with ERC-20 semantics: balances,
// allowances, transfer and transferFrom. The sum of all balances always
// equals Supply. Insufficient funds or allowance make a transfer return
// false rather than an error.
type Ledger struct {
	mu         sync.Mutex
	balances   map[domain.Identity]domain.Amount
	allowances map[allowanceKey]domain.Amount
	supply     domain.Amount
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balances:   make(map[domain.Identity]domain.Amount),
		allowances: make(map[allowanceKey]domain.Amount),
	}
}

// Mint credits amount to account.
func (l *Ledger) Mint(_ context.Context, account domain.Identity, amount domain.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	supply, err := l.supply.Add(amount)
	if err != nil {
		return err
	}
	l.supply = supply
	l.balances[account] += amount
	return nil
}

// MintIfAbsent credits the opening balance of an account the ledger has
// never seen. It reports false and changes nothing when the account already
// exists, even with a zero balance.
func (l *Ledger) MintIfAbsent(_ context.Context, account domain.Identity, amount domain.Amount) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.balances[account]; ok {
		return false, nil
	}
	supply, err := l.supply.Add(amount)
	if err != nil {
		return false, err
	}
	l.supply = supply
	l.balances[account] = amount
	return true, nil
}

// Approve sets the amount spender may move out of owner's account.
func (l *Ledger) Approve(_ context.Context, owner, spender domain.Identity, amount domain.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.allowances[allowanceKey{owner: owner, spender: spender}] = amount
	return nil
}

// Transfer moves amount between accounts. It returns false when the sender
// cannot cover it.
func (l *Ledger) Transfer(_ context.Context, from, to domain.Identity, amount domain.Amount) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(from, to, amount), nil
}

// TransferFrom moves amount out of from's account on spender's behalf and
// consumes the allowance. It returns false when either the allowance or
// the balance is short.
func (l *Ledger) TransferFrom(_ context.Context, spender, from, to domain.Identity, amount domain.Amount) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := allowanceKey{owner: from, spender: spender}
	if l.allowances[key] < amount || l.balances[from] < amount {
		return false, nil
	}
	l.allowances[key] -= amount
	return l.move(from, to, amount), nil
}

// BalanceOf returns the account balance; unknown accounts hold nothing.
func (l *Ledger) BalanceOf(_ context.Context, holder domain.Identity) (domain.Amount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[holder], nil
}

// Supply returns the total amount minted.
func (l *Ledger) Supply() domain.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.supply
}

func (l *Ledger) move(from, to domain.Identity, amount domain.Amount) bool {
	if l.balances[from] < amount {
		return false
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return true
}
