package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-vault/internal/core/domain"
)

var errInsufficient = errors.New("insufficient balance or allowance")

// Ledger implements port.AssetLedger on the ledger_balances and
// ledger_allowances tables. Called inside a CampaignRepository.Update it
// joins the repository transaction through a savepoint, so a rolled back
// vault operation also rolls back its transfers.
type Ledger struct {
	pool *pgxpool.Pool
}

// NewLedger returns a ledger over pool.
func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

// Transfer moves amount from one account to another. It returns false when
// the sender's balance is too low.
func (l *Ledger) Transfer(ctx context.Context, from, to domain.Identity, amount domain.Amount) (bool, error) {
	err := inTx(ctx, l.pool, func(tx pgx.Tx) error {
		return move(ctx, tx, from, to, amount)
	})
	return settle(err)
}

// TransferFrom spends spender's allowance on from's account.
func (l *Ledger) TransferFrom(ctx context.Context, spender, from, to domain.Identity, amount domain.Amount) (bool, error) {
	err := inTx(ctx, l.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE ledger_allowances SET amount = amount - $3
            WHERE owner = $1 AND spender = $2 AND amount >= $3`,
			from, spender, int64(amount))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errInsufficient
		}
		return move(ctx, tx, from, to, amount)
	})
	return settle(err)
}

// BalanceOf returns the account balance; unknown accounts hold nothing.
func (l *Ledger) BalanceOf(ctx context.Context, holder domain.Identity) (domain.Amount, error) {
	q := l.pool.QueryRow
	if tx, ok := txFromContext(ctx); ok {
		q = tx.QueryRow
	}
	var balance int64
	err := q(ctx, `SELECT balance FROM ledger_balances WHERE account = $1`, holder).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return domain.Amount(balance), nil
}

// Mint credits amount to account.
func (l *Ledger) Mint(ctx context.Context, account domain.Identity, amount domain.Amount) error {
	return inTx(ctx, l.pool, func(tx pgx.Tx) error {
		return credit(ctx, tx, account, amount)
	})
}

// MintIfAbsent inserts the opening balance of an account that has no row
// yet. Existing accounts are left untouched and false is returned.
func (l *Ledger) MintIfAbsent(ctx context.Context, account domain.Identity, amount domain.Amount) (bool, error) {
	tag, err := l.pool.Exec(ctx, `
        INSERT INTO ledger_balances (account, balance) VALUES ($1,$2)
        ON CONFLICT (account) DO NOTHING`,
		account, int64(amount))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Approve sets the amount spender may move out of owner's account.
func (l *Ledger) Approve(ctx context.Context, owner, spender domain.Identity, amount domain.Amount) error {
	_, err := l.pool.Exec(ctx, `
        INSERT INTO ledger_allowances (owner, spender, amount) VALUES ($1,$2,$3)
        ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount`,
		owner, spender, int64(amount))
	return err
}

func move(ctx context.Context, tx pgx.Tx, from, to domain.Identity, amount domain.Amount) error {
	tag, err := tx.Exec(ctx, `
        UPDATE ledger_balances SET balance = balance - $2
        WHERE account = $1 AND balance >= $2`,
		from, int64(amount))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errInsufficient
	}
	return credit(ctx, tx, to, amount)
}

func credit(ctx context.Context, tx pgx.Tx, account domain.Identity, amount domain.Amount) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO ledger_balances (account, balance) VALUES ($1,$2)
        ON CONFLICT (account) DO UPDATE SET balance = ledger_balances.balance + EXCLUDED.balance`,
		account, int64(amount))
	return err
}

// settle maps the insufficient-funds rollback to a false return.
func settle(err error) (bool, error) {
	if errors.Is(err, errInsufficient) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
