package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-vault/internal/core/domain"
	"campaign-vault/internal/core/port"
)

const campaignColumns = `id, asset, vault_account, beneficiary, platform_beneficiary, fee_bps, target,
       expiration, total_shares, total_assets, settled_at, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Every Update runs in a serializable transaction holding the
// campaign row lock.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// EnsureCampaign inserts the campaign unless it already exists.
func (r *CampaignRepository) EnsureCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaigns (id, asset, vault_account, beneficiary, platform_beneficiary, fee_bps, target,
                               expiration, total_shares, total_assets, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,0,0,now(),now())
        ON CONFLICT (id) DO NOTHING`,
		c.ID, c.Asset, c.Vault, c.Beneficiary, c.PlatformBeneficiary, int32(c.FeeBps), int64(c.Target), c.Expiration)
	if err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}
	return r.GetCampaign(ctx, c.ID)
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetHolding returns the holder's shares; unknown holders have none.
func (r *CampaignRepository) GetHolding(ctx context.Context, id uuid.UUID, holder domain.Identity) (domain.Holding, error) {
	h := domain.Holding{CampaignID: id, Holder: holder}
	var shares int64
	err := r.pool.QueryRow(ctx, `SELECT shares FROM holdings WHERE campaign_id = $1 AND holder = $2`, id, holder).Scan(&shares)
	if errors.Is(err, pgx.ErrNoRows) {
		return h, nil
	}
	if err != nil {
		return h, err
	}
	h.Shares = domain.Amount(shares)
	return h, nil
}

// ListEvents returns the latest events of a campaign.
func (r *CampaignRepository) ListEvents(ctx context.Context, id uuid.UUID, limit int) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, kind, account, counterparty, amount, shares, expiration, created_at
        FROM campaign_events
        WHERE campaign_id = $1
        ORDER BY seq DESC
        LIMIT $2`, id, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			e              domain.Event
			amount, shares int64
		)
		err := row.Scan(&e.ID, &e.CampaignID, &e.Kind, &e.Account, &e.Counterparty, &amount, &shares, &e.Expiration, &e.CreatedAt)
		e.Amount, e.Shares = domain.Amount(amount), domain.Amount(shares)
		return e, err
	})
}

// Update locks the campaign row and runs fn. Staged holdings, campaign
// totals and events are written in the same transaction before commit.
func (r *CampaignRepository) Update(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, unit port.CampaignUnit) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCampaignNotFound
		}
		if err != nil {
			return err
		}
		u := &unit{tx: tx, campaign: c, holdings: make(map[domain.Identity]domain.Amount), dirty: make(map[domain.Identity]bool)}
		if err = fn(withTx(ctx, tx), u); err != nil {
			return err
		}
		return u.flush(ctx)
	})
}

type unit struct {
	tx       pgx.Tx
	campaign *domain.Campaign
	holdings map[domain.Identity]domain.Amount
	dirty    map[domain.Identity]bool
	events   []domain.Event
}

func (u *unit) Campaign() *domain.Campaign { return u.campaign }

func (u *unit) Holding(ctx context.Context, holder domain.Identity) (domain.Holding, error) {
	h := domain.Holding{CampaignID: u.campaign.ID, Holder: holder}
	if shares, ok := u.holdings[holder]; ok {
		h.Shares = shares
		return h, nil
	}
	var shares int64
	err := u.tx.QueryRow(ctx, `SELECT shares FROM holdings WHERE campaign_id = $1 AND holder = $2 FOR UPDATE`, u.campaign.ID, holder).Scan(&shares)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return h, err
	}
	h.Shares = domain.Amount(shares)
	u.holdings[holder] = h.Shares
	return h, nil
}

func (u *unit) PutHolding(_ context.Context, h domain.Holding) error {
	u.holdings[h.Holder] = h.Shares
	u.dirty[h.Holder] = true
	return nil
}

func (u *unit) Emit(events ...domain.Event) {
	u.events = append(u.events, events...)
}

func (u *unit) flush(ctx context.Context) error {
	c := u.campaign
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := u.tx.Exec(ctx, `
        UPDATE campaigns
        SET expiration = $2, total_shares = $3, total_assets = $4, settled_at = $5, updated_at = now()
        WHERE id = $1`,
		c.ID, c.Expiration, int64(c.TotalShares), int64(c.TotalAssets), c.SettledAt)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}

	batch := &pgx.Batch{}
	for holder := range u.dirty {
		batch.Queue(`
            INSERT INTO holdings (campaign_id, holder, shares, updated_at)
            VALUES ($1,$2,$3,now())
            ON CONFLICT (campaign_id, holder) DO UPDATE SET shares = EXCLUDED.shares, updated_at = now()`,
			c.ID, holder, int64(u.holdings[holder]))
	}
	for _, e := range u.events {
		batch.Queue(`
            INSERT INTO campaign_events (id, campaign_id, kind, account, counterparty, amount, shares, expiration, created_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			e.ID, e.CampaignID, e.Kind, e.Account, e.Counterparty, int64(e.Amount), int64(e.Shares), e.Expiration, e.CreatedAt)
	}
	if batch.Len() == 0 {
		return nil
	}
	return u.tx.SendBatch(ctx, batch).Close()
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                                domain.Campaign
		feeBps                           int32
		target, totalShares, totalAssets int64
	)
	err := row.Scan(
		&c.ID,
		&c.Asset,
		&c.Vault,
		&c.Beneficiary,
		&c.PlatformBeneficiary,
		&feeBps,
		&target,
		&c.Expiration,
		&totalShares,
		&totalAssets,
		&c.SettledAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.FeeBps = uint16(feeBps)
	c.Target = domain.Amount(target)
	c.TotalShares = domain.Amount(totalShares)
	c.TotalAssets = domain.Amount(totalAssets)
	return &c, nil
}
