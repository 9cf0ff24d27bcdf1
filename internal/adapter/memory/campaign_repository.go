package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"campaign-vault/internal/core/domain"
	"campaign-vault/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository in process. A single
// mutex serializes every unit of work, which gives the same guarantees as
// the serializable transactions of the postgres adapter.
type CampaignRepository struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]domain.Campaign
	holdings  map[uuid.UUID]map[domain.Identity]domain.Amount
	events    map[uuid.UUID][]domain.Event
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		campaigns: make(map[uuid.UUID]domain.Campaign),
		holdings:  make(map[uuid.UUID]map[domain.Identity]domain.Amount),
		events:    make(map[uuid.UUID][]domain.Event),
	}
}

// EnsureCampaign stores c unless a campaign with the same ID exists, and
// returns the stored copy either way.
func (r *CampaignRepository) EnsureCampaign(_ context.Context, c domain.Campaign) (*domain.Campaign, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.campaigns[c.ID]; ok {
		return clone(existing), nil
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	r.campaigns[c.ID] = c
	r.holdings[c.ID] = make(map[domain.Identity]domain.Amount)
	return clone(c), nil
}

// GetCampaign returns a copy of the campaign or domain.ErrCampaignNotFound.
func (r *CampaignRepository) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return clone(c), nil
}

// GetHolding returns the holder's shares. Unknown holders hold zero.
func (r *CampaignRepository) GetHolding(_ context.Context, id uuid.UUID, holder domain.Identity) (domain.Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[id]; !ok {
		return domain.Holding{}, domain.ErrCampaignNotFound
	}
	return domain.Holding{CampaignID: id, Holder: holder, Shares: r.holdings[id][holder]}, nil
}

// ListEvents returns up to limit events, newest first.
func (r *CampaignRepository) ListEvents(_ context.Context, id uuid.UUID, limit int) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.events[id]
	out := make([]domain.Event, 0, min(max(limit, 0), len(all)))
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// Update runs fn against a staged copy of the campaign while holding the
// repository lock. Staged holdings, totals and events are applied only when
// fn returns nil.
func (r *CampaignRepository) Update(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, unit port.CampaignUnit) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	u := &unit{
		repo:     r,
		campaign: clone(c),
		staged:   make(map[domain.Identity]domain.Amount),
	}
	if err := fn(ctx, u); err != nil {
		return err
	}

	u.campaign.UpdatedAt = time.Now().UTC()
	r.campaigns[id] = *u.campaign
	for holder, shares := range u.staged {
		r.holdings[id][holder] = shares
	}
	r.events[id] = append(r.events[id], u.events...)
	return nil
}

// TotalHeldShares sums every holding of the campaign.
func (r *CampaignRepository) TotalHeldShares(id uuid.UUID) domain.Amount {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum domain.Amount
	for _, shares := range r.holdings[id] {
		sum += shares
	}
	return sum
}

type unit struct {
	repo     *CampaignRepository
	campaign *domain.Campaign
	staged   map[domain.Identity]domain.Amount
	events   []domain.Event
}

func (u *unit) Campaign() *domain.Campaign { return u.campaign }

func (u *unit) Holding(_ context.Context, holder domain.Identity) (domain.Holding, error) {
	shares, ok := u.staged[holder]
	if !ok {
		shares = u.repo.holdings[u.campaign.ID][holder]
	}
	return domain.Holding{CampaignID: u.campaign.ID, Holder: holder, Shares: shares}, nil
}

func (u *unit) PutHolding(_ context.Context, h domain.Holding) error {
	u.staged[h.Holder] = h.Shares
	return nil
}

func (u *unit) Emit(events ...domain.Event) {
	u.events = append(u.events, events...)
}

func clone(c domain.Campaign) *domain.Campaign {
	if c.SettledAt != nil {
		at := *c.SettledAt
		c.SettledAt = &at
	}
	return &c
}
