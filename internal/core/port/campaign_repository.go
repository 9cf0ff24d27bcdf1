package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-vault/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaign and share
// accounting state. It is an outbound port in hexagonal architecture.
// Implementations must serialize Update calls per campaign so that a read
// followed by a write can never interleave with another operation.
type CampaignRepository interface {
	// EnsureCampaign inserts c unless a campaign with the same ID exists and
	// returns the stored campaign. Construction parameters of an existing
	// campaign are never overwritten.
	EnsureCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	// GetCampaign returns the campaign or domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// GetHolding returns the holder's shares. Unknown holders have zero shares.
	GetHolding(ctx context.Context, id uuid.UUID, holder domain.Identity) (domain.Holding, error)
	// ListEvents returns the most recent events, newest first.
	ListEvents(ctx context.Context, id uuid.UUID, limit int) ([]domain.Event, error)
	// Update runs fn as one atomic unit of work against the locked
	// campaign. Changes staged on the unit are persisted only when fn
	// returns nil; otherwise nothing is written.
	Update(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, unit CampaignUnit) error) error
}

// CampaignUnit is the staging area handed to CampaignRepository.Update.
type CampaignUnit interface {
	// Campaign returns the locked campaign. Mutations are persisted on commit.
	Campaign() *domain.Campaign
	Holding(ctx context.Context, holder domain.Identity) (domain.Holding, error)
	PutHolding(ctx context.Context, h domain.Holding) error
	Emit(events ...domain.Event)
}
