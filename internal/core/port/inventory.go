package port

import (
	"context"

	"adserve/internal/core/domain"
)

// Candidate pairs an eligible campaign with its creatives for selection.
type Candidate struct {
	Campaign  domain.Campaign
	Creatives []domain.Creative
}

// Inventory is the read side of the ad store: slots, campaigns and
// creatives. Lookups return (nil, nil) when the row does not exist; the
// usecase maps that to the not-found taxonomy.
type Inventory interface {
	// GetSlotByKey resolves a slot by its public embed key.
	GetSlotByKey(ctx context.Context, key string) (*domain.Slot, error)
	// GetSlot returns a slot by id.
	GetSlot(ctx context.Context, id int64) (*domain.Slot, error)
	// GetEligibleCampaigns returns campaigns that are active and still
	// have remaining budget, each with its creatives. Remaining budget
	// is the authoritative filter: a depleted campaign is excluded even
	// if its status update is still in flight.
	GetEligibleCampaigns(ctx context.Context) ([]Candidate, error)
	// GetCreative returns a creative by id.
	GetCreative(ctx context.Context, id int64) (*domain.Creative, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
}
