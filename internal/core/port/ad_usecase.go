package port

import (
	"context"

	"adserve/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ad engine. This
// interface is the primary port into the application; the HTTP adapter
// depends on it and mock implementations are generated for testing.
type AdUseCase interface {
	// PlaceAd runs one placement: resolve the slot, auction the eligible
	// campaigns, charge the winner's per-impression price and log the
	// impression. On no fill — no eligible campaign, the winner has no
	// creatives, or the charge was rejected — the returned Placement has
	// Filled false and carries only the slot, so callers can still size
	// the fallback. ErrSlotNotFound is returned for an unknown slot key.
	// A rejected charge never renders the creative.
	PlaceAd(ctx context.Context, slotKey string) (*Placement, error)

	// TrackImpression confirms delivery for a previously placed
	// impression by its single-use token. Unknown or reused tokens are
	// not errors.
	TrackImpression(ctx context.Context, token string) error

	// TrackClick validates the creative, charges the campaign's CPC and
	// credits the slot's publisher, then returns the advertiser landing
	// URL. The URL is returned even when the charge is rejected — budget
	// exhaustion stops revenue, not the redirect. ErrCreativeNotFound is
	// returned when the creative does not resolve; nothing is charged.
	TrackClick(ctx context.Context, creativeID, slotID int64) (string, error)

	// ServeAd is the legacy placement: a uniform random pick among
	// eligible campaigns, charged and credited like the auction path.
	// Returns (nil, nil) when nothing is eligible.
	ServeAd(ctx context.Context, publisherID string) (*LegacyAd, error)

	// LegacyClick charges a click on the given creative and credits the
	// caller-supplied publisher, then returns the landing URL.
	LegacyClick(ctx context.Context, adID int64, publisherID string) (string, error)

	// GetStats returns aggregated impressions, clicks and cost for the
	// period. When req.CampaignID is nil, stats span all campaigns.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// PublisherEarnings returns the publisher's earnings aggregate. A
	// publisher with no history gets a zero-valued record.
	PublisherEarnings(ctx context.Context, publisherID string) (*domain.Earnings, error)
}

// Placement is the render payload of a placement request. URLs are
// relative paths; the HTTP layer resolves them against the configured base
// URL. The pixel URL carries a single-use token opaque to the embedding
// page. When Filled is false only Slot is meaningful.
type Placement struct {
	Slot       domain.Slot
	Filled     bool
	CreativeID int64
	Title      string
	ImageURL   string
	Width      int
	Height     int
	ClickURL   string
	PixelURL   string
}

// LegacyAd is the JSON payload of the legacy /ads/serve endpoint.
type LegacyAd struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	ClickURL string `json:"clickUrl"`
}
