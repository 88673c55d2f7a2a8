package port

import (
	"context"
	"time"

	"adserve/internal/core/domain"
)

// EventRecorder durably logs billing events and publisher earnings. It is
// downstream of the Ledger: a failed log never undoes a committed charge.
// Impression and Click writes are independent and append-only; earnings
// credits for one publisher are additive and commutative.
type EventRecorder interface {
	// LogImpression appends an impression row. The row is immutable once
	// written except for delivery confirmation via MarkDelivered.
	LogImpression(ctx context.Context, imp *domain.Impression) error
	// MarkDelivered records that the tracking pixel for the given
	// impression token fired. The token is single use: repeated calls
	// are no-ops.
	MarkDelivered(ctx context.Context, token string) error
	// LogClick appends a click row.
	LogClick(ctx context.Context, click *domain.Click) error
	// CreditEarnings adds the delta's counters and revenue to the
	// publisher's aggregate, creating the row on first credit.
	CreditEarnings(ctx context.Context, delta domain.Earnings) error
	// GetEarnings returns the publisher's aggregate, or nil when the
	// publisher has never earned.
	GetEarnings(ctx context.Context, publisherID string) (*domain.Earnings, error)
	// GetStats returns aggregated event counts and cost for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq selects the period and optionally a single campaign.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}

// StatsResp contains aggregated event counts and the summed cost of those
// events in integer minor units.
type StatsResp struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Cost        int64 `json:"cost"`
}
