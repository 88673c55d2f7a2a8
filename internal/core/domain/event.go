package domain

import "time"

// Impression is a record of an ad being shown. Rows are append-only and
// immutable once written; DeliveredAt is the only field set after insert,
// when the tracking pixel confirms the render.
type Impression struct {
	ID          int64
	Token       string
	CreativeID  int64
	CampaignID  int64
	SlotID      int64
	PublisherID string
	Amount      int64 // amount charged, minor units
	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// Click is an append-only record of a click event.
type Click struct {
	ID          int64
	Token       string
	CreativeID  int64
	CampaignID  int64
	SlotID      int64
	PublisherID string
	Amount      int64
	CreatedAt   time.Time
}
