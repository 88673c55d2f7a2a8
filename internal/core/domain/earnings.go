package domain

import "time"

// Earnings is the per-publisher revenue aggregate. Counters and revenue
// only ever grow; concurrent credits are additive, so the row is safe to
// update from any number of writers.
type Earnings struct {
	PublisherID string
	Impressions int64
	Clicks      int64
	Revenue     int64 // minor units
	UpdatedAt   time.Time
}
