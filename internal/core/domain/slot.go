package domain

import "time"

// Slot is a named placement location on a publisher's page. The key is
// what publisher pages embed and is immutable once created.
type Slot struct {
	ID          int64
	Key         string
	PublisherID string
	Width       int
	Height      int
	CreatedAt   time.Time
}
