package domain

import "time"

// Campaign statuses. A campaign is charged only while active; the ledger
// flips it to ended in the same operation that exhausts the budget.
const (
	StatusActive = "active"
	StatusPaused = "paused"
	StatusEnded  = "ended"
)

// Campaign represents an advertiser's budgeted unit of spend.
// All monetary fields are integer minor units (e.g. cents).
type Campaign struct {
	ID           int64
	AdvertiserID string
	Name         string
	Status       string // active, paused, ended
	CPM          int64  // bid per thousand impressions
	CPC          int64  // bid per click
	Budget       int64  // total budget
	BudgetSpent  int64  // 0 <= BudgetSpent <= Budget
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Remaining returns the unspent part of the budget.
func (c Campaign) Remaining() int64 {
	return c.Budget - c.BudgetSpent
}

// ImpressionPrice converts the CPM bid into a per-impression charge,
// rounding up so a positive bid never charges zero.
func (c Campaign) ImpressionPrice() int64 {
	if c.CPM <= 0 {
		return 0
	}
	return (c.CPM + 999) / 1000
}
