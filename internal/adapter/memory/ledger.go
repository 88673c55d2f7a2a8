// Package memory provides an in-memory Ledger with the same charge
// contract as the PostgreSQL adapter. It backs unit tests of the budget
// invariants and can serve local runs without a database.
package memory

import (
	"context"
	"fmt"
	"sync"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

type account struct {
	mu     sync.Mutex
	status string
	budget int64
	spent  int64
}

// Ledger holds one account per campaign. Charges on one campaign
// serialize on the account mutex; different campaigns do not contend.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[int64]*account
}

// NewLedger returns an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[int64]*account)}
}

// Add registers a campaign's budget state. Existing state is replaced.
func (l *Ledger) Add(c domain.Campaign) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[c.ID] = &account{status: c.Status, budget: c.Budget, spent: c.BudgetSpent}
}

// Snapshot returns the campaign's current status and spent amount.
func (l *Ledger) Snapshot(campaignID int64) (status string, spent int64, ok bool) {
	l.mu.RLock()
	acc := l.accounts[campaignID]
	l.mu.RUnlock()
	if acc == nil {
		return "", 0, false
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	return acc.status, acc.spent, true
}

// Charge implements port.Ledger. The check, the increment and the ended
// flip happen under one lock, so the cap holds for any interleaving.
func (l *Ledger) Charge(ctx context.Context, campaignID, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("charge amount %d is negative", amount)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	l.mu.RLock()
	acc := l.accounts[campaignID]
	l.mu.RUnlock()
	if acc == nil {
		return 0, port.ErrCampaignNotFound
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()
	// exhaustion is reported as such even after the status already
	// flipped to ended, so depleted campaigns reject consistently
	if acc.spent+amount > acc.budget {
		return 0, port.ErrBudgetExhausted
	}
	if acc.status != domain.StatusActive {
		return 0, port.ErrCampaignInactive
	}
	acc.spent += amount
	if acc.spent == acc.budget {
		acc.status = domain.StatusEnded
	}
	return acc.spent, nil
}
