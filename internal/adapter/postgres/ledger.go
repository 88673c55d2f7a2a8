package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// Ledger implements port.Ledger on PostgreSQL. The whole charge is one
// conditional UPDATE, so concurrent charges against the same campaign
// serialize on the row and a stale budget read can never slip through: the
// budget check, the increment and the ended-status flip are a single
// indivisible statement.
type Ledger struct {
	pool *pgxpool.Pool
}

// NewLedger returns a new ledger backed by the given pool.
func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

const chargeQuery = `
UPDATE campaigns
SET budget_spent = budget_spent + $2,
    status       = CASE WHEN budget_spent + $2 = budget THEN 'ended' ELSE status END,
    updated_at   = now()
WHERE id = $1
  AND status = 'active'
  AND budget_spent + $2 <= budget
RETURNING budget_spent`

// Charge applies the conditional increment and returns the new spent
// total. When the update matches no row the rejection is classified with a
// follow-up read: the read is only used to pick the error, never to decide
// whether to spend.
func (l *Ledger) Charge(ctx context.Context, campaignID, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("charge amount %d is negative", amount)
	}

	var newSpent int64
	err := l.pool.QueryRow(ctx, chargeQuery, campaignID, amount).Scan(&newSpent)
	if err == nil {
		return newSpent, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("charge campaign %d: %w", campaignID, err)
	}

	var status string
	var budget, spent int64
	err = l.pool.QueryRow(ctx, `SELECT status, budget, budget_spent FROM campaigns WHERE id = $1`, campaignID).
		Scan(&status, &budget, &spent)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrCampaignNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("classify rejected charge for campaign %d: %w", campaignID, err)
	}
	// exhaustion wins over the status check so depleted campaigns keep
	// reporting BudgetExhausted after their automatic flip to ended
	if spent+amount > budget {
		return 0, port.ErrBudgetExhausted
	}
	if status != domain.StatusActive {
		return 0, port.ErrCampaignInactive
	}
	return 0, port.ErrBudgetExhausted
}
