package port

import "context"

// Ledger owns authoritative budget state per campaign. It is the single
// mutual-exclusion boundary for spend: implementations must apply the
// budget check and the increment as one indivisible operation relative to
// other Charge calls on the same campaign. Charges on different campaigns
// may proceed fully in parallel.
type Ledger interface {
	// Charge increments the campaign's spent amount by amount (minor
	// units, >= 0) and returns the new spent total. The charge is
	// rejected whole when the campaign is not active
	// (ErrCampaignInactive), unknown (ErrCampaignNotFound), or the full
	// amount does not fit in the remaining budget (ErrBudgetExhausted) —
	// partial charges are never applied. A charge that lands exactly on
	// the budget flips the campaign to ended in the same operation.
	// Once Charge returns successfully the spend is final; callers must
	// not attempt to roll it back.
	Charge(ctx context.Context, campaignID, amount int64) (int64, error)
}
