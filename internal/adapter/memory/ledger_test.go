package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

func activeCampaign(id, budget, cpm int64) domain.Campaign {
	return domain.Campaign{ID: id, Status: domain.StatusActive, Budget: budget, CPM: cpm}
}

// TestChargeUntilExhausted drains a budget of 100 with per-impression
// charges of 1 (cpm 10) and verifies the exact exhaustion transition.
func TestChargeUntilExhausted(t *testing.T) {
	l := NewLedger()
	c := activeCampaign(1, 100, 10)
	l.Add(c)

	price := c.ImpressionPrice()
	require.EqualValues(t, 1, price)

	ctx := context.Background()
	for i := int64(1); i <= 100; i++ {
		spent, err := l.Charge(ctx, 1, price)
		require.NoError(t, err)
		require.Equal(t, i, spent)
	}

	// the exhausting charge flips the campaign to ended atomically
	status, spent, ok := l.Snapshot(1)
	require.True(t, ok)
	assert.Equal(t, domain.StatusEnded, status)
	assert.EqualValues(t, 100, spent)

	// once exhausted, always BudgetExhausted — never Charged, and not
	// masked by the automatic ended flip
	for i := 0; i < 5; i++ {
		_, err := l.Charge(ctx, 1, price)
		assert.ErrorIs(t, err, port.ErrBudgetExhausted)
	}
}

// TestChargeHardCap rejects a charge that does not fit whole: no partial
// billing.
func TestChargeHardCap(t *testing.T) {
	l := NewLedger()
	l.Add(domain.Campaign{ID: 1, Status: domain.StatusActive, Budget: 10, BudgetSpent: 8})

	_, err := l.Charge(context.Background(), 1, 5)
	assert.ErrorIs(t, err, port.ErrBudgetExhausted)

	_, spent, _ := l.Snapshot(1)
	assert.EqualValues(t, 8, spent, "rejected charge must not move the spent amount")

	spent, err = l.Charge(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 10, spent)
}

func TestChargeInactiveAndUnknown(t *testing.T) {
	l := NewLedger()
	l.Add(domain.Campaign{ID: 7, Status: domain.StatusPaused, Budget: 100})

	_, err := l.Charge(context.Background(), 7, 1)
	assert.ErrorIs(t, err, port.ErrCampaignInactive)

	_, err = l.Charge(context.Background(), 404, 1)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

// TestConcurrentChargesHoldCap hammers one campaign from many goroutines
// and checks the two core invariants: the final spent amount never
// exceeds the budget, and it equals the sum of the successfully charged
// amounts (no lost or phantom spend).
func TestConcurrentChargesHoldCap(t *testing.T) {
	const (
		budget  = 1000
		workers = 50
		rounds  = 100
		amount  = 3
	)
	l := NewLedger()
	l.Add(activeCampaign(1, budget, 0))

	var charged atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				if _, err := l.Charge(context.Background(), 1, amount); err == nil {
					charged.Add(amount)
				}
			}
		}()
	}
	wg.Wait()

	_, spent, ok := l.Snapshot(1)
	require.True(t, ok)
	assert.LessOrEqual(t, spent, int64(budget))
	assert.Equal(t, charged.Load(), spent, "sum of charged amounts must equal final spent")
}

// TestConcurrentChargesIndependentCampaigns verifies charges on different
// campaigns do not interfere.
func TestConcurrentChargesIndependentCampaigns(t *testing.T) {
	l := NewLedger()
	l.Add(activeCampaign(1, 100, 0))
	l.Add(activeCampaign(2, 100, 0))

	var wg sync.WaitGroup
	wg.Add(2)
	for id := int64(1); id <= 2; id++ {
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < 60; i++ {
				_, _ = l.Charge(context.Background(), id, 1)
			}
		}(id)
	}
	wg.Wait()

	for id := int64(1); id <= 2; id++ {
		status, spent, ok := l.Snapshot(id)
		require.True(t, ok)
		assert.EqualValues(t, 100, spent)
		assert.Equal(t, domain.StatusEnded, status)
	}
}
