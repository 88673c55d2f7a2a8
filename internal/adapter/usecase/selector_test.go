package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

func candidate(id, cpm int64) port.Candidate {
	return port.Candidate{Campaign: domain.Campaign{ID: id, Status: domain.StatusActive, CPM: cpm, Budget: 1000}}
}

// TestAuctionSelectorHighestCPM checks the cpm=8 campaign beats cpm=5.
func TestAuctionSelectorHighestCPM(t *testing.T) {
	candidates := []port.Candidate{candidate(1, 5), candidate(2, 8)}

	winner := AuctionSelector{}.Select(candidates)
	require.NotNil(t, winner)
	assert.EqualValues(t, 2, winner.Campaign.ID)
}

// TestAuctionSelectorDeterministic verifies the same winner comes out of
// every pass over a fixed candidate set, with ascending id as tie-break.
func TestAuctionSelectorDeterministic(t *testing.T) {
	candidates := []port.Candidate{
		candidate(9, 700),
		candidate(3, 700),
		candidate(5, 200),
	}

	for i := 0; i < 20; i++ {
		winner := AuctionSelector{}.Select(candidates)
		require.NotNil(t, winner)
		assert.EqualValues(t, 3, winner.Campaign.ID, "tie on cpm breaks to the lowest id")
	}
}

func TestAuctionSelectorEmpty(t *testing.T) {
	assert.Nil(t, AuctionSelector{}.Select(nil))
	assert.Nil(t, AuctionSelector{}.Select([]port.Candidate{}))
}

// TestRandomSelectorStaysInDomain draws many picks and verifies they all
// come from the candidate set; it deliberately asserts nothing about the
// distribution.
func TestRandomSelectorStaysInDomain(t *testing.T) {
	candidates := []port.Candidate{candidate(1, 1), candidate(2, 2), candidate(3, 3)}
	sel := NewRandomSelector(42)

	seen := make(map[int64]bool)
	for i := 0; i < 200; i++ {
		pick := sel.Select(candidates)
		require.NotNil(t, pick)
		seen[pick.Campaign.ID] = true
	}
	for id := range seen {
		assert.Contains(t, []int64{1, 2, 3}, id)
	}
}

func TestRandomSelectorEmpty(t *testing.T) {
	assert.Nil(t, NewRandomSelector(1).Select(nil))
}
