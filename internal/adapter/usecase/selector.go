package usecase

import (
	"math/rand"
	"sync"

	"adserve/internal/core/port"
)

// Selector picks a winner among eligible candidates, or nil when there is
// none. The two implementations are the two selection policies the system
// supports: the CPM-ranked auction used by placements and the legacy
// random pick kept for the old serve endpoint. They are deliberately
// separate strategies, not one policy with a flag.
type Selector interface {
	Select(candidates []port.Candidate) *port.Candidate
}

// AuctionSelector is a greedy single-pass auction: the highest cpm wins,
// ties break on ascending campaign id so results are reproducible.
type AuctionSelector struct{}

func (AuctionSelector) Select(candidates []port.Candidate) *port.Candidate {
	if len(candidates) == 0 {
		return nil
	}
	best := &candidates[0]
	for i := 1; i < len(candidates); i++ {
		c := &candidates[i]
		if c.Campaign.CPM > best.Campaign.CPM ||
			(c.Campaign.CPM == best.Campaign.CPM && c.Campaign.ID < best.Campaign.ID) {
			best = c
		}
	}
	return best
}

// RandomSelector picks uniformly among the candidates. The mutex guards
// the rand source, which is not safe for concurrent use.
type RandomSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSelector returns a random selector seeded with seed.
func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{rnd: rand.New(rand.NewSource(seed))}
}

func (s *RandomSelector) Select(candidates []port.Candidate) *port.Candidate {
	if len(candidates) == 0 {
		return nil
	}
	s.mu.Lock()
	i := s.rnd.Intn(len(candidates))
	s.mu.Unlock()
	return &candidates[i]
}
