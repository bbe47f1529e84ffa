package negotiate

import (
	"math/rand"
	"sync"

	"duskpact/internal/app/ports"
	"duskpact/internal/domain/bargain"

	"github.com/google/uuid"
)

// Generator pairs advantage and disadvantage offers into player-facing
// cards for one negotiation session. Offers move between an unused and a
// used set; generate and release are inverse moves, so the pool totals stay
// constant for the whole session.
type Generator struct {
	mu  sync.Mutex
	Rng *rand.Rand

	Metrics    ports.BargainMetrics
	MaxRefresh int

	advUnused []bargain.Offer
	advUsed   []bargain.Offer
	disUnused []bargain.Offer
	disUsed   []bargain.Offer

	refreshes map[int]int
}

func NewGenerator(rng *rand.Rand, metrics ports.BargainMetrics, maxRefresh int) *Generator {
	if maxRefresh <= 0 {
		maxRefresh = 2
	}
	return &Generator{
		Rng:        rng,
		Metrics:    metrics,
		MaxRefresh: maxRefresh,
		refreshes:  map[int]int{},
	}
}

// BeginSession rebuilds both working pools from the given offers (default
// catalogue plus interpreted observations) and clears all bookkeeping from
// the previous session.
func (g *Generator) BeginSession(offers []bargain.Offer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.advUnused = g.advUnused[:0]
	g.disUnused = g.disUnused[:0]
	g.advUsed = nil
	g.disUsed = nil
	g.refreshes = map[int]int{}
	for _, o := range offers {
		if o.Advantage {
			g.advUnused = append(g.advUnused, o)
		} else {
			g.disUnused = append(g.disUnused, o)
		}
	}
	g.Rng.Shuffle(len(g.advUnused), func(i, j int) {
		g.advUnused[i], g.advUnused[j] = g.advUnused[j], g.advUnused[i]
	})
	g.Rng.Shuffle(len(g.disUnused), func(i, j int) {
		g.disUnused[i], g.disUnused[j] = g.disUnused[j], g.disUnused[i]
	})
}

// GenerateCards builds up to n cards, bounded by whichever pool runs out
// first. Shortfall is not an error; the caller falls back to its static
// card set.
func (g *Generator) GenerateCards(n int) []bargain.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []bargain.Card
	for len(out) < n {
		card, ok := g.drawCard()
		if !ok {
			break
		}
		out = append(out, card)
	}
	if g.Metrics != nil && len(out) > 0 {
		g.Metrics.RecordCardsGenerated(len(out))
	}
	return out
}

// GenerateSingleCard draws one fresh pairing, or nil when either pool is
// exhausted.
func (g *Generator) GenerateSingleCard() *bargain.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	card, ok := g.drawCard()
	if !ok {
		return nil
	}
	if g.Metrics != nil {
		g.Metrics.RecordCardsGenerated(1)
	}
	return &card
}

// ReleaseCardOffers returns a card's two offers to the unused sets so they
// can be drawn again.
func (g *Generator) ReleaseCardOffers(card bargain.Card) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if idx := indexOfOffer(g.advUsed, card.Benefit); idx >= 0 {
		g.advUsed = removeOffer(g.advUsed, idx)
		g.advUnused = append(g.advUnused, card.Benefit)
	}
	if idx := indexOfOffer(g.disUsed, card.Cost); idx >= 0 {
		g.disUsed = removeOffer(g.disUsed, idx)
		g.disUnused = append(g.disUnused, card.Cost)
	}
}

// RefreshSlot replaces the card in a slot, enforcing the per-slot refresh
// cap. The released offers re-enter the pools even though the spent refresh
// does not come back.
func (g *Generator) RefreshSlot(slot int, current bargain.Card) (*bargain.Card, bool) {
	g.mu.Lock()
	if g.refreshes[slot] >= g.MaxRefresh {
		g.mu.Unlock()
		return nil, false
	}
	g.refreshes[slot]++
	g.mu.Unlock()

	g.ReleaseCardOffers(current)
	card := g.GenerateSingleCard()
	if g.Metrics != nil {
		g.Metrics.RecordRefresh()
	}
	return card, true
}

// Reset drops all session state, pools included. Used by the new-game
// reset.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.advUnused = nil
	g.advUsed = nil
	g.disUnused = nil
	g.disUsed = nil
	g.refreshes = map[int]int{}
}

// PoolSizes reports (advantage unused, advantage used, disadvantage unused,
// disadvantage used) for diagnostics and conservation checks.
func (g *Generator) PoolSizes() (int, int, int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.advUnused), len(g.advUsed), len(g.disUnused), len(g.disUsed)
}

func (g *Generator) drawCard() (bargain.Card, bool) {
	if len(g.advUnused) == 0 || len(g.disUnused) == 0 {
		return bargain.Card{}, false
	}
	ai := g.Rng.Intn(len(g.advUnused))
	benefit := g.advUnused[ai]
	di := g.findBestMatch(benefit, g.disUnused)
	if di < 0 {
		return bargain.Card{}, false
	}
	cost := g.disUnused[di]

	g.advUnused = removeOffer(g.advUnused, ai)
	g.disUnused = removeOffer(g.disUnused, di)
	g.advUsed = append(g.advUsed, benefit)
	g.disUsed = append(g.disUsed, cost)

	kind := g.rollKind(benefit, cost)
	return bargain.BuildCard(uuid.NewString(), kind, benefit, cost), true
}

func indexOfOffer(pool []bargain.Offer, target bargain.Offer) int {
	for i, o := range pool {
		if sameOffer(o, target) {
			return i
		}
	}
	return -1
}

// sameOffer matches on identity-defining fields; descriptions may differ
// between authored and interpreted copies of the same trade.
func sameOffer(a, b bargain.Offer) bool {
	return a.Name == b.Name &&
		a.Target == b.Target &&
		a.Magnitude == b.Magnitude &&
		a.Advantage == b.Advantage &&
		a.Source == b.Source
}

func removeOffer(pool []bargain.Offer, idx int) []bargain.Offer {
	out := make([]bargain.Offer, 0, len(pool)-1)
	out = append(out, pool[:idx]...)
	return append(out, pool[idx+1:]...)
}
