package negotiate

import "duskpact/internal/domain/bargain"

// Match scoring weights. The heuristic favors pairs that read as one
// coherent bargain: same stat neighborhood, comparable size, same origin.
const (
	scoreSameCategory  = 30
	scoreSameSource    = 25
	scoreComplementary = 15
	scoreRatioBand     = 10
	magnitudeBand      = 10
	ratioLow           = 0.8
	ratioHigh          = 1.2
	topMatches         = 3
)

func matchScore(advantage, disadvantage bargain.Offer) int {
	score := 0
	ai, aok := bargain.Info(advantage.Target)
	di, dok := bargain.Info(disadvantage.Target)
	if aok && dok && ai.Category == di.Category {
		score += scoreSameCategory
	}
	diff := absInt(absInt(advantage.Magnitude) - absInt(disadvantage.Magnitude))
	if diff < magnitudeBand {
		score += 20 - diff
	}
	if advantage.Source != "" && advantage.Source == disadvantage.Source {
		score += scoreSameSource
	}
	if bargain.Complementary(advantage.Target, disadvantage.Target) {
		score += scoreComplementary
	}
	if disadvantage.Magnitude != 0 {
		ratio := float64(absInt(advantage.Magnitude)) / float64(absInt(disadvantage.Magnitude))
		if ratio >= ratioLow && ratio <= ratioHigh {
			score += scoreRatioBand
		}
	}
	return score
}

// findBestMatch scores every candidate and returns the index of a random
// pick among the top three. Never strictly greedy; identical triggers would
// otherwise pair identically every time.
func (g *Generator) findBestMatch(advantage bargain.Offer, candidates []bargain.Offer) int {
	if len(candidates) == 0 {
		return -1
	}
	type scored struct {
		idx   int
		score int
	}
	ranked := make([]scored, 0, len(candidates))
	for i, c := range candidates {
		ranked = append(ranked, scored{idx: i, score: matchScore(advantage, c)})
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].score > ranked[j-1].score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	top := topMatches
	if top > len(ranked) {
		top = len(ranked)
	}
	return ranked[g.Rng.Intn(top)].idx
}

// rollKind picks how much of the card stays negotiable. Flexible attributes
// may open attribute choice; everything else splits between intensity-only
// and fully fixed.
func (g *Generator) rollKind(benefit, cost bargain.Offer) bargain.CardKind {
	if bargain.Flexible(benefit.Target) || bargain.Flexible(cost.Target) {
		if g.Rng.Float64() < 0.4 {
			return bargain.CardAttributeAndIntensity
		}
	}
	if g.Rng.Float64() < 0.7 {
		return bargain.CardIntensityOnly
	}
	return bargain.CardFixed
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
