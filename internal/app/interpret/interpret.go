package interpret

import (
	"math/rand"

	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/behavior"
)

// UseCase turns one observation into exactly one advantage and one
// disadvantage offer, drawn uniformly at random from the trigger's candidate
// catalogue. The randomization is the point: a deterministic trigger must
// not produce a predictable bargain.
type UseCase struct {
	Rng    *rand.Rand
	Ladder bargain.Ladder
}

// Interpret returns two offers (advantage first) or nothing when the
// trigger type has no catalogue entry. It never fails.
func (u UseCase) Interpret(obs behavior.Observation) []bargain.Offer {
	gen, ok := catalogue[obs.Trigger]
	if !ok {
		return nil
	}
	ladder := u.Ladder
	if ladder == nil {
		ladder = bargain.DefaultLadder()
	}
	advs, disads := gen(obs, ladder)
	if len(advs) == 0 || len(disads) == 0 {
		return nil
	}
	return []bargain.Offer{
		advs[u.Rng.Intn(len(advs))],
		disads[u.Rng.Intn(len(disads))],
	}
}

// InterpretAll runs Interpret over a batch, concatenating the results.
func (u UseCase) InterpretAll(observations []behavior.Observation) []bargain.Offer {
	var out []bargain.Offer
	for _, obs := range observations {
		out = append(out, u.Interpret(obs)...)
	}
	return out
}
