package staticcatalog

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"duskpact/internal/domain/bargain"
)

// Provider serves tunable balance data from JSON files under Root. Missing
// or unreadable files fall back to the compiled-in defaults; balance data
// must never be a fatal error.
type Provider struct {
	Root string
}

type offerSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Advantage   bool   `json:"advantage"`
	Target      string `json:"target"`
	Magnitude   int    `json:"magnitude"`
}

type cardSpec struct {
	Name    string    `json:"name"`
	Kind    string    `json:"kind"`
	Benefit offerSpec `json:"benefit"`
	Cost    offerSpec `json:"cost"`
}

func (p Provider) DefaultOffers(_ context.Context) ([]bargain.Offer, error) {
	var specs []offerSpec
	if !p.readJSON("default_offers.json", &specs) {
		return defaultOffers(), nil
	}
	out := make([]bargain.Offer, 0, len(specs))
	for _, s := range specs {
		out = append(out, bargain.NewOffer(s.Name, s.Description, s.Advantage, bargain.Attribute(s.Target), s.Magnitude, ""))
	}
	if len(out) == 0 {
		return defaultOffers(), nil
	}
	return out, nil
}

func (p Provider) FallbackCards(_ context.Context) ([]bargain.Card, error) {
	var specs []cardSpec
	if !p.readJSON("fallback_cards.json", &specs) {
		return fallbackCards(), nil
	}
	out := make([]bargain.Card, 0, len(specs))
	for i, s := range specs {
		kind := bargain.CardKind(s.Kind)
		if kind == "" {
			kind = bargain.CardFixed
		}
		benefit := bargain.NewOffer(s.Benefit.Name, s.Benefit.Description, true, bargain.Attribute(s.Benefit.Target), s.Benefit.Magnitude, "")
		cost := bargain.NewOffer(s.Cost.Name, s.Cost.Description, false, bargain.Attribute(s.Cost.Target), s.Cost.Magnitude, "")
		card := bargain.BuildCard(fallbackCardID(i), kind, benefit, cost)
		if s.Name != "" {
			card.Name = s.Name
		}
		out = append(out, card)
	}
	if len(out) == 0 {
		return fallbackCards(), nil
	}
	return out, nil
}

func (p Provider) Ladder(_ context.Context) (bargain.Ladder, error) {
	var raw map[string]map[string]int
	if !p.readJSON("intensity_ladder.json", &raw) {
		return bargain.DefaultLadder(), nil
	}
	ladder := bargain.Ladder{}
	for attr, tiers := range raw {
		entry := map[bargain.Intensity]int{}
		for tier, v := range tiers {
			entry[bargain.Intensity(tier)] = v
		}
		ladder[bargain.Attribute(attr)] = entry
	}
	if len(ladder) == 0 {
		return bargain.DefaultLadder(), nil
	}
	return ladder, nil
}

func (p Provider) readJSON(name string, out any) bool {
	if p.Root == "" {
		return false
	}
	b, err := os.ReadFile(filepath.Join(p.Root, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("catalog: read %s: %v, using defaults", name, err)
		}
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		log.Printf("catalog: parse %s: %v, using defaults", name, err)
		return false
	}
	return true
}
