package apply

import (
	"context"
	"log"
	"sync"

	"duskpact/internal/app/ports"
	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/combat"
)

// UseCase is the single entry point for committing an accepted bargain. It
// mutates the live player object eagerly, records every delta into the
// ledger, and persists the ledger after each acceptance. Enemy deltas stay
// ledger-only: they are re-applied to every fresh spawn instead of being
// written into shared templates.
type UseCase struct {
	mu sync.Mutex

	Ledger   *bargain.Ledger
	Repo     ports.LedgerRepository
	Registry *combat.Registry
	Player   *combat.Combatant
	Ladder   bargain.Ladder
	Metrics  ports.BargainMetrics
}

// Choice carries the player's selections for non-fixed cards. Zero values
// mean "as authored".
type Choice struct {
	BenefitAttribute bargain.Attribute `json:"benefit_attribute,omitempty"`
	CostAttribute    bargain.Attribute `json:"cost_attribute,omitempty"`
	Intensity        bargain.Intensity `json:"intensity,omitempty"`
}

// Apply commits one delta per side. A zero delta with the none attribute is
// the documented no-op for one-sided bargains.
func (u *UseCase) Apply(ctx context.Context, playerAttr, enemyAttr bargain.Attribute, playerDelta, enemyDelta float64) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.applyOne(playerAttr, playerDelta)
	u.applyOne(enemyAttr, enemyDelta)
	return u.persist(ctx)
}

// AcceptCard resolves a card's two offers (honoring attribute and intensity
// choices where the card kind allows them) and commits both.
func (u *UseCase) AcceptCard(ctx context.Context, card bargain.Card, choice Choice) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.applyOffer(card.Benefit, resolveAttribute(card.Kind, card.BenefitChoices, choice.BenefitAttribute, card.Benefit.Target), resolveIntensity(card, choice))
	u.applyOffer(card.Cost, resolveAttribute(card.Kind, card.CostChoices, choice.CostAttribute, card.Cost.Target), resolveIntensity(card, choice))

	if u.Metrics != nil {
		u.Metrics.RecordAccept()
	}
	return u.persist(ctx)
}

// SpawnEnemy hands out a live enemy built from the canonical baseline with
// the full current ledger re-applied. Callers must spawn again rather than
// reuse instances across battles, or deltas would double up.
func (u *UseCase) SpawnEnemy(name string) (combat.Combatant, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.Registry.Baseline(name)
	if !ok {
		log.Printf("apply: unknown enemy %q requested", name)
		return combat.Combatant{}, false
	}
	combat.ApplyLedger(&c, u.Ledger)
	return c, true
}

func (u *UseCase) applyOffer(offer bargain.Offer, target bargain.Attribute, intensity bargain.Intensity) {
	if offer.Skill != nil {
		u.applySkillOffer(offer, intensity)
		return
	}
	delta := u.resolveDelta(offer, target, intensity)
	u.applyOne(target, delta)
}

// resolveDelta turns the negotiated (attribute, intensity) pair back into a
// signed delta with the offer's advantage orientation.
func (u *UseCase) resolveDelta(offer bargain.Offer, target bargain.Attribute, intensity bargain.Intensity) float64 {
	if target == offer.Target && intensity == "" {
		return float64(offer.Magnitude)
	}
	ladder := u.Ladder
	if ladder == nil {
		ladder = bargain.DefaultLadder()
	}
	mag := offer.Magnitude
	if intensity != "" {
		mag = ladder.Magnitude(target, intensity)
	}
	reoriented := bargain.NewOffer(offer.Name, offer.Description, offer.Advantage, target, mag, offer.Source)
	return float64(reoriented.Magnitude)
}

func (u *UseCase) applyOne(attr bargain.Attribute, delta float64) {
	info, ok := bargain.Info(attr)
	if !ok || delta == 0 {
		return
	}
	if info.PlayerSide && info.Category != bargain.CategoryEconomy {
		if u.Player == nil {
			log.Printf("apply: no live player for %s, recording ledger only", attr)
		} else {
			combat.ApplyAttribute(u.Player, attr, delta)
		}
	}
	// Enemy and economy deltas apply lazily from the ledger.
	u.Ledger.Record(attr, delta)
}

// applySkillOffer mutates one named skill directly, rescaling the authored
// deltas when the negotiated intensity differs from the authored baseline.
func (u *UseCase) applySkillOffer(offer bargain.Offer, intensity bargain.Intensity) {
	adj := offer.Skill
	if u.Player == nil {
		log.Printf("apply: no live player for skill offer %q", offer.Name)
		return
	}
	skill := u.Player.FindSkill(adj.SkillName)
	if skill == nil {
		log.Printf("apply: skill %q not found, skipping offer %q", adj.SkillName, offer.Name)
		return
	}

	scale := 1.0
	if intensity != "" && adj.Baseline != 0 {
		ladder := u.Ladder
		if ladder == nil {
			ladder = bargain.DefaultLadder()
		}
		chosen := ladder.Magnitude(offer.Target, intensity)
		scale = float64(chosen) / float64(adj.Baseline)
	}

	// The adjustment deltas are authored with their final direction; only
	// the size rescales with the chosen intensity.
	if adj.PowerDelta != 0 {
		skill.Power = clampInt(skill.Power, scale*float64(adj.PowerDelta), 0)
	}
	if adj.ManaCostDelta != 0 {
		skill.ManaCost = clampInt(skill.ManaCost, scale*float64(adj.ManaCostDelta), 0)
	}
	// Audit both deltas. The authored target covers one of them; the other
	// goes under the matching attribute for the same side so no accepted
	// mutation is missing from the ledger.
	info, _ := bargain.Info(offer.Target)
	powerAttr, manaAttr := offer.Target, offer.Target
	if info.CostType {
		powerAttr = bargain.EnemySkillPower
		if info.PlayerSide {
			powerAttr = bargain.PlayerSkillPower
		}
	} else {
		manaAttr = bargain.EnemyActionManaCost
		if info.PlayerSide {
			manaAttr = bargain.PlayerActionManaCost
		}
	}
	if adj.PowerDelta != 0 {
		u.Ledger.Record(powerAttr, scale*float64(adj.PowerDelta))
	}
	if adj.ManaCostDelta != 0 {
		u.Ledger.Record(manaAttr, scale*float64(adj.ManaCostDelta))
	}
}

func (u *UseCase) persist(ctx context.Context) error {
	if u.Repo == nil {
		return nil
	}
	if err := u.Repo.Save(ctx, u.Ledger.Values()); err != nil {
		log.Printf("apply: ledger save failed: %v", err)
		return nil
	}
	return nil
}

func resolveAttribute(kind bargain.CardKind, choices []bargain.Attribute, chosen, authored bargain.Attribute) bargain.Attribute {
	if kind != bargain.CardAttributeAndIntensity || chosen == "" {
		return authored
	}
	for _, a := range choices {
		if a == chosen {
			return chosen
		}
	}
	return authored
}

func resolveIntensity(card bargain.Card, choice Choice) bargain.Intensity {
	if card.Kind == bargain.CardFixed || choice.Intensity == "" {
		return ""
	}
	for _, i := range card.Intensities {
		if i == choice.Intensity {
			return choice.Intensity
		}
	}
	return ""
}

func clampInt(current int, delta, floor float64) int {
	v := float64(current) + delta
	if v < floor {
		v = floor
	}
	return int(v + 0.5)
}
