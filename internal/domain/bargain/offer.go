package bargain

import "duskpact/internal/domain/behavior"

// Offer is one proposed signed stat delta. Immutable once constructed;
// NewOffer normalizes the magnitude sign so Advantage always means "net
// better for the recipient" even on cost-type attributes.
type Offer struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Advantage   bool                 `json:"advantage"`
	Target      Attribute            `json:"target"`
	Magnitude   int                  `json:"magnitude"`
	PlayerSide  bool                 `json:"player_side"`
	Source      behavior.TriggerType `json:"source,omitempty"`
	Skill       *SkillAdjustment     `json:"skill,omitempty"`
}

// SkillAdjustment targets a specific named skill instead of a broad
// attribute. Baseline is the authored magnitude the deltas were tuned at;
// the applier rescales when the negotiated intensity differs.
type SkillAdjustment struct {
	SkillName     string `json:"skill_name"`
	PowerDelta    int    `json:"power_delta,omitempty"`
	ManaCostDelta int    `json:"mana_cost_delta,omitempty"`
	Baseline      int    `json:"baseline"`
}

func NewOffer(name, description string, advantage bool, target Attribute, magnitude int, source behavior.TriggerType) Offer {
	info, _ := Info(target)
	return Offer{
		Name:        name,
		Description: description,
		Advantage:   advantage,
		Target:      target,
		Magnitude:   correctSign(target, advantage, magnitude),
		PlayerSide:  info.PlayerSide,
		Source:      source,
	}
}

func NewSkillOffer(name, description string, advantage bool, target Attribute, magnitude int, source behavior.TriggerType, skill SkillAdjustment) Offer {
	o := NewOffer(name, description, advantage, target, magnitude, source)
	o.Skill = &skill
	return o
}

// correctSign fixes the magnitude sign once at construction so that
// Advantage always means net better for the player: raising player stats,
// lowering player costs, lowering enemy stats, raising enemy costs.
func correctSign(target Attribute, advantage bool, magnitude int) int {
	abs := magnitude
	if abs < 0 {
		abs = -abs
	}
	info, ok := Info(target)
	if !ok {
		return 0
	}
	helpsWhenPositive := info.PlayerSide != info.CostType
	if advantage == helpsWhenPositive {
		return abs
	}
	return -abs
}

// Delta returns the signed delta to apply when the offer is taken at
// magnitude chosen (already sign-corrected scale of Magnitude).
func (o Offer) Delta(chosen int) float64 {
	if chosen == 0 || o.Magnitude == 0 {
		return float64(o.Magnitude)
	}
	sign := 1.0
	if o.Magnitude < 0 {
		sign = -1.0
	}
	abs := chosen
	if abs < 0 {
		abs = -abs
	}
	return sign * float64(abs)
}
