package behavior

import "time"

// Payload carries the typed detail fields an observation may record. Each
// trigger type fills the subset that describes its pattern; zero values mean
// "not set" and are skipped on merge.
type Payload struct {
	KillerName     string  `json:"killer_name,omitempty"`
	SkillName      string  `json:"skill_name,omitempty"`
	EnemyName      string  `json:"enemy_name,omitempty"`
	UsageRatio     float64 `json:"usage_ratio,omitempty"`
	HealthRatio    float64 `json:"health_ratio,omitempty"`
	ManaRatio      float64 `json:"mana_ratio,omitempty"`
	DamageShare    float64 `json:"damage_share,omitempty"`
	StreakLength   int     `json:"streak_length,omitempty"`
	TurnCount      int     `json:"turn_count,omitempty"`
	CoinsSeen      int     `json:"coins_seen,omitempty"`
	UnvisitedShops int     `json:"unvisited_shops,omitempty"`
	ItemCount      int     `json:"item_count,omitempty"`
}

// mergeFrom overwrites every field the incoming payload has set, leaving the
// rest intact.
func (p *Payload) mergeFrom(in Payload) {
	if in.KillerName != "" {
		p.KillerName = in.KillerName
	}
	if in.SkillName != "" {
		p.SkillName = in.SkillName
	}
	if in.EnemyName != "" {
		p.EnemyName = in.EnemyName
	}
	if in.UsageRatio != 0 {
		p.UsageRatio = in.UsageRatio
	}
	if in.HealthRatio != 0 {
		p.HealthRatio = in.HealthRatio
	}
	if in.ManaRatio != 0 {
		p.ManaRatio = in.ManaRatio
	}
	if in.DamageShare != 0 {
		p.DamageShare = in.DamageShare
	}
	if in.StreakLength != 0 {
		p.StreakLength = in.StreakLength
	}
	if in.TurnCount != 0 {
		p.TurnCount = in.TurnCount
	}
	if in.CoinsSeen != 0 {
		p.CoinsSeen = in.CoinsSeen
	}
	if in.UnvisitedShops != 0 {
		p.UnvisitedShops = in.UnvisitedShops
	}
	if in.ItemCount != 0 {
		p.ItemCount = in.ItemCount
	}
}

// Observation is one live record of a detected pattern. The profile keeps at
// most one per (trigger, map, similarity key); repeats merge instead of
// appending.
type Observation struct {
	Trigger     TriggerType `json:"trigger"`
	Timestamp   time.Time   `json:"timestamp"`
	MapContext  string      `json:"map_context"`
	RepeatCount int         `json:"repeat_count"`
	Resolved    bool        `json:"resolved"`
	Payload     Payload     `json:"payload"`
}

func NewObservation(trigger TriggerType, mapContext string, at time.Time, payload Payload) Observation {
	return Observation{
		Trigger:     trigger,
		Timestamp:   at,
		MapContext:  mapContext,
		RepeatCount: 1,
		Payload:     payload,
	}
}

func (o *Observation) mergeFrom(in Observation) {
	o.RepeatCount++
	if in.Timestamp.After(o.Timestamp) {
		o.Timestamp = in.Timestamp
	}
	o.Payload.mergeFrom(in.Payload)
	// A re-detected pattern surfaces again even if an earlier copy was
	// already consumed into an offer.
	o.Resolved = false
}
