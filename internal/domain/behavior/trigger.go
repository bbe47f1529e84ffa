package behavior

// TriggerType classifies a detected player-behavior pattern. The taxonomy is
// fixed; detectors, the offer catalogue and the merge predicates all key on
// it.
type TriggerType string

const (
	TriggerPlayerDeath        TriggerType = "player_death"
	TriggerAllyDeath          TriggerType = "ally_death"
	TriggerNearDeathEscape    TriggerType = "near_death_escape"
	TriggerCriticalEndHealth  TriggerType = "critical_end_health"
	TriggerLowHealthNoCure    TriggerType = "low_health_no_cure"
	TriggerFlawlessBattle     TriggerType = "flawless_battle"
	TriggerSkillOveruse       TriggerType = "skill_overuse"
	TriggerSkillNeglect       TriggerType = "skill_neglect"
	TriggerAOEReliance        TriggerType = "aoe_reliance"
	TriggerSingleTargetFocus  TriggerType = "single_target_reliance"
	TriggerCureSpam           TriggerType = "cure_spam"
	TriggerItemHoarding       TriggerType = "item_hoarding"
	TriggerManaStreakLow      TriggerType = "mana_streak_low"
	TriggerManaStreakCritical TriggerType = "mana_streak_critical"
	TriggerManaWaste          TriggerType = "mana_waste"
	TriggerStruggleVsTank     TriggerType = "struggle_vs_tank"
	TriggerStruggleVsFast     TriggerType = "struggle_vs_fast"
	TriggerDamageSpike        TriggerType = "damage_spike"
	TriggerDefenseNeglect     TriggerType = "defense_neglect"
	TriggerGlassCannon        TriggerType = "glass_cannon"
	TriggerTurtling           TriggerType = "turtling"
	TriggerLongBattles        TriggerType = "long_battles"
	TriggerShortBattles       TriggerType = "short_battles"
	TriggerEliteStruggle      TriggerType = "elite_struggle"
	TriggerShopIgnored        TriggerType = "shop_ignored"
	TriggerShopSplurge        TriggerType = "shop_splurge"
	TriggerCoinHoarding       TriggerType = "coin_hoarding"
	TriggerPoorEconomy        TriggerType = "poor_economy"
	TriggerMapRevisit         TriggerType = "map_revisit"
)

// resetPreserved lists trigger types whose observations survive a new-game
// reset. Death history keeps informing bargains across runs.
var resetPreserved = map[TriggerType]bool{
	TriggerPlayerDeath: true,
	TriggerAllyDeath:   true,
}

func (t TriggerType) PreservedOnReset() bool {
	return resetPreserved[t]
}

// similarityPredicates drive observation merging. Most trigger types treat
// any two observations on the same map as the same pattern; a few compare
// one payload field. The asymmetry is deliberate: a second death to a
// different killer is a different pattern, a second long battle is not.
var similarityPredicates = map[TriggerType]func(a, b Payload) bool{
	TriggerPlayerDeath:  func(a, b Payload) bool { return a.KillerName == b.KillerName },
	TriggerAllyDeath:    func(a, b Payload) bool { return a.KillerName == b.KillerName },
	TriggerSkillOveruse: func(a, b Payload) bool { return a.SkillName == b.SkillName },
	TriggerSkillNeglect: func(a, b Payload) bool { return a.SkillName == b.SkillName },
	TriggerCureSpam:     func(a, b Payload) bool { return a.SkillName == b.SkillName },
	TriggerDamageSpike:  func(a, b Payload) bool { return a.SkillName == b.SkillName },
}

// Similar reports whether two observations of the same trigger type and map
// context describe the same underlying pattern.
func Similar(a, b Observation) bool {
	if a.Trigger != b.Trigger || a.MapContext != b.MapContext {
		return false
	}
	pred, ok := similarityPredicates[a.Trigger]
	if !ok {
		return true
	}
	return pred(a.Payload, b.Payload)
}
