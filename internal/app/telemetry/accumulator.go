package telemetry

import "duskpact/internal/domain/combat"

// battleStats is the transient per-battle accumulator. It resets at every
// battle start and is read once, by the detectors, at battle end.
type battleStats struct {
	mapContext string
	player     combat.Combatant
	enemies    []combat.Combatant
	cureItems  int

	actions       int
	skillUses     map[string]int
	skillInfo     map[string]combat.Skill
	aoeUses       int
	singleUses    int
	healUses      int
	manaSkillUses int

	damageBySkill map[string]int
	totalDealt    int

	totalTaken int
	maxHit     int
	maxHitFrom string
	playerHP   int
	playerMP   int

	playerDied bool
	killerName string
	allyDeaths []EntityDeath
}

func newBattleStats(ev BattleStart) *battleStats {
	return &battleStats{
		mapContext:    ev.MapContext,
		player:        ev.Player.Clone(),
		enemies:       cloneAll(ev.Enemies),
		cureItems:     ev.CureItems,
		skillUses:     map[string]int{},
		skillInfo:     map[string]combat.Skill{},
		damageBySkill: map[string]int{},
		playerHP:      ev.Player.HP,
		playerMP:      ev.Player.MP,
	}
}

func cloneAll(in []combat.Combatant) []combat.Combatant {
	out := make([]combat.Combatant, 0, len(in))
	for _, c := range in {
		out = append(out, c.Clone())
	}
	return out
}

func (b *battleStats) recordSkillUse(ev SkillUse) {
	if !ev.PlayerSide {
		return
	}
	b.actions++
	b.skillUses[ev.Skill.Name]++
	b.skillInfo[ev.Skill.Name] = ev.Skill
	if ev.Skill.Shape == combat.TargetMulti {
		b.aoeUses++
	} else {
		b.singleUses++
	}
	if ev.Skill.Kind == combat.SkillHeal {
		b.healUses++
	}
	if ev.Skill.ManaCost > 0 {
		b.manaSkillUses++
		b.playerMP -= ev.Skill.ManaCost
		if b.playerMP < 0 {
			b.playerMP = 0
		}
	}
	if ev.Skill.Kind == combat.SkillHeal {
		b.playerHP += ev.Skill.Power
		if b.playerHP > b.player.MaxHP {
			b.playerHP = b.player.MaxHP
		}
	}
}

func (b *battleStats) recordDamageDealt(ev SkillDamage) {
	b.damageBySkill[ev.SkillName] += ev.Total
	b.totalDealt += ev.Total
}

func (b *battleStats) recordDamageReceived(ev DamageReceived) {
	if !ev.TargetPlayer || ev.TargetName != b.player.Name {
		return
	}
	b.totalTaken += ev.Amount
	b.playerHP -= ev.Amount
	if b.playerHP < 0 {
		b.playerHP = 0
	}
	if ev.Amount > b.maxHit {
		b.maxHit = ev.Amount
		b.maxHitFrom = ev.AttackerName
	}
}

func (b *battleStats) recordDeath(ev EntityDeath) {
	if !ev.PlayerSide {
		return
	}
	if ev.Name == b.player.Name {
		b.playerDied = true
		b.killerName = ev.KillerName
		return
	}
	b.allyDeaths = append(b.allyDeaths, ev)
}

// turns approximates elapsed rounds by the player's own action count; the
// combat loop does not report round boundaries.
func (b *battleStats) turns() int {
	return b.actions
}

func (b *battleStats) endHPRatio() float64 {
	if b.player.MaxHP <= 0 {
		return 1
	}
	return float64(b.playerHP) / float64(b.player.MaxHP)
}

func (b *battleStats) endMPRatio() float64 {
	if b.player.MaxMP <= 0 {
		return 1
	}
	return float64(b.playerMP) / float64(b.player.MaxMP)
}

func (b *battleStats) mostUsedSkill() (string, int) {
	best, n := "", 0
	for name, count := range b.skillUses {
		if count > n {
			best, n = name, count
		}
	}
	return best, n
}

func (b *battleStats) mostUsedHealSkill() (string, int) {
	best, n := "", 0
	for name, count := range b.skillUses {
		if b.skillInfo[name].Kind == combat.SkillHeal && count > n {
			best, n = name, count
		}
	}
	return best, n
}

// neglectedSkill returns the strongest known player skill that never saw
// use this battle.
func (b *battleStats) neglectedSkill() string {
	best, power := "", 0
	for _, s := range b.player.Skills {
		if b.skillUses[s.Name] == 0 && s.Power > power {
			best, power = s.Name, s.Power
		}
	}
	return best
}

func (b *battleStats) toughestEnemy() (combat.Combatant, bool) {
	var out combat.Combatant
	found := false
	for _, e := range b.enemies {
		if !found || e.Defense > out.Defense || (e.Defense == out.Defense && e.MaxHP > out.MaxHP) {
			out = e
			found = true
		}
	}
	return out, found
}

func (b *battleStats) fastestEnemy() (combat.Combatant, bool) {
	var out combat.Combatant
	found := false
	for _, e := range b.enemies {
		if !found || e.Speed > out.Speed {
			out = e
			found = true
		}
	}
	return out, found
}

func (b *battleStats) eliteEnemy() (combat.Combatant, bool) {
	for _, e := range b.enemies {
		if e.Elite {
			return e, true
		}
	}
	return combat.Combatant{}, false
}

func (b *battleStats) hasMultiTargetSkill() bool {
	for _, s := range b.player.Skills {
		if s.Shape == combat.TargetMulti {
			return true
		}
	}
	return false
}

func (b *battleStats) hasManaSkill() bool {
	for _, s := range b.player.Skills {
		if s.ManaCost > 0 {
			return true
		}
	}
	return false
}

func (b *battleStats) enemyHPPool() int {
	total := 0
	for _, e := range b.enemies {
		total += e.MaxHP
	}
	return total
}
