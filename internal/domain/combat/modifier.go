package combat

import (
	"math"

	"duskpact/internal/domain/bargain"
)

// ApplyAttribute mutates the live combatant for one attribute delta,
// clamping at the attribute's floor. Attributes that filter skills by
// semantics (skill power, area power, mana cost) touch every matching skill
// rather than a combatant field. Returns false when the attribute does not
// apply to this combatant's side.
func ApplyAttribute(c *Combatant, attr bargain.Attribute, delta float64) bool {
	info, ok := bargain.Info(attr)
	if !ok || delta == 0 {
		return false
	}
	if info.PlayerSide != c.PlayerSide && info.Category != bargain.CategoryEconomy {
		return false
	}

	floor := info.Floor
	switch attr {
	case bargain.PlayerMaxHP, bargain.EnemyMaxHP:
		c.MaxHP = clampInt(c.MaxHP, delta, floor)
		if c.HP > c.MaxHP {
			c.HP = c.MaxHP
		}
		if c.HP < 1 {
			c.HP = 1
		}
	case bargain.PlayerMaxMP:
		c.MaxMP = clampInt(c.MaxMP, delta, floor)
		if c.MP > c.MaxMP {
			c.MP = c.MaxMP
		}
	case bargain.PlayerDefense, bargain.EnemyDefense:
		c.Defense = clampInt(c.Defense, delta, floor)
	case bargain.PlayerSpeed, bargain.EnemySpeed:
		c.Speed = math.Max(floor, c.Speed+delta)
	case bargain.PlayerAttackPower, bargain.EnemyAttackPower:
		c.AttackPower = clampInt(c.AttackPower, delta, floor)
	case bargain.PlayerHealingPower:
		c.HealingPower = clampInt(c.HealingPower, delta, floor)
		for i := range c.Skills {
			if c.Skills[i].Kind == SkillHeal {
				c.Skills[i].Power = clampInt(c.Skills[i].Power, delta, floor)
			}
		}
	case bargain.PlayerSkillPower, bargain.EnemySkillPower:
		for i := range c.Skills {
			if c.Skills[i].Kind == SkillDamage && c.Skills[i].ManaCost > 0 {
				c.Skills[i].Power = clampInt(c.Skills[i].Power, delta, floor)
			}
		}
	case bargain.PlayerAOEPower, bargain.EnemyAOEPower:
		for i := range c.Skills {
			if c.Skills[i].Shape == TargetMulti {
				c.Skills[i].Power = clampInt(c.Skills[i].Power, delta, floor)
			}
		}
	case bargain.PlayerActionManaCost, bargain.EnemyActionManaCost:
		for i := range c.Skills {
			if c.Skills[i].ManaCost > 0 || delta > 0 {
				c.Skills[i].ManaCost = clampInt(c.Skills[i].ManaCost, delta, floor)
			}
		}
	default:
		// Economy attributes live outside combatants.
		return false
	}
	return true
}

// ApplyLedger replays every ledger entry for c's side onto a fresh baseline
// clone. Enemies get it at every spawn; the player gets it once at startup
// to rebuild accepted bargains. Economy entries are skipped, they live
// outside combatants.
func ApplyLedger(c *Combatant, ledger *bargain.Ledger) {
	for _, attr := range bargain.AllAttributes() {
		info, ok := bargain.Info(attr)
		if !ok || info.PlayerSide != c.PlayerSide || info.Category == bargain.CategoryEconomy {
			continue
		}
		if delta := ledger.Get(attr); delta != 0 {
			ApplyAttribute(c, attr, delta)
		}
	}
}

func clampInt(current int, delta, floor float64) int {
	v := float64(current) + delta
	if v < floor {
		v = floor
	}
	return int(math.Round(v))
}
