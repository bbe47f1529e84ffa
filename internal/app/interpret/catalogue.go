package interpret

import (
	"fmt"

	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/behavior"
)

// generator builds the candidate advantage and disadvantage lists for one
// trigger type. Magnitudes start from the medium intensity tier and scale
// with the severity carried in the observation payload.
type generator func(obs behavior.Observation, lad bargain.Ladder) (advs, disads []bargain.Offer)

func adv(name, desc string, target bargain.Attribute, mag int, src behavior.TriggerType) bargain.Offer {
	return bargain.NewOffer(name, desc, true, target, mag, src)
}

func dis(name, desc string, target bargain.Attribute, mag int, src behavior.TriggerType) bargain.Offer {
	return bargain.NewOffer(name, desc, false, target, mag, src)
}

func med(lad bargain.Ladder, attr bargain.Attribute) int {
	return lad.Magnitude(attr, bargain.IntensityMedium)
}

func scaled(base int, factor float64) int {
	if factor < 0.5 {
		factor = 0.5
	}
	if factor > 3 {
		factor = 3
	}
	v := int(float64(base)*factor + 0.5)
	if v < 1 {
		v = 1
	}
	return v
}

// repeatFactor grows magnitudes for patterns the player keeps repeating.
func repeatFactor(obs behavior.Observation) float64 {
	n := obs.RepeatCount - 1
	if n > 5 {
		n = 5
	}
	return 1 + 0.2*float64(n)
}

var catalogue = map[behavior.TriggerType]generator{
	behavior.TriggerPlayerDeath: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := repeatFactor(o)
		killer := o.Payload.KillerName
		if killer == "" {
			killer = "your killer"
		}
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Second Wind", fmt.Sprintf("Raise your maximum HP after falling to %s.", killer), bargain.PlayerMaxHP, scaled(med(lad, bargain.PlayerMaxHP), f), t),
			adv("Hardened Hide", fmt.Sprintf("Bolster your defense against %s.", killer), bargain.PlayerDefense, scaled(med(lad, bargain.PlayerDefense), f), t),
			adv("Field Medic", "Strengthen your healing arts.", bargain.PlayerHealingPower, scaled(med(lad, bargain.PlayerHealingPower), f), t),
			adv("Quickened Step", "Act sooner in the turn order.", bargain.PlayerSpeed, scaled(med(lad, bargain.PlayerSpeed), f), t),
		}
		disads := []bargain.Offer{
			dis("Blood Price", "Your foes hit harder.", bargain.EnemyAttackPower, scaled(med(lad, bargain.EnemyAttackPower), f), t),
			dis("Lean Purse", "Battles pay out fewer coins.", bargain.CoinReward, scaled(med(lad, bargain.CoinReward), f), t),
			dis("Dulled Edge", "Your attacks lose some bite.", bargain.PlayerAttackPower, scaled(med(lad, bargain.PlayerAttackPower), f), t),
			dis("Inflation", "Merchants raise their prices.", bargain.ShopPrice, scaled(med(lad, bargain.ShopPrice), f), t),
		}
		return advs, disads
	},

	behavior.TriggerAllyDeath: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := repeatFactor(o)
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Shared Vigil", "Your healing reaches further.", bargain.PlayerHealingPower, scaled(med(lad, bargain.PlayerHealingPower), f), t),
			adv("Rallying Cry", "Raise your attack power in their memory.", bargain.PlayerAttackPower, scaled(med(lad, bargain.PlayerAttackPower), f), t),
			adv("Guardian's Oath", "Bolster your own defense.", bargain.PlayerDefense, scaled(med(lad, bargain.PlayerDefense), f), t),
		}
		disads := []bargain.Offer{
			dis("Grief Toll", "Enemies endure more punishment.", bargain.EnemyMaxHP, scaled(med(lad, bargain.EnemyMaxHP), f), t),
			dis("Heavy Heart", "You act later in the turn order.", bargain.PlayerSpeed, scaled(med(lad, bargain.PlayerSpeed), f), t),
			dis("Funeral Costs", "Merchants raise their prices.", bargain.ShopPrice, scaled(med(lad, bargain.ShopPrice), f), t),
		}
		return advs, disads
	},

	behavior.TriggerNearDeathEscape: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Borrowed Time", "A thicker health pool for next time.", bargain.PlayerMaxHP, med(lad, bargain.PlayerMaxHP), t),
			adv("Survivor's Instinct", "Move faster when it matters.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
			adv("Close Call Discount", "Merchants pity you with lower prices.", bargain.ShopPrice, med(lad, bargain.ShopPrice), t),
		}
		disads := []bargain.Offer{
			dis("Tempting Fate", "Enemies strike harder.", bargain.EnemyAttackPower, med(lad, bargain.EnemyAttackPower), t),
			dis("Rattled Nerves", "Your skills cost more mana.", bargain.PlayerActionManaCost, med(lad, bargain.PlayerActionManaCost), t),
			dis("Scar Tissue", "Your healing weakens.", bargain.PlayerHealingPower, med(lad, bargain.PlayerHealingPower), t),
		}
		return advs, disads
	},

	behavior.TriggerCriticalEndHealth: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		// Deeper deficits scale the offer harder.
		f := 1.0
		if o.Payload.HealthRatio > 0 {
			f = 1 + (0.25-o.Payload.HealthRatio)*2
		}
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Reinforced Vitality", "Raise your maximum HP.", bargain.PlayerMaxHP, scaled(med(lad, bargain.PlayerMaxHP), f), t),
			adv("Iron Skin", "Take less from every blow.", bargain.PlayerDefense, scaled(med(lad, bargain.PlayerDefense), f), t),
			adv("Mercy of Merchants", "Healing supplies cost less.", bargain.ShopPrice, scaled(med(lad, bargain.ShopPrice), f), t),
			adv("Weakened Foes", "Enemies bruise easier.", bargain.EnemyMaxHP, scaled(med(lad, bargain.EnemyMaxHP), f), t),
		}
		disads := []bargain.Offer{
			dis("Slow Recovery", "Your healing loses potency.", bargain.PlayerHealingPower, scaled(med(lad, bargain.PlayerHealingPower), f), t),
			dis("Glass Bones", "Enemy skills sharpen.", bargain.EnemySkillPower, scaled(med(lad, bargain.EnemySkillPower), f), t),
			dis("Costly Caution", "Your skills cost more mana.", bargain.PlayerActionManaCost, scaled(med(lad, bargain.PlayerActionManaCost), f), t),
		}
		return advs, disads
	},

	behavior.TriggerLowHealthNoCure: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Stocked Shelves", "Cures drop more often.", bargain.ItemDropRate, med(lad, bargain.ItemDropRate), t),
			adv("Apothecary Friend", "Shop prices fall.", bargain.ShopPrice, med(lad, bargain.ShopPrice), t),
			adv("Inner Reserves", "Raise your maximum HP.", bargain.PlayerMaxHP, med(lad, bargain.PlayerMaxHP), t),
			adv("Self-Sufficient", "Your healing strengthens.", bargain.PlayerHealingPower, med(lad, bargain.PlayerHealingPower), t),
		}
		disads := []bargain.Offer{
			dis("Scarcity", "Coins come slower.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
			dis("Tough Crowd", "Enemies toughen up.", bargain.EnemyDefense, med(lad, bargain.EnemyDefense), t),
			dis("Feeble Arm", "Your attack power drops.", bargain.PlayerAttackPower, med(lad, bargain.PlayerAttackPower), t),
		}
		return advs, disads
	},

	behavior.TriggerFlawlessBattle: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		// Dominant play invites offers that trade safety margins for spoils.
		advs := []bargain.Offer{
			adv("Spoils of Mastery", "Richer coin rewards.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
			adv("Collector's Luck", "Items drop more often.", bargain.ItemDropRate, med(lad, bargain.ItemDropRate), t),
			adv("Showing Off", "Your skills hit harder.", bargain.PlayerSkillPower, med(lad, bargain.PlayerSkillPower), t),
		}
		disads := []bargain.Offer{
			dis("Worthy Opponents", "Enemies gain attack power.", bargain.EnemyAttackPower, med(lad, bargain.EnemyAttackPower), t),
			dis("Thick-Skinned Foes", "Enemies gain defense.", bargain.EnemyDefense, med(lad, bargain.EnemyDefense), t),
			dis("Hardier Packs", "Enemies gain max HP.", bargain.EnemyMaxHP, med(lad, bargain.EnemyMaxHP), t),
			dis("Faster Foes", "Enemies act sooner.", bargain.EnemySpeed, med(lad, bargain.EnemySpeed), t),
		}
		return advs, disads
	},

	behavior.TriggerSkillOveruse: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := 1.0
		if o.Payload.UsageRatio > 0 {
			f = o.Payload.UsageRatio / 0.5
		}
		t := o.Trigger
		skill := o.Payload.SkillName
		advs := []bargain.Offer{
			adv("Signature Move", fmt.Sprintf("%s grows stronger with use.", skill), bargain.PlayerSkillPower, scaled(med(lad, bargain.PlayerSkillPower), f), t),
			adv("Muscle Memory", fmt.Sprintf("%s costs less mana.", skill), bargain.PlayerActionManaCost, scaled(med(lad, bargain.PlayerActionManaCost), f), t),
			adv("Deep Reserves", "Raise your maximum MP.", bargain.PlayerMaxMP, scaled(med(lad, bargain.PlayerMaxMP), f), t),
		}
		if skill != "" {
			advs = append(advs, bargain.NewSkillOffer(
				"Honed Technique",
				fmt.Sprintf("Sharpen %s itself.", skill),
				true, bargain.PlayerSkillPower, scaled(med(lad, bargain.PlayerSkillPower), f), t,
				bargain.SkillAdjustment{SkillName: skill, PowerDelta: scaled(med(lad, bargain.PlayerSkillPower), f), Baseline: scaled(med(lad, bargain.PlayerSkillPower), f)},
			))
		}
		disads := []bargain.Offer{
			dis("Predictable", "Enemies read you and defend better.", bargain.EnemyDefense, scaled(med(lad, bargain.EnemyDefense), f), t),
			dis("One-Track Mind", "Your basic attacks weaken.", bargain.PlayerAttackPower, scaled(med(lad, bargain.PlayerAttackPower), f), t),
			dis("Strained Focus", "All skills cost more mana.", bargain.PlayerActionManaCost, scaled(med(lad, bargain.PlayerActionManaCost), f), t),
		}
		if skill != "" {
			disads = append(disads, bargain.NewSkillOffer(
				"Overworked",
				fmt.Sprintf("%s tires you; it costs more mana.", skill),
				false, bargain.PlayerActionManaCost, scaled(med(lad, bargain.PlayerActionManaCost), f), t,
				bargain.SkillAdjustment{SkillName: skill, ManaCostDelta: scaled(med(lad, bargain.PlayerActionManaCost), f), Baseline: scaled(med(lad, bargain.PlayerActionManaCost), f)},
			))
		}
		return advs, disads
	},

	behavior.TriggerSkillNeglect: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		skill := o.Payload.SkillName
		advs := []bargain.Offer{
			adv("Rediscovery", "Your skills hit harder.", bargain.PlayerSkillPower, med(lad, bargain.PlayerSkillPower), t),
			adv("Cheap Practice", "Skills cost less mana.", bargain.PlayerActionManaCost, med(lad, bargain.PlayerActionManaCost), t),
			adv("Wider Pool", "Raise your maximum MP.", bargain.PlayerMaxMP, med(lad, bargain.PlayerMaxMP), t),
		}
		if skill != "" {
			advs = append(advs, bargain.NewSkillOffer(
				"Dusted Off",
				fmt.Sprintf("%s returns stronger than you left it.", skill),
				true, bargain.PlayerSkillPower, med(lad, bargain.PlayerSkillPower), t,
				bargain.SkillAdjustment{SkillName: skill, PowerDelta: med(lad, bargain.PlayerSkillPower), ManaCostDelta: -1, Baseline: med(lad, bargain.PlayerSkillPower)},
			))
		}
		disads := []bargain.Offer{
			dis("Rusty Swing", "Your attack power drops.", bargain.PlayerAttackPower, med(lad, bargain.PlayerAttackPower), t),
			dis("Sharper Foes", "Enemy skills strengthen.", bargain.EnemySkillPower, med(lad, bargain.EnemySkillPower), t),
			dis("Slow Hands", "You act later in the turn order.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
		}
		return advs, disads
	},

	behavior.TriggerAOEReliance: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := 1.0
		if o.Payload.UsageRatio > 0 {
			f = o.Payload.UsageRatio / 0.5
		}
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Wider Blast", "Your area skills hit harder.", bargain.PlayerAOEPower, scaled(med(lad, bargain.PlayerAOEPower), f), t),
			adv("Efficient Sweep", "Skills cost less mana.", bargain.PlayerActionManaCost, scaled(med(lad, bargain.PlayerActionManaCost), f), t),
			adv("Deep Well", "Raise your maximum MP.", bargain.PlayerMaxMP, scaled(med(lad, bargain.PlayerMaxMP), f), t),
		}
		disads := []bargain.Offer{
			dis("Scattered Force", "Single-target skills weaken.", bargain.PlayerSkillPower, scaled(med(lad, bargain.PlayerSkillPower), f), t),
			dis("Spread Thin", "Your basic attacks weaken.", bargain.PlayerAttackPower, scaled(med(lad, bargain.PlayerAttackPower), f), t),
			dis("Braced Ranks", "Enemies gain defense.", bargain.EnemyDefense, scaled(med(lad, bargain.EnemyDefense), f), t),
		}
		return advs, disads
	},

	behavior.TriggerSingleTargetFocus: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Executioner", "Single-target skills sharpen.", bargain.PlayerSkillPower, med(lad, bargain.PlayerSkillPower), t),
			adv("Duelist's Pace", "Act sooner in the turn order.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
			adv("Focused Strikes", "Your attack power rises.", bargain.PlayerAttackPower, med(lad, bargain.PlayerAttackPower), t),
		}
		disads := []bargain.Offer{
			dis("Blind Spots", "Your area skills weaken.", bargain.PlayerAOEPower, med(lad, bargain.PlayerAOEPower), t),
			dis("Swarmed", "Enemy area skills strengthen.", bargain.EnemyAOEPower, med(lad, bargain.EnemyAOEPower), t),
			dis("Tunnel Vision", "Your defense drops.", bargain.PlayerDefense, med(lad, bargain.PlayerDefense), t),
		}
		return advs, disads
	},

	behavior.TriggerCureSpam: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		skill := o.Payload.SkillName
		advs := []bargain.Offer{
			adv("Practiced Healer", "Your healing strengthens.", bargain.PlayerHealingPower, med(lad, bargain.PlayerHealingPower), t),
			adv("Gentle Mending", "Healing costs less mana.", bargain.PlayerActionManaCost, med(lad, bargain.PlayerActionManaCost), t),
			adv("Hearty Constitution", "Raise your maximum HP so you need it less.", bargain.PlayerMaxHP, med(lad, bargain.PlayerMaxHP), t),
		}
		if skill != "" {
			advs = append(advs, bargain.NewSkillOffer(
				"Favored Prayer",
				fmt.Sprintf("%s mends more for less.", skill),
				true, bargain.PlayerHealingPower, med(lad, bargain.PlayerHealingPower), t,
				bargain.SkillAdjustment{SkillName: skill, PowerDelta: med(lad, bargain.PlayerHealingPower), ManaCostDelta: -1, Baseline: med(lad, bargain.PlayerHealingPower)},
			))
		}
		disads := []bargain.Offer{
			dis("Dependence", "Your attack power drops.", bargain.PlayerAttackPower, med(lad, bargain.PlayerAttackPower), t),
			dis("Impatient Foes", "Enemies act sooner.", bargain.EnemySpeed, med(lad, bargain.EnemySpeed), t),
			dis("Costly Faith", "All skills cost more mana.", bargain.PlayerActionManaCost, med(lad, bargain.PlayerActionManaCost), t),
		}
		return advs, disads
	},

	behavior.TriggerItemHoarding: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Use It or Lose It", "Items drop even more often.", bargain.ItemDropRate, med(lad, bargain.ItemDropRate), t),
			adv("Pack Rat's Reward", "Richer coin rewards.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
			adv("Tough It Out", "Raise your maximum HP.", bargain.PlayerMaxHP, med(lad, bargain.PlayerMaxHP), t),
		}
		disads := []bargain.Offer{
			dis("Dead Weight", "You act later in the turn order.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
			dis("Miser's Markup", "Merchants raise their prices.", bargain.ShopPrice, med(lad, bargain.ShopPrice), t),
			dis("Hungrier Foes", "Enemies gain max HP.", bargain.EnemyMaxHP, med(lad, bargain.EnemyMaxHP), t),
		}
		return advs, disads
	},

	behavior.TriggerManaStreakLow: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := 1.0
		if o.Payload.StreakLength > 2 {
			f = 1 + 0.15*float64(o.Payload.StreakLength-2)
		}
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Deeper Well", "Raise your maximum MP.", bargain.PlayerMaxMP, scaled(med(lad, bargain.PlayerMaxMP), f), t),
			adv("Frugal Casting", "Skills cost less mana.", bargain.PlayerActionManaCost, scaled(med(lad, bargain.PlayerActionManaCost), f), t),
			adv("Raw Strength", "Lean on your attack power instead.", bargain.PlayerAttackPower, scaled(med(lad, bargain.PlayerAttackPower), f), t),
		}
		disads := []bargain.Offer{
			dis("Drained Reserves", "Your maximum HP dips.", bargain.PlayerMaxHP, scaled(med(lad, bargain.PlayerMaxHP), f), t),
			dis("Arcane Tax", "Merchants raise their prices.", bargain.ShopPrice, scaled(med(lad, bargain.ShopPrice), f), t),
			dis("Thrifty Foes", "Enemy skills cost them less.", bargain.EnemyActionManaCost, scaled(med(lad, bargain.EnemyActionManaCost), f), t),
		}
		return advs, disads
	},

	behavior.TriggerManaStreakCritical: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := 1.3
		if o.Payload.StreakLength > 2 {
			f += 0.15 * float64(o.Payload.StreakLength-2)
		}
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Font of Mana", "A much larger mana pool.", bargain.PlayerMaxMP, scaled(med(lad, bargain.PlayerMaxMP), f), t),
			adv("Effortless Casting", "Skills cost far less mana.", bargain.PlayerActionManaCost, scaled(med(lad, bargain.PlayerActionManaCost), f), t),
			adv("Spellwright's Discount", "Mana tonics cost less.", bargain.ShopPrice, scaled(med(lad, bargain.ShopPrice), f), t),
		}
		disads := []bargain.Offer{
			dis("Burned Out", "Your skill power drops.", bargain.PlayerSkillPower, scaled(med(lad, bargain.PlayerSkillPower), f), t),
			dis("Fragile Channel", "Your defense drops.", bargain.PlayerDefense, scaled(med(lad, bargain.PlayerDefense), f), t),
			dis("Energized Foes", "Enemy skills strengthen.", bargain.EnemySkillPower, scaled(med(lad, bargain.EnemySkillPower), f), t),
		}
		return advs, disads
	},

	behavior.TriggerManaWaste: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Overflow Channel", "Turn spare mana into skill power.", bargain.PlayerSkillPower, med(lad, bargain.PlayerSkillPower), t),
			adv("Conduit", "Your area skills hit harder.", bargain.PlayerAOEPower, med(lad, bargain.PlayerAOEPower), t),
			adv("Trade Surplus", "Richer coin rewards.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
		}
		disads := []bargain.Offer{
			dis("Shrunken Pool", "Your maximum MP dips.", bargain.PlayerMaxMP, med(lad, bargain.PlayerMaxMP), t),
			dis("Leaky Focus", "Skills cost more mana.", bargain.PlayerActionManaCost, med(lad, bargain.PlayerActionManaCost), t),
			dis("Watchful Foes", "Enemies gain defense.", bargain.EnemyDefense, med(lad, bargain.EnemyDefense), t),
		}
		return advs, disads
	},

	behavior.TriggerStruggleVsTank: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := repeatFactor(o)
		t := o.Trigger
		enemy := o.Payload.EnemyName
		if enemy == "" {
			enemy = "armored foes"
		}
		advs := []bargain.Offer{
			adv("Armor Breaker", fmt.Sprintf("Hit harder against %s.", enemy), bargain.PlayerAttackPower, scaled(med(lad, bargain.PlayerAttackPower), f), t),
			adv("Piercing Arts", "Your skills punch through.", bargain.PlayerSkillPower, scaled(med(lad, bargain.PlayerSkillPower), f), t),
			adv("Softened Shells", "Enemy defense crumbles.", bargain.EnemyDefense, scaled(med(lad, bargain.EnemyDefense), f), t),
			adv("Chip Away", "Enemies carry less HP.", bargain.EnemyMaxHP, scaled(med(lad, bargain.EnemyMaxHP), f), t),
		}
		disads := []bargain.Offer{
			dis("Brittle Guard", "Your own defense drops.", bargain.PlayerDefense, scaled(med(lad, bargain.PlayerDefense), f), t),
			dis("Exposed", "Your maximum HP dips.", bargain.PlayerMaxHP, scaled(med(lad, bargain.PlayerMaxHP), f), t),
			dis("Heavy Swings", "Your skills cost more mana.", bargain.PlayerActionManaCost, scaled(med(lad, bargain.PlayerActionManaCost), f), t),
		}
		return advs, disads
	},

	behavior.TriggerStruggleVsFast: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Fleet Footed", "Act sooner in the turn order.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
			adv("Tripwire", "Enemies act later.", bargain.EnemySpeed, med(lad, bargain.EnemySpeed), t),
			adv("Braced Stance", "Raise your defense for the opening blows.", bargain.PlayerDefense, med(lad, bargain.PlayerDefense), t),
		}
		disads := []bargain.Offer{
			dis("Overextended", "Your attack power drops.", bargain.PlayerAttackPower, med(lad, bargain.PlayerAttackPower), t),
			dis("Winded", "Your maximum MP dips.", bargain.PlayerMaxMP, med(lad, bargain.PlayerMaxMP), t),
			dis("Keen Predators", "Enemy attack power rises.", bargain.EnemyAttackPower, med(lad, bargain.EnemyAttackPower), t),
		}
		return advs, disads
	},

	behavior.TriggerDamageSpike: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := 1.0
		if o.Payload.DamageShare > 0 {
			f = 1 + o.Payload.DamageShare
		}
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Bulwark", "Raise your defense against burst hits.", bargain.PlayerDefense, scaled(med(lad, bargain.PlayerDefense), f), t),
			adv("Padding", "Raise your maximum HP.", bargain.PlayerMaxHP, scaled(med(lad, bargain.PlayerMaxHP), f), t),
			adv("Blunted Blades", "Enemy skill power drops.", bargain.EnemySkillPower, scaled(med(lad, bargain.EnemySkillPower), f), t),
		}
		disads := []bargain.Offer{
			dis("Slow Guard", "You act later in the turn order.", bargain.PlayerSpeed, scaled(med(lad, bargain.PlayerSpeed), f), t),
			dis("Armor Upkeep", "Merchants raise their prices.", bargain.ShopPrice, scaled(med(lad, bargain.ShopPrice), f), t),
			dis("Cornered Beasts", "Enemies gain max HP.", bargain.EnemyMaxHP, scaled(med(lad, bargain.EnemyMaxHP), f), t),
		}
		return advs, disads
	},

	behavior.TriggerDefenseNeglect: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Late Lessons", "Raise your defense.", bargain.PlayerDefense, med(lad, bargain.PlayerDefense), t),
			adv("Thick Cloak", "Raise your maximum HP.", bargain.PlayerMaxHP, med(lad, bargain.PlayerMaxHP), t),
			adv("Dulled Claws", "Enemy attack power drops.", bargain.EnemyAttackPower, med(lad, bargain.EnemyAttackPower), t),
		}
		disads := []bargain.Offer{
			dis("Weight of Armor", "You act later in the turn order.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
			dis("Defensive Mind", "Your skill power drops.", bargain.PlayerSkillPower, med(lad, bargain.PlayerSkillPower), t),
			dis("Smithy's Bill", "Merchants raise their prices.", bargain.ShopPrice, med(lad, bargain.ShopPrice), t),
		}
		return advs, disads
	},

	behavior.TriggerGlassCannon: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("All In", "Push your attack power further.", bargain.PlayerAttackPower, med(lad, bargain.PlayerAttackPower), t),
			adv("Overcharge", "Your skills hit harder.", bargain.PlayerSkillPower, med(lad, bargain.PlayerSkillPower), t),
			adv("First Strike", "Act sooner in the turn order.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
		}
		disads := []bargain.Offer{
			dis("Thinner Glass", "Your maximum HP dips.", bargain.PlayerMaxHP, med(lad, bargain.PlayerMaxHP), t),
			dis("No Guard", "Your defense drops.", bargain.PlayerDefense, med(lad, bargain.PlayerDefense), t),
			dis("Return Fire", "Enemy skill power rises.", bargain.EnemySkillPower, med(lad, bargain.EnemySkillPower), t),
		}
		return advs, disads
	},

	behavior.TriggerTurtling: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Counterweight", "Raise your attack power.", bargain.PlayerAttackPower, med(lad, bargain.PlayerAttackPower), t),
			adv("Cracked Shells", "Enemy defense drops.", bargain.EnemyDefense, med(lad, bargain.EnemyDefense), t),
			adv("Patient Profit", "Richer coin rewards.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
		}
		disads := []bargain.Offer{
			dis("Siege Tactics", "Enemies gain max HP.", bargain.EnemyMaxHP, med(lad, bargain.EnemyMaxHP), t),
			dis("Stiff Joints", "You act later in the turn order.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
			dis("War of Attrition", "Your healing weakens.", bargain.PlayerHealingPower, med(lad, bargain.PlayerHealingPower), t),
		}
		return advs, disads
	},

	behavior.TriggerLongBattles: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := 1.0
		if o.Payload.TurnCount > 10 {
			f = 1 + 0.05*float64(o.Payload.TurnCount-10)
		}
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Decisive Blows", "Raise your attack power.", bargain.PlayerAttackPower, scaled(med(lad, bargain.PlayerAttackPower), f), t),
			adv("Thinner Ranks", "Enemies carry less HP.", bargain.EnemyMaxHP, scaled(med(lad, bargain.EnemyMaxHP), f), t),
			adv("Marathon Conditioning", "Raise your maximum MP.", bargain.PlayerMaxMP, scaled(med(lad, bargain.PlayerMaxMP), f), t),
		}
		disads := []bargain.Offer{
			dis("Reckless Pace", "Your defense drops.", bargain.PlayerDefense, scaled(med(lad, bargain.PlayerDefense), f), t),
			dis("Expensive Haste", "Skills cost more mana.", bargain.PlayerActionManaCost, scaled(med(lad, bargain.PlayerActionManaCost), f), t),
			dis("Short Fuse Foes", "Enemy attack power rises.", bargain.EnemyAttackPower, scaled(med(lad, bargain.EnemyAttackPower), f), t),
		}
		return advs, disads
	},

	behavior.TriggerShortBattles: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Victory Lap", "Richer coin rewards.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
			adv("Trophy Hunter", "Items drop more often.", bargain.ItemDropRate, med(lad, bargain.ItemDropRate), t),
			adv("Momentum", "Act even sooner in the turn order.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
		}
		disads := []bargain.Offer{
			dis("Stiffer Competition", "Enemies gain max HP.", bargain.EnemyMaxHP, med(lad, bargain.EnemyMaxHP), t),
			dis("Wary Packs", "Enemies gain defense.", bargain.EnemyDefense, med(lad, bargain.EnemyDefense), t),
			dis("Alert Foes", "Enemies act sooner.", bargain.EnemySpeed, med(lad, bargain.EnemySpeed), t),
		}
		return advs, disads
	},

	behavior.TriggerEliteStruggle: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		f := repeatFactor(o)
		t := o.Trigger
		enemy := o.Payload.EnemyName
		if enemy == "" {
			enemy = "champions"
		}
		advs := []bargain.Offer{
			adv("Giant Slayer", fmt.Sprintf("Hit harder against %s.", enemy), bargain.PlayerAttackPower, scaled(med(lad, bargain.PlayerAttackPower), f), t),
			adv("Humbled Champions", "Elite foes lose attack power.", bargain.EnemyAttackPower, scaled(med(lad, bargain.EnemyAttackPower), f), t),
			adv("War Chest", "Richer coin rewards for hard fights.", bargain.CoinReward, scaled(med(lad, bargain.CoinReward), f), t),
		}
		disads := []bargain.Offer{
			dis("Rabble Rousing", "Common foes gain max HP.", bargain.EnemyMaxHP, scaled(med(lad, bargain.EnemyMaxHP), f), t),
			dis("Singular Focus", "Your area skills weaken.", bargain.PlayerAOEPower, scaled(med(lad, bargain.PlayerAOEPower), f), t),
			dis("Exhausting Duels", "Your maximum MP dips.", bargain.PlayerMaxMP, scaled(med(lad, bargain.PlayerMaxMP), f), t),
		}
		return advs, disads
	},

	behavior.TriggerShopIgnored: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Clearance Sale", "Merchants lower their prices.", bargain.ShopPrice, med(lad, bargain.ShopPrice), t),
			adv("Window Shopper's Luck", "Items drop more often in the field.", bargain.ItemDropRate, med(lad, bargain.ItemDropRate), t),
			adv("Self-Reliance", "Raise your maximum HP.", bargain.PlayerMaxHP, med(lad, bargain.PlayerMaxHP), t),
		}
		disads := []bargain.Offer{
			dis("Snubbed Merchants", "Coin rewards shrink.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
			dis("Unprepared", "Your defense drops.", bargain.PlayerDefense, med(lad, bargain.PlayerDefense), t),
			dis("Better-Armed Foes", "Enemy attack power rises.", bargain.EnemyAttackPower, med(lad, bargain.EnemyAttackPower), t),
		}
		return advs, disads
	},

	behavior.TriggerShopSplurge: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Preferred Customer", "Merchants lower their prices.", bargain.ShopPrice, med(lad, bargain.ShopPrice), t),
			adv("Return on Investment", "Richer coin rewards.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
			adv("Well Equipped", "Raise your defense.", bargain.PlayerDefense, med(lad, bargain.PlayerDefense), t),
		}
		disads := []bargain.Offer{
			dis("Buyer's Remorse", "Items drop less often.", bargain.ItemDropRate, med(lad, bargain.ItemDropRate), t),
			dis("Soft Living", "Your maximum HP dips.", bargain.PlayerMaxHP, med(lad, bargain.PlayerMaxHP), t),
			dis("Envious Foes", "Enemies gain defense.", bargain.EnemyDefense, med(lad, bargain.EnemyDefense), t),
		}
		return advs, disads
	},

	behavior.TriggerCoinHoarding: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Interest Accrued", "Richer coin rewards.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
			adv("Bulk Discount", "Merchants lower their prices.", bargain.ShopPrice, med(lad, bargain.ShopPrice), t),
			adv("Gilded Armor", "Raise your defense.", bargain.PlayerDefense, med(lad, bargain.PlayerDefense), t),
		}
		disads := []bargain.Offer{
			dis("Heavy Coffers", "You act later in the turn order.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
			dis("Robbed Blind", "Coin rewards shrink.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
			dis("Greedy Foes", "Enemies gain max HP.", bargain.EnemyMaxHP, med(lad, bargain.EnemyMaxHP), t),
		}
		return advs, disads
	},

	behavior.TriggerPoorEconomy: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Charity", "Merchants lower their prices.", bargain.ShopPrice, med(lad, bargain.ShopPrice), t),
			adv("Scavenger", "Items drop more often.", bargain.ItemDropRate, med(lad, bargain.ItemDropRate), t),
			adv("Hard Bargain", "Richer coin rewards.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
		}
		disads := []bargain.Offer{
			dis("Debt Collector", "Enemy attack power rises.", bargain.EnemyAttackPower, med(lad, bargain.EnemyAttackPower), t),
			dis("Worn Gear", "Your defense drops.", bargain.PlayerDefense, med(lad, bargain.PlayerDefense), t),
			dis("Hungry Belly", "Your maximum HP dips.", bargain.PlayerMaxHP, med(lad, bargain.PlayerMaxHP), t),
		}
		return advs, disads
	},

	behavior.TriggerMapRevisit: func(o behavior.Observation, lad bargain.Ladder) ([]bargain.Offer, []bargain.Offer) {
		t := o.Trigger
		advs := []bargain.Offer{
			adv("Local Knowledge", "Act sooner on familiar ground.", bargain.PlayerSpeed, med(lad, bargain.PlayerSpeed), t),
			adv("Beaten Paths", "Items drop more often.", bargain.ItemDropRate, med(lad, bargain.ItemDropRate), t),
			adv("Old Haunts", "Enemies here carry less HP.", bargain.EnemyMaxHP, med(lad, bargain.EnemyMaxHP), t),
		}
		disads := []bargain.Offer{
			dis("Picked Clean", "Coin rewards shrink.", bargain.CoinReward, med(lad, bargain.CoinReward), t),
			dis("Ambush Routes", "Enemies act sooner.", bargain.EnemySpeed, med(lad, bargain.EnemySpeed), t),
			dis("Complacency", "Your defense drops.", bargain.PlayerDefense, med(lad, bargain.PlayerDefense), t),
		}
		return advs, disads
	},
}
