package telemetry

import (
	"time"

	"duskpact/internal/domain/behavior"
)

// Detector thresholds. Tunable balance data, not structural; the detectors
// themselves are independent and any subset may fire on the same battle.
const (
	overuseRatio        = 0.5
	overuseMinActions   = 4
	criticalHealthRatio = 0.25
	lowHealthRatio      = 0.5
	nearDeathRatio      = 0.10
	lowManaRatio        = 0.5
	criticalManaRatio   = 0.10
	manaWasteRatio      = 0.9
	manaStreakMin       = 2
	aoeRelianceRatio    = 0.6
	singleFocusRatio    = 0.8
	cureSpamRatio       = 0.4
	neglectMinActions   = 6
	spikeHPShare        = 0.4
	batteredHPShare     = 0.6
	glassCannonTaken    = 0.4
	turtleMinTurns      = 10
	turtleTakenRatio    = 0.15
	longBattleTurns     = 12
	shortBattleTurns    = 2
	tankDefenseMin      = 10
	tankBattleTurns     = 8
	fastSpeedFactor     = 1.5
	eliteStruggleRatio  = 0.35
)

type detector func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation

func obs(b *battleStats, t behavior.TriggerType, at time.Time, p behavior.Payload) *behavior.Observation {
	o := behavior.NewObservation(t, b.mapContext, at, p)
	return &o
}

// battleEndDetectors run in order at every battle end. Streak bookkeeping
// (mana, end-health window) happens before these run.
var battleEndDetectors = []detector{
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if !b.playerDied {
			return nil
		}
		return obs(b, behavior.TriggerPlayerDeath, at, behavior.Payload{KillerName: b.killerName})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if len(b.allyDeaths) == 0 || b.playerDied {
			return nil
		}
		return obs(b, behavior.TriggerAllyDeath, at, behavior.Payload{KillerName: b.allyDeaths[0].KillerName})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.playerDied || b.endHPRatio() >= nearDeathRatio || b.playerHP <= 0 {
			return nil
		}
		return obs(b, behavior.TriggerNearDeathEscape, at, behavior.Payload{HealthRatio: b.endHPRatio()})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		r := b.endHPRatio()
		if b.playerDied || r < nearDeathRatio || r >= criticalHealthRatio {
			return nil
		}
		return obs(b, behavior.TriggerCriticalEndHealth, at, behavior.Payload{HealthRatio: r})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.playerDied || b.endHPRatio() >= lowHealthRatio || b.cureItems > 0 {
			return nil
		}
		return obs(b, behavior.TriggerLowHealthNoCure, at, behavior.Payload{HealthRatio: b.endHPRatio()})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.playerDied || b.totalTaken > 0 {
			return nil
		}
		return obs(b, behavior.TriggerFlawlessBattle, at, behavior.Payload{TurnCount: b.turns()})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.actions < overuseMinActions {
			return nil
		}
		name, count := b.mostUsedSkill()
		ratio := float64(count) / float64(b.actions)
		if name == "" || ratio < overuseRatio {
			return nil
		}
		return obs(b, behavior.TriggerSkillOveruse, at, behavior.Payload{SkillName: name, UsageRatio: ratio})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.actions < neglectMinActions {
			return nil
		}
		name := b.neglectedSkill()
		if name == "" {
			return nil
		}
		return obs(b, behavior.TriggerSkillNeglect, at, behavior.Payload{SkillName: name})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.actions < overuseMinActions || b.aoeUses == 0 {
			return nil
		}
		ratio := float64(b.aoeUses) / float64(b.actions)
		if ratio < aoeRelianceRatio {
			return nil
		}
		return obs(b, behavior.TriggerAOEReliance, at, behavior.Payload{UsageRatio: ratio})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.actions < overuseMinActions || !b.hasMultiTargetSkill() || b.aoeUses > 0 {
			return nil
		}
		ratio := float64(b.singleUses) / float64(b.actions)
		if ratio < singleFocusRatio {
			return nil
		}
		return obs(b, behavior.TriggerSingleTargetFocus, at, behavior.Payload{UsageRatio: ratio})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.actions < overuseMinActions || b.healUses == 0 {
			return nil
		}
		ratio := float64(b.healUses) / float64(b.actions)
		if ratio < cureSpamRatio {
			return nil
		}
		name, _ := b.mostUsedHealSkill()
		return obs(b, behavior.TriggerCureSpam, at, behavior.Payload{SkillName: name, UsageRatio: ratio})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.playerDied || b.cureItems == 0 || b.healUses > 0 || b.endHPRatio() >= lowHealthRatio {
			return nil
		}
		return obs(b, behavior.TriggerItemHoarding, at, behavior.Payload{ItemCount: b.cureItems, HealthRatio: b.endHPRatio()})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if s.LowManaStreak < manaStreakMin {
			return nil
		}
		return obs(b, behavior.TriggerManaStreakLow, at, behavior.Payload{ManaRatio: b.endMPRatio(), StreakLength: s.LowManaStreak})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if s.CriticalManaStreak < manaStreakMin {
			return nil
		}
		return obs(b, behavior.TriggerManaStreakCritical, at, behavior.Payload{ManaRatio: b.endMPRatio(), StreakLength: s.CriticalManaStreak})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if !b.hasManaSkill() || b.manaSkillUses > 0 || b.actions < overuseMinActions || b.endMPRatio() < manaWasteRatio {
			return nil
		}
		return obs(b, behavior.TriggerManaWaste, at, behavior.Payload{ManaRatio: b.endMPRatio()})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		tank, ok := b.toughestEnemy()
		if !ok || tank.Defense < tankDefenseMin || b.turns() < tankBattleTurns {
			return nil
		}
		return obs(b, behavior.TriggerStruggleVsTank, at, behavior.Payload{EnemyName: tank.Name, TurnCount: b.turns()})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		fast, ok := b.fastestEnemy()
		if !ok || b.player.Speed <= 0 || fast.Speed < b.player.Speed*fastSpeedFactor {
			return nil
		}
		if b.totalTaken == 0 {
			return nil
		}
		return obs(b, behavior.TriggerStruggleVsFast, at, behavior.Payload{EnemyName: fast.Name})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.player.MaxHP <= 0 || b.maxHit == 0 {
			return nil
		}
		share := float64(b.maxHit) / float64(b.player.MaxHP)
		if share < spikeHPShare {
			return nil
		}
		return obs(b, behavior.TriggerDamageSpike, at, behavior.Payload{EnemyName: b.maxHitFrom, DamageShare: share})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.playerDied || b.player.MaxHP <= 0 {
			return nil
		}
		if float64(b.totalTaken)/float64(b.player.MaxHP) < batteredHPShare {
			return nil
		}
		return obs(b, behavior.TriggerDefenseNeglect, at, behavior.Payload{DamageShare: float64(b.totalTaken) / float64(b.player.MaxHP)})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.playerDied || b.player.MaxHP <= 0 || b.enemyHPPool() == 0 {
			return nil
		}
		taken := float64(b.totalTaken) / float64(b.player.MaxHP)
		if b.totalDealt < b.enemyHPPool() || taken < glassCannonTaken {
			return nil
		}
		return obs(b, behavior.TriggerGlassCannon, at, behavior.Payload{DamageShare: taken})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.playerDied || b.turns() < turtleMinTurns || b.player.MaxHP <= 0 {
			return nil
		}
		taken := float64(b.totalTaken) / float64(b.player.MaxHP)
		if taken >= turtleTakenRatio || b.totalDealt >= b.enemyHPPool() {
			return nil
		}
		return obs(b, behavior.TriggerTurtling, at, behavior.Payload{TurnCount: b.turns()})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.turns() < longBattleTurns {
			return nil
		}
		return obs(b, behavior.TriggerLongBattles, at, behavior.Payload{TurnCount: b.turns()})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		if b.playerDied || b.turns() > shortBattleTurns || b.turns() == 0 {
			return nil
		}
		return obs(b, behavior.TriggerShortBattles, at, behavior.Payload{TurnCount: b.turns()})
	},
	func(b *battleStats, s *behavior.SessionData, at time.Time) *behavior.Observation {
		elite, ok := b.eliteEnemy()
		if !ok {
			return nil
		}
		if !b.playerDied && b.endHPRatio() >= eliteStruggleRatio {
			return nil
		}
		return obs(b, behavior.TriggerEliteStruggle, at, behavior.Payload{EnemyName: elite.Name, HealthRatio: b.endHPRatio()})
	},
}
