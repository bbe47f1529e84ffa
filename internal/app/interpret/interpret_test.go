package interpret

import (
	"math/rand"
	"testing"
	"time"

	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/behavior"
)

func newUseCase(seed int64) UseCase {
	return UseCase{Rng: rand.New(rand.NewSource(seed)), Ladder: bargain.DefaultLadder()}
}

func obsOf(trigger behavior.TriggerType, payload behavior.Payload) behavior.Observation {
	return behavior.NewObservation(trigger, "Forest", time.Unix(1000, 0), payload)
}

var allTriggers = []behavior.TriggerType{
	behavior.TriggerPlayerDeath, behavior.TriggerAllyDeath, behavior.TriggerNearDeathEscape,
	behavior.TriggerCriticalEndHealth, behavior.TriggerLowHealthNoCure, behavior.TriggerFlawlessBattle,
	behavior.TriggerSkillOveruse, behavior.TriggerSkillNeglect, behavior.TriggerAOEReliance,
	behavior.TriggerSingleTargetFocus, behavior.TriggerCureSpam, behavior.TriggerItemHoarding,
	behavior.TriggerManaStreakLow, behavior.TriggerManaStreakCritical, behavior.TriggerManaWaste,
	behavior.TriggerStruggleVsTank, behavior.TriggerStruggleVsFast, behavior.TriggerDamageSpike,
	behavior.TriggerDefenseNeglect, behavior.TriggerGlassCannon, behavior.TriggerTurtling,
	behavior.TriggerLongBattles, behavior.TriggerShortBattles, behavior.TriggerEliteStruggle,
	behavior.TriggerShopIgnored, behavior.TriggerShopSplurge, behavior.TriggerCoinHoarding,
	behavior.TriggerPoorEconomy, behavior.TriggerMapRevisit,
}

func TestInterpretCoversEveryTrigger(t *testing.T) {
	uc := newUseCase(1)
	for _, trigger := range allTriggers {
		offers := uc.Interpret(obsOf(trigger, behavior.Payload{}))
		if len(offers) != 2 {
			t.Fatalf("%s: expected one advantage and one disadvantage, got %d offers", trigger, len(offers))
		}
		if !offers[0].Advantage {
			t.Fatalf("%s: first offer must be the advantage", trigger)
		}
		if offers[1].Advantage {
			t.Fatalf("%s: second offer must be the disadvantage", trigger)
		}
		if offers[0].Source != trigger || offers[1].Source != trigger {
			t.Fatalf("%s: offers must carry their source trigger", trigger)
		}
	}
}

func TestInterpretUnknownTrigger(t *testing.T) {
	uc := newUseCase(1)
	if offers := uc.Interpret(obsOf(behavior.TriggerType("made_up"), behavior.Payload{})); offers != nil {
		t.Fatalf("unknown trigger must yield nothing, got %v", offers)
	}
}

func TestInterpretDeterministicWithSeed(t *testing.T) {
	obs := obsOf(behavior.TriggerPlayerDeath, behavior.Payload{KillerName: "Wraith"})
	a := newUseCase(42).Interpret(obs)
	b := newUseCase(42).Interpret(obs)
	if a[0].Name != b[0].Name || a[1].Name != b[1].Name {
		t.Fatalf("same seed must pick the same offers: %s/%s vs %s/%s", a[0].Name, a[1].Name, b[0].Name, b[1].Name)
	}
}

func TestInterpretRepeatScalesMagnitude(t *testing.T) {
	base := obsOf(behavior.TriggerPlayerDeath, behavior.Payload{KillerName: "Wraith"})
	repeated := base
	repeated.RepeatCount = 6

	baseMax, repMax := 0, 0
	for i := 0; i < 50; i++ {
		for _, o := range newUseCase(int64(i)).Interpret(base) {
			if m := abs(o.Magnitude); m > baseMax {
				baseMax = m
			}
		}
		for _, o := range newUseCase(int64(i)).Interpret(repeated) {
			if m := abs(o.Magnitude); m > repMax {
				repMax = m
			}
		}
	}
	if repMax <= baseMax {
		t.Fatalf("repeated pattern must scale offers up: base max %d, repeated max %d", baseMax, repMax)
	}
}

func TestInterpretSkillOveruseTargetsSkill(t *testing.T) {
	found := false
	for i := 0; i < 40 && !found; i++ {
		uc := newUseCase(int64(i))
		offers := uc.Interpret(obsOf(behavior.TriggerSkillOveruse, behavior.Payload{SkillName: "Fireball", UsageRatio: 0.7}))
		for _, o := range offers {
			if o.Skill != nil && o.Skill.SkillName == "Fireball" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("overuse of a named skill must sometimes offer a skill-targeted bargain")
	}
}

func TestInterpretAllConcatenates(t *testing.T) {
	uc := newUseCase(3)
	offers := uc.InterpretAll([]behavior.Observation{
		obsOf(behavior.TriggerPlayerDeath, behavior.Payload{KillerName: "Wraith"}),
		obsOf(behavior.TriggerType("made_up"), behavior.Payload{}),
		obsOf(behavior.TriggerFlawlessBattle, behavior.Payload{}),
	})
	if len(offers) != 4 {
		t.Fatalf("expected 4 offers from 2 known observations, got %d", len(offers))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
