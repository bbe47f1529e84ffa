package behavior

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRecordMergesRepeatedPattern(t *testing.T) {
	p := NewProfile()
	first := NewObservation(TriggerPlayerDeath, "Forest", t0, Payload{KillerName: "Wraith"})
	second := NewObservation(TriggerPlayerDeath, "Forest", t0.Add(time.Hour), Payload{KillerName: "Wraith"})

	if merged := p.Record(first); merged {
		t.Fatalf("first record must append, not merge")
	}
	if merged := p.Record(second); !merged {
		t.Fatalf("repeat of the same pattern must merge")
	}
	all := p.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(all))
	}
	if all[0].RepeatCount != 2 {
		t.Fatalf("expected repeat count 2, got %d", all[0].RepeatCount)
	}
	if !all[0].Timestamp.Equal(t0.Add(time.Hour)) {
		t.Fatalf("merge must keep the newer timestamp, got %v", all[0].Timestamp)
	}
}

func TestRecordKeepsDistinctKillersApart(t *testing.T) {
	p := NewProfile()
	p.Record(NewObservation(TriggerPlayerDeath, "Forest", t0, Payload{KillerName: "Wraith"}))
	p.Record(NewObservation(TriggerPlayerDeath, "Forest", t0, Payload{KillerName: "Stone Golem"}))
	if len(p.All()) != 2 {
		t.Fatalf("deaths to different killers are different patterns, got %d observations", len(p.All()))
	}
}

func TestRecordKeepsMapsApart(t *testing.T) {
	p := NewProfile()
	p.Record(NewObservation(TriggerLongBattles, "Forest", t0, Payload{TurnCount: 14}))
	p.Record(NewObservation(TriggerLongBattles, "Crypt", t0, Payload{TurnCount: 15}))
	if len(p.All()) != 2 {
		t.Fatalf("same trigger on different maps must not merge, got %d observations", len(p.All()))
	}
}

func TestMergeOverwritesSetPayloadFields(t *testing.T) {
	p := NewProfile()
	p.Record(NewObservation(TriggerSkillOveruse, "Forest", t0, Payload{SkillName: "Fireball", UsageRatio: 0.6}))
	p.Record(NewObservation(TriggerSkillOveruse, "Forest", t0, Payload{SkillName: "Fireball", UsageRatio: 0.8}))
	all := p.All()
	if all[0].Payload.UsageRatio != 0.8 {
		t.Fatalf("set payload field must be overwritten on merge, got %v", all[0].Payload.UsageRatio)
	}
}

func TestMergeClearsResolved(t *testing.T) {
	p := NewProfile()
	obs := NewObservation(TriggerPlayerDeath, "Forest", t0, Payload{KillerName: "Wraith"})
	p.Record(obs)
	p.MarkResolved(obs)
	p.Record(NewObservation(TriggerPlayerDeath, "Forest", t0.Add(time.Minute), Payload{KillerName: "Wraith"}))
	if p.All()[0].Resolved {
		t.Fatalf("re-detected pattern must surface again")
	}
}

func TestUnresolvedRankedOrdering(t *testing.T) {
	p := NewProfile()
	p.Record(NewObservation(TriggerShortBattles, "Forest", t0, Payload{}))
	for i := 0; i < 3; i++ {
		p.Record(NewObservation(TriggerPlayerDeath, "Forest", t0.Add(time.Duration(i)*time.Minute), Payload{KillerName: "Wraith"}))
	}
	p.Record(NewObservation(TriggerLongBattles, "Forest", t0.Add(time.Hour), Payload{TurnCount: 13}))

	ranked := p.UnresolvedRanked(2)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked observations, got %d", len(ranked))
	}
	if ranked[0].Trigger != TriggerPlayerDeath {
		t.Fatalf("most repeated must rank first, got %s", ranked[0].Trigger)
	}
	if ranked[1].Trigger != TriggerLongBattles {
		t.Fatalf("newer timestamp must break ties, got %s", ranked[1].Trigger)
	}
}

func TestConsumeRemovesBySimilarity(t *testing.T) {
	p := NewProfile()
	obs := NewObservation(TriggerPlayerDeath, "Forest", t0, Payload{KillerName: "Wraith"})
	p.Record(obs)
	p.Record(NewObservation(TriggerPlayerDeath, "Forest", t0, Payload{KillerName: "Stone Golem"}))

	p.Consume(obs)
	remaining := p.All()
	if len(remaining) != 1 {
		t.Fatalf("expected 1 observation after consume, got %d", len(remaining))
	}
	if remaining[0].Payload.KillerName != "Stone Golem" {
		t.Fatalf("wrong observation consumed: %+v", remaining[0])
	}
}

func TestResetForNewGamePreservesDeathHistory(t *testing.T) {
	p := NewProfile()
	p.Record(NewObservation(TriggerPlayerDeath, "Forest", t0, Payload{KillerName: "Wraith"}))
	p.Record(NewObservation(TriggerShopIgnored, "Town", t0, Payload{ItemCount: 4}))
	p.Session.BattlesFought = 9
	p.Session.LowManaStreak = 3

	p.ResetForNewGame()

	all := p.All()
	if len(all) != 1 || all[0].Trigger != TriggerPlayerDeath {
		t.Fatalf("only death history survives a reset, got %+v", all)
	}
	if p.Session.BattlesFought != 0 || p.Session.LowManaStreak != 0 {
		t.Fatalf("session counters must clear on reset: %+v", p.Session)
	}
}
