package inmemory

import (
	"testing"

	"duskpact/internal/domain/behavior"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordObservation(behavior.TriggerPlayerDeath)
	r.RecordObservation(behavior.TriggerPlayerDeath)
	r.RecordObservation(behavior.TriggerSkillOveruse)
	r.RecordCardsGenerated(3)
	r.RecordAccept()
	r.RecordDecline()
	r.RecordRefresh()
	r.RecordRefresh()

	s := r.Snapshot()
	if s.ObservationTotal != 3 {
		t.Fatalf("expected observation total 3, got %d", s.ObservationTotal)
	}
	if s.ByTrigger[string(behavior.TriggerPlayerDeath)] != 2 {
		t.Fatalf("expected 2 death observations, got %d", s.ByTrigger[string(behavior.TriggerPlayerDeath)])
	}
	if s.CardsGenerated != 3 {
		t.Fatalf("expected 3 cards generated, got %d", s.CardsGenerated)
	}
	if s.Accepts != 1 || s.Declines != 1 {
		t.Fatalf("expected 1 accept and 1 decline, got %d/%d", s.Accepts, s.Declines)
	}
	if s.Refreshes != 2 {
		t.Fatalf("expected 2 refreshes, got %d", s.Refreshes)
	}
}
