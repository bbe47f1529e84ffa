package behavior

import "testing"

func TestPushDeathCauseKeepsNewestTen(t *testing.T) {
	var s SessionData
	for i := 0; i < 12; i++ {
		s.PushDeathCause("Wraith")
	}
	if len(s.DeathCauses) != 10 {
		t.Fatalf("expected 10 retained causes, got %d", len(s.DeathCauses))
	}
	s.PushDeathCause("")
	if len(s.DeathCauses) != 10 {
		t.Fatalf("empty cause must be ignored")
	}
}

func TestEndHealthWindow(t *testing.T) {
	var s SessionData
	if s.AverageEndHealthRatio() != 1 {
		t.Fatalf("empty window averages to full health")
	}
	for _, r := range []float64{1, 1, 0.2, 0.2, 0.2, 0.2} {
		s.PushEndHealthRatio(r)
	}
	if len(s.EndHealthRatios) != 5 {
		t.Fatalf("window must cap at 5, got %d", len(s.EndHealthRatios))
	}
	avg := s.AverageEndHealthRatio()
	if avg < 0.35 || avg > 0.37 {
		t.Fatalf("expected average near 0.36, got %v", avg)
	}
}
