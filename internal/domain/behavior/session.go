package behavior

const (
	maxDeathCauses     = 10
	maxEndHealthWindow = 5
)

// SessionData holds process-lifetime counters that feed streak detectors.
// Only a full game reset clears it.
type SessionData struct {
	LowManaStreak      int       `json:"low_mana_streak"`
	CriticalManaStreak int       `json:"critical_mana_streak"`
	LowHealthStreak    int       `json:"low_health_streak"`
	DeathCauses        []string  `json:"death_causes,omitempty"`
	EndHealthRatios    []float64 `json:"end_health_ratios,omitempty"`
	BattlesFought      int       `json:"battles_fought"`
}

// PushDeathCause records a notable death cause, keeping the newest ten.
func (s *SessionData) PushDeathCause(cause string) {
	if cause == "" {
		return
	}
	s.DeathCauses = append(s.DeathCauses, cause)
	if len(s.DeathCauses) > maxDeathCauses {
		s.DeathCauses = s.DeathCauses[len(s.DeathCauses)-maxDeathCauses:]
	}
}

// PushEndHealthRatio records a battle-end health ratio in the rolling window
// of the last five battles.
func (s *SessionData) PushEndHealthRatio(ratio float64) {
	s.EndHealthRatios = append(s.EndHealthRatios, ratio)
	if len(s.EndHealthRatios) > maxEndHealthWindow {
		s.EndHealthRatios = s.EndHealthRatios[len(s.EndHealthRatios)-maxEndHealthWindow:]
	}
}

func (s *SessionData) AverageEndHealthRatio() float64 {
	if len(s.EndHealthRatios) == 0 {
		return 1
	}
	sum := 0.0
	for _, r := range s.EndHealthRatios {
		sum += r
	}
	return sum / float64(len(s.EndHealthRatios))
}

func (s *SessionData) reset() {
	*s = SessionData{}
}
