package behavior

import "sort"

// Profile is the aggregate of everything the telemetry recorder has learned
// about the player: live observations plus session counters. One exists per
// process; all mutation goes through its methods so the merge invariant
// holds.
type Profile struct {
	Observations []Observation `json:"observations"`
	Session      SessionData   `json:"session"`
}

func NewProfile() *Profile {
	return &Profile{}
}

// Record inserts an observation, merging into an existing similar one
// instead of appending. Returns true when a merge happened.
func (p *Profile) Record(obs Observation) bool {
	if obs.RepeatCount < 1 {
		obs.RepeatCount = 1
	}
	for i := range p.Observations {
		if Similar(p.Observations[i], obs) {
			p.Observations[i].mergeFrom(obs)
			return true
		}
	}
	p.Observations = append(p.Observations, obs)
	return false
}

func (p *Profile) All() []Observation {
	out := make([]Observation, len(p.Observations))
	copy(out, p.Observations)
	return out
}

func (p *Profile) ByTrigger(t TriggerType) []Observation {
	var out []Observation
	for _, o := range p.Observations {
		if o.Trigger == t {
			out = append(out, o)
		}
	}
	return out
}

// UnresolvedRanked returns up to maxN unresolved observations, most-repeated
// first and most-recent breaking ties.
func (p *Profile) UnresolvedRanked(maxN int) []Observation {
	var out []Observation
	for _, o := range p.Observations {
		if !o.Resolved {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RepeatCount != out[j].RepeatCount {
			return out[i].RepeatCount > out[j].RepeatCount
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if maxN > 0 && len(out) > maxN {
		out = out[:maxN]
	}
	return out
}

// Consume removes the given observations atomically. Matching uses the same
// similarity rule as Record, so the observation handed out by a query
// removes the stored copy it came from.
func (p *Profile) Consume(observations ...Observation) {
	if len(observations) == 0 {
		return
	}
	kept := p.Observations[:0]
	for _, stored := range p.Observations {
		matched := false
		for _, target := range observations {
			if Similar(stored, target) {
				matched = true
				break
			}
		}
		if !matched {
			kept = append(kept, stored)
		}
	}
	p.Observations = kept
}

// MarkResolved flags observations without removing them, so they stop
// surfacing in ranked queries but keep their history.
func (p *Profile) MarkResolved(observations ...Observation) {
	for i := range p.Observations {
		for _, target := range observations {
			if Similar(p.Observations[i], target) {
				p.Observations[i].Resolved = true
			}
		}
	}
}

// ResetForNewGame clears the profile except observations whose trigger type
// is preserved across resets.
func (p *Profile) ResetForNewGame() {
	kept := p.Observations[:0]
	for _, o := range p.Observations {
		if o.Trigger.PreservedOnReset() {
			kept = append(kept, o)
		}
	}
	p.Observations = kept
	p.Session.reset()
}
