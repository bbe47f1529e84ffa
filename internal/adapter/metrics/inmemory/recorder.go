package inmemory

import (
	"sync"

	"duskpact/internal/domain/behavior"
)

type Snapshot struct {
	ObservationTotal uint64            `json:"observation_total"`
	ByTrigger        map[string]uint64 `json:"by_trigger"`
	CardsGenerated   uint64            `json:"cards_generated"`
	Accepts          uint64            `json:"accepts"`
	Declines         uint64            `json:"declines"`
	Refreshes        uint64            `json:"refreshes"`
}

type Recorder struct {
	mu        sync.Mutex
	byTrigger map[string]uint64
	cards     uint64
	accepts   uint64
	declines  uint64
	refreshes uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byTrigger: map[string]uint64{},
	}
}

func (r *Recorder) RecordObservation(trigger behavior.TriggerType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTrigger[string(trigger)]++
}

func (r *Recorder) RecordCardsGenerated(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards += uint64(n)
}

func (r *Recorder) RecordAccept() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepts++
}

func (r *Recorder) RecordDecline() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.declines++
}

func (r *Recorder) RecordRefresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshes++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		CardsGenerated: r.cards,
		Accepts:        r.accepts,
		Declines:       r.declines,
		Refreshes:      r.refreshes,
		ByTrigger:      make(map[string]uint64, len(r.byTrigger)),
	}
	for k, v := range r.byTrigger {
		out.ByTrigger[k] = v
		out.ObservationTotal += v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
