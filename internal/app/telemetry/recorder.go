package telemetry

import (
	"context"
	"log"
	"sync"
	"time"

	"duskpact/internal/app/ports"
	"duskpact/internal/domain/behavior"
)

const (
	splurgeSpendRatio = 0.7
	hoardCoinsMin     = 300
	poorCoinsMax      = 20
	revisitMin        = 3
)

// Recorder subscribes to combat, shop and map lifecycle events, accumulates
// per-battle statistics, and converts detected patterns into profile
// observations. It owns the in-memory profile; every meaningful mutation is
// followed by a synchronous save so a crash loses at most the in-flight
// event.
type Recorder struct {
	mu      sync.Mutex
	profile *behavior.Profile

	Repo    ports.ProfileRepository
	Metrics ports.BargainMetrics
	Now     func() time.Time

	battle    *battleStats
	mapName   string
	coinsSeen int
	shopSpent int
	shopBuys  int
	mapVisits map[string]int
}

func NewRecorder(profile *behavior.Profile, repo ports.ProfileRepository, metrics ports.BargainMetrics, now func() time.Time) *Recorder {
	if profile == nil {
		profile = behavior.NewProfile()
	}
	if now == nil {
		now = time.Now
	}
	return &Recorder{
		profile:   profile,
		Repo:      repo,
		Metrics:   metrics,
		Now:       now,
		mapVisits: map[string]int{},
	}
}

func (r *Recorder) HandleBattleStarted(ev BattleStart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev.MapContext == "" {
		ev.MapContext = r.mapName
	}
	r.battle = newBattleStats(ev)
}

func (r *Recorder) HandleSkillUsed(ev SkillUse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.battle == nil {
		log.Printf("telemetry: skill use outside battle, ignoring (skill=%s)", ev.Skill.Name)
		return
	}
	r.battle.recordSkillUse(ev)
}

func (r *Recorder) HandleSkillDamageDealt(ev SkillDamage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.battle == nil {
		return
	}
	r.battle.recordDamageDealt(ev)
}

func (r *Recorder) HandleDamageReceived(ev DamageReceived) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.battle == nil {
		return
	}
	r.battle.recordDamageReceived(ev)
}

func (r *Recorder) HandleEntityDied(ev EntityDeath) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.battle == nil {
		return
	}
	r.battle.recordDeath(ev)
}

// HandleBattleEnded updates streak counters, runs every detector against the
// finished battle, records the resulting observations and persists the
// profile. The accumulator is discarded afterwards.
func (r *Recorder) HandleBattleEnded(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.battle
	if b == nil {
		log.Print("telemetry: battle end without battle start, ignoring")
		return
	}
	r.battle = nil

	at := r.Now()
	s := &r.profile.Session
	s.BattlesFought++
	s.PushEndHealthRatio(b.endHPRatio())
	if b.playerDied {
		s.PushDeathCause(b.killerName)
	}
	if b.endMPRatio() < lowManaRatio {
		s.LowManaStreak++
	} else {
		s.LowManaStreak = 0
	}
	if b.endMPRatio() < criticalManaRatio {
		s.CriticalManaStreak++
	} else {
		s.CriticalManaStreak = 0
	}

	for _, detect := range battleEndDetectors {
		if o := detect(b, s, at); o != nil {
			r.record(*o)
		}
	}
	r.persist(ctx)
}

func (r *Recorder) HandleShopPurchased(ctx context.Context, ev ShopPurchase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shopBuys++
	r.shopSpent += ev.Price
}

// HandleShopExited fires the economy detectors for one finished shop visit.
func (r *Recorder) HandleShopExited(ctx context.Context, ev ShopExit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	at := r.Now()
	fired := false
	if r.shopBuys == 0 && ev.UnsoldCount > 0 {
		r.record(behavior.NewObservation(behavior.TriggerShopIgnored, r.mapName, at, behavior.Payload{ItemCount: ev.UnsoldCount}))
		fired = true
	}
	if r.coinsSeen > 0 && float64(r.shopSpent)/float64(r.coinsSeen) >= splurgeSpendRatio {
		r.record(behavior.NewObservation(behavior.TriggerShopSplurge, r.mapName, at, behavior.Payload{CoinsSeen: r.coinsSeen}))
		fired = true
	}
	r.shopBuys = 0
	r.shopSpent = 0
	if fired {
		r.persist(ctx)
	}
}

func (r *Recorder) HandleMapEntered(ctx context.Context, ev MapEntered) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mapName = ev.MapName
	r.coinsSeen = ev.Coins
	r.mapVisits[ev.MapName]++
	at := r.Now()
	fired := false
	if ev.Coins >= hoardCoinsMin && ev.UnvisitedShops > 0 {
		r.record(behavior.NewObservation(behavior.TriggerCoinHoarding, ev.MapName, at, behavior.Payload{CoinsSeen: ev.Coins, UnvisitedShops: ev.UnvisitedShops}))
		fired = true
	}
	if ev.Coins <= poorCoinsMax {
		r.record(behavior.NewObservation(behavior.TriggerPoorEconomy, ev.MapName, at, behavior.Payload{CoinsSeen: ev.Coins}))
		fired = true
	}
	if r.mapVisits[ev.MapName] >= revisitMin {
		r.record(behavior.NewObservation(behavior.TriggerMapRevisit, ev.MapName, at, behavior.Payload{}))
		fired = true
	}
	if fired {
		r.persist(ctx)
	}
}

func (r *Recorder) record(o behavior.Observation) {
	r.profile.Record(o)
	if r.Metrics != nil {
		r.Metrics.RecordObservation(o.Trigger)
	}
}

// Query surface for the presentation layer. Results are copies.

func (r *Recorder) AllObservations() []behavior.Observation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profile.All()
}

func (r *Recorder) ObservationsByType(t behavior.TriggerType) []behavior.Observation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profile.ByTrigger(t)
}

func (r *Recorder) UnresolvedRanked(maxN int) []behavior.Observation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profile.UnresolvedRanked(maxN)
}

// ConsumeObservations removes observations that were converted into offers
// and persists the shrunken profile.
func (r *Recorder) ConsumeObservations(ctx context.Context, observations ...behavior.Observation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile.Consume(observations...)
	r.persist(ctx)
}

// MarkResolved flags observations as surfaced without deleting history.
func (r *Recorder) MarkResolved(ctx context.Context, observations ...behavior.Observation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile.MarkResolved(observations...)
	r.persist(ctx)
}

// ResetForNewGame clears the profile except preserved triggers and drops
// every cached run-scoped counter.
func (r *Recorder) ResetForNewGame(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile.ResetForNewGame()
	r.battle = nil
	r.mapName = ""
	r.coinsSeen = 0
	r.shopSpent = 0
	r.shopBuys = 0
	r.mapVisits = map[string]int{}
	r.persist(ctx)
}

// persist writes the whole profile after a mutation. Persistence failure is
// logged and swallowed; the session continues on in-memory state.
func (r *Recorder) persist(ctx context.Context) {
	if r.Repo == nil {
		return
	}
	if err := r.Repo.Save(ctx, *r.profile); err != nil {
		log.Printf("telemetry: profile save failed: %v", err)
	}
}
