package bargain

// Ledger is the cumulative store of every stat delta ever applied. It is the
// audit trail and the re-application source for lazily modified enemies; the
// per-attribute floors clamp live stats at apply time, not the ledger.
type Ledger struct {
	values map[Attribute]float64
}

func NewLedger() *Ledger {
	return &Ledger{values: map[Attribute]float64{}}
}

// Record accumulates a delta for attr. AttributeNone and unknown attributes
// are no-ops.
func (l *Ledger) Record(attr Attribute, delta float64) {
	if _, ok := Info(attr); !ok {
		return
	}
	l.values[attr] += delta
}

func (l *Ledger) Get(attr Attribute) float64 {
	return l.values[attr]
}

// Values returns a copy of every non-zero entry, keyed for persistence.
func (l *Ledger) Values() map[Attribute]float64 {
	out := make(map[Attribute]float64, len(l.values))
	for k, v := range l.values {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}

// Restore replaces the ledger contents wholesale, dropping entries for
// attributes no longer in the taxonomy. Used at load time.
func (l *Ledger) Restore(values map[Attribute]float64) {
	l.values = map[Attribute]float64{}
	for k, v := range values {
		if _, ok := Info(k); ok {
			l.values[k] = v
		}
	}
}

// Reset zeroes every entry. Only the new-game reset calls this.
func (l *Ledger) Reset() {
	l.values = map[Attribute]float64{}
}
