package memory

import (
	"sync"

	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/behavior"
)

// Store backs the in-memory repos. It doubles as the degrade path when the
// database is unreachable: the session keeps its state, it just does not
// survive the process.
type Store struct {
	mu      sync.Mutex
	profile *behavior.Profile
	ledger  map[bargain.Attribute]float64
}

func NewStore() *Store {
	return &Store{}
}
