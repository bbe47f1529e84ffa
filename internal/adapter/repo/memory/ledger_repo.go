package memory

import (
	"context"

	"duskpact/internal/app/ports"
	"duskpact/internal/domain/bargain"
)

type LedgerRepo struct {
	store *Store
}

func NewLedgerRepo(store *Store) LedgerRepo {
	return LedgerRepo{store: store}
}

func (r LedgerRepo) Load(_ context.Context) (map[bargain.Attribute]float64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.ledger == nil {
		return nil, ports.ErrNotFound
	}
	out := make(map[bargain.Attribute]float64, len(r.store.ledger))
	for k, v := range r.store.ledger {
		out[k] = v
	}
	return out, nil
}

func (r LedgerRepo) Save(_ context.Context, values map[bargain.Attribute]float64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.ledger = make(map[bargain.Attribute]float64, len(values))
	for k, v := range values {
		r.store.ledger[k] = v
	}
	return nil
}
