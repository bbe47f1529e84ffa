package memory

import (
	"context"

	"duskpact/internal/app/ports"
	"duskpact/internal/domain/behavior"
)

type ProfileRepo struct {
	store *Store
}

func NewProfileRepo(store *Store) ProfileRepo {
	return ProfileRepo{store: store}
}

func (r ProfileRepo) Load(_ context.Context) (behavior.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.profile == nil {
		return behavior.Profile{}, ports.ErrNotFound
	}
	return copyProfile(*r.store.profile), nil
}

func (r ProfileRepo) Save(_ context.Context, profile behavior.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p := copyProfile(profile)
	r.store.profile = &p
	return nil
}

func copyProfile(in behavior.Profile) behavior.Profile {
	out := in
	out.Observations = make([]behavior.Observation, len(in.Observations))
	copy(out.Observations, in.Observations)
	out.Session.DeathCauses = append([]string(nil), in.Session.DeathCauses...)
	out.Session.EndHealthRatios = append([]float64(nil), in.Session.EndHealthRatios...)
	return out
}
