package ports

import (
	"context"

	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/behavior"
)

// ProfileRepository persists the whole behavior profile as one record.
// Load returns ErrNotFound on first run; callers start fresh.
type ProfileRepository interface {
	Load(ctx context.Context) (behavior.Profile, error)
	Save(ctx context.Context, profile behavior.Profile) error
}

// LedgerRepository persists the cumulative modifier values, one per tracked
// attribute.
type LedgerRepository interface {
	Load(ctx context.Context) (map[bargain.Attribute]float64, error)
	Save(ctx context.Context, values map[bargain.Attribute]float64) error
}
