package ports

import (
	"context"

	"duskpact/internal/domain/bargain"
)

// CatalogProvider serves the tunable balance data: the default offer
// catalogue mixed into every negotiation, the static fallback cards used
// when generation comes up empty, and the intensity base-value ladder.
// Implementations fall back to compiled-in defaults rather than failing.
type CatalogProvider interface {
	DefaultOffers(ctx context.Context) ([]bargain.Offer, error)
	FallbackCards(ctx context.Context) ([]bargain.Card, error)
	Ladder(ctx context.Context) (bargain.Ladder, error)
}
