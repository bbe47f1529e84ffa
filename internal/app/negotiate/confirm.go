package negotiate

import (
	"sync"
	"time"

	"duskpact/internal/domain/bargain"

	"github.com/google/uuid"
)

// Confirmer implements the bounded "apply immediately" interaction: the
// caller opens a confirmation window for a card, and a claim after the
// window elapses is treated as a decline. Expired entries just sit until
// claimed or cancelled; there is no timer goroutine.
type Confirmer struct {
	mu      sync.Mutex
	Now     func() time.Time
	pending map[string]pendingConfirm
}

type pendingConfirm struct {
	card     bargain.Card
	deadline time.Time
}

func NewConfirmer(now func() time.Time) *Confirmer {
	if now == nil {
		now = time.Now
	}
	return &Confirmer{Now: now, pending: map[string]pendingConfirm{}}
}

// Start opens a confirmation window and returns its token.
func (c *Confirmer) Start(card bargain.Card, window time.Duration) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	token := uuid.NewString()
	c.pending[token] = pendingConfirm{card: card, deadline: c.Now().Add(window)}
	return token
}

// Claim consumes the token. ok=false means unknown or expired — in both
// cases the bargain is off and no ledger mutation may happen.
func (c *Confirmer) Claim(token string) (bargain.Card, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pending[token]
	if !ok {
		return bargain.Card{}, false
	}
	delete(c.pending, token)
	if c.Now().After(p.deadline) {
		return bargain.Card{}, false
	}
	return p.card, true
}

// Cancel withdraws a pending confirmation explicitly.
func (c *Confirmer) Cancel(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, token)
}
