package negotiate

import (
	"testing"
	"time"

	"duskpact/internal/domain/bargain"
)

func TestConfirmerClaimWithinWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewConfirmer(func() time.Time { return now })
	card := bargain.Card{ID: "c1"}

	token := c.Start(card, 30*time.Second)
	now = now.Add(10 * time.Second)
	got, ok := c.Claim(token)
	if !ok {
		t.Fatalf("claim within the window must succeed")
	}
	if got.ID != "c1" {
		t.Fatalf("claim returned the wrong card: %q", got.ID)
	}
	if _, ok := c.Claim(token); ok {
		t.Fatalf("a token is single-use")
	}
}

func TestConfirmerExpiredClaimIsDecline(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewConfirmer(func() time.Time { return now })
	token := c.Start(bargain.Card{ID: "c1"}, 30*time.Second)

	now = now.Add(31 * time.Second)
	if _, ok := c.Claim(token); ok {
		t.Fatalf("claim after the deadline must fail")
	}
	if _, ok := c.Claim(token); ok {
		t.Fatalf("expired token must be consumed")
	}
}

func TestConfirmerUnknownToken(t *testing.T) {
	c := NewConfirmer(nil)
	if _, ok := c.Claim("nope"); ok {
		t.Fatalf("unknown token must fail")
	}
}

func TestConfirmerCancel(t *testing.T) {
	c := NewConfirmer(nil)
	token := c.Start(bargain.Card{ID: "c1"}, time.Hour)
	c.Cancel(token)
	if _, ok := c.Claim(token); ok {
		t.Fatalf("cancelled token must not claim")
	}
}
