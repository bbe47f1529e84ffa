package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"duskpact/internal/app/ports"
	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/behavior"
)

func TestProfileRepoNotFoundUntilSaved(t *testing.T) {
	repo := NewProfileRepo(NewStore())
	ctx := context.Background()

	if _, err := repo.Load(ctx); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("empty store must report not found, got %v", err)
	}

	p := behavior.NewProfile()
	p.Record(behavior.Observation{Trigger: behavior.TriggerPlayerDeath, MapContext: "Forest", Payload: behavior.Payload{KillerName: "Wraith"}, Timestamp: time.Now(), RepeatCount: 1})
	if err := repo.Save(ctx, *p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Observations) != 1 || got.Observations[0].Payload.KillerName != "Wraith" {
		t.Fatalf("round trip lost data: %+v", got.Observations)
	}
}

func TestProfileRepoCopiesOnLoad(t *testing.T) {
	repo := NewProfileRepo(NewStore())
	ctx := context.Background()

	p := behavior.NewProfile()
	p.Record(behavior.Observation{Trigger: behavior.TriggerPlayerDeath, MapContext: "Forest", Payload: behavior.Payload{KillerName: "Wraith"}, Timestamp: time.Now(), RepeatCount: 1})
	if err := repo.Save(ctx, *p); err != nil {
		t.Fatalf("save: %v", err)
	}

	first, _ := repo.Load(ctx)
	first.Observations[0].Payload.KillerName = "Imposter"

	second, _ := repo.Load(ctx)
	if second.Observations[0].Payload.KillerName != "Wraith" {
		t.Fatalf("loads must not share backing slices")
	}
}

func TestLedgerRepoRoundTrip(t *testing.T) {
	repo := NewLedgerRepo(NewStore())
	ctx := context.Background()

	if _, err := repo.Load(ctx); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("empty store must report not found, got %v", err)
	}

	in := map[bargain.Attribute]float64{
		bargain.PlayerMaxHP: 20,
		bargain.ShopPrice:   -3,
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	in[bargain.PlayerMaxHP] = 999

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got[bargain.PlayerMaxHP] != 20 || got[bargain.ShopPrice] != -3 {
		t.Fatalf("round trip mismatch: %v", got)
	}
}
