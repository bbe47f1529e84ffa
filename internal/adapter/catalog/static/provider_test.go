package staticcatalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"duskpact/internal/domain/bargain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestDefaultsWithoutRoot(t *testing.T) {
	p := Provider{}
	ctx := context.Background()

	offers, err := p.DefaultOffers(ctx)
	if err != nil || len(offers) == 0 {
		t.Fatalf("compiled default offers expected, got %d offers, err %v", len(offers), err)
	}
	var adv, dis int
	for _, o := range offers {
		if o.Advantage {
			adv++
		} else {
			dis++
		}
	}
	if adv == 0 || dis == 0 {
		t.Fatalf("defaults must cover both sides, got %d/%d", adv, dis)
	}

	cards, err := p.FallbackCards(ctx)
	if err != nil || len(cards) == 0 {
		t.Fatalf("compiled fallback cards expected, got %d cards, err %v", len(cards), err)
	}

	ladder, err := p.Ladder(ctx)
	if err != nil {
		t.Fatalf("ladder: %v", err)
	}
	if ladder.Magnitude(bargain.PlayerMaxHP, bargain.IntensityHigh) == 0 {
		t.Fatalf("default ladder must carry player max hp tiers")
	}
}

func TestFilesOverrideDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default_offers.json",
		`[{"name":"Test Boon","advantage":true,"target":"player_max_hp","magnitude":12}]`)
	writeFile(t, dir, "fallback_cards.json",
		`[{"name":"Test Card","kind":"fixed","benefit":{"name":"b","advantage":true,"target":"player_max_hp","magnitude":10},"cost":{"name":"c","target":"shop_price","magnitude":5}}]`)
	writeFile(t, dir, "intensity_ladder.json",
		`{"player_max_hp":{"low":1,"medium":2,"high":3}}`)

	p := Provider{Root: dir}
	ctx := context.Background()

	offers, err := p.DefaultOffers(ctx)
	if err != nil || len(offers) != 1 {
		t.Fatalf("expected the single file offer, got %d, err %v", len(offers), err)
	}
	if offers[0].Name != "Test Boon" || offers[0].Target != bargain.PlayerMaxHP {
		t.Fatalf("offer not decoded: %+v", offers[0])
	}

	cards, err := p.FallbackCards(ctx)
	if err != nil || len(cards) != 1 {
		t.Fatalf("expected the single file card, got %d, err %v", len(cards), err)
	}
	if cards[0].Name != "Test Card" || cards[0].Kind != bargain.CardFixed {
		t.Fatalf("card not decoded: %+v", cards[0])
	}
	if cards[0].Cost.Advantage {
		t.Fatalf("cost side must load as a disadvantage")
	}

	ladder, err := p.Ladder(ctx)
	if err != nil {
		t.Fatalf("ladder: %v", err)
	}
	if got := ladder.Magnitude(bargain.PlayerMaxHP, bargain.IntensityHigh); got != 3 {
		t.Fatalf("expected file ladder value 3, got %d", got)
	}
}

func TestMalformedFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default_offers.json", `{broken`)

	p := Provider{Root: dir}
	offers, err := p.DefaultOffers(context.Background())
	if err != nil || len(offers) == 0 {
		t.Fatalf("a broken file must fall back to compiled defaults, got %d, err %v", len(offers), err)
	}
}

func TestEmptyFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default_offers.json", `[]`)

	p := Provider{Root: dir}
	offers, err := p.DefaultOffers(context.Background())
	if err != nil || len(offers) == 0 {
		t.Fatalf("an empty catalogue must fall back, got %d, err %v", len(offers), err)
	}
}
