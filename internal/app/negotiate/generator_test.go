package negotiate

import (
	"math/rand"
	"testing"

	"duskpact/internal/domain/bargain"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), nil, 2)
}

func advOffer(name string, target bargain.Attribute, mag int) bargain.Offer {
	return bargain.NewOffer(name, "", true, target, mag, "")
}

func disOffer(name string, target bargain.Attribute, mag int) bargain.Offer {
	return bargain.NewOffer(name, "", false, target, mag, "")
}

func testOffers(advCount, disCount int) []bargain.Offer {
	targets := []bargain.Attribute{
		bargain.PlayerMaxHP, bargain.PlayerDefense, bargain.PlayerAttackPower,
		bargain.PlayerMaxMP, bargain.PlayerSpeed, bargain.PlayerSkillPower,
	}
	disTargets := []bargain.Attribute{
		bargain.EnemyMaxHP, bargain.EnemyAttackPower, bargain.ShopPrice,
		bargain.CoinReward, bargain.EnemyDefense, bargain.EnemySpeed,
	}
	var out []bargain.Offer
	for i := 0; i < advCount; i++ {
		out = append(out, advOffer("adv", targets[i%len(targets)], 10+i))
	}
	for i := 0; i < disCount; i++ {
		out = append(out, disOffer("dis", disTargets[i%len(disTargets)], 10+i))
	}
	return out
}

func poolTotal(g *Generator) (int, int) {
	au, ad, du, dd := g.PoolSizes()
	return au + ad, du + dd
}

func TestGenerateCardsBoundedByPools(t *testing.T) {
	g := newTestGenerator(1)
	g.BeginSession(testOffers(5, 2))
	cards := g.GenerateCards(4)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards from pools of 5 and 2, got %d", len(cards))
	}
}

func TestConservationAcrossGenerateAndRelease(t *testing.T) {
	g := newTestGenerator(2)
	g.BeginSession(testOffers(6, 6))
	advBefore, disBefore := poolTotal(g)

	cards := g.GenerateCards(3)
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	advAfter, disAfter := poolTotal(g)
	if advAfter != advBefore || disAfter != disBefore {
		t.Fatalf("generation must move offers, not create or destroy them: %d/%d vs %d/%d", advBefore, disBefore, advAfter, disAfter)
	}

	for _, c := range cards {
		g.ReleaseCardOffers(c)
	}
	au, ad, du, dd := g.PoolSizes()
	if ad != 0 || dd != 0 {
		t.Fatalf("release must empty the used sets, got used %d/%d", ad, dd)
	}
	if au != advBefore || du != disBefore {
		t.Fatalf("release must refill the unused sets, got %d/%d", au, du)
	}
}

func TestGenerateSingleCardExhaustion(t *testing.T) {
	g := newTestGenerator(3)
	g.BeginSession(testOffers(1, 1))
	if card := g.GenerateSingleCard(); card == nil {
		t.Fatalf("one pairing should be available")
	}
	if card := g.GenerateSingleCard(); card != nil {
		t.Fatalf("exhausted pools must yield nil, got %+v", card)
	}
}

func TestRefreshSlotCap(t *testing.T) {
	g := newTestGenerator(4)
	g.BeginSession(testOffers(6, 6))
	cards := g.GenerateCards(1)
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}

	current := cards[0]
	for i := 0; i < 2; i++ {
		next, ok := g.RefreshSlot(0, current)
		if !ok {
			t.Fatalf("refresh %d must be allowed", i+1)
		}
		if next == nil {
			t.Fatalf("refresh %d should produce a card with full pools", i+1)
		}
		current = *next
	}
	if _, ok := g.RefreshSlot(0, current); ok {
		t.Fatalf("third refresh on the same slot must be rejected")
	}

	if _, ok := g.RefreshSlot(1, current); !ok {
		t.Fatalf("a different slot keeps its own refresh budget")
	}
}

func TestRefreshConservesPoolTotals(t *testing.T) {
	g := newTestGenerator(5)
	g.BeginSession(testOffers(5, 5))
	cards := g.GenerateCards(2)
	advBefore, disBefore := poolTotal(g)

	if _, ok := g.RefreshSlot(0, cards[0]); !ok {
		t.Fatalf("refresh must be allowed")
	}
	advAfter, disAfter := poolTotal(g)
	if advAfter != advBefore || disAfter != disBefore {
		t.Fatalf("refresh must conserve pool totals: %d/%d vs %d/%d", advBefore, disBefore, advAfter, disAfter)
	}
}

func TestBeginSessionSplitsByAdvantage(t *testing.T) {
	g := newTestGenerator(6)
	g.BeginSession(testOffers(4, 3))
	au, ad, du, dd := g.PoolSizes()
	if au != 4 || du != 3 || ad != 0 || dd != 0 {
		t.Fatalf("unexpected pool split: %d/%d/%d/%d", au, ad, du, dd)
	}
}

func TestMatchScoreSymmetricInputs(t *testing.T) {
	a := advOffer("a", bargain.PlayerMaxHP, 10)
	d := disOffer("d", bargain.EnemyMaxHP, 10)
	s := matchScore(a, d)
	if s <= 0 {
		t.Fatalf("same-category equal-magnitude pair must score positively, got %d", s)
	}
	far := disOffer("far", bargain.EnemySpeed, 50)
	if matchScore(a, far) >= s {
		t.Fatalf("distant pair must score below a close pair")
	}
}

func TestMatchScoreComponents(t *testing.T) {
	a := bargain.NewOffer("a", "", true, bargain.PlayerMaxHP, 10, "player_death")
	sameSource := bargain.NewOffer("d", "", false, bargain.EnemySpeed, 40, "player_death")
	otherSource := bargain.NewOffer("d", "", false, bargain.EnemySpeed, 40, "ally_death")
	if matchScore(a, sameSource)-matchScore(a, otherSource) != scoreSameSource {
		t.Fatalf("same-source bonus must be worth exactly %d", scoreSameSource)
	}

	complementary := disOffer("d", bargain.EnemyDefense, 40)
	plain := disOffer("d", bargain.EnemyAttackPower, 40)
	if matchScore(a, complementary)-matchScore(a, plain) != scoreComplementary {
		t.Fatalf("complementary bonus must be worth exactly %d", scoreComplementary)
	}
}

func TestGeneratedCardsCarryChoiceMetadata(t *testing.T) {
	g := newTestGenerator(7)
	g.BeginSession(testOffers(6, 6))
	for _, c := range g.GenerateCards(3) {
		switch c.Kind {
		case bargain.CardFixed:
			if len(c.Intensities) != 0 {
				t.Fatalf("fixed card must not list intensities")
			}
		case bargain.CardIntensityOnly:
			if len(c.Intensities) == 0 {
				t.Fatalf("intensity-only card must list intensities")
			}
		case bargain.CardAttributeAndIntensity:
			if len(c.BenefitChoices) == 0 && len(c.CostChoices) == 0 {
				t.Fatalf("attribute card must list at least one choice set")
			}
		default:
			t.Fatalf("unknown card kind %q", c.Kind)
		}
		if c.ID == "" {
			t.Fatalf("cards must carry unique ids")
		}
	}
}
