package bargain

import "testing"

func TestBuildCardFixed(t *testing.T) {
	c := BuildCard("c1", CardFixed,
		NewOffer("b", "gain", true, PlayerMaxHP, 10, ""),
		NewOffer("d", "pay", false, ShopPrice, 5, ""))
	if len(c.BenefitChoices) != 0 || len(c.CostChoices) != 0 || len(c.Intensities) != 0 {
		t.Fatalf("fixed card must expose no choices: %+v", c)
	}
}

func TestBuildCardIntensityOnly(t *testing.T) {
	c := BuildCard("c2", CardIntensityOnly,
		NewOffer("b", "gain", true, PlayerMaxHP, 10, ""),
		NewOffer("d", "pay", false, ShopPrice, 5, ""))
	if len(c.Intensities) != 3 {
		t.Fatalf("expected 3 intensity tiers, got %d", len(c.Intensities))
	}
	if len(c.BenefitChoices) != 0 {
		t.Fatalf("intensity-only card must not expose attribute choices")
	}
}

func TestBuildCardAttributeAndIntensity(t *testing.T) {
	c := BuildCard("c3", CardAttributeAndIntensity,
		NewOffer("b", "gain", true, PlayerMaxHP, 10, ""),
		NewOffer("d", "pay", false, ShopPrice, 5, ""))
	if len(c.BenefitChoices) == 0 || c.BenefitChoices[0] != PlayerMaxHP {
		t.Fatalf("matched attribute must lead the benefit choices: %v", c.BenefitChoices)
	}
	if len(c.CostChoices) == 0 || c.CostChoices[0] != ShopPrice {
		t.Fatalf("matched attribute must lead the cost choices: %v", c.CostChoices)
	}
	if len(c.Intensities) != 3 {
		t.Fatalf("expected 3 intensity tiers, got %d", len(c.Intensities))
	}
}

func TestComplementaryPairs(t *testing.T) {
	if !Complementary(PlayerMaxHP, EnemyDefense) {
		t.Fatalf("listed pair should be complementary")
	}
	if !Complementary(EnemyDefense, PlayerMaxHP) {
		t.Fatalf("complementarity must be order-insensitive")
	}
	if !Complementary(PlayerSpeed, EnemySpeed) {
		t.Fatalf("any two speed attributes are complementary")
	}
	if Complementary(PlayerMaxHP, CoinReward) {
		t.Fatalf("unlisted pair should not be complementary")
	}
}

func TestLadderMagnitudeFallback(t *testing.T) {
	sparse := Ladder{}
	if got := sparse.Magnitude(PlayerMaxHP, IntensityMedium); got != 20 {
		t.Fatalf("expected category fallback 20 for health medium, got %d", got)
	}
	full := DefaultLadder()
	if got := full.Magnitude(PlayerMaxHP, IntensityHigh); got != 50 {
		t.Fatalf("expected ladder value 50, got %d", got)
	}
	if got := full.Magnitude(Attribute("bogus"), IntensityLow); got != 0 {
		t.Fatalf("expected 0 for unknown attribute, got %d", got)
	}
}
