package bargain

import "testing"

func TestOfferSignCorrection(t *testing.T) {
	cases := []struct {
		name      string
		target    Attribute
		advantage bool
		want      int
	}{
		{"player stat advantage raises", PlayerMaxHP, true, 15},
		{"player stat disadvantage lowers", PlayerMaxHP, false, -15},
		{"player cost advantage lowers", PlayerActionManaCost, true, -15},
		{"player cost disadvantage raises", PlayerActionManaCost, false, 15},
		{"enemy stat advantage lowers", EnemyMaxHP, true, -15},
		{"enemy stat disadvantage raises", EnemyMaxHP, false, 15},
		{"enemy cost advantage raises", EnemyActionManaCost, true, 15},
		{"enemy cost disadvantage lowers", EnemyActionManaCost, false, -15},
		{"shop price advantage lowers", ShopPrice, true, -15},
		{"shop price disadvantage raises", ShopPrice, false, 15},
	}
	for _, tc := range cases {
		o := NewOffer("o", "", tc.advantage, tc.target, 15, "")
		if o.Magnitude != tc.want {
			t.Fatalf("%s: expected magnitude %d, got %d", tc.name, tc.want, o.Magnitude)
		}
	}
}

func TestOfferSignCorrectionIgnoresAuthoredSign(t *testing.T) {
	a := NewOffer("o", "", true, PlayerMaxHP, -20, "")
	b := NewOffer("o", "", true, PlayerMaxHP, 20, "")
	if a.Magnitude != b.Magnitude {
		t.Fatalf("authored sign leaked through: %d vs %d", a.Magnitude, b.Magnitude)
	}
}

func TestOfferUnknownTargetZeroes(t *testing.T) {
	o := NewOffer("o", "", true, Attribute("made_up"), 10, "")
	if o.Magnitude != 0 {
		t.Fatalf("expected zero magnitude for unknown attribute, got %d", o.Magnitude)
	}
}

func TestOfferDeltaKeepsOrientation(t *testing.T) {
	o := NewOffer("o", "", true, EnemyMaxHP, 12, "")
	if o.Magnitude >= 0 {
		t.Fatalf("setup: expected negative magnitude, got %d", o.Magnitude)
	}
	if d := o.Delta(30); d != -30 {
		t.Fatalf("expected rescaled delta -30, got %v", d)
	}
	if d := o.Delta(0); d != float64(o.Magnitude) {
		t.Fatalf("expected authored delta for zero choice, got %v", d)
	}
}

func TestNewSkillOfferCarriesAdjustment(t *testing.T) {
	o := NewSkillOffer("o", "", false, PlayerActionManaCost, 3, "",
		SkillAdjustment{SkillName: "Fireball", ManaCostDelta: 3, Baseline: 3})
	if o.Skill == nil || o.Skill.SkillName != "Fireball" {
		t.Fatalf("skill adjustment not carried: %+v", o.Skill)
	}
	if o.Magnitude != 3 {
		t.Fatalf("expected disadvantage cost raise +3, got %d", o.Magnitude)
	}
}
