package bargain

import "testing"

func TestLedgerAccumulates(t *testing.T) {
	l := NewLedger()
	l.Record(PlayerMaxHP, 30)
	l.Record(PlayerMaxHP, -10)
	if got := l.Get(PlayerMaxHP); got != 20 {
		t.Fatalf("expected accumulated 20, got %v", got)
	}
}

func TestLedgerSkipsUnknownAttributes(t *testing.T) {
	l := NewLedger()
	l.Record(AttributeNone, 5)
	l.Record(Attribute("bogus"), 5)
	if len(l.Values()) != 0 {
		t.Fatalf("expected empty ledger, got %v", l.Values())
	}
}

func TestLedgerValuesDropZeroEntries(t *testing.T) {
	l := NewLedger()
	l.Record(EnemyDefense, 4)
	l.Record(EnemyDefense, -4)
	l.Record(ShopPrice, 7)
	values := l.Values()
	if _, ok := values[EnemyDefense]; ok {
		t.Fatalf("zeroed entry should not persist: %v", values)
	}
	if values[ShopPrice] != 7 {
		t.Fatalf("expected shop price 7, got %v", values[ShopPrice])
	}
}

func TestLedgerRestoreFiltersTaxonomy(t *testing.T) {
	l := NewLedger()
	l.Restore(map[Attribute]float64{
		PlayerSpeed:         2,
		Attribute("legacy"): 9,
	})
	if l.Get(PlayerSpeed) != 2 {
		t.Fatalf("expected restored speed 2, got %v", l.Get(PlayerSpeed))
	}
	if len(l.Values()) != 1 {
		t.Fatalf("unknown attribute survived restore: %v", l.Values())
	}
}

func TestLedgerReset(t *testing.T) {
	l := NewLedger()
	l.Record(PlayerMaxHP, 10)
	l.Reset()
	if len(l.Values()) != 0 {
		t.Fatalf("expected empty ledger after reset, got %v", l.Values())
	}
}
