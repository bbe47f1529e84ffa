package apply

import (
	"math"

	"duskpact/internal/domain/bargain"
)

// EconomyView resolves economy attributes at read time. Shops and reward
// tables never store adjusted values; they ask the view, which folds the
// current ledger over the canonical base number with the attribute floors.
type EconomyView struct {
	Ledger *bargain.Ledger
}

func (v EconomyView) AdjustedPrice(base int) int {
	return adjust(base, v.Ledger.Get(bargain.ShopPrice), bargain.Floor(bargain.ShopPrice))
}

func (v EconomyView) AdjustedCoinReward(base int) int {
	return adjust(base, v.Ledger.Get(bargain.CoinReward), bargain.Floor(bargain.CoinReward))
}

// AdjustedDropRate treats the ledger delta as percentage points on top of a
// base percentage, clamped to [floor, 100].
func (v EconomyView) AdjustedDropRate(basePercent int) int {
	out := adjust(basePercent, v.Ledger.Get(bargain.ItemDropRate), bargain.Floor(bargain.ItemDropRate))
	if out > 100 {
		return 100
	}
	return out
}

func adjust(base int, delta, floor float64) int {
	v := float64(base) + delta
	if v < floor {
		v = floor
	}
	return int(math.Round(v))
}
