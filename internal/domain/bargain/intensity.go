package bargain

// Intensity is the severity tier a negotiated offer is taken at. The numeric
// ladder behind each tier is balance data, loaded from the catalog provider;
// DefaultLadder is the compiled-in fallback.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

func AllIntensities() []Intensity {
	return []Intensity{IntensityLow, IntensityMedium, IntensityHigh}
}

type Ladder map[Attribute]map[Intensity]int

// Magnitude resolves the base magnitude for attr at tier. Missing entries
// fall back to a category default so a sparse ladder file still works.
func (l Ladder) Magnitude(attr Attribute, tier Intensity) int {
	if tiers, ok := l[attr]; ok {
		if v, ok := tiers[tier]; ok {
			return v
		}
	}
	info, ok := Info(attr)
	if !ok {
		return 0
	}
	base := categoryBase[info.Category]
	switch tier {
	case IntensityLow:
		return base
	case IntensityMedium:
		return base * 2
	case IntensityHigh:
		return base * 3
	default:
		return base
	}
}

var categoryBase = map[Category]int{
	CategoryHealth:  10,
	CategoryMana:    5,
	CategoryDefense: 3,
	CategorySpeed:   1,
	CategoryPower:   4,
	CategoryEconomy: 5,
}

func DefaultLadder() Ladder {
	return Ladder{
		PlayerMaxHP:          {IntensityLow: 10, IntensityMedium: 25, IntensityHigh: 50},
		PlayerMaxMP:          {IntensityLow: 5, IntensityMedium: 12, IntensityHigh: 25},
		PlayerDefense:        {IntensityLow: 2, IntensityMedium: 5, IntensityHigh: 10},
		PlayerSpeed:          {IntensityLow: 1, IntensityMedium: 2, IntensityHigh: 4},
		PlayerAttackPower:    {IntensityLow: 3, IntensityMedium: 7, IntensityHigh: 14},
		PlayerSkillPower:     {IntensityLow: 3, IntensityMedium: 8, IntensityHigh: 16},
		PlayerAOEPower:       {IntensityLow: 2, IntensityMedium: 6, IntensityHigh: 12},
		PlayerHealingPower:   {IntensityLow: 4, IntensityMedium: 9, IntensityHigh: 18},
		PlayerActionManaCost: {IntensityLow: 1, IntensityMedium: 3, IntensityHigh: 6},
		EnemyMaxHP:           {IntensityLow: 12, IntensityMedium: 30, IntensityHigh: 60},
		EnemyDefense:         {IntensityLow: 2, IntensityMedium: 5, IntensityHigh: 10},
		EnemySpeed:           {IntensityLow: 1, IntensityMedium: 2, IntensityHigh: 4},
		EnemyAttackPower:     {IntensityLow: 3, IntensityMedium: 7, IntensityHigh: 14},
		EnemySkillPower:      {IntensityLow: 3, IntensityMedium: 8, IntensityHigh: 16},
		EnemyAOEPower:        {IntensityLow: 2, IntensityMedium: 6, IntensityHigh: 12},
		EnemyActionManaCost:  {IntensityLow: 1, IntensityMedium: 3, IntensityHigh: 6},
		ShopPrice:            {IntensityLow: 3, IntensityMedium: 8, IntensityHigh: 15},
		CoinReward:           {IntensityLow: 5, IntensityMedium: 12, IntensityHigh: 25},
		ItemDropRate:         {IntensityLow: 2, IntensityMedium: 5, IntensityHigh: 10},
	}
}
