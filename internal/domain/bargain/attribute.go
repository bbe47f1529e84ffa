package bargain

// Attribute identifies one tracked stat the difficulty system may trade on.
// Player-side, enemy-side and economy attributes share one taxonomy so the
// ledger and the offer catalogue stay uniform.
type Attribute string

const (
	AttributeNone Attribute = "none"

	PlayerMaxHP          Attribute = "player_max_hp"
	PlayerMaxMP          Attribute = "player_max_mp"
	PlayerDefense        Attribute = "player_defense"
	PlayerSpeed          Attribute = "player_speed"
	PlayerAttackPower    Attribute = "player_attack_power"
	PlayerSkillPower     Attribute = "player_skill_power"
	PlayerAOEPower       Attribute = "player_aoe_power"
	PlayerHealingPower   Attribute = "player_healing_power"
	PlayerActionManaCost Attribute = "player_action_mana_cost"

	EnemyMaxHP          Attribute = "enemy_max_hp"
	EnemyDefense        Attribute = "enemy_defense"
	EnemySpeed          Attribute = "enemy_speed"
	EnemyAttackPower    Attribute = "enemy_attack_power"
	EnemySkillPower     Attribute = "enemy_skill_power"
	EnemyAOEPower       Attribute = "enemy_aoe_power"
	EnemyActionManaCost Attribute = "enemy_action_mana_cost"

	ShopPrice    Attribute = "shop_price"
	CoinReward   Attribute = "coin_reward"
	ItemDropRate Attribute = "item_drop_rate"
)

type Category string

const (
	CategoryHealth  Category = "health"
	CategoryMana    Category = "mana"
	CategoryDefense Category = "defense"
	CategorySpeed   Category = "speed"
	CategoryPower   Category = "power"
	CategoryEconomy Category = "economy"
)

// AttributeInfo is the data-driven dispatch entry for one attribute. Apply
// logic, matching and display all read from this table instead of switching
// over the enum.
type AttributeInfo struct {
	Display    string
	Category   Category
	Floor      float64
	PlayerSide bool
	// CostType marks attributes where "more" is worse for the side paying
	// (mana costs, shop prices). Sign correction applies only to these.
	CostType bool
	// Related lists attributes a card of kind AttributeAndIntensity may let
	// the player swap to.
	Related []Attribute
}

var attributeTable = map[Attribute]AttributeInfo{
	PlayerMaxHP:          {Display: "Max HP", Category: CategoryHealth, Floor: 1, PlayerSide: true, Related: []Attribute{PlayerDefense, PlayerMaxMP}},
	PlayerMaxMP:          {Display: "Max MP", Category: CategoryMana, Floor: 0, PlayerSide: true, Related: []Attribute{PlayerMaxHP}},
	PlayerDefense:        {Display: "Defense", Category: CategoryDefense, Floor: 0, PlayerSide: true, Related: []Attribute{PlayerMaxHP}},
	PlayerSpeed:          {Display: "Speed", Category: CategorySpeed, Floor: 0.1, PlayerSide: true},
	PlayerAttackPower:    {Display: "Attack Power", Category: CategoryPower, Floor: 0, PlayerSide: true, Related: []Attribute{PlayerSkillPower, PlayerAOEPower}},
	PlayerSkillPower:     {Display: "Skill Power", Category: CategoryPower, Floor: 0, PlayerSide: true, Related: []Attribute{PlayerAttackPower, PlayerAOEPower}},
	PlayerAOEPower:       {Display: "Area Power", Category: CategoryPower, Floor: 0, PlayerSide: true, Related: []Attribute{PlayerSkillPower}},
	PlayerHealingPower:   {Display: "Healing Power", Category: CategoryPower, Floor: 0, PlayerSide: true},
	PlayerActionManaCost: {Display: "Action Mana Cost", Category: CategoryMana, Floor: 0, PlayerSide: true, CostType: true},

	EnemyMaxHP:          {Display: "Enemy Max HP", Category: CategoryHealth, Floor: 1, Related: []Attribute{EnemyDefense}},
	EnemyDefense:        {Display: "Enemy Defense", Category: CategoryDefense, Floor: 0, Related: []Attribute{EnemyMaxHP}},
	EnemySpeed:          {Display: "Enemy Speed", Category: CategorySpeed, Floor: 0.1},
	EnemyAttackPower:    {Display: "Enemy Attack Power", Category: CategoryPower, Floor: 0, Related: []Attribute{EnemySkillPower}},
	EnemySkillPower:     {Display: "Enemy Skill Power", Category: CategoryPower, Floor: 0, Related: []Attribute{EnemyAttackPower, EnemyAOEPower}},
	EnemyAOEPower:       {Display: "Enemy Area Power", Category: CategoryPower, Floor: 0, Related: []Attribute{EnemySkillPower}},
	EnemyActionManaCost: {Display: "Enemy Action Mana Cost", Category: CategoryMana, Floor: 0, CostType: true},

	ShopPrice:    {Display: "Shop Prices", Category: CategoryEconomy, Floor: 1, PlayerSide: true, CostType: true, Related: []Attribute{CoinReward, ItemDropRate}},
	CoinReward:   {Display: "Coin Rewards", Category: CategoryEconomy, Floor: 0, PlayerSide: true, Related: []Attribute{ShopPrice, ItemDropRate}},
	ItemDropRate: {Display: "Item Drop Rate", Category: CategoryEconomy, Floor: 0, PlayerSide: true, Related: []Attribute{CoinReward}},
}

// allAttributes fixes iteration order for the ledger and persistence.
var allAttributes = []Attribute{
	PlayerMaxHP, PlayerMaxMP, PlayerDefense, PlayerSpeed, PlayerAttackPower,
	PlayerSkillPower, PlayerAOEPower, PlayerHealingPower, PlayerActionManaCost,
	EnemyMaxHP, EnemyDefense, EnemySpeed, EnemyAttackPower, EnemySkillPower,
	EnemyAOEPower, EnemyActionManaCost,
	ShopPrice, CoinReward, ItemDropRate,
}

func AllAttributes() []Attribute {
	out := make([]Attribute, len(allAttributes))
	copy(out, allAttributes)
	return out
}

// Info returns the table entry for attr. Unknown attributes (including
// AttributeNone) report ok=false; callers treat those as no-ops.
func Info(attr Attribute) (AttributeInfo, bool) {
	info, ok := attributeTable[attr]
	return info, ok
}

func Floor(attr Attribute) float64 {
	info, ok := attributeTable[attr]
	if !ok {
		return 0
	}
	return info.Floor
}

// complementaryPairs lists attribute pairings that read as a coherent bargain
// even when their categories differ. Order-insensitive.
var complementaryPairs = map[[2]Attribute]bool{
	{PlayerMaxHP, EnemyDefense}:            true,
	{PlayerDefense, EnemyMaxHP}:            true,
	{PlayerAttackPower, EnemyDefense}:      true,
	{PlayerSkillPower, EnemyDefense}:       true,
	{PlayerAttackPower, EnemyMaxHP}:        true,
	{PlayerHealingPower, EnemyAttackPower}: true,
	{ShopPrice, CoinReward}:                true,
}

// Complementary reports whether two attributes sit on the fixed complement
// list. Any pairing of two speed attributes also counts.
func Complementary(a, b Attribute) bool {
	ai, aok := attributeTable[a]
	bi, bok := attributeTable[b]
	if aok && bok && ai.Category == CategorySpeed && bi.Category == CategorySpeed {
		return true
	}
	return complementaryPairs[[2]Attribute{a, b}] || complementaryPairs[[2]Attribute{b, a}]
}

// Flexible reports whether an attribute has known related attributes, which
// qualifies a card for the AttributeAndIntensity kind.
func Flexible(attr Attribute) bool {
	info, ok := attributeTable[attr]
	return ok && len(info.Related) > 0
}
