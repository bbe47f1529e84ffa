package telemetry

import "duskpact/internal/domain/combat"

// Event payloads consumed from the combat, shop and map collaborators. The
// recorder owns no frame loop; each of these arrives as a discrete call.

type BattleStart struct {
	MapContext string             `json:"map_context"`
	Player     combat.Combatant   `json:"player"`
	Allies     []combat.Combatant `json:"allies,omitempty"`
	Enemies    []combat.Combatant `json:"enemies"`
	CureItems  int                `json:"cure_items"`
}

type SkillUse struct {
	Skill      combat.Skill `json:"skill"`
	UserName   string       `json:"user_name"`
	PlayerSide bool         `json:"player_side"`
}

type SkillDamage struct {
	SkillName string `json:"skill_name"`
	Total     int    `json:"total"`
}

type DamageReceived struct {
	TargetName   string `json:"target_name"`
	AttackerName string `json:"attacker_name"`
	Amount       int    `json:"amount"`
	TargetPlayer bool   `json:"target_player"`
}

type EntityDeath struct {
	Name       string `json:"name"`
	PlayerSide bool   `json:"player_side"`
	KillerName string `json:"killer_name"`
}

type ShopPurchase struct {
	ItemName string `json:"item_name"`
	Price    int    `json:"price"`
}

type ShopExit struct {
	UnsoldCount int `json:"unsold_count"`
}

type MapEntered struct {
	MapName        string `json:"map_name"`
	Coins          int    `json:"coins"`
	UnvisitedShops int    `json:"unvisited_shops"`
}
