package combat

// TargetShape describes how many targets a skill touches.
type TargetShape string

const (
	TargetSingle TargetShape = "single"
	TargetMulti  TargetShape = "multi"
)

// SkillKind is the coarse effect category used by semantic attribute
// filters.
type SkillKind string

const (
	SkillDamage SkillKind = "damage"
	SkillHeal   SkillKind = "heal"
	SkillBuff   SkillKind = "buff"
)

type Skill struct {
	Name     string      `json:"name"`
	Power    int         `json:"power"`
	ManaCost int         `json:"mana_cost"`
	Shape    TargetShape `json:"shape"`
	Kind     SkillKind   `json:"kind"`
}

// Combatant is a live stat object. The presentation and combat layers read
// and write these directly; the difficulty applier is the only other
// mutator.
type Combatant struct {
	Name         string  `json:"name"`
	PlayerSide   bool    `json:"player_side"`
	Elite        bool    `json:"elite,omitempty"`
	MaxHP        int     `json:"max_hp"`
	HP           int     `json:"hp"`
	MaxMP        int     `json:"max_mp"`
	MP           int     `json:"mp"`
	Defense      int     `json:"defense"`
	AttackPower  int     `json:"attack_power"`
	HealingPower int     `json:"healing_power"`
	Speed        float64 `json:"speed"`
	Skills       []Skill `json:"skills"`
}

// Clone deep-copies the combatant including its skill list, so baseline
// copies never alias registry state.
func (c Combatant) Clone() Combatant {
	out := c
	out.Skills = make([]Skill, len(c.Skills))
	copy(out.Skills, c.Skills)
	return out
}

// FindSkill resolves a skill by name in the combatant's list, or nil.
func (c *Combatant) FindSkill(name string) *Skill {
	for i := range c.Skills {
		if c.Skills[i].Name == name {
			return &c.Skills[i]
		}
	}
	return nil
}
