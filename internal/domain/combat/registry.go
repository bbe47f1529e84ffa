package combat

// Registry holds the canonical baseline for every combatant. Baselines are
// never mutated after registration: spawning hands out clones, and the
// difficulty ledger is re-applied to each clone. That save-baseline,
// apply-ledger, use discipline is what keeps repeated spawns from
// double-applying deltas.
type Registry struct {
	baselines map[string]Combatant
}

func NewRegistry() *Registry {
	return &Registry{baselines: map[string]Combatant{}}
}

func (r *Registry) Register(c Combatant) {
	r.baselines[c.Name] = c.Clone()
}

// Baseline returns a fresh clone of the canonical combatant, or ok=false
// when the name is unknown.
func (r *Registry) Baseline(name string) (Combatant, bool) {
	c, ok := r.baselines[name]
	if !ok {
		return Combatant{}, false
	}
	return c.Clone(), true
}

func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.baselines))
	for name := range r.baselines {
		out = append(out, name)
	}
	return out
}

// DefaultRegistry seeds the reference registry with the shipped roster.
// Stats here are content defaults; real deployments register the game's own
// roster at startup.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Combatant{
		Name:         "Hero",
		PlayerSide:   true,
		MaxHP:        100,
		HP:           100,
		MaxMP:        40,
		MP:           40,
		Defense:      8,
		AttackPower:  12,
		HealingPower: 10,
		Speed:        5,
		Skills: []Skill{
			{Name: "Strike", Power: 12, ManaCost: 0, Shape: TargetSingle, Kind: SkillDamage},
			{Name: "Fireball", Power: 18, ManaCost: 6, Shape: TargetSingle, Kind: SkillDamage},
			{Name: "Flame Wave", Power: 11, ManaCost: 10, Shape: TargetMulti, Kind: SkillDamage},
			{Name: "Mend", Power: 16, ManaCost: 5, Shape: TargetSingle, Kind: SkillHeal},
		},
	})
	r.Register(Combatant{
		Name:        "Wraith",
		MaxHP:       60,
		HP:          60,
		MaxMP:       20,
		MP:          20,
		Defense:     4,
		AttackPower: 10,
		Speed:       6,
		Skills: []Skill{
			{Name: "Chill Touch", Power: 10, ManaCost: 0, Shape: TargetSingle, Kind: SkillDamage},
			{Name: "Wail", Power: 7, ManaCost: 6, Shape: TargetMulti, Kind: SkillDamage},
		},
	})
	r.Register(Combatant{
		Name:        "Stone Golem",
		Elite:       true,
		MaxHP:       140,
		HP:          140,
		MaxMP:       10,
		MP:          10,
		Defense:     14,
		AttackPower: 9,
		Speed:       2,
		Skills: []Skill{
			{Name: "Slam", Power: 14, ManaCost: 0, Shape: TargetSingle, Kind: SkillDamage},
		},
	})
	r.Register(Combatant{
		Name:        "Forest Sprite",
		MaxHP:       35,
		HP:          35,
		MaxMP:       30,
		MP:          30,
		Defense:     2,
		AttackPower: 6,
		Speed:       9,
		Skills: []Skill{
			{Name: "Thorn Dart", Power: 8, ManaCost: 2, Shape: TargetSingle, Kind: SkillDamage},
			{Name: "Pollen Burst", Power: 5, ManaCost: 5, Shape: TargetMulti, Kind: SkillDamage},
		},
	})
	return r
}
