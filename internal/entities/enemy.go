package entities

// EnemyAbility is an enemy's special attack
type EnemyAbility struct {
	Name                string               `json:"name"`
	Description         string               `json:"description,omitempty"`
	StatusEffectInflict *StatusEffectInflict `json:"statusEffectInflict,omitempty"`
}

// ResourceDrop is a resource awarded when an enemy is defeated
type ResourceDrop struct {
	ResourceID string `json:"resourceId"`
	Name       string `json:"name,omitempty"`
	Quantity   int    `json:"quantity"`
}

// Enemy is a combatant on the opposing side of an encounter
type Enemy struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Description         string               `json:"description,omitempty"`
	IconName            string               `json:"iconName,omitempty"`
	Level               int                  `json:"level"`
	HP                  int                  `json:"hp"`
	MaxHP               int                  `json:"maxHp"`
	Body                int                  `json:"body"`
	Mind                int                  `json:"mind"`
	Reflex              int                  `json:"reflex"`
	Weakness            DamageType           `json:"weakness,omitempty"`
	Resistance          DamageType           `json:"resistance,omitempty"`
	IsElite             bool                 `json:"isElite,omitempty"`
	SpecialAbility      *EnemyAbility        `json:"specialAbility,omitempty"`
	Loot                []ResourceDrop       `json:"loot,omitempty"`
	ActiveStatusEffects []ActiveStatusEffect `json:"activeStatusEffects"`
	// Defeated is set once defeat handling has run for this enemy
	Defeated bool `json:"defeated,omitempty"`
}

// IsAlive reports whether the enemy can still act or be targeted
func (e *Enemy) IsAlive() bool {
	return e != nil && e.HP > 0
}

// Clone returns a deep copy of the enemy
func (e *Enemy) Clone() *Enemy {
	if e == nil {
		return nil
	}
	out := *e
	out.ActiveStatusEffects = cloneEffects(e.ActiveStatusEffects)
	out.Loot = append([]ResourceDrop(nil), e.Loot...)
	if e.SpecialAbility != nil {
		special := *e.SpecialAbility
		if special.StatusEffectInflict != nil {
			inflict := *special.StatusEffectInflict
			special.StatusEffectInflict = &inflict
		}
		out.SpecialAbility = &special
	}
	return &out
}
