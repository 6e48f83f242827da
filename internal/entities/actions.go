package entities

// DamageType classifies what an action deals
type DamageType string

// Damage types
const (
	DamageFire          DamageType = "Fire"
	DamageIce           DamageType = "Ice"
	DamageLightning     DamageType = "Lightning"
	DamageWater         DamageType = "Water"
	DamageEarth         DamageType = "Earth"
	DamageAir           DamageType = "Air"
	DamageLight         DamageType = "Light"
	DamageDark          DamageType = "Dark"
	DamagePoison        DamageType = "Poison"
	DamageArcane        DamageType = "Arcane"
	DamageNature        DamageType = "Nature"
	DamagePsychic       DamageType = "Psychic"
	DamagePhysical      DamageType = "Physical"
	DamageNone          DamageType = "None"
	DamageHealing       DamageType = "Healing"
	DamageHealingSource DamageType = "HealingSource"
)

var elementalTags = map[TagName]DamageType{
	TagFire:      DamageFire,
	TagIce:       DamageIce,
	TagLightning: DamageLightning,
	TagWater:     DamageWater,
	TagEarth:     DamageEarth,
	TagAir:       DamageAir,
	TagLight:     DamageLight,
	TagDark:      DamageDark,
	TagPoison:    DamagePoison,
	TagArcane:    DamageArcane,
	TagNature:    DamageNature,
	TagPsychic:   DamagePsychic,
}

// ElementForTag returns the damage type an elemental tag stands for
func ElementForTag(tag TagName) (DamageType, bool) {
	dt, ok := elementalTags[tag]
	return dt, ok
}

// ScalingStat names the attribute an action scales with
type ScalingStat string

// Scaling stats
const (
	ScalesWithNone ScalingStat = ""
	ScalesWithBody ScalingStat = "Body"
	ScalesWithMind ScalingStat = "Mind"
)

// Spell is a crafted or learned spell definition
type Spell struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Description         string               `json:"description,omitempty"`
	IconName            string               `json:"iconName,omitempty"`
	ManaCost            int                  `json:"manaCost"`
	Damage              int                  `json:"damage"`
	DamageType          DamageType           `json:"damageType"`
	ScalesWith          ScalingStat          `json:"scalesWith,omitempty"`
	ScalingFactor       float64              `json:"scalingFactor,omitempty"`
	Tags                []TagName            `json:"tags,omitempty"`
	StatusEffectInflict *StatusEffectInflict `json:"statusEffectInflict,omitempty"`
}

// EffectType is the closed set of non-spell action effects
type EffectType string

// Effect types
const (
	EffectMPRestore    EffectType = "MP_RESTORE"
	EffectHPRestore    EffectType = "HP_RESTORE"
	EffectEPRestore    EffectType = "EP_RESTORE"
	EffectSelfHeal     EffectType = "SELF_HEAL"
	EffectTempStatBuff EffectType = "TEMP_STAT_BUFF"
	EffectEnemyDebuff  EffectType = "ENEMY_DEBUFF"
	EffectEnemyDamage  EffectType = "ENEMY_DAMAGE"
	EffectCureStatus   EffectType = "CURE_STATUS"
	EffectApplyBuff    EffectType = "APPLY_BUFF"
)

// Stat names a core attribute for TEMP_STAT_BUFF effects
type Stat string

// Core attributes
const (
	StatBody   Stat = "Body"
	StatMind   Stat = "Mind"
	StatReflex Stat = "Reflex"
)

// Effect is the payload of an ability or consumable. Which fields apply depends on Type:
//   - MP/HP/EP_RESTORE, SELF_HEAL, ENEMY_DAMAGE: Amount
//   - TEMP_STAT_BUFF: Stat, Amount, Duration
//   - ENEMY_DEBUFF, APPLY_BUFF: Status, Magnitude, Duration
//   - CURE_STATUS: Cures (empty cures every harmful effect)
type Effect struct {
	Type      EffectType         `json:"type"`
	Amount    int                `json:"amount,omitempty"`
	Stat      Stat               `json:"stat,omitempty"`
	Status    StatusEffectName   `json:"status,omitempty"`
	Duration  int                `json:"duration,omitempty"`
	Magnitude int                `json:"magnitude,omitempty"`
	Cures     []StatusEffectName `json:"cures,omitempty"`
}

// ResourceCost is one line item of a resource bill
type ResourceCost struct {
	ResourceID string `json:"resourceId"`
	Quantity   int    `json:"quantity"`
}

// Ability is an EP-fuelled martial or utility action
type Ability struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	EPCost        int            `json:"epCost"`
	Tags          []TagName      `json:"tags,omitempty"`
	Effect        Effect         `json:"effect"`
	ResourceCosts []ResourceCost `json:"resourceCosts,omitempty"`
}

// Consumable is a single-use item. Stackable consumables are tracked by quantity,
// unique ones as individual inventory entries.
type Consumable struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconName    string `json:"iconName,omitempty"`
	Stackable   bool   `json:"stackable"`
	Effect      Effect `json:"effect"`
}
