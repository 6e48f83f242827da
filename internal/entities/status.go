package entities

// StatusEffectName identifies a status effect kind
type StatusEffectName string

// Damage over time
const (
	StatusPoisonDoT      StatusEffectName = "PoisonDoTActive"
	StatusBurningDoT     StatusEffectName = "BurningDoTActive"
	StatusBleedingDoT    StatusEffectName = "BleedingDoTActive"
	StatusCorruptedDoT   StatusEffectName = "CorruptedDoTActive"
	StatusFrostbittenDoT StatusEffectName = "FrostbittenDoTActive"
	StatusRottingDoT     StatusEffectName = "RottingDoTActive"
	StatusShockedDoT     StatusEffectName = "ShockedDoTActive"
)

// Heal over time
const (
	StatusRegeneration StatusEffectName = "Regeneration"
	StatusTempHPRegen  StatusEffectName = "TEMP_HP_REGEN"
)

// Control and gating
const (
	StatusStun     StatusEffectName = "Stun"
	StatusFreeze   StatusEffectName = "Freeze"
	StatusSleep    StatusEffectName = "Sleep"
	StatusSilenced StatusEffectName = "Silenced"
)

// Stat modifiers and defensive states
const (
	StatusBodyUp           StatusEffectName = "TEMP_BODY_UP"
	StatusMindUp           StatusEffectName = "TEMP_MIND_UP"
	StatusReflexUp         StatusEffectName = "TEMP_REFLEX_UP"
	StatusBodyDown         StatusEffectName = "TEMP_BODY_DOWN"
	StatusMindDown         StatusEffectName = "TEMP_MIND_DOWN"
	StatusReflexDown       StatusEffectName = "TEMP_REFLEX_DOWN"
	StatusMaxHPUp          StatusEffectName = "TEMP_MAX_HP_UP"
	StatusSpeedUp          StatusEffectName = "TEMP_SPEED_UP"
	StatusDefending        StatusEffectName = "Defending"
	StatusDamageReflection StatusEffectName = "DamageReflection"
	StatusShield           StatusEffectName = "Shield"
)

// ActiveStatusEffect is one applied instance of a status effect. Each instance ticks
// independently, so the same name may appear more than once.
type ActiveStatusEffect struct {
	Name      StatusEffectName `json:"name"`
	Duration  int              `json:"duration"`
	Magnitude int              `json:"magnitude,omitempty"`
	SourceID  string           `json:"sourceId,omitempty"`
}

// StatusEffectInflict describes a status effect an action may apply
type StatusEffectInflict struct {
	Name      StatusEffectName `json:"name"`
	Duration  int              `json:"duration"`
	Magnitude int              `json:"magnitude,omitempty"`
	// Chance is the application probability in [0,1]; zero means always
	Chance float64 `json:"chance,omitempty"`
}

// HasStatus reports whether any active effect carries name
func HasStatus(effects []ActiveStatusEffect, name StatusEffectName) bool {
	for _, e := range effects {
		if e.Name == name {
			return true
		}
	}
	return false
}

// StatusMagnitude sums the magnitude of every active instance of name
func StatusMagnitude(effects []ActiveStatusEffect, name StatusEffectName) int {
	total := 0
	for _, e := range effects {
		if e.Name == name {
			total += e.Magnitude
		}
	}
	return total
}

func cloneEffects(effects []ActiveStatusEffect) []ActiveStatusEffect {
	if effects == nil {
		return nil
	}
	out := make([]ActiveStatusEffect, len(effects))
	copy(out, effects)
	return out
}
