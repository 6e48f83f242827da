package combat

import (
	"math"

	"github.com/KirkDiggler/spellforge/internal/engine/effects"
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Effectiveness is how well a damage type lands against a target
type Effectiveness int

// Effectiveness values
const (
	EffectivenessNormal Effectiveness = iota
	EffectivenessWeak
	EffectivenessResistant
)

// Multiplier returns the damage multiplier for the effectiveness
func (e Effectiveness) Multiplier() float64 {
	switch e {
	case EffectivenessWeak:
		return WeaknessMultiplier
	case EffectivenessResistant:
		return ResistanceMultiplier
	default:
		return 1
	}
}

// Damage modifier constants
const (
	WeaknessMultiplier   = 1.5
	ResistanceMultiplier = 0.5

	CriticalChance      = 0.3
	CriticalMultiplier  = 2.0
	OverwhelmingMult    = 1.5
	EmpowermentMult     = 1.3
	SynergyMult         = 1.25
	BrutalMult          = 2.0
	BrutalThreshold     = 0.25
	DevastatingMult     = 1.8
	RampingPerDoT       = 0.2
	ResonanceMult       = 1.2
	PenetratingMult     = 1.3
	LifestealShare      = 0.25
	VampiricShare       = 0.5
	ReducedCostMult     = 0.7
	FreeCastChance      = 0.3
	MultiTargetMax      = 3
	ChainTargets        = 3
	MultiTargetFalloff  = 0.2
	MultiTargetMinPower = 0.4
	PiercingMindDivisor = 2
	ShieldDuration      = 3
)

// CastState carries per-cast bookkeeping across the targets of one spell
type CastState struct {
	// SynergyApplied is set once the Synergy bonus has landed on a target this cast
	SynergyApplied bool
}

// EffectivenessAgainst compares a damage type with a target's weakness and resistance
func EffectivenessAgainst(damageType entities.DamageType, enemy *entities.Enemy) Effectiveness {
	if enemy == nil || damageType == "" {
		return EffectivenessNormal
	}
	switch {
	case enemy.Weakness != "" && damageType == enemy.Weakness:
		return EffectivenessWeak
	case enemy.Resistance != "" && damageType == enemy.Resistance:
		return EffectivenessResistant
	default:
		return EffectivenessNormal
	}
}

// CalculateDamage is the base damage formula. A hit that lands always deals at least 1.
func CalculateDamage(base, attackerPower, defenderDefense int, effectiveness Effectiveness, scalingFactor float64, scalingStatValue int) int {
	modified := float64(base+attackerPower) + float64(scalingStatValue)*scalingFactor
	modified *= effectiveness.Multiplier()
	return max(1, int(math.Floor(modified-float64(defenderDefense))))
}

// ApplyTagDamageModifiers multiplies damage by every damage tag in a fixed order and
// floors the result. Synergy applies only while state has not recorded it this cast.
func ApplyTagDamageModifiers(random rng.Source, damage int, tags []entities.TagName, target *entities.Enemy, state *CastState) int {
	d := float64(damage)

	if entities.HasTag(tags, entities.TagCritical) && random.Chance(CriticalChance) {
		d *= CriticalMultiplier
	}
	if entities.HasTag(tags, entities.TagOverwhelming) {
		d *= OverwhelmingMult
	}
	if entities.HasTag(tags, entities.TagEmpowerment) {
		d *= EmpowermentMult
	}
	if entities.HasTag(tags, entities.TagSynergy) && state != nil && !state.SynergyApplied {
		d *= SynergyMult
		state.SynergyApplied = true
	}
	if target != nil {
		if entities.HasTag(tags, entities.TagBrutal) && float64(target.HP) < float64(target.MaxHP)*BrutalThreshold {
			d *= BrutalMult
		}
		if entities.HasTag(tags, entities.TagDevastating) && target.HP == target.MaxHP {
			d *= DevastatingMult
		}
		if entities.HasTag(tags, entities.TagRamping) {
			d *= 1 + RampingPerDoT*float64(effects.CountDamageOverTime(target.ActiveStatusEffects))
		}
	}

	return int(math.Floor(d))
}

// GetElementalEffectiveness compounds every elemental tag matching the target's weakness
// or resistance. Penetrating only amplifies an existing advantage.
func GetElementalEffectiveness(tags []entities.TagName, target *entities.Enemy) float64 {
	eff := 1.0
	if target == nil {
		return eff
	}
	for _, tag := range tags {
		element, ok := entities.ElementForTag(tag)
		if !ok {
			continue
		}
		if target.Weakness != "" && element == target.Weakness {
			eff *= WeaknessMultiplier
		}
		if target.Resistance != "" && element == target.Resistance {
			eff *= ResistanceMultiplier
		}
	}
	if entities.HasTag(tags, entities.TagResonance) {
		eff *= ResonanceMult
	}
	if entities.HasTag(tags, entities.TagPenetrating) && eff > 1.0 {
		eff *= PenetratingMult
	}
	return eff
}

// MultiTargetPower is the power multiplier of the index-th target of a MultiTarget spell
func MultiTargetPower(index int) float64 {
	return math.Max(MultiTargetMinPower, 1-float64(index)*MultiTargetFalloff)
}
