// Package stats derives effective combat statistics from a player's base attributes,
// equipment and active status effects.
package stats

import (
	"math"

	"github.com/KirkDiggler/spellforge/internal/engine/effects"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Derived stat constants
const (
	BaseHP     = 50
	HPPerLevel = 10
	HPPerBody  = 5

	BaseMP     = 20
	MPPerLevel = 5
	MPPerMind  = 5

	BaseEP      = 20
	EPPerLevel  = 3
	EPPerReflex = 3

	BaseSpeed      = 10
	SpeedPerReflex = 1

	PhysicalPowerPerBody = 1.5
	MagicPowerPerMind    = 1.5
	DefensePerBody       = 0.5
	DefensePerReflex     = 0.3

	// DefendingBonus is the fractional defense increase while Defending
	DefendingBonus = 0.5

	// ReflectionEquipmentTag marks an item that reflects damage
	ReflectionEquipmentTag = "DamageReflection"
	// DefaultReflectionFactor is used by reflective items without a scaling factor
	DefaultReflectionFactor = 0.1
)

const (
	baseRegisteredSpells     = 5
	basePreparedSpells       = 2
	basePreparedAbilities    = 1
	minimumModifiedAttribute = 1
)

// EffectiveStats are the derived combat numbers of a player
type EffectiveStats struct {
	Body   int
	Mind   int
	Reflex int

	MaxHP int
	MaxMP int
	MaxEP int
	Speed int

	PhysicalPower int
	MagicPower    int
	Defense       int

	// DamageReflectionPercent is always within [0, 1]
	DamageReflectionPercent float64
}

// CalculateEffectiveStats composes base attributes, equipment and status effects
func CalculateEffectiveStats(player *entities.Player) EffectiveStats {
	if player == nil {
		return EffectiveStats{}
	}

	body, mind, reflex := player.Body, player.Mind, player.Reflex
	var bonusHP, bonusMP, bonusEP, bonusSpeed int
	reflection := 0.0

	for _, item := range player.Equipped {
		body += item.StatsBoost.Body
		mind += item.StatsBoost.Mind
		reflex += item.StatsBoost.Reflex
		bonusHP += item.StatsBoost.MaxHP
		bonusMP += item.StatsBoost.MaxMP
		bonusEP += item.StatsBoost.MaxEP
		bonusSpeed += item.StatsBoost.Speed

		if hasEquipmentTag(item, ReflectionEquipmentTag) {
			if item.ScalingFactor > 0 {
				reflection += item.ScalingFactor
			} else {
				reflection += DefaultReflectionFactor
			}
		}
	}

	var bodyModified, mindModified, reflexModified bool
	for _, active := range player.ActiveStatusEffects {
		def, _ := effects.Lookup(active.Name)
		switch def.Kind {
		case effects.KindStatModifier:
			m := def.Modifier
			body += m.Body * active.Magnitude
			mind += m.Mind * active.Magnitude
			reflex += m.Reflex * active.Magnitude
			bonusHP += m.MaxHP * active.Magnitude
			bonusSpeed += m.Speed * active.Magnitude
			bodyModified = bodyModified || m.Body != 0
			mindModified = mindModified || m.Mind != 0
			reflexModified = reflexModified || m.Reflex != 0
		case effects.KindReflection:
			reflection += float64(active.Magnitude) / 100
		}
	}

	// only attributes a status touched are floored
	if bodyModified {
		body = max(body, minimumModifiedAttribute)
	}
	if mindModified {
		mind = max(mind, minimumModifiedAttribute)
	}
	if reflexModified {
		reflex = max(reflex, minimumModifiedAttribute)
	}

	out := EffectiveStats{
		Body:   body,
		Mind:   mind,
		Reflex: reflex,
		MaxHP:  BaseHP + player.Level*HPPerLevel + body*HPPerBody + bonusHP,
		MaxMP:  BaseMP + player.Level*MPPerLevel + mind*MPPerMind + bonusMP,
		MaxEP:  BaseEP + player.Level*EPPerLevel + reflex*EPPerReflex + bonusEP,
		Speed:  BaseSpeed + reflex*SpeedPerReflex + bonusSpeed,

		PhysicalPower: int(math.Floor(float64(body) * PhysicalPowerPerBody)),
		MagicPower:    int(math.Floor(float64(mind) * MagicPowerPerMind)),
		Defense:       Defense(body, reflex),

		DamageReflectionPercent: clampUnit(reflection),
	}

	if entities.HasStatus(player.ActiveStatusEffects, entities.StatusDefending) {
		out.Defense = int(math.Floor(float64(out.Defense) * (1 + DefendingBonus)))
	}

	return out
}

// Defense is floor(body*DefensePerBody + reflex*DefensePerReflex)
func Defense(body, reflex int) int {
	return int(math.Floor(float64(body)*DefensePerBody + float64(reflex)*DefensePerReflex))
}

// EnemyDefense derives an enemy's defense from its attributes and Defending status
func EnemyDefense(enemy *entities.Enemy) int {
	if enemy == nil {
		return 0
	}
	def := Defense(enemy.Body, enemy.Reflex)
	if entities.HasStatus(enemy.ActiveStatusEffects, entities.StatusDefending) {
		def = int(math.Floor(float64(def) * (1 + DefendingBonus)))
	}
	return def
}

// EnemyReflectionPercent reads the DamageReflection status magnitude as a whole percent
func EnemyReflectionPercent(enemy *entities.Enemy) float64 {
	if enemy == nil {
		return 0
	}
	return clampUnit(float64(entities.StatusMagnitude(enemy.ActiveStatusEffects, entities.StatusDamageReflection)) / 100)
}

// CalculateMaxRegisteredSpells is the number of spells a player can know
func CalculateMaxRegisteredSpells(level int) int {
	return level + baseRegisteredSpells
}

// CalculateMaxPreparedSpells is the number of spells a player can bring into combat
func CalculateMaxPreparedSpells(level int) int {
	return level + basePreparedSpells
}

// CalculateMaxPreparedAbilities is the number of abilities a player can bring into combat
func CalculateMaxPreparedAbilities(level int) int {
	return level + basePreparedAbilities
}

func hasEquipmentTag(item entities.Equipment, tag string) bool {
	for _, t := range item.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
