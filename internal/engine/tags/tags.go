// Package tags resolves conflicting spell tags into an effective tag set.
//
// Every known tag has a Definition listing the tags it conflicts with, and a position in
// Precedence, an explicit total order. When two conflicting tags are both present the
// one earlier in Precedence survives.
package tags

import (
	"log/slog"

	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Category groups tags for display and generation prompts
type Category string

// Tag categories
const (
	CategoryTargeting Category = "targeting"
	CategoryDamage    Category = "damage"
	CategoryCost      Category = "cost"
	CategorySustain   Category = "sustain"
	CategoryElement   Category = "element"
)

// Definition describes one tag
type Definition struct {
	Name          entities.TagName
	Category      Category
	Description   string
	ConflictsWith []entities.TagName
}

// Precedence is the total order used to break conflicts; lower index wins
var Precedence = []entities.TagName{
	entities.TagGlobalTarget,
	entities.TagAreaOfEffect,
	entities.TagMultiTarget,
	entities.TagRandomTarget,
	entities.TagSingleTarget,
	entities.TagSelfTarget,
	entities.TagChain,
	entities.TagTrueDamage,
	entities.TagArmorIgnoring,
	entities.TagPiercing,
	entities.TagFreeCast,
	entities.TagBloodMagic,
	entities.TagReducedCost,
	entities.TagVampiric,
	entities.TagLifesteal,
	entities.TagCritical,
	entities.TagOverwhelming,
	entities.TagEmpowerment,
	entities.TagSynergy,
	entities.TagBrutal,
	entities.TagDevastating,
	entities.TagRamping,
	entities.TagResonance,
	entities.TagPenetrating,
	entities.TagFire,
	entities.TagIce,
	entities.TagLightning,
	entities.TagWater,
	entities.TagEarth,
	entities.TagAir,
	entities.TagLight,
	entities.TagDark,
	entities.TagPoison,
	entities.TagArcane,
	entities.TagNature,
	entities.TagPsychic,
	entities.TagHealing,
	entities.TagShield,
	entities.TagSilence,
}

// Definitions holds every known tag keyed by name
var Definitions = map[entities.TagName]Definition{
	entities.TagSingleTarget: {
		Name: entities.TagSingleTarget, Category: CategoryTargeting,
		Description: "Strikes the chosen enemy only",
		ConflictsWith: []entities.TagName{
			entities.TagMultiTarget, entities.TagAreaOfEffect,
			entities.TagGlobalTarget, entities.TagRandomTarget,
		},
	},
	entities.TagMultiTarget: {
		Name: entities.TagMultiTarget, Category: CategoryTargeting,
		Description:   "Strikes up to three enemies with diminishing power",
		ConflictsWith: []entities.TagName{entities.TagAreaOfEffect, entities.TagGlobalTarget},
	},
	entities.TagAreaOfEffect: {
		Name: entities.TagAreaOfEffect, Category: CategoryTargeting,
		Description:   "Strikes every enemy at full power",
		ConflictsWith: []entities.TagName{entities.TagGlobalTarget},
	},
	entities.TagGlobalTarget: {
		Name: entities.TagGlobalTarget, Category: CategoryTargeting,
		Description: "Strikes every enemy on the field",
	},
	entities.TagRandomTarget: {
		Name: entities.TagRandomTarget, Category: CategoryTargeting,
		Description: "Strikes a random enemy",
	},
	entities.TagChain: {
		Name: entities.TagChain, Category: CategoryTargeting,
		Description: "Random strikes jump to up to three enemies",
	},
	entities.TagSelfTarget: {
		Name: entities.TagSelfTarget, Category: CategoryTargeting,
		Description: "Affects the caster",
	},
	entities.TagCritical: {
		Name: entities.TagCritical, Category: CategoryDamage,
		Description: "30% chance to deal double damage",
	},
	entities.TagOverwhelming: {
		Name: entities.TagOverwhelming, Category: CategoryDamage,
		Description: "Deals 50% more damage",
	},
	entities.TagEmpowerment: {
		Name: entities.TagEmpowerment, Category: CategoryDamage,
		Description: "Deals 30% more damage",
	},
	entities.TagSynergy: {
		Name: entities.TagSynergy, Category: CategoryDamage,
		Description: "The first hit of each cast deals 25% more damage",
	},
	entities.TagBrutal: {
		Name: entities.TagBrutal, Category: CategoryDamage,
		Description: "Double damage against targets below a quarter of their health",
	},
	entities.TagDevastating: {
		Name: entities.TagDevastating, Category: CategoryDamage,
		Description: "Deals 80% more damage to unharmed targets",
	},
	entities.TagRamping: {
		Name: entities.TagRamping, Category: CategoryDamage,
		Description: "Deals 20% more damage per damage-over-time effect on the target",
	},
	entities.TagResonance: {
		Name: entities.TagResonance, Category: CategoryDamage,
		Description: "Deals 20% more damage",
	},
	entities.TagPenetrating: {
		Name: entities.TagPenetrating, Category: CategoryDamage,
		Description: "Amplifies damage against weak targets by 30%",
	},
	entities.TagArmorIgnoring: {
		Name: entities.TagArmorIgnoring, Category: CategoryDamage,
		Description:   "Ignores defense",
		ConflictsWith: []entities.TagName{entities.TagPiercing},
	},
	entities.TagTrueDamage: {
		Name: entities.TagTrueDamage, Category: CategoryDamage,
		Description:   "Ignores defense and damage type resistances",
		ConflictsWith: []entities.TagName{entities.TagPiercing},
	},
	entities.TagPiercing: {
		Name: entities.TagPiercing, Category: CategoryDamage,
		Description: "Pierces mental wards instead of damage type checks",
	},
	entities.TagReducedCost: {
		Name: entities.TagReducedCost, Category: CategoryCost,
		Description:   "Costs 30% less mana",
		ConflictsWith: []entities.TagName{entities.TagFreeCast, entities.TagBloodMagic},
	},
	entities.TagFreeCast: {
		Name: entities.TagFreeCast, Category: CategoryCost,
		Description:   "30% chance to cost no mana",
		ConflictsWith: []entities.TagName{entities.TagBloodMagic},
	},
	entities.TagBloodMagic: {
		Name: entities.TagBloodMagic, Category: CategoryCost,
		Description: "Pays with health when mana runs dry",
	},
	entities.TagLifesteal: {
		Name: entities.TagLifesteal, Category: CategorySustain,
		Description:   "Heals for 25% of damage dealt",
		ConflictsWith: []entities.TagName{entities.TagVampiric},
	},
	entities.TagVampiric: {
		Name: entities.TagVampiric, Category: CategorySustain,
		Description: "Heals for 50% of damage dealt",
	},
	entities.TagHealing: {
		Name: entities.TagHealing, Category: CategorySustain,
		Description: "Restores health",
	},
	entities.TagShield: {
		Name: entities.TagShield, Category: CategorySustain,
		Description: "Grants a damage-absorbing shield",
	},
	entities.TagSilence: {
		Name: entities.TagSilence, Category: CategorySustain,
		Description: "Requires a voice; unusable while silenced",
	},
	entities.TagFire: {
		Name: entities.TagFire, Category: CategoryElement, Description: "Fire damage",
		ConflictsWith: []entities.TagName{entities.TagIce, entities.TagWater},
	},
	entities.TagIce: {
		Name: entities.TagIce, Category: CategoryElement, Description: "Ice damage",
	},
	entities.TagLightning: {
		Name: entities.TagLightning, Category: CategoryElement, Description: "Lightning damage",
	},
	entities.TagWater: {
		Name: entities.TagWater, Category: CategoryElement, Description: "Water damage",
	},
	entities.TagEarth: {
		Name: entities.TagEarth, Category: CategoryElement, Description: "Earth damage",
		ConflictsWith: []entities.TagName{entities.TagAir},
	},
	entities.TagAir: {
		Name: entities.TagAir, Category: CategoryElement, Description: "Air damage",
	},
	entities.TagLight: {
		Name: entities.TagLight, Category: CategoryElement, Description: "Light damage",
		ConflictsWith: []entities.TagName{entities.TagDark},
	},
	entities.TagDark: {
		Name: entities.TagDark, Category: CategoryElement, Description: "Dark damage",
	},
	entities.TagPoison: {
		Name: entities.TagPoison, Category: CategoryElement, Description: "Poison damage",
	},
	entities.TagArcane: {
		Name: entities.TagArcane, Category: CategoryElement, Description: "Arcane damage",
	},
	entities.TagNature: {
		Name: entities.TagNature, Category: CategoryElement, Description: "Nature damage",
	},
	entities.TagPsychic: {
		Name: entities.TagPsychic, Category: CategoryElement, Description: "Psychic damage",
	},
}

var precedenceIndex = buildPrecedenceIndex(Precedence)

func buildPrecedenceIndex(order []entities.TagName) map[entities.TagName]int {
	idx := make(map[entities.TagName]int, len(order))
	for i, name := range order {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// IsKnown reports whether tag has a definition
func IsKnown(tag entities.TagName) bool {
	_, ok := Definitions[tag]
	return ok
}

// ConflictsWith reports whether a and b exclude each other, in either direction
func ConflictsWith(a, b entities.TagName) bool {
	return listsConflict(a, b) || listsConflict(b, a)
}

func listsConflict(a, b entities.TagName) bool {
	def, ok := Definitions[a]
	if !ok {
		return false
	}
	for _, c := range def.ConflictsWith {
		if c == b {
			return true
		}
	}
	return false
}

// GetEffectiveTags removes every tag that loses a conflict and returns the survivors
// in their input order. Conflicts are settled from the highest-precedence tag down, and
// a removed tag never removes another, so the surviving set does not depend on input
// order. Duplicates collapse to their first occurrence. Tags without a precedence entry
// are kept and take no part in conflicts.
func GetEffectiveTags(input []entities.TagName) []entities.TagName {
	if len(input) == 0 {
		return []entities.TagName{}
	}

	present := make(map[entities.TagName]bool, len(input))
	ordered := make([]entities.TagName, 0, len(input))
	for _, tag := range input {
		if present[tag] {
			continue
		}
		present[tag] = true
		ordered = append(ordered, tag)
	}

	removed := make(map[entities.TagName]bool)
	for _, winner := range Precedence {
		if !present[winner] || removed[winner] {
			continue
		}
		for _, other := range ordered {
			if other == winner || removed[other] {
				continue
			}
			otherIdx, ranked := precedenceIndex[other]
			if !ranked || otherIdx < precedenceIndex[winner] {
				continue
			}
			if ConflictsWith(winner, other) {
				removed[other] = true
				slog.Debug("tag removed by conflict", "removed", other, "kept", winner)
			}
		}
	}

	out := make([]entities.TagName, 0, len(ordered))
	for _, tag := range ordered {
		if _, ranked := precedenceIndex[tag]; !ranked {
			slog.Warn("tag has no precedence entry, keeping it", "tag", tag)
		}
		if !removed[tag] {
			out = append(out, tag)
		}
	}
	return out
}
