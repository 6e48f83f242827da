// Package effects defines every status effect kind and the single per-tick handler
// shared by the player and enemy turn paths.
package effects

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Kind is the closed set of status effect behaviours
type Kind int

// Status effect kinds
const (
	KindGeneric Kind = iota
	KindDamageOverTime
	KindHealOverTime
	KindControl
	KindSilence
	KindStatModifier
	KindDefending
	KindReflection
	KindShield
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindDamageOverTime:
		return "damage_over_time"
	case KindHealOverTime:
		return "heal_over_time"
	case KindControl:
		return "control"
	case KindSilence:
		return "silence"
	case KindStatModifier:
		return "stat_modifier"
	case KindDefending:
		return "defending"
	case KindReflection:
		return "reflection"
	case KindShield:
		return "shield"
	default:
		return "generic"
	}
}

// Modifier is the per-magnitude stat contribution of a stat modifier effect
type Modifier struct {
	Body   int
	Mind   int
	Reflex int
	MaxHP  int
	Speed  int
}

// Definition describes one status effect
type Definition struct {
	Name     entities.StatusEffectName
	Kind     Kind
	Harmful  bool
	Modifier Modifier
	// Verb is the log phrase for a tick, e.g. "burns"
	Verb string
}

var definitions = map[entities.StatusEffectName]Definition{
	entities.StatusPoisonDoT:      {Name: entities.StatusPoisonDoT, Kind: KindDamageOverTime, Harmful: true, Verb: "poison"},
	entities.StatusBurningDoT:     {Name: entities.StatusBurningDoT, Kind: KindDamageOverTime, Harmful: true, Verb: "burning"},
	entities.StatusBleedingDoT:    {Name: entities.StatusBleedingDoT, Kind: KindDamageOverTime, Harmful: true, Verb: "bleeding"},
	entities.StatusCorruptedDoT:   {Name: entities.StatusCorruptedDoT, Kind: KindDamageOverTime, Harmful: true, Verb: "corruption"},
	entities.StatusFrostbittenDoT: {Name: entities.StatusFrostbittenDoT, Kind: KindDamageOverTime, Harmful: true, Verb: "frostbite"},
	entities.StatusRottingDoT:     {Name: entities.StatusRottingDoT, Kind: KindDamageOverTime, Harmful: true, Verb: "rot"},
	entities.StatusShockedDoT:     {Name: entities.StatusShockedDoT, Kind: KindDamageOverTime, Harmful: true, Verb: "shock"},

	entities.StatusRegeneration: {Name: entities.StatusRegeneration, Kind: KindHealOverTime, Verb: "regeneration"},
	entities.StatusTempHPRegen:  {Name: entities.StatusTempHPRegen, Kind: KindHealOverTime, Verb: "regeneration"},

	entities.StatusStun:     {Name: entities.StatusStun, Kind: KindControl, Harmful: true, Verb: "stunned"},
	entities.StatusFreeze:   {Name: entities.StatusFreeze, Kind: KindControl, Harmful: true, Verb: "frozen"},
	entities.StatusSleep:    {Name: entities.StatusSleep, Kind: KindControl, Harmful: true, Verb: "asleep"},
	entities.StatusSilenced: {Name: entities.StatusSilenced, Kind: KindSilence, Harmful: true, Verb: "silenced"},

	entities.StatusBodyUp:     {Name: entities.StatusBodyUp, Kind: KindStatModifier, Modifier: Modifier{Body: 1}},
	entities.StatusMindUp:     {Name: entities.StatusMindUp, Kind: KindStatModifier, Modifier: Modifier{Mind: 1}},
	entities.StatusReflexUp:   {Name: entities.StatusReflexUp, Kind: KindStatModifier, Modifier: Modifier{Reflex: 1}},
	entities.StatusBodyDown:   {Name: entities.StatusBodyDown, Kind: KindStatModifier, Harmful: true, Modifier: Modifier{Body: -1}},
	entities.StatusMindDown:   {Name: entities.StatusMindDown, Kind: KindStatModifier, Harmful: true, Modifier: Modifier{Mind: -1}},
	entities.StatusReflexDown: {Name: entities.StatusReflexDown, Kind: KindStatModifier, Harmful: true, Modifier: Modifier{Reflex: -1}},
	entities.StatusMaxHPUp:    {Name: entities.StatusMaxHPUp, Kind: KindStatModifier, Modifier: Modifier{MaxHP: 1}},
	entities.StatusSpeedUp:    {Name: entities.StatusSpeedUp, Kind: KindStatModifier, Modifier: Modifier{Speed: 1}},

	entities.StatusDefending:        {Name: entities.StatusDefending, Kind: KindDefending},
	entities.StatusDamageReflection: {Name: entities.StatusDamageReflection, Kind: KindReflection},
	entities.StatusShield:           {Name: entities.StatusShield, Kind: KindShield},
}

// Lookup returns the definition for name. Unknown names are generic, harmless effects.
func Lookup(name entities.StatusEffectName) (Definition, bool) {
	def, ok := definitions[name]
	if !ok {
		return Definition{Name: name, Kind: KindGeneric}, false
	}
	return def, true
}

// Names returns every known status effect name in sorted order
func Names() []entities.StatusEffectName {
	out := make([]entities.StatusEffectName, 0, len(definitions))
	for name := range definitions {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsDamageOverTime reports whether name is in the DoT family
func IsDamageOverTime(name entities.StatusEffectName) bool {
	def, _ := Lookup(name)
	return def.Kind == KindDamageOverTime
}

// IsHarmful reports whether name is a debuff that cures remove
func IsHarmful(name entities.StatusEffectName) bool {
	def, _ := Lookup(name)
	return def.Harmful
}

// CountDamageOverTime counts the active DoT instances
func CountDamageOverTime(active []entities.ActiveStatusEffect) int {
	n := 0
	for _, e := range active {
		if IsDamageOverTime(e.Name) {
			n++
		}
	}
	return n
}

// IsIncapacitated reports whether a control effect prevents acting
func IsIncapacitated(active []entities.ActiveStatusEffect) bool {
	for _, e := range active {
		def, _ := Lookup(e.Name)
		if def.Kind == KindControl {
			return true
		}
	}
	return false
}

// TickEvent records what one effect did during a tick
type TickEvent struct {
	Name    entities.StatusEffectName
	Kind    Kind
	Amount  int
	Expired bool
}

// TickResult is the outcome of ticking one combatant's effects
type TickResult struct {
	// Remaining holds the effects that are still active, durations already decremented
	Remaining []entities.ActiveStatusEffect
	// HP is the resulting hit points; it may be zero or below when DoTs are lethal
	HP       int
	Damage   int
	Healing  int
	SkipTurn bool
	Events   []TickEvent
}

// Tick processes every active effect once: DoTs subtract their magnitude, HoTs restore
// up to maxHP, control effects flag a skipped turn. Every effect's duration is then
// decremented and effects at zero or below are dropped, whatever their kind.
func Tick(active []entities.ActiveStatusEffect, hp, maxHP int) TickResult {
	result := TickResult{
		Remaining: make([]entities.ActiveStatusEffect, 0, len(active)),
		HP:        hp,
	}

	for _, effect := range active {
		def, known := Lookup(effect.Name)
		if !known {
			slog.Debug("ticking unknown status effect", "name", effect.Name)
		}

		event := TickEvent{Name: effect.Name, Kind: def.Kind}
		switch def.Kind {
		case KindDamageOverTime:
			dmg := max(effect.Magnitude, 0)
			result.HP -= dmg
			result.Damage += dmg
			event.Amount = dmg
		case KindHealOverTime:
			heal := min(max(effect.Magnitude, 0), max(maxHP-result.HP, 0))
			result.HP += heal
			result.Healing += heal
			event.Amount = heal
		case KindControl:
			result.SkipTurn = true
		}

		next := effect
		next.Duration--
		if next.Duration <= 0 {
			event.Expired = true
		} else {
			result.Remaining = append(result.Remaining, next)
		}
		result.Events = append(result.Events, event)
	}

	return result
}
