package generation

import (
	"strings"

	"github.com/KirkDiggler/spellforge/internal/engine/effects"
	"github.com/KirkDiggler/spellforge/internal/engine/tags"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
)

// Bounds applied to generated content
const (
	MinDamage        = 0
	MaxDamage        = 60
	MinManaCost      = 1
	MaxManaCost      = 50
	MinDuration      = 1
	MaxDuration      = 5
	MinMagnitude     = 1
	MaxMagnitude     = 25
	MaxScalingFactor = 2.0
	// MinChance is the lowest inflict chance that still rolls; zero means always apply
	MinChance = 0.05
	MinEffectAmount  = 1
	MaxEffectAmount  = 60
	MaxNameLength    = 40
	MaxLootQuantity  = 5
)

var knownDamageTypes = map[entities.DamageType]bool{
	entities.DamageFire: true, entities.DamageIce: true, entities.DamageLightning: true,
	entities.DamageWater: true, entities.DamageEarth: true, entities.DamageAir: true,
	entities.DamageLight: true, entities.DamageDark: true, entities.DamagePoison: true,
	entities.DamageArcane: true, entities.DamageNature: true, entities.DamagePsychic: true,
	entities.DamagePhysical: true, entities.DamageNone: true, entities.DamageHealing: true,
	entities.DamageHealingSource: true,
}

var elements = map[entities.DamageType]bool{
	entities.DamageFire: true, entities.DamageIce: true, entities.DamageLightning: true,
	entities.DamageWater: true, entities.DamageEarth: true, entities.DamageAir: true,
	entities.DamageLight: true, entities.DamageDark: true, entities.DamagePoison: true,
	entities.DamageArcane: true, entities.DamageNature: true, entities.DamagePsychic: true,
}

var knownEffectTypes = map[entities.EffectType]bool{
	entities.EffectMPRestore: true, entities.EffectHPRestore: true, entities.EffectEPRestore: true,
	entities.EffectSelfHeal: true, entities.EffectTempStatBuff: true, entities.EffectEnemyDebuff: true,
	entities.EffectEnemyDamage: true, entities.EffectCureStatus: true, entities.EffectApplyBuff: true,
}

// adjustments records which fields were changed, once each
type adjustments struct {
	fields []string
	seen   map[string]bool
}

func (a *adjustments) add(field string) {
	if a.seen == nil {
		a.seen = make(map[string]bool)
	}
	if a.seen[field] {
		return
	}
	a.seen[field] = true
	a.fields = append(a.fields, field)
}

func (a *adjustments) clamp(field string, v, lo, hi int) int {
	switch {
	case v < lo:
		a.add(field)
		return lo
	case v > hi:
		a.add(field)
		return hi
	}
	return v
}

func (a *adjustments) name(field, v, fallback string) string {
	out := strings.TrimSpace(v)
	if out == "" {
		a.add(field)
		return fallback
	}
	if r := []rune(out); len(r) > MaxNameLength {
		a.add(field)
		out = strings.TrimSpace(string(r[:MaxNameLength]))
	}
	if out != v {
		a.add(field)
	}
	return out
}

func (a *adjustments) icon(field, v string) string {
	out := MatchIcon(v)
	if out != v {
		a.add(field)
	}
	return out
}

// SanitizeSpell clamps a generated spell into playable bounds. It returns the names of
// the fields it changed.
func SanitizeSpell(spell entities.Spell) (entities.Spell, []string) {
	var adj adjustments

	spell.Name = adj.name("name", spell.Name, "Unnamed Spell")
	spell.IconName = adj.icon("iconName", spell.IconName)
	spell.Damage = adj.clamp("damage", spell.Damage, MinDamage, MaxDamage)
	spell.ManaCost = adj.clamp("manaCost", spell.ManaCost, MinManaCost, MaxManaCost)

	switch {
	case spell.ScalingFactor < 0:
		adj.add("scalingFactor")
		spell.ScalingFactor = 0
	case spell.ScalingFactor > MaxScalingFactor:
		adj.add("scalingFactor")
		spell.ScalingFactor = MaxScalingFactor
	}
	switch spell.ScalesWith {
	case entities.ScalesWithNone, entities.ScalesWithBody, entities.ScalesWithMind:
	default:
		adj.add("scalesWith")
		spell.ScalesWith = entities.ScalesWithNone
	}

	spell.Tags = sanitizeTags(&adj, spell.Tags)

	if !knownDamageTypes[spell.DamageType] {
		adj.add("damageType")
		spell.DamageType = inferDamageType(spell)
	}

	if spell.StatusEffectInflict != nil {
		spell.StatusEffectInflict = sanitizeInflict(&adj, "statusEffectInflict", spell.StatusEffectInflict)
	}

	return spell, adj.fields
}

func sanitizeTags(adj *adjustments, in []entities.TagName) []entities.TagName {
	if len(in) == 0 {
		return nil
	}
	known := make([]entities.TagName, 0, len(in))
	for _, tag := range in {
		if tags.IsKnown(tag) {
			known = append(known, tag)
		}
	}
	out := tags.GetEffectiveTags(known)
	if len(out) != len(in) {
		adj.add("tags")
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// inferDamageType picks a damage type from the spell's tags when the generated one is
// unusable
func inferDamageType(spell entities.Spell) entities.DamageType {
	for _, tag := range spell.Tags {
		if dt, ok := entities.ElementForTag(tag); ok {
			return dt
		}
		if tag == entities.TagHealing {
			return entities.DamageHealing
		}
	}
	if spell.Damage > 0 {
		return entities.DamagePhysical
	}
	return entities.DamageNone
}

// sanitizeInflict returns nil when the status cannot be matched to a known effect
func sanitizeInflict(adj *adjustments, field string, in *entities.StatusEffectInflict) *entities.StatusEffectInflict {
	name, ok := MatchStatus(string(in.Name))
	if !ok {
		adj.add(field)
		return nil
	}
	out := *in
	if name != in.Name {
		adj.add(field + ".name")
		out.Name = name
	}
	out.Duration = adj.clamp(field+".duration", in.Duration, MinDuration, MaxDuration)
	out.Magnitude = sanitizeMagnitude(adj, field+".magnitude", name, in.Magnitude)

	switch {
	case in.Chance < 0:
		adj.add(field + ".chance")
		out.Chance = MinChance
	case in.Chance > 1:
		adj.add(field + ".chance")
		out.Chance = 1
	}
	return &out
}

// sanitizeMagnitude lets control effects carry no magnitude; every other kind needs one
func sanitizeMagnitude(adj *adjustments, field string, name entities.StatusEffectName, v int) int {
	def, _ := effects.Lookup(name)
	switch def.Kind {
	case effects.KindControl, effects.KindSilence, effects.KindDefending, effects.KindGeneric:
		return adj.clamp(field, v, 0, MaxMagnitude)
	default:
		return adj.clamp(field, v, MinMagnitude, MaxMagnitude)
	}
}

// SanitizeConsumable clamps a generated consumable. An effect type outside the closed
// set cannot be repaired and is rejected.
func SanitizeConsumable(item entities.Consumable) (entities.Consumable, []string, error) {
	var adj adjustments

	item.Name = adj.name("name", item.Name, "Unnamed Draught")
	item.IconName = adj.icon("iconName", item.IconName)

	effect, err := sanitizeEffect(&adj, item.Effect)
	if err != nil {
		return entities.Consumable{}, nil, err
	}
	item.Effect = effect

	return item, adj.fields, nil
}

func sanitizeEffect(adj *adjustments, effect entities.Effect) (entities.Effect, error) {
	if !knownEffectTypes[effect.Type] {
		return entities.Effect{}, errors.InvalidArgumentf("unsupported effect type %q", effect.Type)
	}

	out := entities.Effect{Type: effect.Type}
	switch effect.Type {
	case entities.EffectMPRestore, entities.EffectHPRestore, entities.EffectEPRestore,
		entities.EffectSelfHeal, entities.EffectEnemyDamage:
		out.Amount = adj.clamp("effect.amount", effect.Amount, MinEffectAmount, MaxEffectAmount)

	case entities.EffectTempStatBuff:
		switch effect.Stat {
		case entities.StatBody, entities.StatMind, entities.StatReflex:
			out.Stat = effect.Stat
		default:
			adj.add("effect.stat")
			out.Stat = entities.StatBody
		}
		out.Amount = adj.clamp("effect.amount", effect.Amount, MinMagnitude, MaxMagnitude)
		out.Duration = adj.clamp("effect.duration", effect.Duration, MinDuration, MaxDuration)

	case entities.EffectEnemyDebuff, entities.EffectApplyBuff:
		name, ok := MatchStatus(string(effect.Status))
		if !ok {
			adj.add("effect.status")
			name = entities.StatusReflexDown
			if effect.Type == entities.EffectApplyBuff {
				name = entities.StatusShield
			}
		} else if name != effect.Status {
			adj.add("effect.status")
		}
		out.Status = name
		out.Magnitude = sanitizeMagnitude(adj, "effect.magnitude", name, effect.Magnitude)
		out.Duration = adj.clamp("effect.duration", effect.Duration, MinDuration, MaxDuration)

	case entities.EffectCureStatus:
		for _, cure := range effect.Cures {
			name, ok := MatchStatus(string(cure))
			if !ok {
				adj.add("effect.cures")
				continue
			}
			if name != cure {
				adj.add("effect.cures")
			}
			out.Cures = append(out.Cures, name)
		}
	}

	return out, nil
}

// enemyBounds returns the HP range a generated enemy of level may have
func enemyBounds(level int, elite bool) (int, int) {
	lo, hi := 20+5*level, 60+25*level
	if elite {
		hi *= 2
	}
	return lo, hi
}

// SanitizeEnemy clamps a generated enemy to the player's level band: its level stays
// within one below and two above, attributes stay within 1..level+3 and HP within the
// band for that level.
func SanitizeEnemy(enemy entities.Enemy, playerLevel int) (entities.Enemy, []string) {
	var adj adjustments

	playerLevel = max(playerLevel, 1)
	enemy.Name = adj.name("name", enemy.Name, "Nameless Horror")
	enemy.IconName = adj.icon("iconName", enemy.IconName)
	enemy.Level = adj.clamp("level", enemy.Level, max(playerLevel-1, 1), playerLevel+2)

	attrMax := enemy.Level + 3
	enemy.Body = adj.clamp("body", enemy.Body, 1, attrMax)
	enemy.Mind = adj.clamp("mind", enemy.Mind, 1, attrMax)
	enemy.Reflex = adj.clamp("reflex", enemy.Reflex, 1, attrMax)

	lo, hi := enemyBounds(enemy.Level, enemy.IsElite)
	enemy.HP = adj.clamp("hp", enemy.HP, lo, hi)
	if enemy.MaxHP != enemy.HP {
		if enemy.MaxHP != 0 {
			adj.add("maxHp")
		}
		enemy.MaxHP = enemy.HP
	}

	if enemy.Weakness != "" && !elements[enemy.Weakness] {
		adj.add("weakness")
		enemy.Weakness = ""
	}
	if enemy.Resistance != "" && (!elements[enemy.Resistance] || enemy.Resistance == enemy.Weakness) {
		adj.add("resistance")
		enemy.Resistance = ""
	}

	if enemy.SpecialAbility != nil {
		special := *enemy.SpecialAbility
		special.Name = adj.name("specialAbility.name", special.Name, "Savage Strike")
		if special.StatusEffectInflict != nil {
			special.StatusEffectInflict = sanitizeInflict(&adj, "specialAbility.statusEffectInflict", special.StatusEffectInflict)
		}
		enemy.SpecialAbility = &special
	}

	if len(enemy.Loot) > 0 {
		loot := make([]entities.ResourceDrop, 0, len(enemy.Loot))
		for _, drop := range enemy.Loot {
			if strings.TrimSpace(drop.ResourceID) == "" || drop.Quantity <= 0 {
				adj.add("loot")
				continue
			}
			drop.Quantity = adj.clamp("loot", drop.Quantity, 1, MaxLootQuantity)
			loot = append(loot, drop)
		}
		enemy.Loot = loot
	}

	enemy.ActiveStatusEffects = nil
	enemy.Defeated = false

	return enemy, adj.fields
}
