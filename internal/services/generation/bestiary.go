package generation

import (
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// template is a hand-authored enemy used when no generator is available
type template struct {
	name       string
	icon       string
	hp         int
	body       int
	mind       int
	reflex     int
	weakness   entities.DamageType
	resistance entities.DamageType
	special    *entities.EnemyAbility
	loot       []entities.ResourceDrop
}

// bestiary is ordered from weakest to strongest
var bestiary = []template{
	{
		name: "Cave Rat", icon: "skull", hp: 30, body: 2, mind: 1, reflex: 3,
		weakness: entities.DamageFire,
		loot:     []entities.ResourceDrop{{ResourceID: "hide", Name: "Scrap Hide", Quantity: 1}},
	},
	{
		name: "Bog Wisp", icon: "droplet", hp: 32, body: 1, mind: 3, reflex: 2,
		weakness: entities.DamageLight, resistance: entities.DamageWater,
		special: &entities.EnemyAbility{
			Name:                "Marsh Haze",
			StatusEffectInflict: &entities.StatusEffectInflict{Name: entities.StatusPoisonDoT, Duration: 2, Magnitude: 3, Chance: 0.5},
		},
		loot: []entities.ResourceDrop{{ResourceID: "essence_shard", Name: "Essence Shard", Quantity: 1}},
	},
	{
		name: "Ember Imp", icon: "flame", hp: 36, body: 2, mind: 3, reflex: 3,
		weakness: entities.DamageIce, resistance: entities.DamageFire,
		special: &entities.EnemyAbility{
			Name:                "Cinder Spit",
			StatusEffectInflict: &entities.StatusEffectInflict{Name: entities.StatusBurningDoT, Duration: 2, Magnitude: 4, Chance: 0.4},
		},
		loot: []entities.ResourceDrop{{ResourceID: "ember", Name: "Ember", Quantity: 2}},
	},
	{
		name: "Stone Sentinel", icon: "mountain", hp: 50, body: 4, mind: 1, reflex: 1,
		weakness: entities.DamageLightning, resistance: entities.DamageEarth,
		special: &entities.EnemyAbility{
			Name:                "Quake Slam",
			StatusEffectInflict: &entities.StatusEffectInflict{Name: entities.StatusStun, Duration: 1, Chance: 0.25},
		},
		loot: []entities.ResourceDrop{{ResourceID: "ore", Name: "Iron Ore", Quantity: 2}},
	},
	{
		name: "Hollow Knight", icon: "sword", hp: 55, body: 4, mind: 2, reflex: 3,
		weakness: entities.DamageLight, resistance: entities.DamageDark,
		special: &entities.EnemyAbility{
			Name:                "Rending Cut",
			StatusEffectInflict: &entities.StatusEffectInflict{Name: entities.StatusBleedingDoT, Duration: 3, Magnitude: 3, Chance: 0.5},
		},
		loot: []entities.ResourceDrop{{ResourceID: "ore", Name: "Iron Ore", Quantity: 1}, {ResourceID: "hide", Name: "Scrap Hide", Quantity: 1}},
	},
}

// Fallback scaling per level above 1
const (
	fallbackHPPerLevel   = 8
	fallbackEliteHPScale = 1.5
)

// fallbackEnemy builds a bestiary enemy scaled to level. Higher levels draw from more of
// the bestiary.
func fallbackEnemy(random rng.Source, id string, level int, elite bool) *entities.Enemy {
	level = max(level, 1)
	pool := min(len(bestiary), 2+level/2)
	t := bestiary[random.Intn(pool)]

	bonus := (level - 1) / 2
	hp := t.hp + fallbackHPPerLevel*(level-1)
	name := t.name
	if elite {
		hp = int(float64(hp) * fallbackEliteHPScale)
		name = "Elite " + name
	}

	enemy := &entities.Enemy{
		ID:         id,
		Name:       name,
		IconName:   t.icon,
		Level:      level,
		HP:         hp,
		MaxHP:      hp,
		Body:       t.body + bonus,
		Mind:       t.mind + bonus,
		Reflex:     t.reflex + bonus,
		Weakness:   t.weakness,
		Resistance: t.resistance,
		IsElite:    elite,
		Loot:       append([]entities.ResourceDrop(nil), t.loot...),
	}
	if t.special != nil {
		special := *t.special
		if special.StatusEffectInflict != nil {
			inflict := *special.StatusEffectInflict
			special.StatusEffectInflict = &inflict
		}
		enemy.SpecialAbility = &special
	}
	return enemy
}
