// Package progression computes combat rewards and applies experience, level-ups and
// feature unlocks to the player.
package progression

import (
	"github.com/KirkDiggler/spellforge/internal/errors"
)

// Difficulty is the reward bucket an enemy falls into
type Difficulty string

// Reward buckets
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyBoss   Difficulty = "boss"
)

// Bucket is the base payout of one difficulty
type Bucket struct {
	XP         int `yaml:"xp"`
	GoldMin    int `yaml:"gold_min"`
	GoldMax    int `yaml:"gold_max"`
	EssenceMin int `yaml:"essence_min"`
	EssenceMax int `yaml:"essence_max"`
}

// Balance holds the tunable reward numbers. Defaults are compiled in; a YAML file may
// override them.
type Balance struct {
	Easy   Bucket `yaml:"easy"`
	Medium Bucket `yaml:"medium"`
	Hard   Bucket `yaml:"hard"`
	Boss   Bucket `yaml:"boss"`

	// Minimum enemy level for each bucket above easy
	MediumLevel int `yaml:"medium_level"`
	HardLevel   int `yaml:"hard_level"`
	BossLevel   int `yaml:"boss_level"`

	EliteXPMultiplier      float64 `yaml:"elite_xp_multiplier"`
	EliteGoldMultiplier    float64 `yaml:"elite_gold_multiplier"`
	EliteEssenceMultiplier float64 `yaml:"elite_essence_multiplier"`
	EliteChests            int     `yaml:"elite_chests"`
	ChestChance            float64 `yaml:"chest_chance"`
}

// DefaultBalance returns the shipped reward table
func DefaultBalance() Balance {
	return Balance{
		Easy:   Bucket{XP: 25, GoldMin: 5, GoldMax: 15, EssenceMin: 1, EssenceMax: 3},
		Medium: Bucket{XP: 60, GoldMin: 15, GoldMax: 35, EssenceMin: 2, EssenceMax: 5},
		Hard:   Bucket{XP: 120, GoldMin: 35, GoldMax: 70, EssenceMin: 4, EssenceMax: 8},
		Boss:   Bucket{XP: 250, GoldMin: 80, GoldMax: 150, EssenceMin: 8, EssenceMax: 15},

		MediumLevel: 3,
		HardLevel:   7,
		BossLevel:   10,

		EliteXPMultiplier:      2,
		EliteGoldMultiplier:    2,
		EliteEssenceMultiplier: 1.5,
		EliteChests:            2,
		ChestChance:            0.25,
	}
}

// Validate checks that the thresholds ascend and every range is well formed
func (b *Balance) Validate() error {
	vb := errors.NewValidationBuilder()

	if b.MediumLevel < 1 || b.HardLevel <= b.MediumLevel || b.BossLevel <= b.HardLevel {
		vb.InvalidField("levels", "thresholds must be positive and strictly ascending")
	}
	for name, bucket := range map[string]Bucket{
		"easy": b.Easy, "medium": b.Medium, "hard": b.Hard, "boss": b.Boss,
	} {
		if bucket.XP < 0 {
			vb.Field(name+".xp", "must not be negative")
		}
		if bucket.GoldMin < 0 || bucket.GoldMax < bucket.GoldMin {
			vb.Field(name+".gold", "range must satisfy 0 <= min <= max")
		}
		if bucket.EssenceMin < 0 || bucket.EssenceMax < bucket.EssenceMin {
			vb.Field(name+".essence", "range must satisfy 0 <= min <= max")
		}
	}
	if b.EliteXPMultiplier < 1 || b.EliteGoldMultiplier < 1 || b.EliteEssenceMultiplier < 1 {
		vb.InvalidField("elite", "multipliers must be at least 1")
	}
	if b.EliteChests < 0 {
		vb.Field("elite_chests", "must not be negative")
	}
	if b.ChestChance < 0 || b.ChestChance > 1 {
		vb.Field("chest_chance", "must be between 0 and 1")
	}

	return vb.Build()
}

// DifficultyFor maps an enemy level to its reward bucket
func (b *Balance) DifficultyFor(level int) Difficulty {
	switch {
	case level >= b.BossLevel:
		return DifficultyBoss
	case level >= b.HardLevel:
		return DifficultyHard
	case level >= b.MediumLevel:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// Bucket returns the payout for a difficulty
func (b *Balance) Bucket(d Difficulty) Bucket {
	switch d {
	case DifficultyBoss:
		return b.Boss
	case DifficultyHard:
		return b.Hard
	case DifficultyMedium:
		return b.Medium
	default:
		return b.Easy
	}
}
