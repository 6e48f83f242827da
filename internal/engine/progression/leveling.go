package progression

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/spellforge/internal/engine/resources"
	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

const (
	xpPerLevelSquared = 100
	// StatPointsPerLevel is granted for every level gained
	StatPointsPerLevel = 2
)

// Features unlocked by reaching a level
const (
	FeatureAbilitySlots  = "ability_slots"
	FeatureSpellCrafting = "spell_crafting"
	FeatureHomestead     = "homestead"
	FeatureTraitCrafting = "trait_crafting"
	FeatureSettlement    = "settlement"
	FeatureEliteHunts    = "elite_hunts"
	FeatureAscension     = "ascension"
)

// Unlock pairs a feature with the level that grants it
type Unlock struct {
	Level   int
	Feature string
}

// Unlocks is ordered by level
var Unlocks = []Unlock{
	{Level: 2, Feature: FeatureAbilitySlots},
	{Level: 3, Feature: FeatureSpellCrafting},
	{Level: 5, Feature: FeatureHomestead},
	{Level: 7, Feature: FeatureTraitCrafting},
	{Level: 10, Feature: FeatureSettlement},
	{Level: 15, Feature: FeatureEliteHunts},
	{Level: 20, Feature: FeatureAscension},
}

// CalculateLevelFromXP is floor(sqrt(xp/100)) + 1; negative XP counts as zero
func CalculateLevelFromXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp)/xpPerLevelSquared))) + 1
}

// XPForLevel is the cumulative XP needed to reach level
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * xpPerLevelSquared
}

// LevelUp describes what an XP grant changed
type LevelUp struct {
	PreviousLevel    int
	NewLevel         int
	LevelsGained     int
	StatPointsGained int
	Unlocked         []string
}

// ApplyXP grants xp to the player and resolves any level-ups: stat points, newly reached
// feature unlocks and a full refill of HP, MP and EP. The level never goes down.
func ApplyXP(player *entities.Player, xp int) LevelUp {
	out := LevelUp{PreviousLevel: player.Level, NewLevel: player.Level}
	if xp > 0 {
		player.XP += xp
	}

	level := CalculateLevelFromXP(player.XP)
	if level <= player.Level {
		return out
	}

	out.NewLevel = level
	out.LevelsGained = level - player.Level
	out.StatPointsGained = out.LevelsGained * StatPointsPerLevel

	player.Level = level
	player.StatPoints += out.StatPointsGained
	for _, u := range Unlocks {
		if u.Level > level || hasFeature(player.UnlockedFeatures, u.Feature) {
			continue
		}
		player.UnlockedFeatures = append(player.UnlockedFeatures, u.Feature)
		out.Unlocked = append(out.Unlocked, u.Feature)
	}

	eff := stats.CalculateEffectiveStats(player)
	player.HP, player.MP, player.EP = eff.MaxHP, eff.MaxMP, eff.MaxEP

	slog.Info("Player leveled up",
		"player_id", player.ID,
		"from", out.PreviousLevel,
		"to", out.NewLevel,
		"unlocked", out.Unlocked)

	return out
}

// ApplyRewards credits currency, chests and resources, then grants the XP
func ApplyRewards(player *entities.Player, r Rewards) LevelUp {
	player.Gold += max(r.Gold, 0)
	player.Essence += max(r.Essence, 0)
	player.LootChests += max(r.LootChests, 0)
	resources.AddResources(player, r.Resources)
	return ApplyXP(player, r.XP)
}

func hasFeature(features []string, feature string) bool {
	for _, f := range features {
		if f == feature {
			return true
		}
	}
	return false
}
