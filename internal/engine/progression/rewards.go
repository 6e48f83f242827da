package progression

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Rewards is what a single defeated enemy pays out
type Rewards struct {
	Difficulty Difficulty
	XP         int
	Gold       int
	Essence    int
	Resources  []entities.ResourceDrop
	LootChests int
}

// AwardCombatRewards rolls the payout for a defeated enemy. Gold and essence are drawn
// uniformly within the bucket range; elites multiply XP, gold and essence and always drop
// chests, while other enemies roll for a single chest.
func AwardCombatRewards(random rng.Source, balance Balance, enemy *entities.Enemy) Rewards {
	if enemy == nil {
		return Rewards{}
	}

	difficulty := balance.DifficultyFor(enemy.Level)
	bucket := balance.Bucket(difficulty)

	out := Rewards{
		Difficulty: difficulty,
		XP:         bucket.XP,
		Gold:       random.Between(bucket.GoldMin, bucket.GoldMax),
		Essence:    random.Between(bucket.EssenceMin, bucket.EssenceMax),
	}

	if enemy.IsElite {
		out.XP = int(math.Floor(float64(out.XP) * balance.EliteXPMultiplier))
		out.Gold = int(math.Floor(float64(out.Gold) * balance.EliteGoldMultiplier))
		out.Essence = max(int(math.Floor(float64(out.Essence)*balance.EliteEssenceMultiplier)), 1)
		out.LootChests = balance.EliteChests
	} else if random.Chance(balance.ChestChance) {
		out.LootChests = 1
	}

	for _, drop := range enemy.Loot {
		if drop.ResourceID == "" || drop.Quantity <= 0 {
			continue
		}
		out.Resources = append(out.Resources, drop)
	}

	slog.Debug("Combat rewards rolled",
		"enemy_id", enemy.ID,
		"difficulty", difficulty,
		"elite", enemy.IsElite,
		"xp", out.XP,
		"gold", out.Gold,
		"essence", out.Essence,
		"chests", out.LootChests)

	return out
}

// Add merges r into an encounter's running summary
func (r Rewards) Add(summary *entities.RewardSummary) {
	summary.XP += r.XP
	summary.Gold += r.Gold
	summary.Essence += r.Essence
	summary.LootChests += r.LootChests
	if len(r.Resources) == 0 {
		return
	}
	if summary.Resources == nil {
		summary.Resources = make(map[string]int, len(r.Resources))
	}
	for _, drop := range r.Resources {
		summary.Resources[drop.ResourceID] += drop.Quantity
	}
}
