package progression_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

type ProgressionTestSuite struct {
	suite.Suite
	balance progression.Balance
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) SetupTest() {
	s.balance = progression.DefaultBalance()
}

func (s *ProgressionTestSuite) TestDefaultBalanceIsValid() {
	s.NoError(s.balance.Validate())

	broken := progression.DefaultBalance()
	broken.HardLevel = 2
	broken.Easy.GoldMax = 1
	s.Error(broken.Validate())
}

func (s *ProgressionTestSuite) TestDifficultyBuckets() {
	testCases := []struct {
		level int
		want  progression.Difficulty
	}{
		{level: 1, want: progression.DifficultyEasy},
		{level: 2, want: progression.DifficultyEasy},
		{level: 3, want: progression.DifficultyMedium},
		{level: 6, want: progression.DifficultyMedium},
		{level: 7, want: progression.DifficultyHard},
		{level: 9, want: progression.DifficultyHard},
		{level: 10, want: progression.DifficultyBoss},
		{level: 40, want: progression.DifficultyBoss},
	}
	for _, tc := range testCases {
		s.Equal(tc.want, s.balance.DifficultyFor(tc.level), "level %d", tc.level)
	}
}

func (s *ProgressionTestSuite) TestRewardRanges() {
	enemy := &entities.Enemy{ID: "e", Level: 4}

	low := progression.AwardCombatRewards(rng.AlwaysHit(), s.balance, enemy)
	s.Equal(60, low.XP)
	s.Equal(15, low.Gold)
	s.Equal(2, low.Essence)
	s.Equal(1, low.LootChests, "chest chance succeeds")

	high := progression.AwardCombatRewards(rng.NeverHit(), s.balance, enemy)
	s.Equal(35, high.Gold)
	s.Equal(5, high.Essence)
	s.Zero(high.LootChests)

	random := rng.New(rng.NewSeeded(7))
	for range 200 {
		r := progression.AwardCombatRewards(random, s.balance, enemy)
		s.GreaterOrEqual(r.Gold, 15)
		s.LessOrEqual(r.Gold, 35)
		s.GreaterOrEqual(r.Essence, 2)
		s.LessOrEqual(r.Essence, 5)
	}
}

func (s *ProgressionTestSuite) TestEliteMultipliers() {
	enemy := &entities.Enemy{
		ID: "e", Level: 1, IsElite: true,
		Loot: []entities.ResourceDrop{{ResourceID: "fang", Quantity: 2}, {ResourceID: "dust"}},
	}

	r := progression.AwardCombatRewards(rng.AlwaysHit(), s.balance, enemy)

	s.Equal(50, r.XP)
	s.Equal(10, r.Gold)
	s.Equal(1, r.Essence, "floor(1*1.5) keeps the essence floor")
	s.Equal(2, r.LootChests)
	s.Equal([]entities.ResourceDrop{{ResourceID: "fang", Quantity: 2}}, r.Resources)

	s.balance.EliteEssenceMultiplier = 1
	s.balance.Easy.EssenceMin = 0
	r = progression.AwardCombatRewards(rng.AlwaysHit(), s.balance, enemy)
	s.Equal(1, r.Essence, "elites never pay less than one essence")
}

func (s *ProgressionTestSuite) TestLevelCurve() {
	s.Equal(1, progression.CalculateLevelFromXP(-5))
	s.Equal(1, progression.CalculateLevelFromXP(0))
	s.Equal(1, progression.CalculateLevelFromXP(99))
	s.Equal(2, progression.CalculateLevelFromXP(100))
	s.Equal(2, progression.CalculateLevelFromXP(399))
	s.Equal(3, progression.CalculateLevelFromXP(400))
	s.Equal(11, progression.CalculateLevelFromXP(10000))

	prev := progression.CalculateLevelFromXP(0)
	for xp := 1; xp <= 50000; xp += 37 {
		level := progression.CalculateLevelFromXP(xp)
		s.GreaterOrEqual(level, prev, "xp %d", xp)
		prev = level
	}

	for level := 1; level <= 30; level++ {
		s.Equal(level, progression.CalculateLevelFromXP(progression.XPForLevel(level)))
	}
}

func (s *ProgressionTestSuite) TestApplyXP() {
	player := &entities.Player{ID: "p", Level: 1, Body: 2, Mind: 2, Reflex: 2, HP: 3, MP: 0, EP: 0}

	s.Run("no level", func() {
		up := progression.ApplyXP(player, 50)
		s.Zero(up.LevelsGained)
		s.Equal(50, player.XP)
		s.Equal(3, player.HP)
	})

	s.Run("several levels", func() {
		up := progression.ApplyXP(player, 1550)

		s.Equal(1, up.PreviousLevel)
		s.Equal(5, up.NewLevel)
		s.Equal(4, up.LevelsGained)
		s.Equal(8, up.StatPointsGained)
		s.Equal(8, player.StatPoints)
		s.Equal([]string{
			progression.FeatureAbilitySlots,
			progression.FeatureSpellCrafting,
			progression.FeatureHomestead,
		}, up.Unlocked)
		// level 5 caps: 50+50+10, 20+25+10, 20+15+6
		s.Equal(110, player.HP)
		s.Equal(55, player.MP)
		s.Equal(41, player.EP)
	})

	s.Run("features unlock once", func() {
		up := progression.ApplyXP(player, 2000)
		s.Equal(7, up.NewLevel)
		s.Equal([]string{progression.FeatureTraitCrafting}, up.Unlocked)
		s.Len(player.UnlockedFeatures, 4)
	})
}

func (s *ProgressionTestSuite) TestApplyRewards() {
	player := &entities.Player{ID: "p", Level: 1, Gold: 5, Resources: map[string]int{"fang": 1}}

	up := progression.ApplyRewards(player, progression.Rewards{
		XP: 120, Gold: 30, Essence: 4, LootChests: 1,
		Resources: []entities.ResourceDrop{{ResourceID: "fang", Quantity: 2}},
	})

	s.Equal(1, up.LevelsGained)
	s.Equal(35, player.Gold)
	s.Equal(4, player.Essence)
	s.Equal(1, player.LootChests)
	s.Equal(map[string]int{"fang": 3}, player.Resources)
}

func (s *ProgressionTestSuite) TestRewardSummary() {
	var summary entities.RewardSummary
	progression.Rewards{XP: 25, Gold: 5, Resources: []entities.ResourceDrop{{ResourceID: "fang", Quantity: 1}}}.Add(&summary)
	progression.Rewards{XP: 60, Essence: 2, LootChests: 1}.Add(&summary)

	s.Equal(85, summary.XP)
	s.Equal(5, summary.Gold)
	s.Equal(2, summary.Essence)
	s.Equal(1, summary.LootChests)
	s.Equal(map[string]int{"fang": 1}, summary.Resources)
}
