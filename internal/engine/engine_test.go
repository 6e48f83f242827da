package engine_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellforge/internal/engine"
	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
)

type EngineTestSuite struct {
	suite.Suite
	ctx       context.Context
	engine    engine.Engine
	bus       events.EventBus
	published []string
	encounter *entities.Encounter
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.published = nil
	for _, eventType := range []string{
		rpgtoolkit.EventEnemyDefeated, rpgtoolkit.EventLevelUp, rpgtoolkit.EventPlayerDefeated,
	} {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.published = append(s.published, e.Type())
			return nil
		})
	}

	var err error
	s.engine, err = engine.New(&engine.Config{
		DiceRoller:  rng.NewFixed(1),
		EventBus:    s.bus,
		IDGenerator: idgen.NewSequential("log"),
	})
	s.Require().NoError(err)

	s.encounter = &entities.Encounter{
		ID: "enc-1",
		Player: &entities.Player{
			ID: "player-1", Name: "Ayla", Level: 1,
			Body: 2, Mind: 2, Reflex: 2, HP: 70, MP: 30, EP: 20,
			Spells: []entities.Spell{{
				ID: "bolt", Name: "Bolt", ManaCost: 5, Damage: 12, DamageType: entities.DamagePhysical,
			}},
		},
		Enemies: []*entities.Enemy{{
			ID: "wolf-1", Name: "Wolf", Level: 1, HP: 10, MaxHP: 10,
			Loot: []entities.ResourceDrop{{ResourceID: "fang", Name: "Wolf Fang", Quantity: 2}},
		}},
		Phase: entities.PhasePlayerTurn,
		Turn:  1,
	}
}

func (s *EngineTestSuite) TestNewValidatesBalance() {
	broken := progression.DefaultBalance()
	broken.ChestChance = 3

	_, err := engine.New(&engine.Config{Balance: &broken})
	s.True(errors.IsInvalidArgument(err))

	e, err := engine.New(nil)
	s.Require().NoError(err)
	s.Equal(progression.DefaultBalance(), e.Balance())
}

func (s *EngineTestSuite) TestNilEncounter() {
	_, err := s.engine.CastSpell(s.ctx, &engine.CastSpellInput{SpellID: "bolt"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.Defend(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestKillGrantsRewards() {
	out, err := s.engine.CastSpell(s.ctx, &engine.CastSpellInput{
		Encounter: s.encounter,
		SpellID:   "bolt",
		TargetID:  "wolf-1",
	})
	s.Require().NoError(err)

	s.True(out.Result.Success)
	s.Equal(entities.PhaseVictory, out.Phase)

	player := s.encounter.Player
	s.Equal(25, player.XP)
	s.Equal(5, player.Gold)
	s.Equal(1, player.Essence)
	s.Equal(1, player.LootChests)
	s.Equal(map[string]int{"fang": 2}, player.Resources)

	s.Equal(entities.RewardSummary{
		XP: 25, Gold: 5, Essence: 1, LootChests: 1,
		Resources: map[string]int{"fang": 2},
	}, s.encounter.Rewards)

	var messages []string
	for _, entry := range s.encounter.Log {
		messages = append(messages, entry.Message)
	}
	s.Contains(messages, "You gain 25 XP, 5 gold and 1 essence.")
	s.Contains(messages, "Wolf dropped 2 Wolf Fang.")
	s.Equal([]string{rpgtoolkit.EventEnemyDefeated}, s.published)
}

func (s *EngineTestSuite) TestKillCanLevelUp() {
	s.encounter.Player.XP = 90

	_, err := s.engine.CastSpell(s.ctx, &engine.CastSpellInput{
		Encounter: s.encounter,
		SpellID:   "bolt",
		TargetID:  "wolf-1",
	})
	s.Require().NoError(err)

	player := s.encounter.Player
	s.Equal(2, player.Level)
	s.Equal(2, player.StatPoints)
	s.Equal(80, player.HP, "level up refills to the new cap")
	s.Equal(1, s.encounter.Rewards.LevelsGained)
	s.Equal([]string{progression.FeatureAbilitySlots}, s.encounter.Rewards.Unlocked)
	s.Equal([]string{rpgtoolkit.EventEnemyDefeated, rpgtoolkit.EventLevelUp}, s.published)
}

func (s *EngineTestSuite) TestFailedActionDoesNotMutate() {
	before := s.encounter.Clone()

	out, err := s.engine.UseAbility(s.ctx, &engine.UseAbilityInput{
		Encounter: s.encounter,
		AbilityID: "missing",
	})
	s.Require().NoError(err)

	s.False(out.Result.Success)
	s.Equal(entities.LogError, out.Result.Type)
	s.Equal(before, s.encounter)
}

func (s *EngineTestSuite) TestEnemyPhaseDefeatPublishes() {
	s.encounter.Player.HP = 1
	s.encounter.Enemies[0].HP = 10
	s.encounter.Enemies[0].Body = 6

	out, err := s.engine.Defend(s.ctx, &engine.EncounterInput{Encounter: s.encounter})
	s.Require().NoError(err)
	s.Equal(entities.PhaseEnemyTurn, out.Phase)

	phase, err := s.engine.RunEnemyPhase(s.ctx, &engine.EncounterInput{Encounter: s.encounter})
	s.Require().NoError(err)

	s.Equal(entities.PhaseDefeat, phase.Result.Phase)
	s.Zero(s.encounter.Player.HP)
	s.Equal([]string{rpgtoolkit.EventPlayerDefeated}, s.published)
}

func (s *EngineTestSuite) TestPureRules() {
	eff := s.engine.CalculateEffectiveStats(s.encounter.Player)
	s.Equal(70, eff.MaxHP)

	s.Equal([]entities.TagName{entities.TagFire}, s.engine.GetEffectiveTags([]entities.TagName{entities.TagFire}))
}
