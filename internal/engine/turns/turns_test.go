package turns_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellforge/internal/engine/combat"
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/engine/turns"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
)

type TurnManagerTestSuite struct {
	suite.Suite
	encounter *entities.Encounter
	defeated  []string
}

func TestTurnManagerSuite(t *testing.T) {
	suite.Run(t, new(TurnManagerTestSuite))
}

func (s *TurnManagerTestSuite) SetupTest() {
	s.defeated = nil
	s.encounter = &entities.Encounter{
		ID: "enc-turns",
		Player: &entities.Player{
			ID: "player-1", Name: "Ayla", Level: 1,
			Body: 2, Mind: 2, Reflex: 2,
			HP: 70, MP: 30, EP: 20,
		},
		Enemies: []*entities.Enemy{
			{ID: "wolf-1", Name: "Wolf", Level: 1, HP: 40, MaxHP: 40, Body: 4, Mind: 3},
			{ID: "wolf-2", Name: "Wolf", Level: 1, HP: 40, MaxHP: 40, Body: 4, Mind: 3},
		},
		Phase: entities.PhaseEnemyTurn,
		Turn:  1,
	}
}

func (s *TurnManagerTestSuite) newContext(src rng.Source) *combat.Context {
	c, err := combat.NewContext(context.Background(), &combat.Config{
		Encounter:   s.encounter,
		Random:      src,
		IDGenerator: idgen.NewSequential("log"),
		OnEnemyDefeated: func(_ context.Context, _ *combat.Context, enemy *entities.Enemy) {
			s.defeated = append(s.defeated, enemy.ID)
		},
	})
	s.Require().NoError(err)
	return c
}

func (s *TurnManagerTestSuite) TestPlayerTurnStartTicks() {
	s.encounter.Phase = entities.PhasePlayerTurn
	s.encounter.Player.ActiveStatusEffects = []entities.ActiveStatusEffect{
		{Name: entities.StatusBurningDoT, Duration: 2, Magnitude: 5},
		{Name: entities.StatusRegeneration, Duration: 1, Magnitude: 2},
	}
	c := s.newContext(rng.NeverHit())

	result := turns.ProcessPlayerTurnStartEffects(c)

	s.Equal(5, result.Damage)
	s.Equal(2, result.Healing)
	s.False(result.SkipTurn)
	s.Equal(67, s.encounter.Player.HP)
	s.Require().Len(s.encounter.Player.ActiveStatusEffects, 1)
	s.Equal(1, s.encounter.Player.ActiveStatusEffects[0].Duration)
	s.Equal(entities.PhasePlayerTurn, s.encounter.Phase)
}

func (s *TurnManagerTestSuite) TestPlayerLethalTick() {
	s.encounter.Phase = entities.PhasePlayerTurn
	s.encounter.Player.HP = 4
	s.encounter.Player.ActiveStatusEffects = []entities.ActiveStatusEffect{
		{Name: entities.StatusPoisonDoT, Duration: 3, Magnitude: 6},
	}
	c := s.newContext(rng.NeverHit())

	result := turns.ProcessPlayerTurnStartEffects(c)

	s.True(result.Defeated)
	s.Equal(0, s.encounter.Player.HP)
	s.Equal(entities.PhaseDefeat, s.encounter.Phase)
}

func (s *TurnManagerTestSuite) TestPlayerStunSkipsTurn() {
	s.encounter.Phase = entities.PhasePlayerTurn
	s.encounter.Player.ActiveStatusEffects = []entities.ActiveStatusEffect{
		{Name: entities.StatusStun, Duration: 1},
		{Name: entities.StatusFreeze, Duration: 2},
	}
	c := s.newContext(rng.NeverHit())

	result := turns.ProcessPlayerTurnStartEffects(c)

	s.True(result.SkipTurn)
	s.Equal(entities.PhaseEnemyTurn, s.encounter.Phase)
	s.Len(s.encounter.Player.ActiveStatusEffects, 1)
}

func (s *TurnManagerTestSuite) TestBasicAttack() {
	c := s.newContext(rng.NeverHit())

	result := turns.ProcessEnemyTurn(c)

	s.True(result.Acted)
	s.False(result.UsedSpecial)
	// calculateDamage(5+1, 4, 1)
	s.Equal(9, result.Hit.Dealt)
	s.Equal(61, s.encounter.Player.HP)
	s.Equal(1, s.encounter.ActingEnemyIndex)
	s.False(result.PhaseEnded)
}

func (s *TurnManagerTestSuite) TestSpecialAbility() {
	s.encounter.Enemies[0].SpecialAbility = &entities.EnemyAbility{
		Name:                "Howl",
		StatusEffectInflict: &entities.StatusEffectInflict{Name: entities.StatusMindDown, Duration: 2, Magnitude: 1},
	}
	c := s.newContext(rng.AlwaysHit())

	result := turns.ProcessEnemyTurn(c)

	s.True(result.UsedSpecial)
	// calculateDamage(10+1*2, 3+5, 1)
	s.Equal(19, result.Hit.Dealt)
	s.True(entities.HasStatus(s.encounter.Player.ActiveStatusEffects, entities.StatusMindDown))
}

func (s *TurnManagerTestSuite) TestSilencedEnemyFallsBackToBasic() {
	enemy := s.encounter.Enemies[0]
	enemy.SpecialAbility = &entities.EnemyAbility{Name: "Howl"}
	enemy.ActiveStatusEffects = []entities.ActiveStatusEffect{{Name: entities.StatusSilenced, Duration: 2}}
	c := s.newContext(rng.AlwaysHit())

	result := turns.ProcessEnemyTurn(c)

	s.True(result.Acted)
	s.False(result.UsedSpecial)
}

func (s *TurnManagerTestSuite) TestEnemyDiesToTick() {
	enemy := s.encounter.Enemies[0]
	enemy.HP = 3
	enemy.ActiveStatusEffects = []entities.ActiveStatusEffect{
		{Name: entities.StatusBleedingDoT, Duration: 2, Magnitude: 5},
	}
	c := s.newContext(rng.NeverHit())

	result := turns.ProcessEnemyTurn(c)

	s.True(result.DiedToTick)
	s.False(result.Acted)
	s.Equal(70, s.encounter.Player.HP)
	s.Equal([]string{"wolf-1"}, s.defeated)
	s.Equal(1, s.encounter.ActingEnemyIndex)
}

func (s *TurnManagerTestSuite) TestFrozenEnemySkips() {
	s.encounter.Enemies[0].ActiveStatusEffects = []entities.ActiveStatusEffect{
		{Name: entities.StatusFreeze, Duration: 1},
	}
	c := s.newContext(rng.NeverHit())

	result := turns.ProcessEnemyTurn(c)

	s.True(result.Skipped)
	s.Equal(70, s.encounter.Player.HP)
	s.Empty(s.encounter.Enemies[0].ActiveStatusEffects)
}

func (s *TurnManagerTestSuite) TestAdvancementSkipsDeadAndReturnsControl() {
	s.encounter.Enemies[0].HP = 0
	s.encounter.Enemies[0].Defeated = true
	c := s.newContext(rng.NeverHit())

	result := turns.ProcessEnemyTurn(c)

	s.Equal("wolf-2", result.EnemyID)
	s.True(result.PhaseEnded)
	s.Equal(entities.PhasePlayerTurn, s.encounter.Phase)
	s.Equal(2, s.encounter.Turn)
	s.Equal(0, s.encounter.ActingEnemyIndex)
}

func (s *TurnManagerTestSuite) TestPlayerDeathShortCircuits() {
	s.encounter.Player.HP = 5
	c := s.newContext(rng.NeverHit())

	first := turns.ProcessEnemyTurn(c)
	s.True(first.Acted)
	s.Equal(entities.PhaseDefeat, s.encounter.Phase)

	second := turns.ProcessEnemyTurn(c)
	s.Empty(second.EnemyID)
	s.Equal(40, s.encounter.Enemies[1].HP)
}

func (s *TurnManagerTestSuite) TestNoOpOutsideEnemyPhase() {
	s.encounter.Phase = entities.PhasePlayerTurn
	c := s.newContext(rng.NeverHit())

	result := turns.ProcessEnemyTurn(c)

	s.Equal(turns.EnemyTurnResult{}, result)
	s.Equal(70, s.encounter.Player.HP)
}

func (s *TurnManagerTestSuite) TestRunEnemyPhase() {
	s.encounter.Player.ActiveStatusEffects = []entities.ActiveStatusEffect{
		{Name: entities.StatusDefending, Duration: 1},
	}
	c := s.newContext(rng.NeverHit())

	result := turns.RunEnemyPhase(c)

	s.Len(result.Turns, 2)
	s.Len(result.TurnStarts, 1)
	s.Equal(entities.PhasePlayerTurn, result.Phase)
	// defending raises defense from 1 to 1, so each wolf hits for 9
	s.Equal(52, s.encounter.Player.HP)
	s.Empty(s.encounter.Player.ActiveStatusEffects)
}

func (s *TurnManagerTestSuite) TestRunEnemyPhaseStunnedPlayerLosesTurn() {
	s.encounter.Player.ActiveStatusEffects = []entities.ActiveStatusEffect{
		{Name: entities.StatusSleep, Duration: 1},
	}
	c := s.newContext(rng.NeverHit())

	result := turns.RunEnemyPhase(c)

	s.Len(result.Turns, 4)
	s.Len(result.TurnStarts, 2)
	s.Equal(entities.PhasePlayerTurn, result.Phase)
	s.Equal(3, s.encounter.Turn)
	s.Equal(70-4*9, s.encounter.Player.HP)
}
