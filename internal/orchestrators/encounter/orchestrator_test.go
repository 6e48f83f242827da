package encounter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spellforge/internal/engine"
	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/orchestrators/encounter"
	"github.com/KirkDiggler/spellforge/internal/pkg/clock"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
	"github.com/KirkDiggler/spellforge/internal/repositories/encounters"
	"github.com/KirkDiggler/spellforge/internal/repositories/player"
	playerrepomock "github.com/KirkDiggler/spellforge/internal/repositories/player/mock"
	"github.com/KirkDiggler/spellforge/internal/services/generation"
	generationmock "github.com/KirkDiggler/spellforge/internal/services/generation/mock"
	"github.com/KirkDiggler/spellforge/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	mockPlayers    *playerrepomock.MockRepository
	mockGeneration *generationmock.MockService
	encounterRepo  *encounters.InMemoryRepository
	spans          *tracetest.SpanRecorder
	now            time.Time
	orchestrator   encounter.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayers = playerrepomock.NewMockRepository(s.ctrl)
	s.mockGeneration = generationmock.NewMockService(s.ctrl)
	s.encounterRepo = encounters.NewInMemory()
	s.spans = tracetest.NewSpanRecorder()
	s.now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	eng, err := engine.New(&engine.Config{
		DiceRoller:  rng.NewFixed(1),
		IDGenerator: idgen.NewSequential("log"),
		Clock:       clock.NewFixed(s.now),
	})
	s.Require().NoError(err)

	s.orchestrator, err = encounter.NewOrchestrator(&encounter.Config{
		Engine:        eng,
		PlayerRepo:    s.mockPlayers,
		EncounterRepo: s.encounterRepo,
		Generation:    s.mockGeneration,
		IDGenerator:   idgen.NewSequential("enc"),
		Clock:         clock.NewFixed(s.now),
		Tracer:        sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans)).Tracer("test"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// seed stores an encounter for player-1 and returns it
func (s *OrchestratorTestSuite) seed(mutate func(enc *entities.Encounter)) *entities.Encounter {
	enc := testutils.NewTestEncounter("enc-1", testutils.NewTestPlayer("player-1"), testutils.NewTestEnemy("rat-1"))
	if mutate != nil {
		mutate(enc)
	}
	_, err := s.encounterRepo.Save(s.ctx, &encounters.SaveInput{Encounter: enc})
	s.Require().NoError(err)
	return enc
}

// expectPlayerSave captures the next saved player
func (s *OrchestratorTestSuite) expectPlayerSave(saved **entities.Player) {
	s.mockPlayers.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in player.SaveInput) (*player.SaveOutput, error) {
			*saved = in.Player
			return &player.SaveOutput{Player: in.Player}, nil
		})
}

func (s *OrchestratorTestSuite) spanNames() []string {
	var names []string
	for _, span := range s.spans.Ended() {
		names = append(names, span.Name())
	}
	return names
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := encounter.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = encounter.NewOrchestrator(&encounter.Config{})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestStartEncounter() {
	s.mockPlayers.EXPECT().
		Get(gomock.Any(), player.GetInput{ID: "player-1"}).
		Return(&player.GetOutput{Player: testutils.NewTestPlayer("player-1")}, nil)

	gomock.InOrder(
		s.mockGeneration.EXPECT().
			GenerateEnemy(gomock.Any(), &generation.GenerateEnemyInput{
				PlayerLevel: 1, Difficulty: progression.DifficultyEasy, Elite: true,
			}).
			Return(&generation.GenerateEnemyOutput{Enemy: testutils.NewTestEnemy("rat-1")}, nil),
		s.mockGeneration.EXPECT().
			GenerateEnemy(gomock.Any(), &generation.GenerateEnemyInput{
				PlayerLevel: 1, Difficulty: progression.DifficultyEasy,
			}).
			Return(&generation.GenerateEnemyOutput{Enemy: testutils.NewTestEnemy("rat-2")}, nil),
	)

	out, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{
		PlayerID:   "player-1",
		EnemyCount: 2,
		Elite:      true,
	})
	s.Require().NoError(err)

	s.False(out.NewPlayer)
	s.Equal("enc_1", out.Encounter.ID)
	s.Equal(entities.PhasePlayerTurn, out.Encounter.Phase)
	s.Equal(1, out.Encounter.Turn)
	s.Equal(s.now, out.Encounter.StartedAt)
	s.Len(out.Encounter.Enemies, 2)

	stored, err := s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: "enc_1"})
	s.Require().NoError(err)
	s.Equal(out.Encounter, stored.Encounter)
	s.Contains(s.spanNames(), "combat.start")
}

func (s *OrchestratorTestSuite) TestStartEncounterCreatesStarterPlayer() {
	s.mockPlayers.EXPECT().
		Get(gomock.Any(), player.GetInput{ID: "player-9"}).
		Return(nil, errors.NotFound("player not found"))

	var saved *entities.Player
	s.expectPlayerSave(&saved)

	s.mockGeneration.EXPECT().
		GenerateEnemy(gomock.Any(), gomock.Any()).
		Return(&generation.GenerateEnemyOutput{Enemy: testutils.NewTestEnemy("rat-1")}, nil)

	out, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{
		PlayerID:   "player-9",
		PlayerName: "Bram",
	})
	s.Require().NoError(err)

	s.True(out.NewPlayer)
	s.Require().NotNil(saved)
	s.Equal("Bram", saved.Name)
	s.Equal(saved.ID, out.Encounter.PlayerID)
	s.Len(out.Encounter.Enemies, encounter.DefaultEnemyCount)
}

func (s *OrchestratorTestSuite) TestStartEncounterErrors() {
	s.Run("missing player without a name", func() {
		s.mockPlayers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(nil, errors.NotFound("player not found"))

		_, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{PlayerID: "ghost"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("already in an encounter", func() {
		s.seed(nil)

		_, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{PlayerID: "player-1"})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("player ID is required", func() {
		_, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestCastSpellVictorySettles() {
	s.seed(func(enc *entities.Encounter) {
		enc.Enemies[0].HP = 1
	})

	var saved *entities.Player
	s.expectPlayerSave(&saved)

	out, err := s.orchestrator.CastSpell(s.ctx, &encounter.CastSpellInput{
		EncounterID: "enc-1",
		SpellID:     testutils.TestSpellBolt,
		TargetID:    "rat-1",
	})
	s.Require().NoError(err)

	s.True(out.Result.Success)
	s.True(out.Ended)
	s.Equal(entities.PhaseVictory, out.Encounter.Phase)
	s.NotEmpty(out.Encounter.Log, "the final log is returned to the caller")

	s.Require().NotNil(saved)
	s.Equal(25, saved.XP)
	s.Equal(5, saved.Gold)
	s.Equal(1, saved.Essence)
	s.Equal(1, saved.LootChests)
	s.Equal(30, saved.MP, "the cast was paid for")

	_, err = s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: "enc-1"})
	s.True(errors.IsNotFound(err), "finished encounters are dropped with their log")
	s.Contains(s.spanNames(), "combat.cast_spell")
}

func (s *OrchestratorTestSuite) TestFailedActionIsNotPersisted() {
	seeded := s.seed(nil)

	out, err := s.orchestrator.CastSpell(s.ctx, &encounter.CastSpellInput{
		EncounterID: "enc-1",
		SpellID:     "spell-unknown",
		TargetID:    "rat-1",
	})
	s.Require().NoError(err)
	s.False(out.Result.Success)
	s.False(out.Ended)

	stored, err := s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: "enc-1"})
	s.Require().NoError(err)
	s.Equal(seeded, stored.Encounter)
}

func (s *OrchestratorTestSuite) TestEnemyTurnReturnsControl() {
	s.seed(nil)

	defended, err := s.orchestrator.Defend(s.ctx, &encounter.EncounterInput{EncounterID: "enc-1"})
	s.Require().NoError(err)
	s.Equal(entities.PhaseEnemyTurn, defended.Encounter.Phase)

	out, err := s.orchestrator.ProcessEnemyTurn(s.ctx, &encounter.EncounterInput{EncounterID: "enc-1"})
	s.Require().NoError(err)

	s.True(out.Result.Acted)
	s.True(out.Result.PhaseEnded)
	s.Require().NotNil(out.TurnStart, "turn-start effects run when control returns")
	s.False(out.Ended)
	s.Equal(entities.PhasePlayerTurn, out.Encounter.Phase)
	s.Equal(2, out.Encounter.Turn)
	s.Less(out.Encounter.Player.HP, 70)
	s.False(entities.HasStatus(out.Encounter.Player.ActiveStatusEffects, entities.StatusDefending))

	stored, err := s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: "enc-1"})
	s.Require().NoError(err)
	s.Equal(out.Encounter.Player.HP, stored.Encounter.Player.HP)
	s.Contains(s.spanNames(), "combat.enemy_turn")
}

func (s *OrchestratorTestSuite) TestDefeatRestoresPlayer() {
	s.seed(func(enc *entities.Encounter) {
		enc.Player.HP = 1
		enc.Player.Gold = 100
		enc.Enemies[0].Body = 6
	})

	var saved *entities.Player
	s.expectPlayerSave(&saved)

	_, err := s.orchestrator.Defend(s.ctx, &encounter.EncounterInput{EncounterID: "enc-1"})
	s.Require().NoError(err)

	out, err := s.orchestrator.ProcessEnemyTurn(s.ctx, &encounter.EncounterInput{EncounterID: "enc-1"})
	s.Require().NoError(err)

	s.True(out.Ended)
	s.Equal(entities.PhaseDefeat, out.Encounter.Phase)
	s.Nil(out.TurnStart)
	s.Require().NotNil(saved)
	s.Equal(1, saved.HP)
	s.Equal(90, saved.Gold)
	s.Empty(saved.ActiveStatusEffects)
}

func (s *OrchestratorTestSuite) TestProcessEnemyTurnOutsideEnemyPhase() {
	s.seed(nil)

	_, err := s.orchestrator.ProcessEnemyTurn(s.ctx, &encounter.EncounterInput{EncounterID: "enc-1"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestFleeSettles() {
	s.seed(nil)

	var saved *entities.Player
	s.expectPlayerSave(&saved)

	out, err := s.orchestrator.Flee(s.ctx, &encounter.EncounterInput{EncounterID: "enc-1"})
	s.Require().NoError(err)

	s.True(out.Ended)
	s.Equal(entities.PhaseFled, out.Encounter.Phase)
	s.Require().NotNil(saved)
	s.Equal(70, saved.HP)

	_, err = s.orchestrator.Defend(s.ctx, &encounter.EncounterInput{EncounterID: "enc-1"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUseAbilityAndConsumable() {
	s.seed(func(enc *entities.Encounter) {
		enc.Player.MP = 0
	})

	out, err := s.orchestrator.UseAbility(s.ctx, &encounter.UseAbilityInput{
		EncounterID: "enc-1",
		AbilityID:   testutils.TestAbilityFocus,
	})
	s.Require().NoError(err)
	s.True(out.Result.Success)
	s.Equal(10, out.Encounter.Player.MP)
	s.Equal(entities.PhaseEnemyTurn, out.Encounter.Phase)

	_, err = s.orchestrator.ProcessEnemyTurn(s.ctx, &encounter.EncounterInput{EncounterID: "enc-1"})
	s.Require().NoError(err)

	item, err := s.orchestrator.UseConsumable(s.ctx, &encounter.UseConsumableInput{
		EncounterID: "enc-1",
		ItemID:      testutils.TestItemPotion,
	})
	s.Require().NoError(err)
	s.True(item.Result.Success)
	s.Equal(1, item.Encounter.Player.Inventory.Stacks[testutils.TestItemPotion])
}

func (s *OrchestratorTestSuite) TestAbandonEncounter() {
	s.seed(func(enc *entities.Encounter) {
		enc.Player.HP = 40
		enc.Player.ActiveStatusEffects = []entities.ActiveStatusEffect{{Name: entities.StatusPoisonDoT, Duration: 2, Magnitude: 3}}
	})

	var saved *entities.Player
	s.expectPlayerSave(&saved)

	out, err := s.orchestrator.AbandonEncounter(s.ctx, &encounter.EncounterInput{EncounterID: "enc-1"})
	s.Require().NoError(err)

	s.Equal(40, out.Player.HP)
	s.Empty(out.Player.ActiveStatusEffects)
	s.Equal(saved, out.Player)

	_, err = s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: "enc-1"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUnknownEncounter() {
	_, err := s.orchestrator.CastSpell(s.ctx, &encounter.CastSpellInput{EncounterID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.Flee(s.ctx, &encounter.EncounterInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.UseAbility(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
