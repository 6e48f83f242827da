package generation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spellforge/internal/clients/generator"
	generatormock "github.com/KirkDiggler/spellforge/internal/clients/generator/mock"
	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
	"github.com/KirkDiggler/spellforge/internal/services/generation"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	mockClient *generatormock.MockClient
	svc        generation.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = generatormock.NewMockClient(s.ctrl)

	var err error
	s.svc, err = generation.New(&generation.Config{
		Client:      s.mockClient,
		Random:      rng.AlwaysHit(),
		IDGenerator: idgen.NewSequential("gen"),
	})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestConfigValidation() {
	_, err := generation.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = generation.New(&generation.Config{})
	s.Error(err)
}

func (s *ServiceTestSuite) TestGenerateEnemySanitizesDraft() {
	s.mockClient.EXPECT().
		GenerateEnemy(s.ctx, &generator.EnemyRequest{PlayerLevel: 3, Difficulty: "hard", Elite: true}).
		Return(&entities.Enemy{
			ID: "from-generator", Name: "Gloom Stalker", IconName: "moon",
			Level: 3, HP: 999, MaxHP: 999, Body: 4, Mind: 3, Reflex: 4,
		}, nil)

	out, err := s.svc.GenerateEnemy(s.ctx, &generation.GenerateEnemyInput{
		PlayerLevel: 3,
		Difficulty:  progression.DifficultyHard,
		Elite:       true,
	})
	s.Require().NoError(err)

	s.True(out.Generated)
	s.Equal("gen_1", out.Enemy.ID, "generated IDs are never trusted")
	s.True(out.Enemy.IsElite)
	// elite cap at level 3: (60 + 75) * 2
	s.Equal(270, out.Enemy.HP)
	s.Equal(270, out.Enemy.MaxHP)
	s.ElementsMatch([]string{"hp", "maxHp"}, out.Adjustments)
}

func (s *ServiceTestSuite) TestGenerateEnemyFallsBackOnFailure() {
	s.mockClient.EXPECT().
		GenerateEnemy(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("down"))

	out, err := s.svc.GenerateEnemy(s.ctx, &generation.GenerateEnemyInput{PlayerLevel: 1})
	s.Require().NoError(err)

	s.False(out.Generated)
	s.Equal("gen_1", out.Enemy.ID)
	// AlwaysHit picks the first bestiary entry
	s.Equal("Cave Rat", out.Enemy.Name)
	s.Equal(30, out.Enemy.HP)
}

func (s *ServiceTestSuite) TestGenerateEnemyWithoutClient() {
	svc, err := generation.New(&generation.Config{
		Random:      rng.AlwaysHit(),
		IDGenerator: idgen.NewSequential("gen"),
	})
	s.Require().NoError(err)

	out, err := svc.GenerateEnemy(s.ctx, &generation.GenerateEnemyInput{PlayerLevel: 5, Elite: true})
	s.Require().NoError(err)

	s.False(out.Generated)
	s.Equal("Elite Cave Rat", out.Enemy.Name)
	s.Equal(5, out.Enemy.Level)
	// (30 + 8*4) * 1.5
	s.Equal(93, out.Enemy.HP)
	s.Equal(4, out.Enemy.Body)
	s.True(out.Enemy.IsElite)

	_, err = svc.GenerateSpell(s.ctx, &generation.GenerateSpellInput{Prompt: "fire"})
	s.True(errors.IsUnavailable(err))

	_, err = svc.GenerateConsumable(s.ctx, &generation.GenerateConsumableInput{Prompt: "tonic"})
	s.True(errors.IsUnavailable(err))
}

func (s *ServiceTestSuite) TestGenerateSpell() {
	s.mockClient.EXPECT().
		GenerateSpell(s.ctx, &generator.SpellRequest{
			Prompt:      "a lance of fire",
			PlayerLevel: 1,
			Components:  map[string]int{"ember": 2},
		}).
		Return(&entities.Spell{
			ID: "x", Name: "Cinder Lance", IconName: "flame", ManaCost: 80, Damage: 20,
			DamageType: entities.DamageFire, Tags: []entities.TagName{entities.TagFire},
		}, nil)

	out, err := s.svc.GenerateSpell(s.ctx, &generation.GenerateSpellInput{
		Prompt:     "a lance of fire",
		Components: map[string]int{"ember": 2},
	})
	s.Require().NoError(err)

	s.Equal("gen_1", out.Spell.ID)
	s.Equal(generation.MaxManaCost, out.Spell.ManaCost)
	s.Equal([]string{"manaCost"}, out.Adjustments)
}

func (s *ServiceTestSuite) TestGenerateSpellErrors() {
	s.Run("generator failure is unavailable", func() {
		s.mockClient.EXPECT().GenerateSpell(gomock.Any(), gomock.Any()).
			Return(nil, errors.InvalidArgument("prompt rejected"))

		_, err := s.svc.GenerateSpell(s.ctx, &generation.GenerateSpellInput{Prompt: "x"})
		s.True(errors.IsUnavailable(err))
	})

	s.Run("empty prompt", func() {
		_, err := s.svc.GenerateSpell(s.ctx, &generation.GenerateSpellInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ServiceTestSuite) TestGenerateConsumable() {
	s.Run("sanitized item", func() {
		s.mockClient.EXPECT().GenerateConsumable(gomock.Any(), gomock.Any()).
			Return(&entities.Consumable{
				Name: "Tonic", IconName: "potion", Stackable: true,
				Effect: entities.Effect{Type: entities.EffectEPRestore, Amount: 12},
			}, nil)

		out, err := s.svc.GenerateConsumable(s.ctx, &generation.GenerateConsumableInput{Prompt: "tonic"})
		s.Require().NoError(err)
		s.NotEmpty(out.Consumable.ID)
		s.Empty(out.Adjustments)
	})

	s.Run("unusable effect is unavailable", func() {
		s.mockClient.EXPECT().GenerateConsumable(gomock.Any(), gomock.Any()).
			Return(&entities.Consumable{Name: "Scroll", Effect: entities.Effect{Type: "TELEPORT"}}, nil)

		_, err := s.svc.GenerateConsumable(s.ctx, &generation.GenerateConsumableInput{Prompt: "scroll"})
		s.True(errors.IsUnavailable(err))
	})
}
