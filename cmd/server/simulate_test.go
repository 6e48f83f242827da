package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellforge/internal/config"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
	"github.com/KirkDiggler/spellforge/internal/repositories/player"
	"github.com/KirkDiggler/spellforge/internal/testutils"
)

type SimulateTestSuite struct {
	suite.Suite
	cleanup []func()
}

func TestSimulateSuite(t *testing.T) {
	suite.Run(t, new(SimulateTestSuite))
}

func (s *SimulateTestSuite) TearDownTest() {
	for _, f := range s.cleanup {
		f()
	}
	s.cleanup = nil
	simEnemies, simElite = 1, false
}

func (s *SimulateTestSuite) run(seed int64) string {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = append(s.cleanup, cleanup)

	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	s.Require().NoError(err)

	services, err := newApp(&appConfig{
		Server:      &config.Server{Seed: seed, LogLevel: "warn"},
		PlayerRepo:  repo,
		IDGenerator: idgen.NewSequential("sim"),
	})
	s.Require().NoError(err)

	var out bytes.Buffer
	s.Require().NoError(simulate(context.Background(), &out, services))
	return out.String()
}

func (s *SimulateTestSuite) TestFightFinishes() {
	out := s.run(7)

	s.Contains(out, "appears")
	s.Regexp(`Result: (victory|defeat|fled)|Stalemate`, out)
}

func (s *SimulateTestSuite) TestSameSeedSameFight() {
	simEnemies = 2
	first := s.run(42)
	second := s.run(42)

	s.Equal(first, second)
}
