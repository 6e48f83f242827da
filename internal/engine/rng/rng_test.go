package rng_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellforge/internal/engine/rng"
)

type RNGTestSuite struct {
	suite.Suite
}

func TestRNGSuite(t *testing.T) {
	suite.Run(t, new(RNGTestSuite))
}

func (s *RNGTestSuite) TestSeededIsReproducible() {
	a := rng.New(rng.NewSeeded(42))
	b := rng.New(rng.NewSeeded(42))

	for i := 0; i < 50; i++ {
		s.Equal(a.Intn(100), b.Intn(100))
	}
}

func (s *RNGTestSuite) TestChanceBounds() {
	src := rng.New(rng.NewSeeded(7))

	s.Run("zero never hits", func() {
		for i := 0; i < 100; i++ {
			s.False(src.Chance(0))
		}
	})

	s.Run("one always hits", func() {
		for i := 0; i < 100; i++ {
			s.True(src.Chance(1))
		}
	})

	s.Run("thirty percent converges", func() {
		hits := 0
		const trials = 5000
		for i := 0; i < trials; i++ {
			if src.Chance(0.3) {
				hits++
			}
		}
		ratio := float64(hits) / trials
		s.InDelta(0.3, ratio, 0.03)
	})
}

func (s *RNGTestSuite) TestFixedSources() {
	s.True(rng.AlwaysHit().Chance(0.01))
	s.Equal(0, rng.AlwaysHit().Intn(5))
	s.False(rng.NeverHit().Chance(0.99))
	s.Equal(4, rng.NeverHit().Intn(5))
}

func (s *RNGTestSuite) TestBetween() {
	src := rng.New(rng.NewSeeded(3))
	for i := 0; i < 200; i++ {
		v := src.Between(5, 15)
		s.GreaterOrEqual(v, 5)
		s.LessOrEqual(v, 15)
	}
	s.Equal(9, src.Between(9, 9))
}

func (s *RNGTestSuite) TestSeededRejectsBadSize() {
	_, err := rng.NewSeeded(1).Roll(0)
	s.Error(err)
}
