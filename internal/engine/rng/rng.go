// Package rng adapts rpg-toolkit dice rollers into the random draws combat needs.
//
// Every random decision in the engine (critical hits, free casts, enemy action choice,
// loot) goes through a Source so outcomes are reproducible with a seeded roller.
package rng

import (
	"log/slog"
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/spellforge/internal/errors"
)

// chanceResolution is the die size used for probability checks
const chanceResolution = 10000

// Source provides the random draws used during combat resolution
type Source interface {
	// Chance returns true with probability p
	Chance(p float64) bool
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
	// Between returns a uniform value in [lo, hi]
	Between(lo, hi int) int
}

type rollerSource struct {
	roller dice.Roller
}

// New wraps a dice roller. A nil roller falls back to dice.DefaultRoller.
func New(roller dice.Roller) Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &rollerSource{roller: roller}
}

func (s *rollerSource) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.roll(chanceResolution) <= int(p*chanceResolution)
}

func (s *rollerSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return s.roll(n) - 1
}

func (s *rollerSource) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

func (s *rollerSource) roll(size int) int {
	v, err := s.roller.Roll(size)
	if err != nil {
		slog.Warn("dice roll failed, using lowest face", "size", size, "error", err)
		return 1
	}
	if v < 1 {
		return 1
	}
	if v > size {
		return size
	}
	return v
}

// Seeded is a deterministic dice.Roller backed by math/rand
type Seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded returns a roller that produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} // #nosec G404 -- gameplay randomness
}

// Roll returns a value from 1 to size inclusive
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative: %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Fixed always rolls the same face, capped to the die size. Fixed(1) makes every
// Chance succeed; a face at or above the die size makes every Chance below 1 fail.
type Fixed struct {
	Face int
}

// NewFixed returns a roller that always shows face
func NewFixed(face int) *Fixed {
	return &Fixed{Face: face}
}

// Roll returns the fixed face
func (f *Fixed) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	if f.Face > size {
		return size, nil
	}
	if f.Face < 1 {
		return 1, nil
	}
	return f.Face, nil
}

// RollN rolls count fixed faces
func (f *Fixed) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := f.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// AlwaysHit is a source whose every Chance succeeds and Intn returns 0
func AlwaysHit() Source {
	return New(NewFixed(1))
}

// NeverHit is a source whose every Chance below 1 fails and Intn returns n-1
func NeverHit() Source {
	return New(NewFixed(1 << 30))
}

var (
	_ dice.Roller = (*Seeded)(nil)
	_ dice.Roller = (*Fixed)(nil)
)
