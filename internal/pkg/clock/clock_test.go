package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/spellforge/internal/pkg/clock"
)

func TestFixed(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())
	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())
}

func TestReal(t *testing.T) {
	before := time.Now()
	assert.False(t, clock.New().Now().Before(before))
}
