package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("enc")
	assert.Equal(t, "enc_1", gen.Generate())
	assert.Equal(t, "enc_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	gen := idgen.NewUUID("log")
	id := gen.Generate()

	assert.True(t, strings.HasPrefix(id, "log_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "log_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}
