// Package idgen provides the ID generators used for players, encounters, enemies and
// combat log entries
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/spellforge/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// SequentialGenerator generates predictable IDs for tests and seeded simulations
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a new sequential generator. IDs look like prefix_1, prefix_2.
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates the next sequential ID
func (g *SequentialGenerator) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

// UUIDGenerator generates random UUIDs with an optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator, e.g. NewUUID("enc") yields enc_<uuid>
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	return join(g.prefix, uuid.New().String())
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

var (
	_ Generator = (*SequentialGenerator)(nil)
	_ Generator = (*UUIDGenerator)(nil)
)
