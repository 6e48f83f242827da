package encounters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu       sync.RWMutex
	store    map[string]*entities.Encounter
	byPlayer map[string]string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store:    make(map[string]*entities.Encounter),
		byPlayer: make(map[string]string),
	}
}

// Save stores a copy of the encounter
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Encounter == nil {
		return nil, errors.InvalidArgument("encounter is required")
	}

	if input.Encounter.ID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Encounter.ID] = input.Encounter.Clone()
	if input.Encounter.PlayerID != "" {
		r.byPlayer[input.Encounter.PlayerID] = input.Encounter.ID
	}

	return &SaveOutput{Success: true}, nil
}

// Get retrieves a copy of an encounter by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.EncounterID]
	if !exists {
		return nil, errors.NotFound("encounter not found")
	}

	// Return a copy to prevent external modification
	return &GetOutput{Encounter: data.Clone()}, nil
}

// GetByPlayer retrieves a copy of the player's active encounter
func (r *InMemoryRepository) GetByPlayer(ctx context.Context, input *GetByPlayerInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byPlayer[input.PlayerID]
	if !exists {
		return nil, errors.NotFound("no active encounter for player")
	}

	return &GetOutput{Encounter: r.store[id].Clone()}, nil
}

// Delete removes an encounter
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.store[input.EncounterID]
	if !exists {
		return nil, errors.NotFound("encounter not found")
	}

	if r.byPlayer[data.PlayerID] == input.EncounterID {
		delete(r.byPlayer, data.PlayerID)
	}
	delete(r.store, input.EncounterID)

	return &DeleteOutput{Success: true}, nil
}

var _ Repository = (*InMemoryRepository)(nil)
