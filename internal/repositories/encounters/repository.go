package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=encountermock github.com/KirkDiggler/spellforge/internal/repositories/encounters Repository

import (
	"context"

	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Repository defines the storage interface for active encounters. Stored encounters are
// copies: mutating an encounter after Save or Get never changes the stored state.
type Repository interface {
	// Save stores an encounter, replacing any previous state
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves an encounter by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// GetByPlayer retrieves the player's active encounter
	GetByPlayer(ctx context.Context, input *GetByPlayerInput) (*GetOutput, error)

	// Delete removes an encounter
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the request for saving an encounter
type SaveInput struct {
	Encounter *entities.Encounter
}

// SaveOutput defines the response for saving an encounter
type SaveOutput struct {
	Success bool
}

// GetInput defines the request for retrieving an encounter
type GetInput struct {
	EncounterID string
}

// GetByPlayerInput defines the request for retrieving a player's encounter
type GetByPlayerInput struct {
	PlayerID string
}

// GetOutput defines the response for retrieving an encounter
type GetOutput struct {
	Encounter *entities.Encounter
}

// DeleteInput defines the request for deleting an encounter
type DeleteInput struct {
	EncounterID string
}

// DeleteOutput defines the response for deleting an encounter
type DeleteOutput struct {
	Success bool
}
