// Package player provides the interface for player save persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playerrepomock github.com/KirkDiggler/spellforge/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Repository defines the interface for player persistence
type Repository interface {
	// Get loads a player save, repairing invalid fields instead of rejecting it
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if no save exists
	// Returns errors.DataLoss if the stored JSON cannot be decoded
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a player save
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a player save
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if no save exists
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for loading a player
type GetInput struct {
	ID string
}

// GetOutput defines the output for loading a player
type GetOutput struct {
	Player *entities.Player
	// Repairs lists the fields that were reset to safe values on load
	Repairs []string
}

// SaveInput defines the input for saving a player
type SaveInput struct {
	Player *entities.Player
}

// SaveOutput defines the output for saving a player
type SaveOutput struct {
	Player *entities.Player
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct{}
