package encounter

import (
	"github.com/KirkDiggler/spellforge/internal/engine/turns"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Encounter size limits
const (
	DefaultEnemyCount = 1
	MaxEnemyCount     = 3
)

// DefeatGoldPenalty is the share of gold lost when the player is defeated
const DefeatGoldPenalty = 0.10

// StartEncounterInput defines the request for starting an encounter
type StartEncounterInput struct {
	PlayerID string
	// PlayerName creates a starter character when no save exists
	PlayerName string
	// EnemyCount defaults to DefaultEnemyCount and is capped at MaxEnemyCount
	EnemyCount int
	// Elite makes the first enemy an elite
	Elite bool
	Theme string
}

// StartEncounterOutput defines the response for starting an encounter
type StartEncounterOutput struct {
	Encounter *entities.Encounter
	// NewPlayer is set when a starter character was created
	NewPlayer bool
}

// EncounterInput names the encounter an action applies to
type EncounterInput struct {
	EncounterID string
}

// CastSpellInput defines the request for casting a spell
type CastSpellInput struct {
	EncounterID string
	SpellID     string
	TargetID    string
}

// UseAbilityInput defines the request for using an ability
type UseAbilityInput struct {
	EncounterID string
	AbilityID   string
	TargetID    string
}

// UseConsumableInput defines the request for using a consumable
type UseConsumableInput struct {
	EncounterID string
	ItemID      string
	TargetID    string
}

// ActionOutput is the state after a player action
type ActionOutput struct {
	Encounter *entities.Encounter
	Result    entities.ActionResult
	// Ended is set when the action finished the encounter
	Ended bool
}

// ProcessEnemyTurnOutput is the state after one enemy turn
type ProcessEnemyTurnOutput struct {
	Encounter *entities.Encounter
	Result    turns.EnemyTurnResult
	// TurnStart is set when control returned to the player and their effects ticked
	TurnStart *turns.TurnStartResult
	Ended     bool
}

// GetEncounterInput defines the request for loading an encounter
type GetEncounterInput struct {
	EncounterID string
}

// GetEncounterOutput defines the response for loading an encounter
type GetEncounterOutput struct {
	Encounter *entities.Encounter
}

// AbandonEncounterOutput defines the response for abandoning an encounter
type AbandonEncounterOutput struct {
	Player *entities.Player
}
