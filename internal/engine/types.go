package engine

import (
	"github.com/KirkDiggler/spellforge/internal/engine/turns"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// EncounterInput names the encounter an action applies to
type EncounterInput struct {
	Encounter *entities.Encounter
}

// CastSpellInput contains the spell to cast and the clicked target
type CastSpellInput struct {
	Encounter *entities.Encounter
	SpellID   string
	// TargetID may be empty for area, global and self spells
	TargetID string
}

// UseAbilityInput contains the ability to use and its target
type UseAbilityInput struct {
	Encounter *entities.Encounter
	AbilityID string
	TargetID  string
}

// UseConsumableInput contains the item to use and its target
type UseConsumableInput struct {
	Encounter *entities.Encounter
	ItemID    string
	TargetID  string
}

// ActionOutput is the result of a player action
type ActionOutput struct {
	Result entities.ActionResult
	Phase  entities.Phase
}

// TurnStartOutput is the result of the player's turn-start tick
type TurnStartOutput struct {
	Result turns.TurnStartResult
	Phase  entities.Phase
}

// EnemyTurnOutput is the result of a single enemy's turn
type EnemyTurnOutput struct {
	Result turns.EnemyTurnResult
	Phase  entities.Phase
}

// EnemyPhaseOutput is the result of running every enemy turn until control returns
type EnemyPhaseOutput struct {
	Result turns.PhaseResult
}
