// Package engine composes the combat rules into the single entry point used by the
// orchestrators.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/spellforge/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// Engine resolves player actions and enemy turns against an encounter. Every method
// mutates the encounter in place; validation failures come back as an unsuccessful
// ActionResult rather than an error.
type Engine interface {
	// Player actions
	CastSpell(ctx context.Context, input *CastSpellInput) (*ActionOutput, error)
	UseAbility(ctx context.Context, input *UseAbilityInput) (*ActionOutput, error)
	UseConsumable(ctx context.Context, input *UseConsumableInput) (*ActionOutput, error)
	Defend(ctx context.Context, input *EncounterInput) (*ActionOutput, error)
	Flee(ctx context.Context, input *EncounterInput) (*ActionOutput, error)

	// Turn flow
	StartPlayerTurn(ctx context.Context, input *EncounterInput) (*TurnStartOutput, error)
	ProcessEnemyTurn(ctx context.Context, input *EncounterInput) (*EnemyTurnOutput, error)
	RunEnemyPhase(ctx context.Context, input *EncounterInput) (*EnemyPhaseOutput, error)

	// Pure rules
	CalculateEffectiveStats(player *entities.Player) stats.EffectiveStats
	GetEffectiveTags(tags []entities.TagName) []entities.TagName
	Balance() progression.Balance
}
