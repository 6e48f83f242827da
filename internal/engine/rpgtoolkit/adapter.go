// Package rpgtoolkit publishes combat and progression events onto an rpg-toolkit event bus.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
)

// Event types
const (
	EventEnemyDefeated  = "spellforge.combat.enemy_defeated"
	EventPlayerDefeated = "spellforge.combat.player_defeated"
	EventLevelUp        = "spellforge.progression.level_up"
)

// Event context keys
const (
	KeyEncounterID = "encounter_id"
	KeyRewards     = "rewards"
	KeyLevelUp     = "level_up"
	KeyTurn        = "turn"
)

// Adapter turns engine outcomes into rpg-toolkit events
type Adapter struct {
	eventBus events.EventBus
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus events.EventBus
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// NewAdapter creates a new event adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{eventBus: cfg.EventBus}, nil
}

// EventBus returns the underlying bus so callers can subscribe
func (a *Adapter) EventBus() events.EventBus {
	return a.eventBus
}

// EnemyDefeated publishes the defeat of enemy by player along with the rolled rewards
func (a *Adapter) EnemyDefeated(
	ctx context.Context,
	encounterID string,
	player *entities.Player,
	enemy *entities.Enemy,
	rewards progression.Rewards,
) error {
	event := events.NewGameEvent(EventEnemyDefeated, wrapPlayer(player), wrapEnemy(enemy))
	event.Context().Set(KeyEncounterID, encounterID)
	event.Context().Set(KeyRewards, rewards)

	return a.publish(ctx, event)
}

// PlayerDefeated publishes the player's defeat
func (a *Adapter) PlayerDefeated(ctx context.Context, encounterID string, turn int, player *entities.Player) error {
	event := events.NewGameEvent(EventPlayerDefeated, wrapPlayer(player), nil)
	event.Context().Set(KeyEncounterID, encounterID)
	event.Context().Set(KeyTurn, turn)

	return a.publish(ctx, event)
}

// LevelUp publishes a level gain. Grants that did not change the level are ignored.
func (a *Adapter) LevelUp(ctx context.Context, player *entities.Player, up progression.LevelUp) error {
	if up.LevelsGained <= 0 {
		return nil
	}

	event := events.NewGameEvent(EventLevelUp, wrapPlayer(player), wrapPlayer(player))
	event.Context().Set(KeyLevelUp, up)

	return a.publish(ctx, event)
}

func (a *Adapter) publish(ctx context.Context, event events.Event) error {
	if err := a.eventBus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", event.Type())
	}
	return nil
}
