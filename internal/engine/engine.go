package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/spellforge/internal/engine/actions"
	"github.com/KirkDiggler/spellforge/internal/engine/combat"
	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/engine/tags"
	"github.com/KirkDiggler/spellforge/internal/engine/turns"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/pkg/clock"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
)

type engine struct {
	random    rng.Source
	balance   progression.Balance
	publisher *rpgtoolkit.Adapter
	clock     clock.Clock
	idGen     idgen.Generator
}

// Config holds the dependencies of the engine. Everything is optional: a nil DiceRoller
// uses the toolkit default roller, a nil EventBus publishes nothing and a nil Balance
// uses progression.DefaultBalance.
type Config struct {
	DiceRoller  dice.Roller
	EventBus    events.EventBus
	Balance     *progression.Balance
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate checks the optional balance override
func (cfg *Config) Validate() error {
	if cfg.Balance != nil {
		if err := cfg.Balance.Validate(); err != nil {
			return errors.Wrap(err, "invalid balance")
		}
	}
	return nil
}

// New creates an Engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &engine{
		random:  rng.New(cfg.DiceRoller),
		balance: progression.DefaultBalance(),
		clock:   cfg.Clock,
		idGen:   cfg.IDGenerator,
	}
	if cfg.Balance != nil {
		e.balance = *cfg.Balance
	}
	if e.clock == nil {
		e.clock = clock.New()
	}
	if e.idGen == nil {
		e.idGen = idgen.NewUUID("log")
	}
	if cfg.EventBus != nil {
		publisher, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: cfg.EventBus})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create event adapter")
		}
		e.publisher = publisher
	}

	return e, nil
}

func (e *engine) newContext(ctx context.Context, encounter *entities.Encounter) (*combat.Context, error) {
	if encounter == nil {
		return nil, errors.InvalidArgument("encounter is required")
	}
	return combat.NewContext(ctx, &combat.Config{
		Encounter:        encounter,
		Random:           e.random,
		Clock:            e.clock,
		IDGenerator:      e.idGen,
		OnEnemyDefeated:  e.onEnemyDefeated,
		OnPlayerDefeated: e.onPlayerDefeated,
	})
}

// onEnemyDefeated grants the enemy's rewards immediately and narrates them
func (e *engine) onEnemyDefeated(ctx context.Context, c *combat.Context, enemy *entities.Enemy) {
	rewards := progression.AwardCombatRewards(c.Random(), e.balance, enemy)

	var up progression.LevelUp
	c.SetPlayer(func(p *entities.Player) {
		up = progression.ApplyRewards(p, rewards)
	})
	c.UpdateRewards(func(r *entities.RewardSummary) {
		rewards.Add(r)
		r.LevelsGained += up.LevelsGained
		r.Unlocked = append(r.Unlocked, up.Unlocked...)
	})

	c.AddLog(entities.ActorSystem, entities.LogReward, "You gain %d XP, %d gold and %d essence.",
		rewards.XP, rewards.Gold, rewards.Essence)
	for _, drop := range rewards.Resources {
		name := drop.Name
		if name == "" {
			name = drop.ResourceID
		}
		c.AddLog(entities.ActorSystem, entities.LogReward, "%s dropped %d %s.", enemy.Name, drop.Quantity, name)
	}
	if rewards.LootChests > 0 {
		c.AddLog(entities.ActorSystem, entities.LogReward, "You found %d loot chest(s)!", rewards.LootChests)
	}
	if up.LevelsGained > 0 {
		c.AddLog(entities.ActorSystem, entities.LogSuccess, "Level up! You are now level %d.", up.NewLevel)
		for _, feature := range up.Unlocked {
			c.AddLog(entities.ActorSystem, entities.LogSuccess, "Unlocked: %s.", feature)
		}
	}

	if e.publisher == nil {
		return
	}
	encounterID := c.Encounter().ID
	if err := e.publisher.EnemyDefeated(ctx, encounterID, c.Player(), enemy, rewards); err != nil {
		slog.Warn("failed to publish enemy defeat", "encounter_id", encounterID, "error", err)
	}
	if err := e.publisher.LevelUp(ctx, c.Player(), up); err != nil {
		slog.Warn("failed to publish level up", "encounter_id", encounterID, "error", err)
	}
}

func (e *engine) onPlayerDefeated(ctx context.Context, c *combat.Context) {
	if e.publisher == nil {
		return
	}
	enc := c.Encounter()
	if err := e.publisher.PlayerDefeated(ctx, enc.ID, enc.Turn, c.Player()); err != nil {
		slog.Warn("failed to publish player defeat", "encounter_id", enc.ID, "error", err)
	}
}

func (e *engine) CastSpell(ctx context.Context, input *CastSpellInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := e.newContext(ctx, input.Encounter)
	if err != nil {
		return nil, err
	}

	result := c.ExecutePlayerAttack(input.SpellID, input.TargetID)
	slog.Debug("Spell resolved",
		"encounter_id", input.Encounter.ID,
		"spell_id", input.SpellID,
		"success", result.Success,
		"phase", c.Phase())

	return &ActionOutput{Result: result, Phase: c.Phase()}, nil
}

func (e *engine) UseAbility(ctx context.Context, input *UseAbilityInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := e.newContext(ctx, input.Encounter)
	if err != nil {
		return nil, err
	}

	result := actions.UseAbility(c, input.AbilityID, input.TargetID)
	return &ActionOutput{Result: result, Phase: c.Phase()}, nil
}

func (e *engine) UseConsumable(ctx context.Context, input *UseConsumableInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := e.newContext(ctx, input.Encounter)
	if err != nil {
		return nil, err
	}

	result := actions.UseConsumable(c, input.ItemID, input.TargetID)
	return &ActionOutput{Result: result, Phase: c.Phase()}, nil
}

func (e *engine) Defend(ctx context.Context, input *EncounterInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := e.newContext(ctx, input.Encounter)
	if err != nil {
		return nil, err
	}

	result := c.Defend()
	return &ActionOutput{Result: result, Phase: c.Phase()}, nil
}

func (e *engine) Flee(ctx context.Context, input *EncounterInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := e.newContext(ctx, input.Encounter)
	if err != nil {
		return nil, err
	}

	result := c.AttemptFlee()
	return &ActionOutput{Result: result, Phase: c.Phase()}, nil
}

func (e *engine) StartPlayerTurn(ctx context.Context, input *EncounterInput) (*TurnStartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := e.newContext(ctx, input.Encounter)
	if err != nil {
		return nil, err
	}

	result := turns.ProcessPlayerTurnStartEffects(c)
	return &TurnStartOutput{Result: result, Phase: c.Phase()}, nil
}

func (e *engine) ProcessEnemyTurn(ctx context.Context, input *EncounterInput) (*EnemyTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := e.newContext(ctx, input.Encounter)
	if err != nil {
		return nil, err
	}

	result := turns.ProcessEnemyTurn(c)
	return &EnemyTurnOutput{Result: result, Phase: c.Phase()}, nil
}

func (e *engine) RunEnemyPhase(ctx context.Context, input *EncounterInput) (*EnemyPhaseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := e.newContext(ctx, input.Encounter)
	if err != nil {
		return nil, err
	}

	return &EnemyPhaseOutput{Result: turns.RunEnemyPhase(c)}, nil
}

func (e *engine) CalculateEffectiveStats(player *entities.Player) stats.EffectiveStats {
	return stats.CalculateEffectiveStats(player)
}

func (e *engine) GetEffectiveTags(input []entities.TagName) []entities.TagName {
	return tags.GetEffectiveTags(input)
}

func (e *engine) Balance() progression.Balance {
	return e.balance
}
