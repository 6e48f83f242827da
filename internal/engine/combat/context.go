// Package combat resolves spells, damage, reflection and the combat phase machine.
//
// Every write to encounter state goes through a Context. Engine functions read the
// encounter, decide, and then call the Context mutators; a validation failure returns
// before the first mutator call so failed actions leave the encounter untouched.
package combat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/pkg/clock"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
)

// EnemyDefeatedFunc runs once for every enemy that drops to zero HP
type EnemyDefeatedFunc func(ctx context.Context, c *Context, enemy *entities.Enemy)

// PlayerDefeatedFunc runs once when the player drops to zero HP
type PlayerDefeatedFunc func(ctx context.Context, c *Context)

// Config holds the dependencies of a combat Context
type Config struct {
	Encounter        *entities.Encounter
	Random           rng.Source
	Clock            clock.Clock
	IDGenerator      idgen.Generator
	OnEnemyDefeated  EnemyDefeatedFunc
	OnPlayerDefeated PlayerDefeatedFunc
}

// Validate ensures the config can build a Context
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Encounter == nil {
		vb.RequiredField("Encounter")
	} else if cfg.Encounter.Player == nil {
		vb.RequiredField("Encounter.Player")
	}
	return vb.Build()
}

// Context is the sanctioned write path to one encounter for the duration of one action
type Context struct {
	ctx              context.Context
	encounter        *entities.Encounter
	random           rng.Source
	clock            clock.Clock
	idGenerator      idgen.Generator
	onEnemyDefeated  EnemyDefeatedFunc
	onPlayerDefeated PlayerDefeatedFunc
}

// NewContext wraps an encounter for mutation. Missing optional dependencies fall back to
// the default dice roller, the real clock and a prefixed ID generator.
func NewContext(ctx context.Context, cfg *Config) (*Context, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid combat context config")
	}

	c := &Context{
		ctx:              ctx,
		encounter:        cfg.Encounter,
		random:           cfg.Random,
		clock:            cfg.Clock,
		idGenerator:      cfg.IDGenerator,
		onEnemyDefeated:  cfg.OnEnemyDefeated,
		onPlayerDefeated: cfg.OnPlayerDefeated,
	}
	if c.random == nil {
		c.random = rng.New(nil)
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if c.idGenerator == nil {
		c.idGenerator = idgen.NewUUID("log")
	}
	return c, nil
}

// Encounter returns the encounter being mutated
func (c *Context) Encounter() *entities.Encounter {
	return c.encounter
}

// Player returns the encounter's player
func (c *Context) Player() *entities.Player {
	return c.encounter.Player
}

// Random returns the injected random source
func (c *Context) Random() rng.Source {
	return c.random
}

// Phase returns the current combat phase
func (c *Context) Phase() entities.Phase {
	return c.encounter.Phase
}

// IsPlayerTurn reports whether the player may act
func (c *Context) IsPlayerTurn() bool {
	return c.encounter.Phase == entities.PhasePlayerTurn
}

// AddLog appends an entry to the combat narrative
func (c *Context) AddLog(actor entities.Actor, logType entities.LogType, format string, args ...any) {
	c.encounter.Log = append(c.encounter.Log, entities.CombatLogEntry{
		ID:        c.idGenerator.Generate(),
		Actor:     actor,
		Message:   fmt.Sprintf(format, args...),
		Type:      logType,
		Timestamp: c.clock.Now(),
	})
}

// SetPlayer applies update to the player and re-clamps current resources to their caps
func (c *Context) SetPlayer(update func(p *entities.Player)) {
	update(c.encounter.Player)
	clampPlayerResources(c.encounter.Player)
}

// UpdateEnemy applies update to the enemy with the given ID and floors its HP at zero
func (c *Context) UpdateEnemy(enemyID string, update func(e *entities.Enemy)) bool {
	enemy, ok := c.encounter.FindEnemy(enemyID)
	if !ok {
		return false
	}
	update(enemy)
	enemy.HP = min(max(enemy.HP, 0), enemy.MaxHP)
	return true
}

// UpdateRewards applies update to the encounter's running reward summary
func (c *Context) UpdateRewards(update func(r *entities.RewardSummary)) {
	update(&c.encounter.Rewards)
}

// HealPlayer restores up to amount HP and returns what was actually restored
func (c *Context) HealPlayer(amount int) int {
	if amount <= 0 {
		return 0
	}
	maxHP := stats.CalculateEffectiveStats(c.encounter.Player).MaxHP
	healed := min(amount, max(maxHP-c.encounter.Player.HP, 0))
	c.encounter.Player.HP += healed
	return healed
}

// RestoreMP restores up to amount MP and returns what was actually restored
func (c *Context) RestoreMP(amount int) int {
	if amount <= 0 {
		return 0
	}
	maxMP := stats.CalculateEffectiveStats(c.encounter.Player).MaxMP
	restored := min(amount, max(maxMP-c.encounter.Player.MP, 0))
	c.encounter.Player.MP += restored
	return restored
}

// RestoreEP restores up to amount EP and returns what was actually restored
func (c *Context) RestoreEP(amount int) int {
	if amount <= 0 {
		return 0
	}
	maxEP := stats.CalculateEffectiveStats(c.encounter.Player).MaxEP
	restored := min(amount, max(maxEP-c.encounter.Player.EP, 0))
	c.encounter.Player.EP += restored
	return restored
}

// ApplyStatusEffect adds an effect instance to the player or the enemy with targetID.
// Applying the same effect twice yields two independently ticking instances.
func (c *Context) ApplyStatusEffect(targetID string, effect entities.ActiveStatusEffect, sourceID string) bool {
	if effect.Duration <= 0 {
		slog.Warn("ignoring status effect without duration",
			"target_id", targetID,
			"effect", effect.Name)
		return false
	}
	effect.SourceID = sourceID

	if targetID == c.encounter.Player.ID {
		c.encounter.Player.ActiveStatusEffects = append(c.encounter.Player.ActiveStatusEffects, effect)
		return true
	}
	enemy, ok := c.encounter.FindEnemy(targetID)
	if !ok || !enemy.IsAlive() {
		return false
	}
	enemy.ActiveStatusEffects = append(enemy.ActiveStatusEffects, effect)
	return true
}

// HandleEnemyDefeat runs defeat handling for enemy exactly once. It returns false when
// the enemy is still alive or was already handled.
func (c *Context) HandleEnemyDefeat(enemy *entities.Enemy) bool {
	if enemy == nil || enemy.HP > 0 || enemy.Defeated {
		return false
	}
	enemy.Defeated = true
	enemy.HP = 0
	enemy.ActiveStatusEffects = nil

	c.AddLog(entities.ActorSystem, entities.LogDefeat, "%s has been defeated!", enemy.Name)
	slog.Info("Enemy defeated",
		"encounter_id", c.encounter.ID,
		"enemy_id", enemy.ID,
		"enemy_level", enemy.Level)

	if c.onEnemyDefeated != nil {
		c.onEnemyDefeated(c.ctx, c, enemy)
	}

	if len(c.encounter.LivingEnemies()) == 0 {
		if c.transition(EventVictory) {
			c.AddLog(entities.ActorSystem, entities.LogSuccess, "Victory! All enemies have been defeated.")
		}
	}
	return true
}

// CheckPlayerDefeat moves the encounter to defeat when the player has no HP left
func (c *Context) CheckPlayerDefeat() bool {
	player := c.encounter.Player
	if player.HP > 0 {
		return false
	}
	player.HP = 0
	if !c.transition(EventDefeat) {
		return c.encounter.Phase == entities.PhaseDefeat
	}

	c.AddLog(entities.ActorSystem, entities.LogDefeat, "%s has fallen in battle.", player.Name)
	slog.Info("Player defeated",
		"encounter_id", c.encounter.ID,
		"player_id", player.ID,
		"turn", c.encounter.Turn)

	if c.onPlayerDefeated != nil {
		c.onPlayerDefeated(c.ctx, c)
	}
	return true
}

func clampPlayerResources(p *entities.Player) {
	eff := stats.CalculateEffectiveStats(p)
	p.HP = min(max(p.HP, 0), eff.MaxHP)
	p.MP = min(max(p.MP, 0), eff.MaxMP)
	p.EP = min(max(p.EP, 0), eff.MaxEP)
}
