// Package encounter implements the encounter orchestrator: it loads state from the
// repositories, resolves actions through the engine and settles finished fights.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/spellforge/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/spellforge/internal/engine"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/pkg/clock"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
	"github.com/KirkDiggler/spellforge/internal/repositories/encounters"
	"github.com/KirkDiggler/spellforge/internal/repositories/player"
	"github.com/KirkDiggler/spellforge/internal/services/generation"
	"github.com/KirkDiggler/spellforge/internal/telemetry"
)

// Service defines the interface for encounter operations
type Service interface {
	// StartEncounter creates a fight for the player against generated enemies
	// Returns errors.FailedPrecondition if the player is already in an encounter
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)

	// Player actions. Invalid actions come back as an unsuccessful result and leave the
	// encounter unchanged.
	CastSpell(ctx context.Context, input *CastSpellInput) (*ActionOutput, error)
	UseAbility(ctx context.Context, input *UseAbilityInput) (*ActionOutput, error)
	UseConsumable(ctx context.Context, input *UseConsumableInput) (*ActionOutput, error)
	Defend(ctx context.Context, input *EncounterInput) (*ActionOutput, error)
	Flee(ctx context.Context, input *EncounterInput) (*ActionOutput, error)

	// ProcessEnemyTurn resolves the acting enemy's turn. When control returns to the
	// player their turn-start effects are processed.
	// Returns errors.FailedPrecondition outside the enemy phase
	ProcessEnemyTurn(ctx context.Context, input *EncounterInput) (*ProcessEnemyTurnOutput, error)

	// GetEncounter loads an active encounter
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)

	// AbandonEncounter ends an encounter without resolution, keeping the player's
	// current state
	AbandonEncounter(ctx context.Context, input *EncounterInput) (*AbandonEncounterOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Engine        engine.Engine
	PlayerRepo    player.Repository
	EncounterRepo encounters.Repository
	Generation    generation.Service
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	Tracer        trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.Generation == nil {
		vb.RequiredField("Generation")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine        engine.Engine
	playerRepo    player.Repository
	encounterRepo encounters.Repository
	generation    generation.Service
	idGen         idgen.Generator
	clock         clock.Clock
	tracer        trace.Tracer
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		engine:        cfg.Engine,
		playerRepo:    cfg.PlayerRepo,
		encounterRepo: cfg.EncounterRepo,
		generation:    cfg.Generation,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		tracer:        cfg.Tracer,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.tracer == nil {
		o.tracer = telemetry.Tracer("encounter")
	}

	return o, nil
}

func (o *orchestrator) StartEncounter(ctx context.Context, input *StartEncounterInput) (_ *StartEncounterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	ctx, span := o.tracer.Start(ctx, "combat.start", trace.WithAttributes(
		attribute.String("player.id", input.PlayerID),
	))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if _, err := o.encounterRepo.GetByPlayer(ctx, &encounters.GetByPlayerInput{PlayerID: input.PlayerID}); err == nil {
		return nil, errors.FailedPreconditionf("player %s is already in an encounter", input.PlayerID)
	} else if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to check for an active encounter")
	}

	p, created, err := o.loadOrCreatePlayer(ctx, input)
	if err != nil {
		return nil, err
	}

	count := input.EnemyCount
	if count <= 0 {
		count = DefaultEnemyCount
	}
	count = min(count, MaxEnemyCount)

	balance := o.engine.Balance()
	difficulty := balance.DifficultyFor(p.Level)
	enemies := make([]*entities.Enemy, 0, count)
	for i := 0; i < count; i++ {
		out, err := o.generation.GenerateEnemy(ctx, &generation.GenerateEnemyInput{
			PlayerLevel: p.Level,
			Difficulty:  difficulty,
			Elite:       input.Elite && i == 0,
			Theme:       input.Theme,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate enemy")
		}
		enemies = append(enemies, out.Enemy)
	}

	enc := &entities.Encounter{
		ID:        o.idGen.Generate(),
		PlayerID:  p.ID,
		Player:    p,
		Enemies:   enemies,
		Phase:     entities.PhasePlayerTurn,
		Turn:      1,
		StartedAt: o.clock.Now(),
	}

	if _, err := o.encounterRepo.Save(ctx, &encounters.SaveInput{Encounter: enc}); err != nil {
		return nil, errors.Wrap(err, "failed to save encounter")
	}

	span.SetAttributes(
		attribute.String("encounter.id", enc.ID),
		attribute.Int("encounter.enemies", len(enemies)),
		attribute.String("encounter.difficulty", string(difficulty)),
	)
	slog.Info("Encounter started",
		"encounter_id", enc.ID,
		"player_id", p.ID,
		"player_level", p.Level,
		"enemies", len(enemies),
		"difficulty", difficulty)

	return &StartEncounterOutput{Encounter: enc, NewPlayer: created}, nil
}

func (o *orchestrator) loadOrCreatePlayer(ctx context.Context, input *StartEncounterInput) (*entities.Player, bool, error) {
	out, err := o.playerRepo.Get(ctx, player.GetInput{ID: input.PlayerID})
	if err == nil {
		return out.Player, false, nil
	}
	if !errors.IsNotFound(err) || input.PlayerName == "" {
		return nil, false, errors.Wrapf(err, "failed to load player %s", input.PlayerID)
	}

	p := generation.StarterPlayer(input.PlayerID, input.PlayerName)
	if _, err := o.playerRepo.Save(ctx, player.SaveInput{Player: p}); err != nil {
		return nil, false, errors.Wrap(err, "failed to save new player")
	}
	slog.Info("Created starter player", "player_id", p.ID, "name", p.Name)
	return p, true, nil
}

func (o *orchestrator) CastSpell(ctx context.Context, input *CastSpellInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.act(ctx, "combat.cast_spell", input.EncounterID,
		func(enc *entities.Encounter) (*engine.ActionOutput, error) {
			return o.engine.CastSpell(ctx, &engine.CastSpellInput{
				Encounter: enc,
				SpellID:   input.SpellID,
				TargetID:  input.TargetID,
			})
		},
		attribute.String("spell.id", input.SpellID),
		attribute.String("target.id", input.TargetID))
}

func (o *orchestrator) UseAbility(ctx context.Context, input *UseAbilityInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.act(ctx, "combat.use_ability", input.EncounterID,
		func(enc *entities.Encounter) (*engine.ActionOutput, error) {
			return o.engine.UseAbility(ctx, &engine.UseAbilityInput{
				Encounter: enc,
				AbilityID: input.AbilityID,
				TargetID:  input.TargetID,
			})
		},
		attribute.String("ability.id", input.AbilityID))
}

func (o *orchestrator) UseConsumable(ctx context.Context, input *UseConsumableInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.act(ctx, "combat.use_consumable", input.EncounterID,
		func(enc *entities.Encounter) (*engine.ActionOutput, error) {
			return o.engine.UseConsumable(ctx, &engine.UseConsumableInput{
				Encounter: enc,
				ItemID:    input.ItemID,
				TargetID:  input.TargetID,
			})
		},
		attribute.String("item.id", input.ItemID))
}

func (o *orchestrator) Defend(ctx context.Context, input *EncounterInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.act(ctx, "combat.defend", input.EncounterID,
		func(enc *entities.Encounter) (*engine.ActionOutput, error) {
			return o.engine.Defend(ctx, &engine.EncounterInput{Encounter: enc})
		})
}

func (o *orchestrator) Flee(ctx context.Context, input *EncounterInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.act(ctx, "combat.flee", input.EncounterID,
		func(enc *entities.Encounter) (*engine.ActionOutput, error) {
			return o.engine.Flee(ctx, &engine.EncounterInput{Encounter: enc})
		})
}

// act runs one player action against a stored encounter and persists the outcome
func (o *orchestrator) act(
	ctx context.Context,
	name, encounterID string,
	resolve func(enc *entities.Encounter) (*engine.ActionOutput, error),
	attrs ...attribute.KeyValue,
) (_ *ActionOutput, err error) {
	ctx, span := o.tracer.Start(ctx, name, trace.WithAttributes(
		append(attrs, attribute.String("encounter.id", encounterID))...,
	))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	enc, err := o.loadActive(ctx, encounterID)
	if err != nil {
		return nil, err
	}

	out, err := resolve(enc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve action")
	}

	span.SetAttributes(
		attribute.Bool("action.success", out.Result.Success),
		attribute.String("encounter.phase", string(out.Phase)),
	)
	if !out.Result.Success {
		return &ActionOutput{Encounter: enc, Result: out.Result}, nil
	}

	ended, err := o.persist(ctx, enc)
	if err != nil {
		return nil, err
	}

	return &ActionOutput{Encounter: enc, Result: out.Result, Ended: ended}, nil
}

func (o *orchestrator) ProcessEnemyTurn(ctx context.Context, input *EncounterInput) (_ *ProcessEnemyTurnOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.tracer.Start(ctx, "combat.enemy_turn", trace.WithAttributes(
		attribute.String("encounter.id", input.EncounterID),
	))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	enc, err := o.loadActive(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}
	if enc.Phase != entities.PhaseEnemyTurn {
		return nil, errors.FailedPreconditionf("encounter %s is not in the enemy phase", enc.ID)
	}

	turn, err := o.engine.ProcessEnemyTurn(ctx, &engine.EncounterInput{Encounter: enc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to process enemy turn")
	}
	output := &ProcessEnemyTurnOutput{Encounter: enc, Result: turn.Result}

	if turn.Result.PhaseEnded && enc.Phase == entities.PhasePlayerTurn {
		start, err := o.engine.StartPlayerTurn(ctx, &engine.EncounterInput{Encounter: enc})
		if err != nil {
			return nil, errors.Wrap(err, "failed to start player turn")
		}
		output.TurnStart = &start.Result
	}

	span.SetAttributes(
		attribute.String("enemy.id", turn.Result.EnemyID),
		attribute.Bool("enemy.used_special", turn.Result.UsedSpecial),
		attribute.String("encounter.phase", string(enc.Phase)),
		attribute.Int("encounter.turn", enc.Turn),
	)

	output.Ended, err = o.persist(ctx, enc)
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (o *orchestrator) GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	out, err := o.encounterRepo.Get(ctx, &encounters.GetInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get encounter %s", input.EncounterID)
	}
	return &GetEncounterOutput{Encounter: out.Encounter}, nil
}

func (o *orchestrator) AbandonEncounter(ctx context.Context, input *EncounterInput) (_ *AbandonEncounterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.tracer.Start(ctx, "combat.abandon", trace.WithAttributes(
		attribute.String("encounter.id", input.EncounterID),
	))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	enc, err := o.loadActive(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	p := enc.Player
	p.ActiveStatusEffects = nil
	if err := o.finish(ctx, enc); err != nil {
		return nil, err
	}

	slog.Info("Encounter abandoned",
		"encounter_id", enc.ID,
		"player_id", p.ID,
		"turn", enc.Turn)

	return &AbandonEncounterOutput{Player: p}, nil
}

func (o *orchestrator) loadActive(ctx context.Context, encounterID string) (*entities.Encounter, error) {
	if encounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	out, err := o.encounterRepo.Get(ctx, &encounters.GetInput{EncounterID: encounterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get encounter %s", encounterID)
	}
	if out.Encounter.Phase.IsTerminal() {
		return nil, errors.FailedPreconditionf("encounter %s has ended", encounterID)
	}
	return out.Encounter, nil
}

// persist saves an ongoing encounter, or settles it when it has ended. It reports
// whether the encounter ended.
func (o *orchestrator) persist(ctx context.Context, enc *entities.Encounter) (bool, error) {
	if !enc.Phase.IsTerminal() {
		if _, err := o.encounterRepo.Save(ctx, &encounters.SaveInput{Encounter: enc}); err != nil {
			return false, errors.Wrap(err, "failed to save encounter")
		}
		return false, nil
	}

	o.settle(enc)
	if err := o.finish(ctx, enc); err != nil {
		return true, err
	}
	return true, nil
}

// settle applies the end-of-fight consequences to the player. Rewards were granted as
// each enemy fell, so victory only clears temporary effects.
func (o *orchestrator) settle(enc *entities.Encounter) {
	p := enc.Player
	p.ActiveStatusEffects = nil

	switch enc.Phase {
	case entities.PhaseDefeat:
		lost := int(float64(p.Gold) * DefeatGoldPenalty)
		p.Gold -= lost
		p.HP = 1
		slog.Info("Player defeated",
			"encounter_id", enc.ID,
			"player_id", p.ID,
			"gold_lost", lost)
	case entities.PhaseVictory:
		slog.Info("Encounter won",
			"encounter_id", enc.ID,
			"player_id", p.ID,
			"xp", enc.Rewards.XP,
			"gold", enc.Rewards.Gold,
			"levels_gained", enc.Rewards.LevelsGained)
	case entities.PhaseFled:
		slog.Info("Player fled encounter",
			"encounter_id", enc.ID,
			"player_id", p.ID)
	}
}

// finish persists the player and drops the encounter along with its log
func (o *orchestrator) finish(ctx context.Context, enc *entities.Encounter) error {
	if _, err := o.playerRepo.Save(ctx, player.SaveInput{Player: enc.Player}); err != nil {
		return errors.Wrap(err, "failed to save player")
	}
	if _, err := o.encounterRepo.Delete(ctx, &encounters.DeleteInput{EncounterID: enc.ID}); err != nil {
		return errors.Wrap(err, "failed to delete encounter")
	}
	return nil
}
