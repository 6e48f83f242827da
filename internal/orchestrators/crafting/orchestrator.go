// Package crafting turns resources into generated spells and consumables.
package crafting

//go:generate mockgen -destination=mock/mock_service.go -package=craftingmock github.com/KirkDiggler/spellforge/internal/orchestrators/crafting Service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/engine/resources"
	"github.com/KirkDiggler/spellforge/internal/engine/stats"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/repositories/encounters"
	"github.com/KirkDiggler/spellforge/internal/repositories/player"
	"github.com/KirkDiggler/spellforge/internal/services/generation"
	"github.com/KirkDiggler/spellforge/internal/telemetry"
)

// Service defines crafting operations. Components are only spent once the generator
// has produced a usable result.
type Service interface {
	// CraftSpell registers a generated spell, preparing it when a slot is free
	// Returns errors.FailedPrecondition when crafting is locked, the spell book is full,
	// the player is in combat or cannot pay the components
	// Returns errors.Unavailable when the generator fails
	CraftSpell(ctx context.Context, input *CraftSpellInput) (*CraftSpellOutput, error)

	// CraftConsumable adds a generated consumable to the inventory
	CraftConsumable(ctx context.Context, input *CraftConsumableInput) (*CraftConsumableOutput, error)
}

// CraftSpellInput defines the request for crafting a spell
type CraftSpellInput struct {
	PlayerID   string
	Prompt     string
	Components []entities.ResourceCost
}

// CraftSpellOutput defines the response for crafting a spell
type CraftSpellOutput struct {
	Player   *entities.Player
	Spell    entities.Spell
	Prepared bool
}

// CraftConsumableInput defines the request for crafting a consumable
type CraftConsumableInput struct {
	PlayerID   string
	Prompt     string
	Components []entities.ResourceCost
}

// CraftConsumableOutput defines the response for crafting a consumable
type CraftConsumableOutput struct {
	Player     *entities.Player
	Consumable entities.Consumable
}

// Config holds the dependencies for the crafting orchestrator
type Config struct {
	PlayerRepo    player.Repository
	EncounterRepo encounters.Repository
	Generation    generation.Service
	Tracer        trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.Generation == nil {
		vb.RequiredField("Generation")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo    player.Repository
	encounterRepo encounters.Repository
	generation    generation.Service
	tracer        trace.Tracer
}

// NewOrchestrator creates a new crafting orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("crafting")
	}

	return &orchestrator{
		playerRepo:    cfg.PlayerRepo,
		encounterRepo: cfg.EncounterRepo,
		generation:    cfg.Generation,
		tracer:        tracer,
	}, nil
}

func (o *orchestrator) CraftSpell(ctx context.Context, input *CraftSpellInput) (_ *CraftSpellOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.tracer.Start(ctx, "crafting.spell", trace.WithAttributes(
		attribute.String("player.id", input.PlayerID),
	))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	p, err := o.prepare(ctx, input.PlayerID, input.Prompt, input.Components)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(p.UnlockedFeatures, progression.FeatureSpellCrafting) {
		return nil, errors.FailedPreconditionf("spell crafting unlocks at level %d", unlockLevel(progression.FeatureSpellCrafting))
	}
	if limit := stats.CalculateMaxRegisteredSpells(p.Level); len(p.Spells) >= limit {
		return nil, errors.FailedPreconditionf("spell book is full (%d of %d)", len(p.Spells), limit)
	}

	generated, err := o.generation.GenerateSpell(ctx, &generation.GenerateSpellInput{
		Prompt:      input.Prompt,
		PlayerLevel: p.Level,
		Components:  componentMap(input.Components),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate spell")
	}

	updated, err := pay(p, input.Components)
	if err != nil {
		return nil, err
	}

	spell := generated.Spell
	updated.Spells = append(updated.Spells, spell)
	prepared := len(updated.PreparedSpellIDs) < stats.CalculateMaxPreparedSpells(updated.Level)
	if prepared {
		updated.PreparedSpellIDs = append(updated.PreparedSpellIDs, spell.ID)
	}

	if _, err := o.playerRepo.Save(ctx, player.SaveInput{Player: updated}); err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	span.SetAttributes(attribute.String("spell.id", spell.ID), attribute.Bool("spell.prepared", prepared))
	slog.Info("Spell crafted",
		"player_id", updated.ID,
		"spell_id", spell.ID,
		"spell", spell.Name,
		"prepared", prepared,
		"adjusted", len(generated.Adjustments))

	return &CraftSpellOutput{Player: updated, Spell: spell, Prepared: prepared}, nil
}

func (o *orchestrator) CraftConsumable(ctx context.Context, input *CraftConsumableInput) (_ *CraftConsumableOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.tracer.Start(ctx, "crafting.consumable", trace.WithAttributes(
		attribute.String("player.id", input.PlayerID),
	))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	p, err := o.prepare(ctx, input.PlayerID, input.Prompt, input.Components)
	if err != nil {
		return nil, err
	}

	generated, err := o.generation.GenerateConsumable(ctx, &generation.GenerateConsumableInput{
		Prompt:      input.Prompt,
		PlayerLevel: p.Level,
		Components:  componentMap(input.Components),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate consumable")
	}

	updated, err := pay(p, input.Components)
	if err != nil {
		return nil, err
	}

	item := generated.Consumable
	addToInventory(&updated.Inventory, item)

	if _, err := o.playerRepo.Save(ctx, player.SaveInput{Player: updated}); err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	span.SetAttributes(attribute.String("consumable.id", item.ID))
	slog.Info("Consumable crafted",
		"player_id", updated.ID,
		"consumable_id", item.ID,
		"consumable", item.Name,
		"stackable", item.Stackable)

	return &CraftConsumableOutput{Player: updated, Consumable: item}, nil
}

// prepare validates the request and loads a player who is free to craft and can
// afford the components
func (o *orchestrator) prepare(ctx context.Context, playerID, prompt string, components []entities.ResourceCost) (*entities.Player, error) {
	vb := errors.NewValidationBuilder()
	if playerID == "" {
		vb.RequiredField("PlayerID")
	}
	if strings.TrimSpace(prompt) == "" {
		vb.RequiredField("Prompt")
	}
	if len(components) == 0 {
		vb.RequiredField("Components")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.encounterRepo.GetByPlayer(ctx, &encounters.GetByPlayerInput{PlayerID: playerID}); err == nil {
		return nil, errors.FailedPrecondition("cannot craft during an encounter")
	} else if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to check for an active encounter")
	}

	out, err := o.playerRepo.Get(ctx, player.GetInput{ID: playerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load player %s", playerID)
	}

	check := resources.CheckResources(out.Player, components)
	switch {
	case check.Invalid != "":
		return nil, errors.InvalidArgumentf("invalid components: %s", check.Invalid)
	case !check.Affordable:
		return nil, errors.FailedPreconditionf("not enough resources: %s", resources.DescribeMissing(check.Missing))
	}

	return out.Player, nil
}

// pay deducts the components; the affordability check already passed so a failure
// here means the bill changed underneath us
func pay(p *entities.Player, components []entities.ResourceCost) (*entities.Player, error) {
	result := resources.DeductResources(p, components)
	if !result.Success {
		return nil, errors.FailedPrecondition(result.Message)
	}
	return result.UpdatedPlayer, nil
}

func addToInventory(inv *entities.Inventory, item entities.Consumable) {
	if !item.Stackable {
		inv.Items = append(inv.Items, item)
		return
	}
	if inv.Stacks == nil {
		inv.Stacks = make(map[string]int)
	}
	if inv.Catalog == nil {
		inv.Catalog = make(map[string]entities.Consumable)
	}
	inv.Catalog[item.ID] = item
	inv.Stacks[item.ID]++
}

func componentMap(components []entities.ResourceCost) map[string]int {
	out := make(map[string]int, len(components))
	for _, c := range components {
		out[c.ResourceID] += c.Quantity
	}
	return out
}

func unlockLevel(feature string) int {
	for _, u := range progression.Unlocks {
		if u.Feature == feature {
			return u.Level
		}
	}
	return 0
}
