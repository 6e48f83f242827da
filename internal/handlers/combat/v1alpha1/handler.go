// Package v1alpha1 handles the combat gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/orchestrators/crafting"
	"github.com/KirkDiggler/spellforge/internal/orchestrators/encounter"
)

// HandlerConfig holds dependencies for the combat handler
type HandlerConfig struct {
	EncounterService encounter.Service
	CraftingService  crafting.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
	}
	if c.CraftingService == nil {
		vb.RequiredField("CraftingService")
	}

	return vb.Build()
}

// Handler implements the combat gRPC service
type Handler struct {
	encounterService encounter.Service
	craftingService  crafting.Service
}

// NewHandler creates a new combat handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		encounterService: cfg.EncounterService,
		craftingService:  cfg.CraftingService,
	}, nil
}

// StartEncounter starts a fight for the player
func (h *Handler) StartEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if stringField(req, "player_id") == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.encounterService.StartEncounter(ctx, &encounter.StartEncounterInput{
		PlayerID:   stringField(req, "player_id"),
		PlayerName: stringField(req, "player_name"),
		EnemyCount: intField(req, "enemy_count"),
		Elite:      boolField(req, "elite"),
		Theme:      stringField(req, "theme"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"encounter": out.Encounter,
		"newPlayer": out.NewPlayer,
	})
}

// GetEncounter loads an active encounter
func (h *Handler) GetEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	encounterID, err := requireEncounterID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.encounterService.GetEncounter(ctx, &encounter.GetEncounterInput{EncounterID: encounterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"encounter": out.Encounter})
}

// CastSpell casts a prepared spell
func (h *Handler) CastSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	encounterID, err := requireEncounterID(req)
	if err != nil {
		return nil, err
	}
	if stringField(req, "spell_id") == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("spell_id is required"))
	}

	out, err := h.encounterService.CastSpell(ctx, &encounter.CastSpellInput{
		EncounterID: encounterID,
		SpellID:     stringField(req, "spell_id"),
		TargetID:    stringField(req, "target_id"),
	})
	return actionResponse(out, err)
}

// UseAbility uses one of the player's abilities
func (h *Handler) UseAbility(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	encounterID, err := requireEncounterID(req)
	if err != nil {
		return nil, err
	}
	if stringField(req, "ability_id") == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ability_id is required"))
	}

	out, err := h.encounterService.UseAbility(ctx, &encounter.UseAbilityInput{
		EncounterID: encounterID,
		AbilityID:   stringField(req, "ability_id"),
		TargetID:    stringField(req, "target_id"),
	})
	return actionResponse(out, err)
}

// UseConsumable uses an inventory item
func (h *Handler) UseConsumable(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	encounterID, err := requireEncounterID(req)
	if err != nil {
		return nil, err
	}
	if stringField(req, "item_id") == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.encounterService.UseConsumable(ctx, &encounter.UseConsumableInput{
		EncounterID: encounterID,
		ItemID:      stringField(req, "item_id"),
		TargetID:    stringField(req, "target_id"),
	})
	return actionResponse(out, err)
}

// Defend braces for the enemy phase
func (h *Handler) Defend(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	encounterID, err := requireEncounterID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.encounterService.Defend(ctx, &encounter.EncounterInput{EncounterID: encounterID})
	return actionResponse(out, err)
}

// Flee attempts to leave the encounter
func (h *Handler) Flee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	encounterID, err := requireEncounterID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.encounterService.Flee(ctx, &encounter.EncounterInput{EncounterID: encounterID})
	return actionResponse(out, err)
}

// ProcessEnemyTurn resolves the acting enemy's turn
func (h *Handler) ProcessEnemyTurn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	encounterID, err := requireEncounterID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.encounterService.ProcessEnemyTurn(ctx, &encounter.EncounterInput{EncounterID: encounterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"encounter": out.Encounter,
		"result":    enemyTurnDoc(out.Result),
		"turnStart": turnStartDoc(out.TurnStart),
		"ended":     out.Ended,
	})
}

// AbandonEncounter leaves the encounter without resolution
func (h *Handler) AbandonEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	encounterID, err := requireEncounterID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.encounterService.AbandonEncounter(ctx, &encounter.EncounterInput{EncounterID: encounterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"player": out.Player})
}

// CraftSpell turns components into a new spell
func (h *Handler) CraftSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.craftingService.CraftSpell(ctx, &crafting.CraftSpellInput{
		PlayerID:   stringField(req, "player_id"),
		Prompt:     stringField(req, "prompt"),
		Components: componentsField(req, "components"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"player":   out.Player,
		"spell":    out.Spell,
		"prepared": out.Prepared,
	})
}

// CraftConsumable turns components into a new consumable
func (h *Handler) CraftConsumable(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.craftingService.CraftConsumable(ctx, &crafting.CraftConsumableInput{
		PlayerID:   stringField(req, "player_id"),
		Prompt:     stringField(req, "prompt"),
		Components: componentsField(req, "components"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"player":     out.Player,
		"consumable": out.Consumable,
	})
}

func requireEncounterID(req *structpb.Struct) (string, error) {
	id := stringField(req, "encounter_id")
	if id == "" {
		return "", errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}
	return id, nil
}

func actionResponse(out *encounter.ActionOutput, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"encounter": out.Encounter,
		"result":    out.Result,
		"ended":     out.Ended,
	})
}

func respond(doc map[string]any) (*structpb.Struct, error) {
	out, err := toStruct(doc)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

var _ CombatServiceServer = (*Handler)(nil)
