// Package generation turns generative service drafts into playable content. Every draft
// is sanitized before it is returned; enemies fall back to a built-in bestiary when the
// generator is missing or failing.
package generation

//go:generate mockgen -destination=mock/mock_service.go -package=generationmock github.com/KirkDiggler/spellforge/internal/services/generation Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/spellforge/internal/clients/generator"
	"github.com/KirkDiggler/spellforge/internal/engine/progression"
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
)

// Service defines content generation
type Service interface {
	// GenerateEnemy returns an enemy scaled to the player's level
	GenerateEnemy(ctx context.Context, input *GenerateEnemyInput) (*GenerateEnemyOutput, error)

	// GenerateSpell drafts and sanitizes a spell
	// Returns errors.Unavailable when no generator is configured or it fails
	GenerateSpell(ctx context.Context, input *GenerateSpellInput) (*GenerateSpellOutput, error)

	// GenerateConsumable drafts and sanitizes a consumable
	// Returns errors.Unavailable when no generator is configured or it fails
	GenerateConsumable(ctx context.Context, input *GenerateConsumableInput) (*GenerateConsumableOutput, error)
}

// GenerateEnemyInput describes the enemy wanted
type GenerateEnemyInput struct {
	PlayerLevel int
	Difficulty  progression.Difficulty
	Elite       bool
	Theme       string
}

// GenerateEnemyOutput contains the enemy and how it was produced
type GenerateEnemyOutput struct {
	Enemy *entities.Enemy
	// Generated is false when the enemy came from the fallback bestiary
	Generated   bool
	Adjustments []string
}

// GenerateSpellInput describes the spell wanted
type GenerateSpellInput struct {
	Prompt      string
	PlayerLevel int
	Components  map[string]int
}

// GenerateSpellOutput contains the sanitized spell
type GenerateSpellOutput struct {
	Spell       entities.Spell
	Adjustments []string
}

// GenerateConsumableInput describes the consumable wanted
type GenerateConsumableInput struct {
	Prompt      string
	PlayerLevel int
	Components  map[string]int
}

// GenerateConsumableOutput contains the sanitized consumable
type GenerateConsumableOutput struct {
	Consumable  entities.Consumable
	Adjustments []string
}

// Config holds the dependencies for the generation service
type Config struct {
	// Client is optional; without it enemies come from the bestiary and crafting is
	// unavailable
	Client      generator.Client
	Random      rng.Source
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type service struct {
	client generator.Client
	random rng.Source
	idGen  idgen.Generator
}

// New creates a generation service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		client: cfg.Client,
		random: cfg.Random,
		idGen:  cfg.IDGenerator,
	}, nil
}

func (s *service) GenerateEnemy(ctx context.Context, input *GenerateEnemyInput) (*GenerateEnemyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	level := max(input.PlayerLevel, 1)
	id := s.idGen.Generate()

	if s.client != nil {
		draft, err := s.client.GenerateEnemy(ctx, &generator.EnemyRequest{
			PlayerLevel: level,
			Difficulty:  string(input.Difficulty),
			Elite:       input.Elite,
			Theme:       input.Theme,
		})
		if err == nil && draft != nil {
			draft.IsElite = input.Elite
			enemy, adjusted := SanitizeEnemy(*draft, level)
			enemy.ID = id
			if len(adjusted) > 0 {
				slog.Warn("Clamped generated enemy",
					"enemy", enemy.Name,
					"fields", adjusted)
			}
			return &GenerateEnemyOutput{Enemy: &enemy, Generated: true, Adjustments: adjusted}, nil
		}

		slog.Warn("Enemy generation failed, using bestiary",
			"player_level", level,
			"error", err)
	}

	return &GenerateEnemyOutput{Enemy: fallbackEnemy(s.random, id, level, input.Elite)}, nil
}

func (s *service) GenerateSpell(ctx context.Context, input *GenerateSpellInput) (*GenerateSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Prompt == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}
	if s.client == nil {
		return nil, errors.Unavailable("no generator configured")
	}

	draft, err := s.client.GenerateSpell(ctx, &generator.SpellRequest{
		Prompt:      input.Prompt,
		PlayerLevel: max(input.PlayerLevel, 1),
		Components:  input.Components,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to generate spell")
	}
	if draft == nil {
		return nil, errors.Unavailable("generator returned no spell")
	}

	spell, adjusted := SanitizeSpell(*draft)
	spell.ID = s.idGen.Generate()
	if len(adjusted) > 0 {
		slog.Warn("Clamped generated spell",
			"spell", spell.Name,
			"fields", adjusted)
	}

	return &GenerateSpellOutput{Spell: spell, Adjustments: adjusted}, nil
}

func (s *service) GenerateConsumable(ctx context.Context, input *GenerateConsumableInput) (*GenerateConsumableOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Prompt == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}
	if s.client == nil {
		return nil, errors.Unavailable("no generator configured")
	}

	draft, err := s.client.GenerateConsumable(ctx, &generator.ConsumableRequest{
		Prompt:      input.Prompt,
		PlayerLevel: max(input.PlayerLevel, 1),
		Components:  input.Components,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to generate consumable")
	}
	if draft == nil {
		return nil, errors.Unavailable("generator returned no consumable")
	}

	item, adjusted, err := SanitizeConsumable(*draft)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "generator returned an unusable consumable")
	}
	item.ID = s.idGen.Generate()
	if len(adjusted) > 0 {
		slog.Warn("Clamped generated consumable",
			"consumable", item.Name,
			"fields", adjusted)
	}

	return &GenerateConsumableOutput{Consumable: item, Adjustments: adjusted}, nil
}
