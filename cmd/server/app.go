package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/spellforge/internal/clients/generator"
	"github.com/KirkDiggler/spellforge/internal/config"
	"github.com/KirkDiggler/spellforge/internal/engine"
	"github.com/KirkDiggler/spellforge/internal/engine/rng"
	"github.com/KirkDiggler/spellforge/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/spellforge/internal/errors"
	"github.com/KirkDiggler/spellforge/internal/orchestrators/crafting"
	"github.com/KirkDiggler/spellforge/internal/orchestrators/encounter"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
	"github.com/KirkDiggler/spellforge/internal/repositories/encounters"
	"github.com/KirkDiggler/spellforge/internal/repositories/player"
	"github.com/KirkDiggler/spellforge/internal/services/generation"
)

// app holds the wired services shared by the server and simulate commands
type app struct {
	engine     engine.Engine
	encounters encounter.Service
	crafting   crafting.Service
}

type appConfig struct {
	Server     *config.Server
	PlayerRepo player.Repository
	// IDGenerator names encounters, log entries and generated content
	IDGenerator idgen.Generator
}

func newApp(cfg *appConfig) (*app, error) {
	balance, err := config.LoadBalance(cfg.Server.BalanceFile)
	if err != nil {
		return nil, err
	}

	var roller dice.Roller
	if cfg.Server.Seed != 0 {
		roller = rng.NewSeeded(cfg.Server.Seed)
	}

	bus := events.NewBus()
	subscribeEventLog(bus)

	eng, err := engine.New(&engine.Config{
		DiceRoller:  roller,
		EventBus:    bus,
		Balance:     &balance,
		IDGenerator: cfg.IDGenerator,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	var genClient generator.Client
	if cfg.Server.GeneratorURL != "" {
		genClient, err = generator.New(&generator.Config{
			BaseURL: cfg.Server.GeneratorURL,
			APIKey:  cfg.Server.GeneratorAPIKey,
			Timeout: cfg.Server.GeneratorTimeout,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create generator client")
		}
	} else {
		slog.Info("No generator configured, enemies come from the bestiary and crafting is disabled")
	}

	gen, err := generation.New(&generation.Config{
		Client:      genClient,
		Random:      rng.New(roller),
		IDGenerator: cfg.IDGenerator,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generation service")
	}

	encounterRepo := encounters.NewInMemory()

	encounterService, err := encounter.NewOrchestrator(&encounter.Config{
		Engine:        eng,
		PlayerRepo:    cfg.PlayerRepo,
		EncounterRepo: encounterRepo,
		Generation:    gen,
		IDGenerator:   cfg.IDGenerator,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create encounter orchestrator")
	}

	craftingService, err := crafting.NewOrchestrator(&crafting.Config{
		PlayerRepo:    cfg.PlayerRepo,
		EncounterRepo: encounterRepo,
		Generation:    gen,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create crafting orchestrator")
	}

	return &app{
		engine:     eng,
		encounters: encounterService,
		crafting:   craftingService,
	}, nil
}

// subscribeEventLog reports progression milestones from the event bus
func subscribeEventLog(bus events.EventBus) {
	for _, eventType := range []string{
		rpgtoolkit.EventEnemyDefeated, rpgtoolkit.EventPlayerDefeated, rpgtoolkit.EventLevelUp,
	} {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			encounterID, _ := e.Context().Get(rpgtoolkit.KeyEncounterID)
			slog.Debug("Combat event",
				"type", e.Type(),
				"source", e.Source().GetID(),
				"encounter_id", encounterID)
			return nil
		})
	}
}
