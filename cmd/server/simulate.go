package main

import (
	"context"
	"fmt"
	"io"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellforge/internal/config"
	"github.com/KirkDiggler/spellforge/internal/entities"
	"github.com/KirkDiggler/spellforge/internal/orchestrators/encounter"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/spellforge/internal/redis"
	"github.com/KirkDiggler/spellforge/internal/repositories/player"
)

// maxSimulatedActions stops fights where neither side can finish the other
const maxSimulatedActions = 200

var (
	simSeed    int64
	simEnemies int
	simElite   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a seeded fight locally and print the combat log",
	Long: `Simulate starts a starter character against bestiary enemies using an embedded
store and plays the player's side with a simple policy. The same seed always produces
the same fight.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "random seed")
	simulateCmd.Flags().IntVar(&simEnemies, "enemies", 1, "number of enemies")
	simulateCmd.Flags().BoolVar(&simElite, "elite", false, "make the first enemy elite")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg := &config.Server{LogLevel: "warn", Seed: simSeed}
	setupLogging(cfg.LogLevel)

	mr, err := miniredis.Run()
	if err != nil {
		return fmt.Errorf("failed to start embedded store: %w", err)
	}
	defer mr.Close()

	redis, err := redisclient.NewClient(mr.Addr(), nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redis.Close()
	}()

	playerRepo, err := player.NewRedis(&player.RedisConfig{Client: redis})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	services, err := newApp(&appConfig{
		Server:      cfg,
		PlayerRepo:  playerRepo,
		IDGenerator: idgen.NewSequential("sim"),
	})
	if err != nil {
		return err
	}

	return simulate(cmd.Context(), cmd.OutOrStdout(), services)
}

func simulate(ctx context.Context, w io.Writer, services *app) error {
	if ctx == nil {
		ctx = context.Background()
	}

	start, err := services.encounters.StartEncounter(ctx, &encounter.StartEncounterInput{
		PlayerID:   "simulated",
		PlayerName: "Wanderer",
		EnemyCount: simEnemies,
		Elite:      simElite,
	})
	if err != nil {
		return err
	}

	enc := start.Encounter
	printer := &logPrinter{w: w, seen: make(map[string]bool)}
	for _, enemy := range enc.Enemies {
		fmt.Fprintf(w, "%s appears: level %d, %d HP\n", enemy.Name, enemy.Level, enemy.HP)
	}
	printer.print(enc)

	for i := 0; i < maxSimulatedActions && !enc.Phase.IsTerminal(); i++ {
		if enc.Phase == entities.PhaseEnemyTurn {
			out, err := services.encounters.ProcessEnemyTurn(ctx, &encounter.EncounterInput{EncounterID: enc.ID})
			if err != nil {
				return err
			}
			enc = out.Encounter
			printer.print(enc)
			continue
		}

		out, err := playerTurn(ctx, services, enc)
		if err != nil {
			return err
		}
		enc = out.Encounter
		printer.print(enc)
	}

	if !enc.Phase.IsTerminal() {
		if _, err := services.encounters.AbandonEncounter(ctx, &encounter.EncounterInput{EncounterID: enc.ID}); err != nil {
			return err
		}
		fmt.Fprintf(w, "Stalemate after %d actions\n", maxSimulatedActions)
		return nil
	}

	fmt.Fprintf(w, "Result: %s after %d turns\n", enc.Phase, enc.Turn)
	if enc.Phase == entities.PhaseVictory {
		r := enc.Rewards
		fmt.Fprintf(w, "Rewards: %d XP, %d gold, %d essence, %d chests\n", r.XP, r.Gold, r.Essence, r.LootChests)
	}
	return nil
}

// playerTurn heals when low, otherwise casts the first affordable damage spell at the
// first living enemy, and defends when nothing is affordable
func playerTurn(ctx context.Context, services *app, enc *entities.Encounter) (*encounter.ActionOutput, error) {
	p := enc.Player
	maxHP := services.engine.CalculateEffectiveStats(p).MaxHP

	var target string
	for _, enemy := range enc.Enemies {
		if enemy.IsAlive() {
			target = enemy.ID
			break
		}
	}

	var heal, attack *entities.Spell
	for _, id := range p.PreparedSpellIDs {
		spell, ok := p.FindSpell(id)
		if !ok || spell.ManaCost > p.MP {
			continue
		}
		switch {
		case spell.DamageType == entities.DamageHealing:
			if heal == nil {
				heal = spell
			}
		case spell.Damage > 0:
			if attack == nil {
				attack = spell
			}
		}
	}

	switch {
	case heal != nil && p.HP*100 < maxHP*40:
		return services.encounters.CastSpell(ctx, &encounter.CastSpellInput{EncounterID: enc.ID, SpellID: heal.ID})
	case attack != nil && target != "":
		return services.encounters.CastSpell(ctx, &encounter.CastSpellInput{EncounterID: enc.ID, SpellID: attack.ID, TargetID: target})
	default:
		return services.encounters.Defend(ctx, &encounter.EncounterInput{EncounterID: enc.ID})
	}
}

type logPrinter struct {
	w    io.Writer
	seen map[string]bool
}

func (l *logPrinter) print(enc *entities.Encounter) {
	for _, entry := range enc.Log {
		if l.seen[entry.ID] {
			continue
		}
		l.seen[entry.ID] = true
		fmt.Fprintf(l.w, "[turn %d] %-6s %s\n", enc.Turn, entry.Actor, entry.Message)
	}
}

