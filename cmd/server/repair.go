package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellforge/internal/config"
	"github.com/KirkDiggler/spellforge/internal/errors"
	redisclient "github.com/KirkDiggler/spellforge/internal/redis"
	"github.com/KirkDiggler/spellforge/internal/repositories/player"
)

var (
	repairWrite         bool
	repairDeleteCorrupt bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Scan stored player saves and repair out-of-range fields",
	Long: `Repair loads every player save, reports the fields that would be reset and, with
--write, stores the repaired save. Saves that cannot be decoded are listed and only
removed with --delete-corrupt.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairWrite, "write", false, "store repaired saves")
	repairCmd.Flags().BoolVar(&repairDeleteCorrupt, "delete-corrupt", false, "delete saves that cannot be decoded")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	ctx := cmd.Context()
	client, err := redisclient.Dial(ctx, cfg.RedisAddr, cfg.RedisOptions(), redisPingTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	report, err := repairSaves(ctx, client, repairWrite, repairDeleteCorrupt)
	if err != nil {
		return err
	}
	report.print(cmd.OutOrStdout())
	return nil
}

type repairReport struct {
	checked  int
	repaired map[string][]string
	corrupt  []string
	deleted  []string
}

func repairSaves(ctx context.Context, client redisclient.Client, write, deleteCorrupt bool) (*repairReport, error) {
	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	report := &repairReport{repaired: make(map[string][]string)}

	iter := client.Scan(ctx, 0, player.KeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id := strings.TrimPrefix(key, player.KeyPrefix)
		report.checked++

		out, err := repo.Get(ctx, player.GetInput{ID: id})
		switch {
		case errors.IsDataLoss(err):
			report.corrupt = append(report.corrupt, id)
			if deleteCorrupt {
				if _, err := repo.Delete(ctx, player.DeleteInput{ID: id}); err != nil {
					return nil, err
				}
				report.deleted = append(report.deleted, id)
			}
			continue
		case err != nil:
			return nil, err
		}

		if len(out.Repairs) == 0 {
			continue
		}
		report.repaired[id] = out.Repairs
		if write {
			if _, err := repo.Save(ctx, player.SaveInput{Player: out.Player}); err != nil {
				return nil, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to scan player saves")
	}

	return report, nil
}

func (r *repairReport) print(w io.Writer) {
	fmt.Fprintf(w, "Checked %d saves, %d need repair, %d corrupt\n", r.checked, len(r.repaired), len(r.corrupt))
	for id, fields := range r.repaired {
		fmt.Fprintf(w, "  %s: %s\n", id, strings.Join(fields, ", "))
	}
	for _, id := range r.corrupt {
		fmt.Fprintf(w, "  %s: cannot be decoded\n", id)
	}
	for _, id := range r.deleted {
		fmt.Fprintf(w, "Deleted %s\n", id)
	}
}
