// Package main is the entry point for the spellforge combat server
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spellforge",
	Short: "Spellforge combat server",
	Long:  `Spellforge runs turn-based spell combat encounters and spell crafting over gRPC.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is normal outside local development
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			slog.Warn("Failed to load .env file", "error", err)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(simulateCmd)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
