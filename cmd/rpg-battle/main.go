// Package main is the entry point for the rpg-battle command line
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/config"
)

// cfg is loaded from the environment before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "rpg-battle",
	Short: "Turn-based RPG battle resolver",
	Long: `rpg-battle resolves turn-based fights between a party and a group of enemies.

Configuration comes from RPG_BATTLE_* environment variables. Set
RPG_BATTLE_REDIS_ADDR to keep battle reports and the party stash in Redis.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()})
		slog.SetDefault(slog.New(handler))
		return nil
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(duelCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(catalogCmd)
}
