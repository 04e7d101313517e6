package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
)

var reportLimit int

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Inspect stored battle reports",
	Long:  `Reports outlive the process only when RPG_BATTLE_REDIS_ADDR is set.`,
}

var listReportsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent battle reports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.close()
		return listReports(cmd.Context(), a.service, cmd.OutOrStdout(), reportLimit)
	},
}

var getReportCmd = &cobra.Command{
	Use:   "get [battle_id]",
	Short: "Print one battle report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.close()
		return printReport(cmd.Context(), a.service, cmd.OutOrStdout(), args[0])
	},
}

func init() {
	listReportsCmd.Flags().IntVar(&reportLimit, "limit", 20, "maximum number of reports")

	reportsCmd.AddCommand(listReportsCmd)
	reportsCmd.AddCommand(getReportCmd)
}

func listReports(ctx context.Context, svc battle.Service, out io.Writer, limit int) error {
	resp, err := svc.ListReports(ctx, &battle.ListReportsInput{Limit: limit})
	if err != nil {
		return err
	}
	if len(resp.Reports) == 0 {
		fmt.Fprintln(out, "No reports")
		return nil
	}
	for _, r := range resp.Reports {
		fmt.Fprintf(out, "%s  %-14s rounds=%-3d %s  %s\n",
			r.ID, r.Result, r.Rounds, r.Location.DungeonType, r.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func printReport(ctx context.Context, svc battle.Service, out io.Writer, battleID string) error {
	resp, err := svc.GetBattle(ctx, &battle.GetBattleInput{BattleID: battleID})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(resp.Report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal report")
	}
	fmt.Fprintln(out, string(data))
	return nil
}
