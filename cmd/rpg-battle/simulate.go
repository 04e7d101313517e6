package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
)

var (
	simRuns    int
	simWorkers int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many AI battles and report the outcome distribution",
	Long: `Play the same matchup many times with the AI on both sides and report how
often each side wins. Battles run in parallel, each with a fresh party.`,
	Example: `  rpg-battle simulate --class mage --enemy lich:5 --runs 500`,
	RunE:    runSimulateCmd,
}

func init() {
	addPartyFlags(simulateCmd)
	simulateCmd.Flags().IntVarP(&simRuns, "runs", "n", 100, "number of battles")
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 0, "parallel battles (default RPG_BATTLE_SIM_WORKERS)")
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	enemies, err := parseEnemySpecs(enemySpecs, partyLevel)
	if err != nil {
		return err
	}
	workers := simWorkers
	if workers <= 0 {
		workers = cfg.SimWorkers
	}

	summary, err := runSimulation(ctx, a.service, &simulation{
		Runs:    simRuns,
		Workers: workers,
		NewParty: func(ctx context.Context) ([]*character.Character, error) {
			return buildParty(ctx, a, partyClasses, partyLevel)
		},
		Enemies:  enemies,
		Location: location(),
	})
	if err != nil {
		return err
	}
	summary.print(cmd.OutOrStdout())
	return nil
}

// simulation describes a batch of identical AI battles.
type simulation struct {
	Runs     int
	Workers  int
	NewParty func(ctx context.Context) ([]*character.Character, error)
	Enemies  []battle.EnemySpec
	Location battleengine.Location
}

// simSummary tallies a batch.
type simSummary struct {
	Runs    int
	Results map[battleengine.Result]int
	Rounds  int
	Gold    float64
}

// runSimulation plays s.Runs battles on at most s.Workers goroutines. The
// first failing battle cancels the rest.
func runSimulation(ctx context.Context, svc battle.Service, s *simulation) (*simSummary, error) {
	if s.Runs < 1 {
		return nil, errors.InvalidArgument("runs must be at least 1")
	}
	if s.Workers < 1 {
		return nil, errors.InvalidArgument("workers must be at least 1")
	}

	var mu sync.Mutex
	summary := &simSummary{Results: make(map[battleengine.Result]int)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for i := 0; i < s.Runs; i++ {
		g.Go(func() error {
			players, err := s.NewParty(ctx)
			if err != nil {
				return err
			}
			start, err := svc.StartBattle(ctx, &battle.StartBattleInput{
				Players:  players,
				Enemies:  s.Enemies,
				Location: s.Location,
			})
			if err != nil {
				return err
			}
			out, err := svc.RunBattle(ctx, &battle.RunBattleInput{BattleID: start.BattleID})
			if err != nil {
				return errors.Wrapf(err, "battle %d failed", i+1)
			}

			mu.Lock()
			defer mu.Unlock()
			summary.Runs++
			summary.Results[out.Result]++
			summary.Rounds += out.Report.Rounds
			if out.Rewards != nil {
				summary.Gold += out.Rewards.Gold
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

// WinRate is the share of player victories.
func (s *simSummary) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Results[battleengine.PlayerVictory]) / float64(s.Runs)
}

func (s *simSummary) print(out io.Writer) {
	fmt.Fprintf(out, "Battles: %d\n", s.Runs)

	results := make([]string, 0, len(s.Results))
	for r := range s.Results {
		results = append(results, string(r))
	}
	sort.Strings(results)
	for _, r := range results {
		n := s.Results[battleengine.Result(r)]
		fmt.Fprintf(out, "  %-14s %5d  %5.1f%%\n", r, n, 100*float64(n)/float64(s.Runs))
	}
	if s.Runs > 0 {
		fmt.Fprintf(out, "Average rounds: %.1f\n", float64(s.Rounds)/float64(s.Runs))
		fmt.Fprintf(out, "Average gold:   %.1f\n", s.Gold/float64(s.Runs))
	}
}
