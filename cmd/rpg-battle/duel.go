package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battlereport"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/inventory"
)

var (
	partyClasses []string
	partyName    string
	partyLevel   int
	enemySpecs   []string
	dungeonType  string
	dungeonLevel int
	dungeonFloor int
	canEscape    bool
	interactive  bool
	stashItems   map[string]int
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Fight a single battle",
	Long: `Fight one battle between a party built from class templates and enemies built
from enemy templates. Enemies are given as id, id:level or id:level:count.

With --interactive every player decision is read from stdin; otherwise the
AI plays both sides.`,
	Example: `  rpg-battle duel --class warrior --enemy skeleton:2 --enemy wolf:1:2
  rpg-battle duel --class rogue --item smoke_bomb=2 --interactive --escape`,
	RunE: runDuelCmd,
}

func init() {
	addPartyFlags(duelCmd)
	duelCmd.Flags().StringVar(&partyName, "party", "party", "party id, owns the item stash")
	duelCmd.Flags().BoolVar(&canEscape, "escape", false, "allow the party to flee")
	duelCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose player actions from stdin")
	duelCmd.Flags().StringToIntVar(&stashItems, "item", nil, "items added to the party stash before the fight (name=count)")
}

// addPartyFlags registers the flags duel and simulate share.
func addPartyFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&partyClasses, "class", "c", []string{"warrior"}, "class of each party member")
	cmd.Flags().IntVar(&partyLevel, "level", 1, "party level")
	cmd.Flags().StringArrayVarP(&enemySpecs, "enemy", "e", []string{"skeleton"}, "enemy as id[:level[:count]]")
	cmd.Flags().StringVar(&dungeonType, "dungeon", "cave", "dungeon type")
	cmd.Flags().IntVar(&dungeonLevel, "dungeon-level", 0, "dungeon level")
	cmd.Flags().IntVar(&dungeonFloor, "floor", 0, "dungeon floor, reported to quests")
}

func runDuelCmd(cmd *cobra.Command, _ []string) error {
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
	players, err := buildParty(ctx, a, partyClasses, partyLevel)
	if err != nil {
		return err
	}

	bag, err := inventory.NewBag(ctx, a.items, partyName)
	if err != nil {
		return err
	}
	for _, item := range sortedKeys(stashItems) {
		if err := bag.Grant(item, stashItems[item]); err != nil {
			return errors.Wrapf(err, "failed to stock %s", item)
		}
	}

	input := &battle.StartBattleInput{
		Players:   players,
		Enemies:   enemies,
		Location:  location(),
		CanEscape: canEscape,
		Inventory: bag,
	}
	if interactive {
		input.Chooser = newPromptChooser(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	if _, err := runDuel(ctx, a.service, cmd.OutOrStdout(), input); err != nil {
		return err
	}

	items, err := bag.Items()
	if err != nil {
		return err
	}
	printStash(cmd.OutOrStdout(), partyName, items)
	return nil
}

// runDuel starts a battle and plays it round by round, echoing the battle
// log as it grows.
func runDuel(ctx context.Context, svc battle.Service, out io.Writer, input *battle.StartBattleInput) (*battlereport.Report, error) {
	start, err := svc.StartBattle(ctx, input)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Battle %s\n", start.BattleID)
	printed := printLog(out, start.Report.Log, 0)

	for {
		round, err := svc.RunRound(ctx, &battle.RunRoundInput{BattleID: start.BattleID})
		if err != nil {
			return nil, err
		}
		printed = printLog(out, round.Report.Log, printed)
		if round.Result.Terminal() {
			printOutcome(out, round.Report)
			return round.Report, nil
		}
	}
}

// printLog writes the entries after the first skip and returns the new
// count. Refresh markers carry no text.
func printLog(out io.Writer, entries []combatlog.Entry, skip int) int {
	if skip > len(entries) {
		skip = len(entries)
	}
	for _, e := range entries[skip:] {
		switch e.Kind {
		case combatlog.KindRefresh:
			continue
		case combatlog.KindTurn:
			if e.Actor == "" {
				fmt.Fprintf(out, "\n== %s ==\n", e.Message)
				continue
			}
		}
		fmt.Fprintf(out, "  %s\n", e.Message)
	}
	return len(entries)
}

func printOutcome(out io.Writer, r *battlereport.Report) {
	fmt.Fprintf(out, "\nResult: %s after %d rounds\n", r.Result, r.Rounds)
	if r.Error != "" {
		fmt.Fprintf(out, "Reason: %s\n", r.Error)
	}
	for _, s := range r.Players {
		fmt.Fprintf(out, "  %-12s L%-3d HP %.0f/%.0f\n", s.Name, s.Level, s.Health, s.MaxHealth)
	}
	if r.Rewards == nil {
		return
	}
	fmt.Fprintf(out, "Rewards: %.0f gold, %.0f honor\n", r.Rewards.Gold, r.Rewards.Honor)
	for _, id := range sortedKeys(r.Rewards.Experience) {
		fmt.Fprintf(out, "  %s +%.1f xp\n", id, r.Rewards.Experience[id])
	}
	for _, it := range r.Rewards.Items {
		fmt.Fprintf(out, "  %s x%d\n", it.Item, it.Count)
	}
}

func printStash(out io.Writer, owner string, items map[string]int) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "Stash of %s:\n", owner)
	for _, item := range sortedKeys(items) {
		fmt.Fprintf(out, "  %s x%d\n", item, items[item])
	}
}

// parseEnemySpecs reads id[:level[:count]] values. A missing level uses
// defaultLevel.
func parseEnemySpecs(values []string, defaultLevel int) ([]battle.EnemySpec, error) {
	if len(values) == 0 {
		return nil, errors.InvalidArgument("at least one enemy is required")
	}

	specs := make([]battle.EnemySpec, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ":")
		if len(parts) > 3 || parts[0] == "" {
			return nil, errors.InvalidArgumentf("enemy %q: want id[:level[:count]]", v)
		}
		spec := battle.EnemySpec{ID: parts[0], Level: defaultLevel, Count: 1}
		if len(parts) > 1 {
			n, err := strconv.Atoi(parts[1])
			if err != nil || n < 1 {
				return nil, errors.InvalidArgumentf("enemy %q: level must be a positive number", v)
			}
			spec.Level = n
		}
		if len(parts) > 2 {
			n, err := strconv.Atoi(parts[2])
			if err != nil || n < 1 {
				return nil, errors.InvalidArgumentf("enemy %q: count must be a positive number", v)
			}
			spec.Count = n
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func buildParty(ctx context.Context, a *app, classes []string, level int) ([]*character.Character, error) {
	if len(classes) == 0 {
		return nil, errors.InvalidArgument("at least one class is required")
	}
	players := make([]*character.Character, 0, len(classes))
	for _, class := range classes {
		p, err := a.factory.NewPlayer(ctx, class, "", level)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

func location() battleengine.Location {
	return battleengine.Location{
		DungeonType:  dungeonType,
		DungeonLevel: dungeonLevel,
		Floor:        dungeonFloor,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
