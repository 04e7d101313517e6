// Package battle implements the battle orchestrator: it starts battles by id,
// runs them, hands out rewards and keeps a report of every battle.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/roll"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battlereport"
)

// maxEnemiesPerSpec bounds EnemySpec.Count.
const maxEnemiesPerSpec = 10

// Service defines the interface for battle operations
type Service interface {
	// StartBattle creates a battle and stores its initial report
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// RunBattle runs a battle until it ends
	RunBattle(ctx context.Context, input *RunBattleInput) (*RunBattleOutput, error)

	// RunRound runs a single round of a battle
	RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error)

	// GetBattle returns the report of a running or finished battle
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)

	// AbortBattle stops a running battle
	AbortBattle(ctx context.Context, input *AbortBattleInput) (*AbortBattleOutput, error)

	// ListReports returns the most recent battle reports
	ListReports(ctx context.Context, input *ListReportsInput) (*ListReportsOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	IDGenerator  idgen.Generator
	EnemyFactory battleengine.EnemyFactory
	Repository   battlereport.Repository

	// Roller is used by battles that do not bring their own. Nil uses the
	// default roller.
	Roller dice.Roller
	// Inventory receives reward items and pays item costs for battles that
	// do not bring their own. Optional.
	Inventory resolve.Inventory
	// QuestNotifier receives quest progress after victories. Optional.
	QuestNotifier battleengine.QuestNotifier
	Listeners     *resolve.Registry
	BossDrops     map[character.Category]string
	MaxRounds     int
	// Logger receives the battle log of every battle at debug level.
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EnemyFactory == nil {
		vb.RequiredField("EnemyFactory")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.MaxRounds < 0 {
		vb.Field("MaxRounds", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	idGen     idgen.Generator
	enemies   battleengine.EnemyFactory
	repo      battlereport.Repository
	roller    dice.Roller
	inventory resolve.Inventory
	notifier  battleengine.QuestNotifier
	listeners *resolve.Registry
	bossDrops map[character.Category]string
	maxRounds int
	logger    *slog.Logger

	mu      sync.RWMutex
	battles map[string]*battleState
}

// battleState is one battle held in memory until it ends. mu serializes
// every operation on the battle. done is set once finish has run; callers
// that waited on mu must check it before touching the battle.
type battleState struct {
	mu        sync.Mutex
	done      bool
	battle    *battleengine.Battle
	recorder  *combatlog.Recorder
	report    *battlereport.Report
	players   []*character.Character
	inventory resolve.Inventory
	rewards   *battleengine.Rewards
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	listeners := cfg.Listeners
	if listeners == nil {
		listeners = resolve.DefaultRegistry()
	}

	return &orchestrator{
		idGen:     cfg.IDGenerator,
		enemies:   cfg.EnemyFactory,
		repo:      cfg.Repository,
		roller:    cfg.Roller,
		inventory: cfg.Inventory,
		notifier:  cfg.QuestNotifier,
		listeners: listeners,
		bossDrops: cfg.BossDrops,
		maxRounds: cfg.MaxRounds,
		logger:    logger,
		battles:   make(map[string]*battleState),
	}, nil
}

// StartBattle creates a battle and stores its initial report
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if len(input.Players) == 0 {
		vb.RequiredField("players")
	}
	if len(input.Enemies) == 0 {
		vb.RequiredField("enemies")
	}
	for i, spec := range input.Enemies {
		errors.ValidateRequired("enemies.id", spec.ID, vb)
		if spec.Count < 0 || spec.Count > maxEnemiesPerSpec {
			vb.Fieldf("enemies.count", "enemy %d: count must be between 0 and %d", i, maxEnemiesPerSpec)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	battleID := o.idGen.Generate()

	var enemies []*character.Character
	for _, spec := range input.Enemies {
		count := spec.Count
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			enemy, err := o.enemies.NewEnemy(ctx, spec.ID, spec.Level)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to create enemy %s", spec.ID)
			}
			enemies = append(enemies, enemy)
		}
	}

	roller := input.Roller
	if roller == nil {
		roller = o.roller
	}
	inv := input.Inventory
	if inv == nil {
		inv = o.inventory
	}
	recorder := combatlog.NewRecorder()
	sink := combatlog.Multi(recorder, combatlog.NewSlogSink(o.logger, slog.LevelDebug, "battle_id", battleID))

	b, err := battleengine.New(&battleengine.Config{
		ID:        battleID,
		Players:   input.Players,
		Enemies:   enemies,
		Dice:      roll.New(roller),
		Log:       combatlog.NewWriter(sink),
		Chooser:   input.Chooser,
		Inventory: inv,
		Listeners: o.listeners,
		Location:  input.Location,
		CanEscape: input.CanEscape,
		MaxRounds: o.maxRounds,
		BossDrops: o.bossDrops,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle")
	}

	state := &battleState{
		battle:    b,
		recorder:  recorder,
		players:   input.Players,
		inventory: inv,
	}
	state.report = snapshot(state)

	saved, err := o.repo.Save(ctx, &battlereport.SaveInput{Report: state.report})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save report for battle %s", battleID)
	}
	state.report = saved.Report

	o.mu.Lock()
	o.battles[battleID] = state
	o.mu.Unlock()

	slog.Info("Battle started",
		"battle_id", battleID,
		"player_count", len(input.Players),
		"enemy_count", len(enemies),
		"dungeon_type", input.Location.DungeonType,
	)

	return &StartBattleOutput{
		BattleID: battleID,
		Report:   saved.Report,
	}, nil
}

// RunBattle runs a battle until it ends
func (o *orchestrator) RunBattle(ctx context.Context, input *RunBattleInput) (*RunBattleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	state, err := o.active(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.done {
		return nil, errors.FailedPreconditionf("battle %s has already ended", input.BattleID)
	}

	result, runErr := state.battle.Run(ctx)
	report, err := o.finish(ctx, state, runErr)
	if err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, runErr
	}

	return &RunBattleOutput{
		Result:  result,
		Rewards: report.Rewards,
		Report:  report,
	}, nil
}

// RunRound runs a single round of a battle
func (o *orchestrator) RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	state, err := o.active(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.done {
		return nil, errors.FailedPreconditionf("battle %s has already ended", input.BattleID)
	}

	result, runErr := state.battle.RunRound(ctx)
	var report *battlereport.Report
	if result.Terminal() {
		report, err = o.finish(ctx, state, runErr)
	} else {
		report, err = o.save(ctx, state, runErr)
	}
	if err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, runErr
	}

	return &RunRoundOutput{
		Result: result,
		Round:  state.battle.Round(),
		Report: report,
	}, nil
}

// GetBattle returns the report of a running or finished battle
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	o.mu.RLock()
	state, ok := o.battles[input.BattleID]
	o.mu.RUnlock()
	if ok {
		state.mu.Lock()
		defer state.mu.Unlock()
		if state.done {
			return &GetBattleOutput{Report: state.report}, nil
		}
		return &GetBattleOutput{Report: snapshot(state), Active: true}, nil
	}

	out, err := o.repo.Get(ctx, &battlereport.GetInput{ID: input.BattleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get battle %s", input.BattleID)
	}
	return &GetBattleOutput{Report: out.Report}, nil
}

// AbortBattle stops a running battle. Aborting a finished battle returns
// its report unchanged.
func (o *orchestrator) AbortBattle(ctx context.Context, input *AbortBattleInput) (*AbortBattleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	o.mu.RLock()
	state, ok := o.battles[input.BattleID]
	o.mu.RUnlock()
	if !ok {
		out, err := o.repo.Get(ctx, &battlereport.GetInput{ID: input.BattleID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to abort battle %s", input.BattleID)
		}
		return &AbortBattleOutput{Report: out.Report}, nil
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.done {
		return &AbortBattleOutput{Report: state.report}, nil
	}

	reason := input.Reason
	if reason == "" {
		reason = "aborted by request"
	}
	state.battle.Abort()
	report, err := o.finish(ctx, state, errors.Aborted(reason))
	if err != nil {
		return nil, err
	}

	return &AbortBattleOutput{Report: report}, nil
}

// ListReports returns the most recent battle reports
func (o *orchestrator) ListReports(ctx context.Context, input *ListReportsInput) (*ListReportsOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	out, err := o.repo.List(ctx, &battlereport.ListInput{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battle reports")
	}
	return &ListReportsOutput{Reports: out.Reports}, nil
}

func (o *orchestrator) active(ctx context.Context, battleID string) (*battleState, error) {
	o.mu.RLock()
	state, ok := o.battles[battleID]
	o.mu.RUnlock()
	if ok {
		return state, nil
	}

	if _, err := o.repo.Get(ctx, &battlereport.GetInput{ID: battleID}); err == nil {
		return nil, errors.FailedPreconditionf("battle %s has already ended", battleID)
	}
	return nil, errors.NotFoundf("battle %s not found", battleID)
}

// finish hands out rewards, stores the final report and forgets the battle.
// Reward and quest failures are logged and kept in the report; they never
// undo the outcome.
func (o *orchestrator) finish(ctx context.Context, state *battleState, runErr error) (*battlereport.Report, error) {
	b := state.battle
	state.done = true

	if b.Result() == battleengine.PlayerVictory {
		o.reward(ctx, state)
	}

	report, err := o.save(ctx, state, runErr)

	o.mu.Lock()
	delete(o.battles, b.ID())
	o.mu.Unlock()

	slog.Info("Battle finished",
		"battle_id", b.ID(),
		"result", b.Result(),
		"rounds", b.Round(),
	)
	return report, err
}

func (o *orchestrator) reward(ctx context.Context, state *battleState) {
	b := state.battle

	rewards, err := b.Rewards()
	if err != nil {
		slog.Warn("Failed to roll rewards", "battle_id", b.ID(), "error", err)
		return
	}
	state.rewards = rewards
	if err := rewards.Apply(state.players, state.inventory); err != nil {
		slog.Warn("Failed to apply rewards", "battle_id", b.ID(), "error", err)
	}
	if o.notifier != nil && len(rewards.Quests) > 0 {
		if err := o.notifier.Notify(ctx, rewards.Quests); err != nil {
			slog.Warn("Failed to notify quest progress", "battle_id", b.ID(), "error", err)
		}
	}
}

func (o *orchestrator) save(ctx context.Context, state *battleState, runErr error) (*battlereport.Report, error) {
	report := snapshot(state)
	if runErr != nil {
		report.Error = errors.GetMessage(runErr)
	}

	saved, err := o.repo.Save(ctx, &battlereport.SaveInput{Report: report})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save report for battle %s", report.ID)
	}
	state.report = saved.Report
	return saved.Report, nil
}

// snapshot builds the current report of a battle, keeping the creation time
// of the stored one.
func snapshot(state *battleState) *battlereport.Report {
	b := state.battle
	report := &battlereport.Report{
		ID:       b.ID(),
		Result:   b.Result(),
		Rounds:   b.Round(),
		Location: b.Location(),
		Players:  summaries(b.Characters(battleengine.Players)),
		Enemies:  summaries(b.Characters(battleengine.Enemies)),
		Log:      state.recorder.Entries(),
		Rewards:  state.rewards,
	}
	if state.report != nil {
		report.CreatedAt = state.report.CreatedAt
		report.Error = state.report.Error
	}
	return report
}

func summaries(cs []*character.Character) []character.Summary {
	out := make([]character.Summary, len(cs))
	for i, c := range cs {
		out[i] = c.Summary()
	}
	return out
}
