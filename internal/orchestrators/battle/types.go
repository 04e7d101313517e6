package battle

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battlereport"
)

// EnemySpec asks the enemy factory for Count enemies of a template.
type EnemySpec struct {
	ID    string
	Level int
	// Count defaults to 1.
	Count int
}

// StartBattleInput defines the request for starting a battle
type StartBattleInput struct {
	Players   []*character.Character
	Enemies   []EnemySpec
	Location  battleengine.Location
	CanEscape bool
	// Chooser decides for the players. Nil lets the AI play them.
	Chooser battleengine.Chooser
	// Roller overrides the service roller for this battle.
	Roller dice.Roller
	// Inventory overrides the service inventory for this battle.
	Inventory resolve.Inventory
}

// StartBattleOutput defines the response for starting a battle
type StartBattleOutput struct {
	BattleID string
	Report   *battlereport.Report
}

// RunBattleInput defines the request for running a battle to its end
type RunBattleInput struct {
	BattleID string
}

// RunBattleOutput defines the response for running a battle
type RunBattleOutput struct {
	Result  battleengine.Result
	Rewards *battleengine.Rewards
	Report  *battlereport.Report
}

// RunRoundInput defines the request for running one round
type RunRoundInput struct {
	BattleID string
}

// RunRoundOutput defines the response for running one round
type RunRoundOutput struct {
	Result battleengine.Result
	Round  int
	Report *battlereport.Report
}

// GetBattleInput defines the request for looking up a battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput defines the response for looking up a battle
type GetBattleOutput struct {
	Report *battlereport.Report
	// Active is true while the battle is still held in memory.
	Active bool
}

// AbortBattleInput defines the request for aborting a battle
type AbortBattleInput struct {
	BattleID string
	Reason   string
}

// AbortBattleOutput defines the response for aborting a battle
type AbortBattleOutput struct {
	Report *battlereport.Report
}

// ListReportsInput defines the request for listing recent reports
type ListReportsInput struct {
	Limit int
}

// ListReportsOutput defines the response for listing recent reports
type ListReportsOutput struct {
	Reports []*battlereport.Report
}
