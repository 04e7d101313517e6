package resolve

//go:generate mockgen -destination=mock/mock_inventory.go -package=resolvemock github.com/KirkDiggler/rpg-battle/internal/engine/resolve Inventory

import (
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
)

// Inventory is the item store skills with an item cost draw from and
// rewards are granted into.
type Inventory interface {
	// HasItem reports whether at least n of alias are held.
	HasItem(alias string, n int) bool
	Consume(alias string, n int) error
	Grant(item string, n int) error
}

// Actor is a character taking part in a battle together with its
// per-battle action budget.
type Actor interface {
	Character() *character.Character
	// ActionPoints returns the points left this turn.
	ActionPoints() float64
	// MaxActionPointsBase returns the unmodified per-turn budget skill costs
	// are fractions of.
	MaxActionPointsBase() float64
	SpendActionPoints(n float64)
	// AdvanceMove brings the next turn closer by fraction of the action
	// allotment and returns the ticks skipped.
	AdvanceMove(fraction float64) int
}
