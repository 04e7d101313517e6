// Package roll turns the rpg-toolkit dice roller into the probability and
// range rolls combat resolution needs.
package roll

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// resolution is the die size used for fractional rolls. One face per
// millionth keeps chances such as 0.125 exact.
const resolution = 1_000_000

// Dice rolls probabilities and ranges. It is not safe for concurrent use
// unless the wrapped roller is.
type Dice struct {
	roller dice.Roller
}

// New wraps roller. A nil roller falls back to dice.DefaultRoller.
func New(roller dice.Roller) *Dice {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Dice{roller: roller}
}

// Float returns a uniform value in [0, 1).
func (d *Dice) Float() float64 {
	n, err := d.roller.Roll(resolution)
	if err != nil {
		// A broken roller must not crash a battle; treat it as the lowest face.
		slog.Warn("dice roll failed", "size", resolution, "error", err)
		return 0
	}
	return float64(n-1) / resolution
}

// Chance reports whether an event with probability p happens. p <= 0 never
// happens and p >= 1 always does, without consuming a roll.
func (d *Dice) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return d.Float() < p
}

// Percent is Chance for a probability expressed in [0, 100].
func (d *Dice) Percent(p float64) bool {
	return d.Chance(p / 100)
}

// Between returns a uniform value in [lo, hi]. Swapped bounds are tolerated.
func (d *Dice) Between(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return lo
	}
	return lo + d.Float()*(hi-lo)
}

// Intn returns a uniform index in [0, n). n <= 1 always yields 0.
func (d *Dice) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := d.roller.Roll(n)
	if err != nil {
		slog.Warn("dice roll failed", "size", n, "error", err)
		return 0
	}
	return v - 1
}
