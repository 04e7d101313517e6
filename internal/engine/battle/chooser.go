package battle

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/pkg/roll"
)

// RandomChooser is the AI policy: a uniformly random affordable skill
// against a uniformly random living opponent, or a pass when nothing is
// affordable.
type RandomChooser struct {
	dice *roll.Dice
}

// NewRandomChooser creates the AI chooser. A nil dice uses the default
// roller.
func NewRandomChooser(d *roll.Dice) *RandomChooser {
	if d == nil {
		d = roll.New(nil)
	}
	return &RandomChooser{dice: d}
}

// Choose implements Chooser. It never blocks.
func (c *RandomChooser) Choose(_ context.Context, req *Request) (Action, error) {
	if len(req.Skills) == 0 || len(req.Opponents) == 0 {
		return Action{Kind: Pass}, nil
	}
	return Action{
		Kind:   UseSkill,
		Skill:  req.Skills[c.dice.Intn(len(req.Skills))],
		Target: req.Opponents[c.dice.Intn(len(req.Opponents))],
	}, nil
}
