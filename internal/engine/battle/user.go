package battle

import (
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
)

// ActionPointer is the allotment divided by Speed on every reset. The
// integer truncation of ActionPointer/Speed sets the speed breakpoints.
const ActionPointer = 10000

// Team identifies a side of the battle.
type Team int

// Teams
const (
	Players Team = 0
	Enemies Team = 1
)

func (t Team) String() string {
	if t == Players {
		return "players"
	}
	return "enemies"
}

// User is a character's per-battle scheduling state. It does not outlive
// the battle it was created for.
type User struct {
	character           *character.Character
	team                Team
	actionValue         int
	maxActionPoints     *stats.Stat
	currentActionPoints float64
	moved               bool
}

var _ resolve.Actor = (*User)(nil)

// NewUser wraps c for a battle and grants its first allotment.
func NewUser(c *character.Character, team Team) *User {
	u := &User{
		character:       c,
		team:            team,
		maxActionPoints: stats.New(stats.MaxActionPoints, 0, 0),
	}
	u.ResetAction()
	return u
}

// Character returns the wrapped character.
func (u *User) Character() *character.Character { return u.character }

// Team returns the user's side.
func (u *User) Team() Team { return u.team }

// ActionValue returns the ticks left before the user's next turn.
func (u *User) ActionValue() int { return u.actionValue }

// Moved reports whether the user has acted this round.
func (u *User) Moved() bool { return u.moved }

// MaxActionPoints returns the stat holding the per-turn budget.
func (u *User) MaxActionPoints() *stats.Stat { return u.maxActionPoints }

// ActionPoints returns the points left this turn.
func (u *User) ActionPoints() float64 { return u.currentActionPoints }

// MaxActionPointsBase returns the unmodified budget, Speed/2.
func (u *User) MaxActionPointsBase() float64 { return u.maxActionPoints.Base }

// SpendActionPoints removes n points, never below zero.
func (u *User) SpendActionPoints(n float64) {
	u.currentActionPoints = math.Max(0, u.currentActionPoints-n)
}

// ResetAction adds a fresh allotment of floor(ActionPointer/Speed) ticks,
// refreshes the action point budget from the current Speed and refills it.
func (u *User) ResetAction() {
	speed := math.Max(1, u.character.StatValue(stats.Speed))
	u.actionValue += max(1, int(ActionPointer/speed))

	u.maxActionPoints.Base = speed / 2
	u.currentActionPoints = u.maxActionPoints.Value(u.character.Level(), u.character)
}

// TryMove counts one tick down. Reaching exactly zero grants the turn:
// the allotment is reset and the user is marked as moved.
func (u *User) TryMove() bool {
	u.actionValue--
	if u.actionValue != 0 {
		return false
	}
	u.ResetAction()
	u.moved = true
	return true
}

// AdvanceMove removes fraction of the remaining ticks, leaving at least one,
// and returns how many were removed.
func (u *User) AdvanceMove(fraction float64) int {
	if fraction <= 0 || u.actionValue <= 1 {
		return 0
	}
	skip := min(int(float64(u.actionValue)*fraction), u.actionValue-1)
	u.actionValue -= skip
	return skip
}

// tick runs the end of turn bookkeeping of the action point stat.
func (u *User) tick() {
	u.maxActionPoints.Tick()
}
