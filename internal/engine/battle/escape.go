package battle

import (
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
)

// Escape tuning
const (
	EscapeBaseChance = 0.5
	EscapeChanceStep = 0.1
	// EscapeHonorPenalty is the honor lost per average enemy level.
	EscapeHonorPenalty = 0.5
)

// EscapeChance returns the chance the next escape attempt succeeds.
func (b *Battle) EscapeChance() float64 {
	return EscapeBaseChance + EscapeChanceStep*float64(b.escapeAttempts)
}

// TryEscape lets u try to flee. A failure counts toward the next attempt's
// chance; a success ends the battle and costs every player honor in
// proportion to the enemies' average level.
func (b *Battle) TryEscape(u *User) bool {
	if b.result.Terminal() {
		return false
	}
	name := u.character.Name()
	if !b.canEscape || u.team != Players {
		b.log.Log(combatlog.KindNotice, name, "", "There is no escape!")
		return false
	}

	if !b.dice.Chance(b.EscapeChance()) {
		b.escapeAttempts++
		b.log.Log(combatlog.KindEscape, name, "", "%s fails to escape", name)
		return false
	}

	penalty := EscapeHonorPenalty * averageLevel(b.Characters(Enemies))
	for _, c := range b.Characters(Players) {
		c.AddHonor(-penalty)
	}
	b.result = Escaped
	b.log.Log(combatlog.KindEscape, name, "", "The party escapes, losing %.0f honor", penalty)
	b.log.Refresh()
	return true
}

func averageLevel(cs []*character.Character) float64 {
	if len(cs) == 0 {
		return 0
	}
	var sum int
	for _, c := range cs {
		sum += c.Level()
	}
	return float64(sum) / float64(len(cs))
}
