// Package status builds the status effects skills inflict and gates them
// behind the target's resistances.
package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/roll"
)

// Freeze leaves a Speed debuff behind when it wears off.
const (
	FreezeChillMagnitude = -0.25
	FreezeChillDuration  = 2
)

// EffectChance is the chance an effect with base chance c lands on a target
// with resistance r. Both inputs are clamped to [0, 1], as is the result.
func EffectChance(r, c float64) float64 {
	r = clamp01(r)
	c = clamp01(c)
	p := math.Max(0, 1-2*r)*(1-c)/(3-c) + c*math.Min(1, 2*(1-r))
	return clamp01(p)
}

// Handler creates status effects and applies them to characters.
type Handler struct {
	dice *roll.Dice
	log  *combatlog.Writer
}

// NewHandler creates a handler. A nil writer discards log output.
func NewHandler(d *roll.Dice, log *combatlog.Writer) *Handler {
	if d == nil {
		d = roll.New(nil)
	}
	if log == nil {
		log = combatlog.NewWriter(nil)
	}
	return &Handler{dice: d, log: log}
}

// CreateDoT builds a damage over time effect. Damage per tick is fixed when
// the effect is created: Bleed and Burn scale with the source's average
// attack, Poison with the target's maximum health.
func (h *Handler) CreateDoT(target, source *character.Character, kind passive.EffectType, strength float64, duration int, chance float64) (*passive.Timed, error) {
	if !kind.IsDoT() {
		return nil, errors.InvalidArgumentf("unknown DoT kind %q", kind)
	}

	var damage float64
	switch kind {
	case passive.Poison:
		damage = strength * target.MaxHealth()
	default:
		damage = strength * source.AverageAttack()
	}

	t := passive.NewTimed(target, sourceTag(kind, source), kind, &passive.DoTPayload{Damage: damage}, duration, chance)
	t.OnTick = func(t *passive.Timed) {
		if !target.IsAlive() {
			return
		}
		_, dealt := h.Damage(target, t.DoT().Damage)
		h.log.Log(combatlog.KindDamage, source.Name(), target.Name(),
			"%s suffers %.0f %s damage", target.Name(), dealt, lower(kind))
		if !target.IsAlive() {
			h.log.Log(combatlog.KindDefeat, "", target.Name(), "%s has been defeated", target.Name())
		}
	}
	return t, nil
}

// CreateStun builds a stun that skips its target's turns.
func (h *Handler) CreateStun(target *character.Character, source string, duration int, chance float64) *passive.Timed {
	return passive.NewTimed(target, source, passive.Stun, nil, duration, chance)
}

// CreateFreeze builds a freeze. On its final tick it leaves a Speed debuff
// on the target for the following turns.
func (h *Handler) CreateFreeze(target *character.Character, source string, duration int, chance float64) *passive.Timed {
	t := passive.NewTimed(target, source, passive.Freeze, nil, duration, chance)
	t.OnTick = func(t *passive.Timed) {
		if t.Duration != 1 {
			return
		}
		target.Passives().Add(passive.NewTimed(target, source+":chill", passive.Debuff, passive.StatPayload{
			Stat:      stats.Speed,
			Kind:      stats.Relative,
			Magnitude: FreezeChillMagnitude,
		}, FreezeChillDuration, 1))
		h.log.Log(combatlog.KindStatus, "", target.Name(), "%s thaws out, chilled", target.Name())
	}
	return t
}

// CreateSleep builds a sleep. It breaks as soon as the sleeper loses health.
func (h *Handler) CreateSleep(target *character.Character, source string, duration int, chance float64) *passive.Timed {
	return passive.NewTimed(target, source, passive.Sleep, nil, duration, chance)
}

// CreateShield builds a shield absorbing amount damage.
func (h *Handler) CreateShield(target *character.Character, source string, amount float64, duration int) *passive.Timed {
	return passive.NewTimed(target, source, passive.Shield, &passive.ShieldPayload{Remaining: amount}, duration, 1)
}

// CreateStatus builds a Stun, Freeze or Sleep.
func (h *Handler) CreateStatus(target *character.Character, source string, kind passive.EffectType, duration int, chance float64) (*passive.Timed, error) {
	switch kind {
	case passive.Stun:
		return h.CreateStun(target, source, duration, chance), nil
	case passive.Freeze:
		return h.CreateFreeze(target, source, duration, chance), nil
	case passive.Sleep:
		return h.CreateSleep(target, source, duration, chance), nil
	}
	return nil, errors.InvalidArgumentf("unknown status %q", kind)
}

// TryAddEffect attaches effect to target unless the resistance roll fails.
// Guaranteed effects skip the roll. Effects without a resistance stat roll
// against their base chance. Dead targets never receive effects.
func (h *Handler) TryAddEffect(target *character.Character, effect *passive.Timed, guaranteed bool) bool {
	if !target.IsAlive() {
		return false
	}

	if !guaranteed {
		p := effect.Chance
		if r, ok := target.Resistance(effect.Type); ok {
			p = EffectChance(r, effect.Chance)
		}
		if !h.dice.Chance(p) {
			h.log.Log(combatlog.KindResist, "", target.Name(), "%s resists %s", target.Name(), lower(effect.Type))
			return false
		}
	}

	target.Passives().Add(effect)
	target.Passives().HandleEvent(passive.Event{
		Kind:   passive.StatusApplied,
		Target: target,
		Status: effect.Type,
	})
	h.log.Log(combatlog.KindStatus, "", target.Name(), "%s is afflicted by %s for %d turns",
		target.Name(), lower(effect.Type), effect.Duration)
	return true
}

// TakeShieldsDamage absorbs damage with target's shields, oldest first,
// removing every shield it depletes. It returns the damage left over.
func (h *Handler) TakeShieldsDamage(target *character.Character, damage float64) float64 {
	for _, sh := range target.Passives().Shields() {
		if damage <= 0 {
			break
		}
		p := sh.Shield()
		absorbed := math.Min(p.Remaining, damage)
		p.Remaining -= absorbed
		damage -= absorbed
		if p.Remaining <= 0 {
			target.Passives().Remove(sh)
			h.log.Log(combatlog.KindStatus, "", target.Name(), "%s's shield breaks", target.Name())
		}
	}
	return math.Max(0, damage)
}

// Damage runs amount through target's shields, removes the rest from health
// and wakes a sleeping target that lost health. It returns the damage
// absorbed and the health lost.
func (h *Handler) Damage(target *character.Character, amount float64) (absorbed, dealt float64) {
	residual := h.TakeShieldsDamage(target, amount)
	dealt = target.TakeDamage(residual)
	if dealt > 0 && len(target.Passives().RemoveTimed(passive.Sleep)) > 0 {
		h.log.Log(combatlog.KindStatus, "", target.Name(), "%s wakes up", target.Name())
	}
	return amount - residual, dealt
}

// ExtendDoT lengthens target's DoTs of kind, or all of them when kind is
// empty, and returns how many were extended.
func (h *Handler) ExtendDoT(target *character.Character, kind passive.EffectType, turns int) int {
	types := []passive.EffectType{passive.Bleed, passive.Poison, passive.Burn}
	if kind != "" {
		types = []passive.EffectType{kind}
	}
	extended := target.Passives().Timed(types...)
	for _, t := range extended {
		t.Duration += turns
	}
	return len(extended)
}

// Clear removes the listed statuses from target, or every harmful one when
// none are listed, and returns what was removed.
func (h *Handler) Clear(target *character.Character, statuses ...passive.EffectType) []*passive.Timed {
	if len(statuses) == 0 {
		statuses = []passive.EffectType{
			passive.Stun, passive.Freeze, passive.Sleep,
			passive.Bleed, passive.Poison, passive.Burn, passive.Debuff,
		}
	}
	removed := target.Passives().RemoveTimed(statuses...)
	if len(removed) > 0 {
		h.log.Log(combatlog.KindStatus, "", target.Name(), "%s is cleansed of %d effects", target.Name(), len(removed))
	}
	return removed
}

func sourceTag(kind passive.EffectType, source *character.Character) string {
	return fmt.Sprintf("%s:%s", kind, source.GetID())
}

func lower(t passive.EffectType) string {
	return strings.ToLower(string(t))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
