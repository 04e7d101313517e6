package passive

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
)

// EffectType tags what an Innate or Timed effect represents.
type EffectType string

// Status effect types
const (
	Stun   EffectType = "Stun"
	Freeze EffectType = "Freeze"
	Sleep  EffectType = "Sleep"
	Bleed  EffectType = "Bleed"
	Poison EffectType = "Poison"
	Burn   EffectType = "Burn"
	Shield EffectType = "Shield"
	Debuff EffectType = "Debuff"
)

// Stance and modifier effect types
const (
	StatChange      EffectType = "StatChange"
	ScaleStat       EffectType = "ScaleStat"
	NoResourceRegen EffectType = "NoResourceRegen"
)

var resistances = map[EffectType]stats.Name{
	Stun:   stats.StunResistance,
	Freeze: stats.FreezeResistance,
	Sleep:  stats.SleepResistance,
	Bleed:  stats.BleedResistance,
	Poison: stats.PoisonResistance,
	Burn:   stats.BurnResistance,
	Debuff: stats.DebuffResistance,
}

// Resistance returns the stat that resists effects of type t.
func (t EffectType) Resistance() (stats.Name, bool) {
	name, ok := resistances[t]
	return name, ok
}

// IsDoT reports whether t deals damage every turn.
func (t EffectType) IsDoT() bool {
	return t == Bleed || t == Poison || t == Burn
}

// Suppresses reports whether t prevents its owner from acting.
func (t EffectType) Suppresses() bool {
	return t == Stun || t == Freeze || t == Sleep
}

// IsHarmful reports whether t is a status a cleanse removes.
func (t EffectType) IsHarmful() bool {
	return t.IsDoT() || t.Suppresses() || t == Debuff
}

// Payload carries the typed parameters of an Innate or Timed effect.
type Payload interface {
	payload()
}

// StatPayload exposes a modifier for Stat while the effect is active.
type StatPayload struct {
	Stat      stats.Name
	Kind      stats.ModifierKind
	Magnitude float64
}

// ScalePayload exposes a modifier for Stat whose magnitude is Factor times
// the owner's current value of From.
type ScalePayload struct {
	Stat   stats.Name
	From   stats.Name
	Kind   stats.ModifierKind
	Factor float64
}

// DoTPayload is the damage a DoT deals on each tick.
type DoTPayload struct {
	Damage float64
}

// ShieldPayload is the damage a shield can still absorb.
type ShieldPayload struct {
	Remaining float64
}

func (StatPayload) payload()    {}
func (ScalePayload) payload()   {}
func (*DoTPayload) payload()    {}
func (*ShieldPayload) payload() {}

// EventKind names a battle event listeners can react to.
type EventKind string

// Battle events. Kinds the toolkit names share its event types.
const (
	OnHit         EventKind = "on_hit"
	PerTurn       EventKind = events.EventTurnStart
	DamageDealt   EventKind = "damage_dealt"
	DamageTaken   EventKind = events.EventAfterDamage
	StatusApplied EventKind = events.EventStatusApplied
)

// Event is dispatched to every character's passive collection involved in
// it. Source acted, Target was acted upon; either may be nil.
type Event struct {
	Kind   EventKind
	Source core.Entity
	Target core.Entity
	Skill  string
	Amount float64
	Status EffectType
}

// StatReader reads a character's effective stat value. Scale payloads use
// it to size their modifiers.
type StatReader interface {
	StatValue(name stats.Name) float64
}
