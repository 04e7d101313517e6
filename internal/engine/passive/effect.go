// Package passive holds the standing effects attached to a character:
// permanent innate toggles, event listeners and timed effects such as buffs,
// damage over time, stuns and shields.
package passive

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Effect is implemented by *Innate, *Listener and *Timed.
type Effect interface {
	Owner() core.Entity
	Source() string
}

// Innate is a permanent effect that stays until it is toggled off.
type Innate struct {
	owner   core.Entity
	source  string
	Type    EffectType
	Payload Payload
}

// NewInnate creates an innate effect. payload may be nil for pure flags
// such as NoResourceRegen.
func NewInnate(owner core.Entity, source string, typ EffectType, payload Payload) *Innate {
	return &Innate{
		owner:   owner,
		source:  source,
		Type:    typ,
		Payload: payload,
	}
}

// Owner returns the character carrying the effect.
func (e *Innate) Owner() core.Entity { return e.owner }

// Source returns the tag of whatever created the effect.
func (e *Innate) Source() string { return e.source }

// Listener reacts to battle events accepted by Match.
type Listener struct {
	owner  core.Entity
	source string
	Match  func(Event) bool
	React  func(Event)
}

// NewListener creates a listener. A nil match accepts every event.
func NewListener(owner core.Entity, source string, match func(Event) bool, react func(Event)) *Listener {
	return &Listener{
		owner:  owner,
		source: source,
		Match:  match,
		React:  react,
	}
}

// Owner returns the character carrying the listener.
func (l *Listener) Owner() core.Entity { return l.owner }

// Source returns the tag of whatever created the listener.
func (l *Listener) Source() string { return l.source }

// Accepts reports whether the listener should react to ev.
func (l *Listener) Accepts(ev Event) bool {
	return l.Match == nil || l.Match(ev)
}

// Timed is an innate effect with a turn counter. OnTick runs at the start of
// each of its owner's turns before the counter is decremented; OnExpire runs
// once after the effect has been removed by running out.
type Timed struct {
	Innate
	Duration int
	// Chance is the base application chance used by the resistance gate.
	Chance   float64
	OnTick   func(*Timed)
	OnExpire func(*Timed)
}

// NewTimed creates a timed effect that lasts duration turns.
func NewTimed(owner core.Entity, source string, typ EffectType, payload Payload, duration int, chance float64) *Timed {
	return &Timed{
		Innate:   *NewInnate(owner, source, typ, payload),
		Duration: duration,
		Chance:   chance,
	}
}

// Shield returns the shield payload, or nil if t is not a shield.
func (t *Timed) Shield() *ShieldPayload {
	p, _ := t.Payload.(*ShieldPayload)
	return p
}

// DoT returns the damage payload, or nil if t is not a DoT.
func (t *Timed) DoT() *DoTPayload {
	p, _ := t.Payload.(*DoTPayload)
	return p
}
