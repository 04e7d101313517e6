package passive

import (
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event context keys carried on the bus
const (
	contextSkill  = "skill"
	contextAmount = "amount"
	contextStatus = "status"
)

// eventKinds lists every kind a listener is subscribed to.
var eventKinds = []EventKind{OnHit, PerTurn, DamageDealt, DamageTaken, StatusApplied}

func toBusEvent(ev Event) *events.GameEvent {
	ge := events.NewGameEvent(string(ev.Kind), ev.Source, ev.Target)
	ctx := ge.Context()
	if ev.Skill != "" {
		ctx.Set(contextSkill, ev.Skill)
	}
	if ev.Amount != 0 {
		ctx.Set(contextAmount, ev.Amount)
	}
	if ev.Status != "" {
		ctx.Set(contextStatus, ev.Status)
	}
	return ge
}

func fromBusEvent(e events.Event) Event {
	ev := Event{
		Kind:   EventKind(e.Type()),
		Source: e.Source(),
		Target: e.Target(),
	}
	ctx := e.Context()
	if v, ok := ctx.Get(contextSkill); ok {
		ev.Skill, _ = v.(string)
	}
	if v, ok := ctx.Get(contextAmount); ok {
		ev.Amount, _ = v.(float64)
	}
	if v, ok := ctx.Get(contextStatus); ok {
		ev.Status, _ = v.(EffectType)
	}
	return ev
}
