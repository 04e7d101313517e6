package passive

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
)

// Collection holds every passive effect on one character. It is owned by a
// single battle goroutine and is not safe for concurrent use.
//
// Listeners are subscribed to the collection's event bus, one subscription
// per event kind. Events reach only the collections they are handed to.
type Collection struct {
	owner     core.Entity
	innate    []*Innate
	listeners []*Listener
	timed     []*Timed

	bus  *events.Bus
	subs map[*Listener][]string
	// seq orders subscriptions by attach time
	seq int
}

// NewCollection creates an empty collection for owner.
func NewCollection(owner core.Entity) *Collection {
	return &Collection{
		owner: owner,
		bus:   events.NewBus(),
		subs:  make(map[*Listener][]string),
	}
}

// Add attaches e. Timed effects are kept in insertion order, which is the
// order shields absorb damage in.
func (c *Collection) Add(e Effect) {
	switch v := e.(type) {
	case *Timed:
		c.timed = append(c.timed, v)
	case *Innate:
		c.innate = append(c.innate, v)
	case *Listener:
		c.listeners = append(c.listeners, v)
		c.subscribe(v)
	default:
		slog.Warn("ignoring unknown passive effect", "type", fmt.Sprintf("%T", e))
	}
}

// Remove detaches e by identity and reports whether it was present.
func (c *Collection) Remove(e Effect) bool {
	switch v := e.(type) {
	case *Timed:
		return removePtr(&c.timed, v)
	case *Innate:
		return removePtr(&c.innate, v)
	case *Listener:
		c.unsubscribe(v)
		return removePtr(&c.listeners, v)
	}
	return false
}

// RemoveSource detaches every effect created by source and returns how many
// were removed.
func (c *Collection) RemoveSource(source string) int {
	n := len(c.innate) + len(c.listeners) + len(c.timed)
	c.innate = slices.DeleteFunc(c.innate, func(e *Innate) bool { return e.source == source })
	c.listeners = slices.DeleteFunc(c.listeners, func(l *Listener) bool {
		if l.source != source {
			return false
		}
		c.unsubscribe(l)
		return true
	})
	c.timed = slices.DeleteFunc(c.timed, func(t *Timed) bool { return t.source == source })
	return n - len(c.innate) - len(c.listeners) - len(c.timed)
}

// RemoveTimed detaches every timed effect of the given types and returns them.
func (c *Collection) RemoveTimed(types ...EffectType) []*Timed {
	var removed []*Timed
	c.timed = slices.DeleteFunc(c.timed, func(t *Timed) bool {
		if slices.Contains(types, t.Type) {
			removed = append(removed, t)
			return true
		}
		return false
	})
	return removed
}

// ToggleInnate removes the innate effect with e's type and source if one is
// present, otherwise adds e. It reports whether the effect is now active.
func (c *Collection) ToggleInnate(e *Innate) bool {
	idx := slices.IndexFunc(c.innate, func(x *Innate) bool {
		return x.Type == e.Type && x.source == e.source
	})
	if idx >= 0 {
		c.innate = slices.Delete(c.innate, idx, idx+1)
		return false
	}
	c.innate = append(c.innate, e)
	return true
}

// ToggleListener removes the listener with l's source if one is present,
// otherwise adds l. It reports whether the listener is now active.
func (c *Collection) ToggleListener(l *Listener) bool {
	idx := slices.IndexFunc(c.listeners, func(x *Listener) bool { return x.source == l.source })
	if idx >= 0 {
		c.unsubscribe(c.listeners[idx])
		c.listeners = slices.Delete(c.listeners, idx, idx+1)
		return false
	}
	c.listeners = append(c.listeners, l)
	c.subscribe(l)
	return true
}

// HandleEvent publishes ev on the collection's bus. Every listener accepting
// it reacts, in attach order. Listeners added or removed while reacting take
// effect from the next event.
func (c *Collection) HandleEvent(ev Event) {
	if err := c.bus.Publish(context.Background(), toBusEvent(ev)); err != nil {
		slog.Warn("passive event failed",
			"owner", entityID(c.owner),
			"kind", ev.Kind,
			"error", err)
	}
}

func (c *Collection) subscribe(l *Listener) {
	if _, ok := c.subs[l]; ok {
		return
	}
	c.seq++
	handle := func(_ context.Context, e events.Event) error {
		ev := fromBusEvent(e)
		if l.React != nil && l.Accepts(ev) {
			l.React(ev)
		}
		return nil
	}
	ids := make([]string, 0, len(eventKinds))
	for _, kind := range eventKinds {
		ids = append(ids, c.bus.SubscribeFunc(string(kind), c.seq, handle))
	}
	c.subs[l] = ids
}

func (c *Collection) unsubscribe(l *Listener) {
	for _, id := range c.subs[l] {
		if err := c.bus.Unsubscribe(id); err != nil {
			slog.Warn("failed to unsubscribe listener", "owner", entityID(c.owner), "source", l.source, "error", err)
		}
	}
	delete(c.subs, l)
}

// TickEffects advances every timed effect by one turn. Each effect present
// when the tick starts runs OnTick at most once, then loses a turn; effects
// reaching zero are removed before OnExpire runs. Effects removed by an
// earlier OnTick in the same pass are skipped.
func (c *Collection) TickEffects() {
	for _, t := range slices.Clone(c.timed) {
		if !slices.Contains(c.timed, t) {
			continue
		}
		if t.OnTick != nil {
			t.OnTick(t)
			if !slices.Contains(c.timed, t) {
				continue
			}
		}
		t.Duration--
		if t.Duration > 0 {
			continue
		}
		removePtr(&c.timed, t)
		slog.Debug("timed effect expired",
			"owner", entityID(c.owner),
			"type", t.Type,
			"source", t.source)
		if t.OnExpire != nil {
			t.OnExpire(t)
		}
	}
}

// CanMove reports whether no suppressing status is active.
func (c *Collection) CanMove() bool {
	for _, t := range c.timed {
		if t.Type.Suppresses() {
			return false
		}
	}
	return true
}

// Has reports whether an innate or timed effect of typ is active.
func (c *Collection) Has(typ EffectType) bool {
	for _, e := range c.innate {
		if e.Type == typ {
			return true
		}
	}
	for _, t := range c.timed {
		if t.Type == typ {
			return true
		}
	}
	return false
}

// Timed returns the active timed effects of the given types, or all of them
// when no type is given.
func (c *Collection) Timed(types ...EffectType) []*Timed {
	out := make([]*Timed, 0, len(c.timed))
	for _, t := range c.timed {
		if len(types) == 0 || slices.Contains(types, t.Type) {
			out = append(out, t)
		}
	}
	return out
}

// Shields returns active shields oldest first.
func (c *Collection) Shields() []*Timed {
	return c.Timed(Shield)
}

// Innate returns the active innate effects.
func (c *Collection) Innate() []*Innate {
	return slices.Clone(c.innate)
}

// Listeners returns the active listeners.
func (c *Collection) Listeners() []*Listener {
	return slices.Clone(c.listeners)
}

// Len returns the number of attached effects of all variants.
func (c *Collection) Len() int {
	return len(c.innate) + len(c.listeners) + len(c.timed)
}

// Modifiers returns the stat modifiers every active StatPayload exposes for
// name. Innate modifiers never expire; timed ones report their remaining
// turns.
func (c *Collection) Modifiers(name stats.Name) []stats.Modifier {
	var mods []stats.Modifier
	for _, e := range c.innate {
		if p, ok := e.Payload.(StatPayload); ok && p.Stat == name {
			mods = append(mods, stats.Modifier{
				Kind:      p.Kind,
				Magnitude: p.Magnitude,
				Source:    e.source,
				Duration:  stats.Infinite,
			})
		}
	}
	for _, t := range c.timed {
		if p, ok := t.Payload.(StatPayload); ok && p.Stat == name {
			mods = append(mods, stats.Modifier{
				Kind:      p.Kind,
				Magnitude: p.Magnitude,
				Source:    t.source,
				Duration:  t.Duration,
			})
		}
	}
	return mods
}

// ScaleModifiers returns the modifiers every active ScalePayload exposes for
// name, sized from reader's current value of the payload's From stat.
func (c *Collection) ScaleModifiers(name stats.Name, reader StatReader) []stats.Modifier {
	var mods []stats.Modifier
	add := func(e *Innate, duration int) {
		p, ok := e.Payload.(ScalePayload)
		if !ok || p.Stat != name || p.From == name {
			return
		}
		mods = append(mods, stats.Modifier{
			Kind:      p.Kind,
			Magnitude: p.Factor * reader.StatValue(p.From),
			Source:    e.source,
			Duration:  duration,
		})
	}
	for _, e := range c.innate {
		add(e, stats.Infinite)
	}
	for _, t := range c.timed {
		add(&t.Innate, t.Duration)
	}
	return mods
}

// Clear detaches every effect.
func (c *Collection) Clear() {
	c.innate = nil
	c.listeners = nil
	c.timed = nil
	c.bus.ClearAll()
	c.subs = make(map[*Listener][]string)
}

func removePtr[T comparable](list *[]T, v T) bool {
	idx := slices.Index(*list, v)
	if idx < 0 {
		return false
	}
	*list = slices.Delete(*list, idx, idx+1)
	return true
}

func entityID(e core.Entity) string {
	if e == nil {
		return ""
	}
	return e.GetID()
}
