package resolve

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/status"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/roll"
)

// Registered listener names
const (
	BleedOnHit   = "bleed_on_hit"
	FuryOnDamage = "fury_on_damage"
	Thorns       = "thorns"
)

// ListenerParams tune a listener built from the registry.
type ListenerParams struct {
	Strength float64
	Chance   float64
}

// ListenerEnv is what a listener's reaction may act through.
type ListenerEnv struct {
	Dice   *roll.Dice
	Log    *combatlog.Writer
	Status *status.Handler
}

// ListenerFactory builds a listener owned by owner.
type ListenerFactory func(env ListenerEnv, owner *character.Character, p ListenerParams) *passive.Listener

// Registry maps listener names used in skill and class definitions to
// factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ListenerFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]ListenerFactory)}
}

// DefaultRegistry returns a registry with the built-in listeners.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(BleedOnHit, bleedOnHit)
	_ = r.Register(FuryOnDamage, furyOnDamage)
	_ = r.Register(Thorns, thorns)
	return r
}

// Register adds a factory under name.
func (r *Registry) Register(name string, f ListenerFactory) error {
	if name == "" || f == nil {
		return errors.InvalidArgument("listener name and factory are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return errors.AlreadyExists("listener " + name + " is already registered")
	}
	r.factories[name] = f
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates the listener registered under name. The listener's source
// tag is "listener:<name>" so toggling finds it again.
func (r *Registry) Build(name string, env ListenerEnv, owner *character.Character, p ListenerParams) (*passive.Listener, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("listener %q is not registered", name)
	}
	return f(env, owner, p), nil
}

// ListenerSource is the source tag of a registry-built listener.
func ListenerSource(name string) string {
	return "listener:" + name
}

func same(a, b core.Entity) bool {
	return a != nil && b != nil && a.GetID() == b.GetID()
}

// bleedOnHit gives the owner's hits a chance to make the target bleed.
func bleedOnHit(env ListenerEnv, owner *character.Character, p ListenerParams) *passive.Listener {
	chance := p.Chance
	if chance == 0 {
		chance = 0.5
	}
	strength := p.Strength
	if strength == 0 {
		strength = 0.2
	}
	return passive.NewListener(owner, ListenerSource(BleedOnHit),
		func(ev passive.Event) bool {
			return ev.Kind == passive.OnHit && same(ev.Source, owner) && !same(ev.Target, owner)
		},
		func(ev passive.Event) {
			target, ok := ev.Target.(*character.Character)
			if !ok {
				return
			}
			dot, err := env.Status.CreateDoT(target, owner, passive.Bleed, strength, 3, chance)
			if err != nil {
				return
			}
			env.Status.TryAddEffect(target, dot, false)
		})
}

// furyOnDamage fills the owner's gauge by Strength per point of damage it
// deals or takes.
func furyOnDamage(env ListenerEnv, owner *character.Character, p ListenerParams) *passive.Listener {
	strength := p.Strength
	if strength == 0 {
		strength = 0.5
	}
	return passive.NewListener(owner, ListenerSource(FuryOnDamage),
		func(ev passive.Event) bool {
			switch ev.Kind {
			case passive.DamageDealt:
				return same(ev.Source, owner)
			case passive.DamageTaken:
				return same(ev.Target, owner)
			}
			return false
		},
		func(ev passive.Event) {
			owner.GainResource(ev.Amount * strength)
		})
}

// thorns reflects Strength of the damage the owner takes back at the
// attacker, ignoring defense.
func thorns(env ListenerEnv, owner *character.Character, p ListenerParams) *passive.Listener {
	strength := p.Strength
	if strength == 0 {
		strength = 0.25
	}
	return passive.NewListener(owner, ListenerSource(Thorns),
		func(ev passive.Event) bool {
			return ev.Kind == passive.DamageTaken && same(ev.Target, owner) && ev.Source != nil && !same(ev.Source, owner)
		},
		func(ev passive.Event) {
			attacker, ok := ev.Source.(*character.Character)
			if !ok || !attacker.IsAlive() || ev.Amount <= 0 {
				return
			}
			_, dealt := env.Status.Damage(attacker, ev.Amount*strength)
			env.Log.Log(combatlog.KindDamage, owner.Name(), attacker.Name(), "%s takes %.0f thorns damage", attacker.Name(), dealt)
		})
}
