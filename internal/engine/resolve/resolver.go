// Package resolve executes active skills: cost checks, hit and crit rolls,
// and every effect variant a skill can carry.
package resolve

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/engine/status"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/roll"
)

// Config holds the collaborators a resolver works with. One resolver serves
// one battle.
type Config struct {
	Dice *roll.Dice
	Log  *combatlog.Writer
	// Inventory is optional; skills with an item cost are unaffordable
	// without one.
	Inventory Inventory
	// Listeners defaults to DefaultRegistry.
	Listeners *Registry
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Dice == nil {
		vb.RequiredField("Dice")
	}

	return vb.Build()
}

// Resolver applies skills and effects.
type Resolver struct {
	dice      *roll.Dice
	log       *combatlog.Writer
	inventory Inventory
	listeners *Registry
	status    *status.Handler
}

// New creates a resolver.
func New(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Log
	if log == nil {
		log = combatlog.NewWriter(nil)
	}
	listeners := cfg.Listeners
	if listeners == nil {
		listeners = DefaultRegistry()
	}

	return &Resolver{
		dice:      cfg.Dice,
		log:       log,
		inventory: cfg.Inventory,
		listeners: listeners,
		status:    status.NewHandler(cfg.Dice, log),
	}, nil
}

// Status returns the status handler effects are applied through.
func (r *Resolver) Status() *status.Handler {
	return r.status
}

// Outcome describes what one skill use did.
type Outcome struct {
	// Used is false when the skill could not be afforded; nothing changed.
	Used   bool
	Reason string
	Hit    bool
	Hits   int
	Misses int
	// Damage is the health the enemy target lost.
	Damage float64
}

// ResourceCost returns the cost of sk for c after ResourceCost modifiers.
func ResourceCost(c *character.Character, sk *skill.ActiveSkill) float64 {
	return math.Max(0, c.PoolValue(stats.ResourceCost, sk.ResourceCost))
}

// ActionCost returns the action points sk spends for actor.
func ActionCost(actor Actor, sk *skill.ActiveSkill) float64 {
	return actor.MaxActionPointsBase() * sk.ActionCost
}

// CanAfford reports whether actor can use sk now, and if not, why.
func (r *Resolver) CanAfford(actor Actor, sk *skill.ActiveSkill) (bool, string) {
	c := actor.Character()

	cost := ResourceCost(c, sk)
	enough := cost == 0 || c.Resource() >= cost || (c.ResourceType().BuildsUp() && c.ResourceFull())
	if !enough {
		return false, "not enough " + string(c.ResourceType())
	}
	if actor.ActionPoints() < ActionCost(actor, sk) {
		return false, "not enough action points"
	}
	if sk.ItemCost != nil && (r.inventory == nil || !r.inventory.HasItem(sk.ItemCost.Alias, sk.ItemCost.Count)) {
		return false, "missing " + sk.ItemCost.Alias
	}
	return true, ""
}

// Affordable returns the skills of actor it can use now, in slot order.
func (r *Resolver) Affordable(actor Actor) []*skill.ActiveSkill {
	var out []*skill.ActiveSkill
	for _, sk := range actor.Character().Skills() {
		if ok, _ := r.CanAfford(actor, sk); ok {
			out = append(out, sk)
		}
	}
	return out
}

// Use runs sk from actor against target. An unaffordable skill changes
// nothing and reports Used false with the reason; this is not an error.
// The item cost is taken first so a failed consume leaves the other costs
// unpaid.
// Self effects run once; enemy effects run once per hit while the target
// lives, each hit dispatching OnHit to both sides.
func (r *Resolver) Use(actor, target Actor, sk *skill.ActiveSkill) (Outcome, error) {
	caster := actor.Character()

	if ok, reason := r.CanAfford(actor, sk); !ok {
		r.log.Log(combatlog.KindNotice, caster.Name(), "", "%s cannot use %s: %s", caster.Name(), sk.Name, reason)
		return Outcome{Reason: reason}, nil
	}
	if sk.ItemCost != nil {
		if err := r.inventory.Consume(sk.ItemCost.Alias, sk.ItemCost.Count); err != nil {
			reason := "missing " + sk.ItemCost.Alias
			r.log.Log(combatlog.KindNotice, caster.Name(), "", "%s cannot use %s: %s", caster.Name(), sk.Name, reason)
			slog.Warn("Failed to consume item", "skill", sk.ID, "item", sk.ItemCost.Alias, "error", err)
			return Outcome{Reason: reason}, nil
		}
	}

	out := Outcome{Used: true}
	foe := target.Character()
	enemyEffects := sk.EffectsOn(skill.Enemy)

	r.log.Log(combatlog.KindSkill, caster.Name(), foe.Name(), "%s uses %s", caster.Name(), sk.Name)

	out.Hit = sk.AlwaysHits || len(enemyEffects) == 0 || r.rollHit(caster, foe, sk)

	caster.SpendResource(ResourceCost(caster, sk))
	actor.SpendActionPoints(ActionCost(actor, sk))

	for _, e := range sk.EffectsOn(skill.Self) {
		if err := r.apply(e, actor, actor, sk); err != nil {
			return out, err
		}
	}

	if len(enemyEffects) == 0 {
		return out, nil
	}

	before := foe.Health()
	for i := 0; i < sk.HitCount; i++ {
		if !foe.IsAlive() {
			break
		}
		if !out.Hit {
			out.Misses++
			r.log.Log(combatlog.KindMiss, caster.Name(), foe.Name(), "%s misses %s", caster.Name(), foe.Name())
			continue
		}
		out.Hits++
		for _, e := range enemyEffects {
			if err := r.apply(e, actor, target, sk); err != nil {
				return out, err
			}
		}
		ev := passive.Event{Kind: passive.OnHit, Source: caster, Target: foe, Skill: sk.ID}
		caster.Passives().HandleEvent(ev)
		if foe != caster {
			foe.Passives().HandleEvent(ev)
		}
	}
	out.Damage = math.Max(0, before-foe.Health())

	return out, nil
}

// HitChance returns the chance in percent that caster hits target with sk.
func HitChance(caster, target *character.Character, sk *skill.ActiveSkill) float64 {
	acc := (caster.StatValue(stats.Accuracy) + sk.Accuracy) / 2
	dodge := target.StatValue(stats.Dodge)
	if acc <= 0 || acc+dodge <= 0 {
		return 0
	}
	chance := acc * acc / (acc + dodge)
	chance = caster.PoolValue(stats.HitChanceMod, chance)
	return math.Min(100, chance)
}

func (r *Resolver) rollHit(caster, target *character.Character, sk *skill.ActiveSkill) bool {
	return r.dice.Percent(HitChance(caster, target, sk))
}

// AttachListeners switches on the listeners c carries by default, replacing
// any left from an earlier battle.
func (r *Resolver) AttachListeners(c *character.Character) error {
	for _, spec := range c.Listeners() {
		l, err := r.listeners.Build(spec.Name, r.env(), c, ListenerParams{Strength: spec.Strength, Chance: spec.Chance})
		if err != nil {
			return errors.Wrapf(err, "failed to attach listener for %s", c.GetID())
		}
		c.Passives().RemoveSource(l.Source())
		c.Passives().Add(l)
	}
	return nil
}

func (r *Resolver) env() ListenerEnv {
	return ListenerEnv{Dice: r.dice, Log: r.log, Status: r.status}
}
