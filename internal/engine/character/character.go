// Package character holds the combatants a battle is fought between.
package character

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Config describes a character to construct.
type Config struct {
	ID           string
	Name         string
	Kind         Kind
	Level        int
	Class        string
	ResourceType ResourceType
	Stats        map[stats.Name]StatSpec
	// Resistances are flat values in [0, 1] keyed by resistance stat.
	Resistances map[stats.Name]float64
	Skills      []*skill.ActiveSkill
	// Listeners are attached at the start of every battle.
	Listeners []ListenerSpec
	Enemy     *EnemyTraits
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", cfg.ID, vb)
	errors.ValidateRequired("name", cfg.Name, vb)
	errors.ValidateEnum("kind", string(cfg.Kind), kinds, vb)
	errors.ValidateRange("level", cfg.Level, 1, stats.MaxLevel, vb)
	errors.ValidateEnum("resource_type", string(cfg.ResourceType), resourceTypes, vb)
	if cfg.Stats[stats.MaxHealth].Base <= 0 {
		vb.Field("stats.MaxHealth", "must be positive")
	}
	if cfg.Stats[stats.Speed].Base <= 0 {
		vb.Field("stats.Speed", "must be positive")
	}
	for name := range cfg.Stats {
		if !stats.Known(name) {
			vb.InvalidField("stats", fmt.Sprintf("unknown stat %q", name))
		}
	}
	for name, r := range cfg.Resistances {
		if r < 0 || r > 1 {
			vb.Fieldf("resistances."+string(name), "must be between 0 and 1, got %g", r)
		}
	}
	if len(cfg.Skills) > skill.MaxSlots {
		vb.Fieldf("skills", "at most %d skills allowed", skill.MaxSlots)
	}
	for i, l := range cfg.Listeners {
		errors.ValidateRequired(fmt.Sprintf("listeners[%d].name", i), l.Name, vb)
	}
	if cfg.Kind == Player && cfg.Enemy != nil {
		vb.InvalidField("enemy", "players cannot carry enemy traits")
	}

	return vb.Build()
}

// Character is a combatant. It is mutated only by the battle it is fighting
// in and is not safe for concurrent use.
type Character struct {
	id           string
	name         string
	kind         Kind
	level        int
	class        string
	resourceType ResourceType

	stats     map[stats.Name]*stats.Stat
	passives  *passive.Collection
	skills    []*skill.ActiveSkill
	listeners []ListenerSpec
	traits    EnemyTraits

	health     float64
	resource   float64
	experience float64
	gold       float64
	honor      float64

	// resolving guards scale modifiers against reading each other in a loop.
	resolving map[stats.Name]bool
}

var _ core.Entity = (*Character)(nil)

// New creates a character at full health. Mana characters start with a full
// gauge; build-up resources start empty.
func New(cfg *Config) (*Character, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid character config")
	}

	c := &Character{
		id:           cfg.ID,
		name:         cfg.Name,
		kind:         cfg.Kind,
		level:        cfg.Level,
		class:        cfg.Class,
		resourceType: cfg.ResourceType,
		stats:        make(map[stats.Name]*stats.Stat, len(stats.BaseStats)+len(stats.Resistances)),
		skills:       append([]*skill.ActiveSkill(nil), cfg.Skills...),
		listeners:    append([]ListenerSpec(nil), cfg.Listeners...),
		resolving:    make(map[stats.Name]bool),
	}
	c.passives = passive.NewCollection(c)
	if cfg.Enemy != nil {
		c.traits = *cfg.Enemy
	}

	for _, name := range stats.BaseStats {
		spec := cfg.Stats[name]
		c.stats[name] = stats.New(name, spec.Base, spec.Growth)
	}
	for _, name := range stats.Resistances {
		c.stats[name] = stats.New(name, cfg.Resistances[name], 0)
	}

	c.Restore()
	return c, nil
}

// GetID implements core.Entity
func (c *Character) GetID() string { return c.id }

// GetType implements core.Entity
func (c *Character) GetType() string { return string(c.kind) }

// Name returns the display name.
func (c *Character) Name() string { return c.name }

// Kind returns whether c is a player or an enemy.
func (c *Character) Kind() Kind { return c.kind }

// IsPlayer reports whether c is a player character.
func (c *Character) IsPlayer() bool { return c.kind == Player }

// Level returns the current level.
func (c *Character) Level() int { return c.level }

// Class returns the class id players were built from.
func (c *Character) Class() string { return c.class }

// ResourceType returns the gauge the character's skills draw on.
func (c *Character) ResourceType() ResourceType { return c.resourceType }

// Passives returns the character's passive effects.
func (c *Character) Passives() *passive.Collection { return c.passives }

// Skills returns the equipped skills.
func (c *Character) Skills() []*skill.ActiveSkill { return c.skills }

// Listeners returns the listeners attached at the start of every battle.
func (c *Character) Listeners() []ListenerSpec { return c.listeners }

// Traits returns the enemy traits; players return the zero value.
func (c *Character) Traits() EnemyTraits { return c.traits }

// Stat returns the named stat, or nil for pools and unknown names.
func (c *Character) Stat(name stats.Name) *stats.Stat {
	return c.stats[name]
}

// StatValue returns the effective value of a stat. Pools without a stat of
// their own are evaluated from zero.
func (c *Character) StatValue(name stats.Name) float64 {
	if st, ok := c.stats[name]; ok {
		return st.Value(c.level, c)
	}
	return stats.Pool(name, 0, c)
}

// PoolValue evaluates a modifier pool starting from base.
func (c *Character) PoolValue(name stats.Name, base float64) float64 {
	return stats.Pool(name, base, c)
}

// Modifiers implements stats.Source with the modifiers the character's
// passive effects expose for name, including scale modifiers.
func (c *Character) Modifiers(name stats.Name) []stats.Modifier {
	mods := c.passives.Modifiers(name)
	if c.resolving[name] {
		return mods
	}
	c.resolving[name] = true
	defer delete(c.resolving, name)
	return append(mods, c.passives.ScaleModifiers(name, c)...)
}

// Resistance returns the resistance against effects of type t.
func (c *Character) Resistance(t passive.EffectType) (float64, bool) {
	name, ok := t.Resistance()
	if !ok {
		return 0, false
	}
	return c.StatValue(name), true
}

// AverageAttack returns the midpoint of the attack range.
func (c *Character) AverageAttack() float64 {
	return (c.StatValue(stats.MinAttack) + c.StatValue(stats.MaxAttack)) / 2
}

// Health returns current health.
func (c *Character) Health() float64 { return c.health }

// MaxHealth returns the effective maximum health.
func (c *Character) MaxHealth() float64 { return c.StatValue(stats.MaxHealth) }

// MissingHealth returns how much health is missing.
func (c *Character) MissingHealth() float64 {
	return math.Max(0, c.MaxHealth()-c.health)
}

// IsAlive reports whether health is above zero.
func (c *Character) IsAlive() bool { return c.health > 0 }

// TakeDamage removes up to amount health and returns the health lost.
// Health never goes below zero.
func (c *Character) TakeDamage(amount float64) float64 {
	if amount <= 0 || !c.IsAlive() {
		return 0
	}
	lost := math.Min(amount, c.health)
	c.health -= lost
	return lost
}

// Heal restores up to amount health and returns the health gained. The dead
// cannot be healed.
func (c *Character) Heal(amount float64) float64 {
	if amount <= 0 || !c.IsAlive() {
		return 0
	}
	gained := math.Min(amount, c.MissingHealth())
	c.health += gained
	return gained
}

// Resource returns the current gauge value.
func (c *Character) Resource() float64 { return c.resource }

// MaxResource returns the effective gauge size.
func (c *Character) MaxResource() float64 { return c.StatValue(stats.MaxResource) }

// ResourceFull reports whether the gauge is at its maximum.
func (c *Character) ResourceFull() bool {
	return c.resource >= c.MaxResource()
}

// SpendResource removes amount from the gauge, never below zero.
func (c *Character) SpendResource(amount float64) {
	if amount <= 0 {
		return
	}
	c.resource = math.Max(0, c.resource-amount)
}

// GainResource adds up to amount to the gauge and returns what was gained.
func (c *Character) GainResource(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	gained := math.Min(amount, math.Max(0, c.MaxResource()-c.resource))
	c.resource += gained
	return gained
}

// RegenResource applies the per-turn regeneration unless an innate
// NoResourceRegen effect is active.
func (c *Character) RegenResource() float64 {
	if c.passives.Has(passive.NoResourceRegen) {
		return 0
	}
	return c.GainResource(c.StatValue(stats.ResourceRegen))
}

// TickModifiers advances every stat's own modifiers by one turn.
func (c *Character) TickModifiers() {
	for _, st := range c.stats {
		st.Tick()
	}
}

// Restore refills health and resets the gauge to its starting value.
func (c *Character) Restore() {
	c.health = c.MaxHealth()
	if c.resourceType.BuildsUp() {
		c.resource = 0
		return
	}
	c.resource = c.MaxResource()
}

// ClearBattleState drops timed effects and finite stat modifiers left over
// from a previous battle. Innate effects and listeners stay.
func (c *Character) ClearBattleState() {
	for _, t := range c.passives.Timed() {
		c.passives.Remove(t)
	}
	for _, st := range c.stats {
		for _, m := range st.Modifiers() {
			if m.Duration != stats.Infinite {
				st.RemoveSource(m.Source)
			}
		}
	}
	if c.resourceType.BuildsUp() {
		c.resource = 0
	}
}

// Summary returns a snapshot for logs and reports.
func (c *Character) Summary() Summary {
	return Summary{
		ID:        c.id,
		Name:      c.name,
		Kind:      c.kind,
		Level:     c.level,
		Health:    c.health,
		MaxHealth: c.MaxHealth(),
		Resource:  c.resource,
		Alive:     c.IsAlive(),
	}
}

func (c *Character) String() string {
	return fmt.Sprintf("%s (lv %d)", c.name, c.level)
}
