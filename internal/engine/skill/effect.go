package skill

import (
	"fmt"

	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Target selects who an effect is applied to.
type Target int

const (
	// Self applies the effect to the caster, once per use.
	Self Target = iota
	// Enemy applies the effect to the chosen target on every hit.
	Enemy
)

func (t Target) String() string {
	if t == Self {
		return "self"
	}
	return "enemy"
}

// Effect is one step of a skill. Each variant carries only the parameters it
// needs.
type Effect interface {
	// Target reports who the effect applies to.
	Target() Target
	// Kind names the variant.
	Kind() string
	// Validate rejects malformed parameters at load time.
	Validate() error
}

// DealDamage deals Base damage of Type. LifeSteal heals the caster by that
// fraction of the damage left after defense.
type DealDamage struct {
	On          Target
	Base        Base
	Type        DamageType
	CanCrit     bool
	AlwaysCrits bool
	LifeSteal   float64
}

// HealTarget restores Base health.
type HealTarget struct {
	On   Target
	Base Base
}

// BuffStat adds a modifier to the target's own stat list.
type BuffStat struct {
	On        Target
	Stat      stats.Name
	Modifier  stats.ModifierKind
	Magnitude float64
	Duration  int
}

// DebuffStat lowers a stat through a resisted Debuff effect. Magnitude is
// given as a positive amount and applied negatively.
type DebuffStat struct {
	On        Target
	Stat      stats.Name
	Modifier  stats.ModifierKind
	Magnitude float64
	Duration  int
	Chance    float64
}

// DebuffResistance lowers one resistance stat by Magnitude through a resisted
// Debuff effect.
type DebuffResistance struct {
	On         Target
	Resistance stats.Name
	Magnitude  float64
	Duration   int
	Chance     float64
}

// GainShield grants a shield absorbing Base damage for Duration turns.
type GainShield struct {
	On       Target
	Base     Base
	Duration int
}

// RegenResource restores Base resource.
type RegenResource struct {
	On   Target
	Base Base
}

// TradeHealthForResource spends Base health (never below 1) and grants Ratio
// resource per point spent.
type TradeHealthForResource struct {
	On    Target
	Base  Base
	Ratio float64
}

// InflictGenericStatusEffect applies Stun, Freeze or Sleep.
type InflictGenericStatusEffect struct {
	On         Target
	Status     passive.EffectType
	Duration   int
	Chance     float64
	Guaranteed bool
}

// InflictDoTStatusEffect applies Bleed, Poison or Burn.
type InflictDoTStatusEffect struct {
	On       Target
	Status   passive.EffectType
	Strength float64
	Duration int
	Chance   float64
}

// InflictTimedPassiveEffect attaches a timed stat change. With From set the
// magnitude is a factor of the target's From stat.
type InflictTimedPassiveEffect struct {
	On        Target
	Source    string
	Stat      stats.Name
	From      stats.Name
	Modifier  stats.ModifierKind
	Magnitude float64
	Duration  int
	Chance    float64
}

// ToggleInnatePassiveEffect switches an innate effect on or off. Stat is
// unused for pure flags such as NoResourceRegen.
type ToggleInnatePassiveEffect struct {
	On        Target
	Source    string
	Type      passive.EffectType
	Stat      stats.Name
	From      stats.Name
	Modifier  stats.ModifierKind
	Magnitude float64
}

// ToggleListenerPassiveEffect switches a registered listener on or off.
type ToggleListenerPassiveEffect struct {
	On       Target
	Listener string
	Strength float64
	Chance   float64
}

// AdvanceMove brings the target's next turn closer by Fraction of its
// action allotment.
type AdvanceMove struct {
	On       Target
	Fraction float64
}

// ExtendDoT lengthens active DoTs. An empty Status extends all of them.
type ExtendDoT struct {
	On     Target
	Status passive.EffectType
	Turns  int
}

// ClearStatusEffect removes the listed statuses, or every harmful status
// when Statuses is empty.
type ClearStatusEffect struct {
	On       Target
	Statuses []passive.EffectType
}

func (e DealDamage) Target() Target                  { return e.On }
func (e HealTarget) Target() Target                  { return e.On }
func (e BuffStat) Target() Target                    { return e.On }
func (e DebuffStat) Target() Target                  { return e.On }
func (e DebuffResistance) Target() Target            { return e.On }
func (e GainShield) Target() Target                  { return e.On }
func (e RegenResource) Target() Target               { return e.On }
func (e TradeHealthForResource) Target() Target      { return e.On }
func (e InflictGenericStatusEffect) Target() Target  { return e.On }
func (e InflictDoTStatusEffect) Target() Target      { return e.On }
func (e InflictTimedPassiveEffect) Target() Target   { return e.On }
func (e ToggleInnatePassiveEffect) Target() Target   { return e.On }
func (e ToggleListenerPassiveEffect) Target() Target { return e.On }
func (e AdvanceMove) Target() Target                 { return e.On }
func (e ExtendDoT) Target() Target                   { return e.On }
func (e ClearStatusEffect) Target() Target           { return e.On }

func (DealDamage) Kind() string                  { return "DealDamage" }
func (HealTarget) Kind() string                  { return "HealTarget" }
func (BuffStat) Kind() string                    { return "BuffStat" }
func (DebuffStat) Kind() string                  { return "DebuffStat" }
func (DebuffResistance) Kind() string            { return "DebuffResistance" }
func (GainShield) Kind() string                  { return "GainShield" }
func (RegenResource) Kind() string               { return "RegenResource" }
func (TradeHealthForResource) Kind() string      { return "TradeHealthForResource" }
func (InflictGenericStatusEffect) Kind() string  { return "InflictGenericStatusEffect" }
func (InflictDoTStatusEffect) Kind() string      { return "InflictDoTStatusEffect" }
func (InflictTimedPassiveEffect) Kind() string   { return "InflictTimedPassiveEffect" }
func (ToggleInnatePassiveEffect) Kind() string   { return "ToggleInnatePassiveEffect" }
func (ToggleListenerPassiveEffect) Kind() string { return "ToggleListenerPassiveEffect" }
func (AdvanceMove) Kind() string                 { return "AdvanceMove" }
func (ExtendDoT) Kind() string                   { return "ExtendDoT" }
func (ClearStatusEffect) Kind() string           { return "ClearStatusEffect" }

// Validate implements Effect
func (e DealDamage) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	vb.Nested("base", e.Base.Validate())
	errors.ValidateEnum("type", string(e.Type), damageTypes, vb)
	if e.LifeSteal < 0 || e.LifeSteal > 1 {
		vb.Field("life_steal", "must be between 0 and 1")
	}
	return vb.Build()
}

// Validate implements Effect
func (e HealTarget) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	vb.Nested("base", e.Base.Validate())
	return vb.Build()
}

// Validate implements Effect
func (e BuffStat) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	validateStat("stat", e.Stat, vb)
	validateDuration(e.Duration, vb)
	return vb.Build()
}

// Validate implements Effect
func (e DebuffStat) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	validateStat("stat", e.Stat, vb)
	errors.ValidatePositive("magnitude", e.Magnitude, vb)
	validateDuration(e.Duration, vb)
	errors.ValidateProbability("chance", e.Chance, vb)
	return vb.Build()
}

// Validate implements Effect
func (e DebuffResistance) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	if !isResistance(e.Resistance) {
		vb.InvalidField("resistance", fmt.Sprintf("%q is not a resistance", e.Resistance))
	}
	errors.ValidatePositive("magnitude", e.Magnitude, vb)
	validateDuration(e.Duration, vb)
	errors.ValidateProbability("chance", e.Chance, vb)
	return vb.Build()
}

// Validate implements Effect
func (e GainShield) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	vb.Nested("base", e.Base.Validate())
	validateDuration(e.Duration, vb)
	return vb.Build()
}

// Validate implements Effect
func (e RegenResource) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	vb.Nested("base", e.Base.Validate())
	return vb.Build()
}

// Validate implements Effect
func (e TradeHealthForResource) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	vb.Nested("base", e.Base.Validate())
	errors.ValidatePositive("ratio", e.Ratio, vb)
	return vb.Build()
}

// Validate implements Effect
func (e InflictGenericStatusEffect) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	if !e.Status.Suppresses() {
		vb.InvalidField("status", fmt.Sprintf("%q is not Stun, Freeze or Sleep", e.Status))
	}
	validateDuration(e.Duration, vb)
	errors.ValidateProbability("chance", e.Chance, vb)
	return vb.Build()
}

// Validate implements Effect
func (e InflictDoTStatusEffect) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	if !e.Status.IsDoT() {
		vb.InvalidField("status", fmt.Sprintf("unknown DoT kind %q", e.Status))
	}
	errors.ValidatePositive("strength", e.Strength, vb)
	validateDuration(e.Duration, vb)
	errors.ValidateProbability("chance", e.Chance, vb)
	return vb.Build()
}

// Validate implements Effect
func (e InflictTimedPassiveEffect) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	errors.ValidateRequired("source", e.Source, vb)
	validateStat("stat", e.Stat, vb)
	if e.From != "" {
		validateStat("from", e.From, vb)
	}
	validateDuration(e.Duration, vb)
	errors.ValidateProbability("chance", e.Chance, vb)
	return vb.Build()
}

// Validate implements Effect
func (e ToggleInnatePassiveEffect) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	errors.ValidateRequired("source", e.Source, vb)
	switch e.Type {
	case passive.NoResourceRegen:
	case passive.StatChange:
		validateStat("stat", e.Stat, vb)
	case passive.ScaleStat:
		validateStat("stat", e.Stat, vb)
		validateStat("from", e.From, vb)
	default:
		vb.InvalidField("type", fmt.Sprintf("%q cannot be toggled", e.Type))
	}
	return vb.Build()
}

// Validate implements Effect
func (e ToggleListenerPassiveEffect) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	errors.ValidateRequired("listener", e.Listener, vb)
	if e.Chance != 0 {
		errors.ValidateProbability("chance", e.Chance, vb)
	}
	if e.Strength < 0 {
		vb.Field("strength", "must not be negative")
	}
	return vb.Build()
}

// Validate implements Effect
func (e AdvanceMove) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	errors.ValidateProbability("fraction", e.Fraction, vb)
	return vb.Build()
}

// Validate implements Effect
func (e ExtendDoT) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	if e.Status != "" && !e.Status.IsDoT() {
		vb.InvalidField("status", fmt.Sprintf("unknown DoT kind %q", e.Status))
	}
	if e.Turns < 1 {
		vb.Field("turns", "must be at least 1")
	}
	return vb.Build()
}

// Validate implements Effect
func (e ClearStatusEffect) Validate() error {
	vb := errors.NewValidationBuilder()
	validateTarget(e.On, vb)
	for i, st := range e.Statuses {
		if !st.IsHarmful() {
			vb.InvalidField(fmt.Sprintf("statuses[%d]", i), fmt.Sprintf("%q is not a clearable status", st))
		}
	}
	return vb.Build()
}

func validateTarget(t Target, vb *errors.ValidationBuilder) {
	if t != Self && t != Enemy {
		vb.InvalidField("on", fmt.Sprintf("unknown target %d", t))
	}
}

func validateStat(field string, name stats.Name, vb *errors.ValidationBuilder) {
	if name == "" {
		vb.RequiredField(field)
		return
	}
	if !stats.Known(name) {
		vb.InvalidField(field, fmt.Sprintf("unknown stat %q", name))
	}
}

func validateDuration(d int, vb *errors.ValidationBuilder) {
	if d < 1 {
		vb.Field("duration", "must be at least 1 turn")
	}
}

func isResistance(name stats.Name) bool {
	for _, r := range stats.Resistances {
		if r == name {
			return true
		}
	}
	return false
}
