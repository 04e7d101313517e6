package skill

import (
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// DamageType selects which damage pools and defense apply.
type DamageType string

// Damage types
const (
	Physical DamageType = "physical"
	Magic    DamageType = "magic"
	// True damage ignores defense.
	True DamageType = "true"
)

var damageTypes = []string{string(Physical), string(Magic), string(True)}

// BaseKind selects the raw quantity an effect's strength multiplies.
type BaseKind string

// Base kinds
const (
	Flat                BaseKind = "flat"
	Minimal             BaseKind = "minimal"
	Maximal             BaseKind = "maximal"
	Random              BaseKind = "random"
	CasterMaxHealth     BaseKind = "caster_max_health"
	TargetMaxHealth     BaseKind = "target_max_health"
	CasterCurrentHealth BaseKind = "caster_current_health"
	TargetCurrentHealth BaseKind = "target_current_health"
	CasterMissingHealth BaseKind = "caster_missing_health"
	TargetMissingHealth BaseKind = "target_missing_health"
)

var baseKinds = []string{
	string(Flat), string(Minimal), string(Maximal), string(Random),
	string(CasterMaxHealth), string(TargetMaxHealth),
	string(CasterCurrentHealth), string(TargetCurrentHealth),
	string(CasterMissingHealth), string(TargetMissingHealth),
}

// Base is the damage base selector shared by damage, heal, shield and
// resource effects: Strength times the selected quantity, where Flat uses
// Amount.
type Base struct {
	Kind     BaseKind
	Amount   float64
	Strength float64
}

// FlatBase is a Base of exactly amount.
func FlatBase(amount float64) Base {
	return Base{Kind: Flat, Amount: amount, Strength: 1}
}

// Validate checks the selector and its strength.
func (b Base) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("kind", string(b.Kind), baseKinds, vb)
	if b.Kind == Flat && b.Amount <= 0 {
		vb.Field("amount", "must be positive for a flat base")
	}
	errors.ValidatePositive("strength", b.Strength, vb)

	return vb.Build()
}
