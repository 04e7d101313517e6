// Package skill defines active skill templates and the effects they run.
// Templates are plain data validated once at load time and shared across
// battles; execution lives in the resolve package.
package skill

import (
	"fmt"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// MaxSlots is the number of skills a character can carry.
const MaxSlots = 5

// ItemCost is a consumable a skill needs in the caster's inventory.
type ItemCost struct {
	Alias string
	Count int
}

// ActiveSkill is an immutable skill template.
type ActiveSkill struct {
	ID           string
	Name         string
	ResourceCost float64
	// ActionCost is the fraction of the caster's base action points spent.
	ActionCost float64
	AlwaysHits bool
	Accuracy   float64
	HitCount   int
	Effects    []Effect
	ItemCost   *ItemCost
}

// Validate rejects malformed templates. Each effect is checked and reported
// under "effects[i]".
func (s *ActiveSkill) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", s.ID, vb)
	errors.ValidateRequired("name", s.Name, vb)
	if s.ResourceCost < 0 {
		vb.Field("resource_cost", "must not be negative")
	}
	if s.ActionCost < 0 || s.ActionCost > 1 {
		vb.Field("action_cost", "must be between 0 and 1")
	}
	if s.HitCount < 1 {
		vb.Field("hit_count", "must be at least 1")
	}
	if len(s.Effects) == 0 {
		vb.RequiredField("effects")
	}
	for i, e := range s.Effects {
		if e == nil {
			vb.RequiredField(fmt.Sprintf("effects[%d]", i))
			continue
		}
		vb.Nested(fmt.Sprintf("effects[%d]", i), e.Validate())
	}
	if s.ItemCost != nil {
		errors.ValidateRequired("item_cost.alias", s.ItemCost.Alias, vb)
		if s.ItemCost.Count < 1 {
			vb.Field("item_cost.count", "must be at least 1")
		}
	}

	return vb.Build()
}

// HasEnemyEffects reports whether any effect targets the enemy.
func (s *ActiveSkill) HasEnemyEffects() bool {
	for _, e := range s.Effects {
		if e.Target() == Enemy {
			return true
		}
	}
	return false
}

// EffectsOn returns the effects aimed at t, in template order.
func (s *ActiveSkill) EffectsOn(t Target) []Effect {
	var out []Effect
	for _, e := range s.Effects {
		if e.Target() == t {
			out = append(out, e)
		}
	}
	return out
}
