// Package builders provides test data builders for creating test fixtures
package builders

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	cfg *character.Config
}

// NewCharacterBuilder creates a level 1 player with 100 health, speed 40,
// perfect accuracy and no defenses, crits or resistances
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		cfg: &character.Config{
			ID:           "hero-test-1",
			Name:         "Test Hero",
			Kind:         character.Player,
			Level:        1,
			Class:        "warrior",
			ResourceType: character.Mana,
			Stats: map[stats.Name]character.StatSpec{
				stats.MaxHealth:     {Base: 100},
				stats.MinAttack:     {Base: 10},
				stats.MaxAttack:     {Base: 20},
				stats.CritMod:       {Base: 1.5},
				stats.Speed:         {Base: 40},
				stats.Accuracy:      {Base: 100},
				stats.MaxResource:   {Base: 100},
				stats.ResourceRegen: {Base: 5},
			},
			Resistances: map[stats.Name]float64{},
		},
	}
}

// NewEnemyBuilder creates a level 1 enemy with the same defaults as
// NewCharacterBuilder
func NewEnemyBuilder() *CharacterBuilder {
	return NewCharacterBuilder().
		WithID("enemy-test-1").
		WithName("Test Enemy").
		AsEnemy(character.EnemyTraits{BaseExperience: 10, BaseGold: 5})
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.cfg.ID = id
	return b
}

// WithName sets the display name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.cfg.Name = name
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.cfg.Level = level
	return b
}

// WithResourceType sets the resource gauge
func (b *CharacterBuilder) WithResourceType(rt character.ResourceType) *CharacterBuilder {
	b.cfg.ResourceType = rt
	return b
}

// WithStat sets a stat's base value without growth
func (b *CharacterBuilder) WithStat(name stats.Name, base float64) *CharacterBuilder {
	b.cfg.Stats[name] = character.StatSpec{Base: base}
	return b
}

// WithGrowth sets a stat's base value and growth
func (b *CharacterBuilder) WithGrowth(name stats.Name, base, growth float64) *CharacterBuilder {
	b.cfg.Stats[name] = character.StatSpec{Base: base, Growth: growth}
	return b
}

// WithResistance sets a flat resistance
func (b *CharacterBuilder) WithResistance(name stats.Name, value float64) *CharacterBuilder {
	b.cfg.Resistances[name] = value
	return b
}

// WithSkills equips skills
func (b *CharacterBuilder) WithSkills(skills ...*skill.ActiveSkill) *CharacterBuilder {
	b.cfg.Skills = skills
	return b
}

// AsEnemy turns the character into an enemy with the given traits
func (b *CharacterBuilder) AsEnemy(traits character.EnemyTraits) *CharacterBuilder {
	b.cfg.Kind = character.Enemy
	b.cfg.Enemy = &traits
	return b
}

// Config returns the config built so far
func (b *CharacterBuilder) Config() *character.Config {
	return b.cfg
}

// Build constructs the character
func (b *CharacterBuilder) Build() (*character.Character, error) {
	return character.New(b.cfg)
}

// MustBuild constructs the character and fails the test on error
func (b *CharacterBuilder) MustBuild(t testing.TB) *character.Character {
	t.Helper()
	c, err := b.Build()
	require.NoError(t, err)
	return c
}
