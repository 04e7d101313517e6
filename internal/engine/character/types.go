package character

import (
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
)

// Kind separates player characters from enemies.
type Kind string

// Character kinds
const (
	Player Kind = "player"
	Enemy  Kind = "enemy"
)

// ResourceType is the gauge a character's skills draw on.
type ResourceType string

// Resource types
const (
	Mana     ResourceType = "Mana"
	Fury     ResourceType = "Fury"
	Momentum ResourceType = "Momentum"
)

// BuildsUp reports whether the gauge starts empty and fills during battle.
func (r ResourceType) BuildsUp() bool {
	return r == Fury || r == Momentum
}

var (
	kinds         = []string{string(Player), string(Enemy)}
	resourceTypes = []string{string(Mana), string(Fury), string(Momentum)}
)

// Category is a monster family. Damage against an enemy pulls the pool of
// its first category.
type Category string

// Monster categories
const (
	Undead Category = "Undead"
	Beast  Category = "Beast"
	Human  Category = "Human"
	Demon  Category = "Demon"
)

var categoryPools = map[Category]stats.Name{
	Undead: stats.UndeadDamageDealtMod,
	Beast:  stats.BeastDamageDealtMod,
	Human:  stats.HumanDamageDealtMod,
	Demon:  stats.DemonDamageDealtMod,
}

// DamagePool returns the attacker pool that boosts damage against c.
func (c Category) DamagePool() (stats.Name, bool) {
	name, ok := categoryPools[c]
	return name, ok
}

// Drop is one entry of an enemy's drop table.
type Drop struct {
	Item   string  `json:"item" yaml:"item"`
	Chance float64 `json:"chance" yaml:"chance"`
	Count  int     `json:"count" yaml:"count"`
}

// EnemyTraits are carried only by enemies.
type EnemyTraits struct {
	Categories     []Category
	Boss           bool
	DropTable      []Drop
	BaseExperience float64
	BaseGold       float64
}

// StatSpec is a stat's base value and per-level growth.
type StatSpec struct {
	Base   float64 `yaml:"base"`
	Growth float64 `yaml:"growth"`
}

// Summary is a point-in-time view of a character for logs and reports.
type Summary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Kind      Kind    `json:"kind"`
	Level     int     `json:"level"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
	Resource  float64 `json:"resource"`
	Alive     bool    `json:"alive"`
}

// ListenerSpec names a registered listener and its parameters.
type ListenerSpec struct {
	Name     string  `yaml:"name"`
	Strength float64 `yaml:"strength"`
	Chance   float64 `yaml:"chance"`
}
