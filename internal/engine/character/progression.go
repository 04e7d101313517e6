package character

import (
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
)

// ExperienceToLevel is the experience needed to advance past level.
func ExperienceToLevel(level int) float64 {
	return math.Floor(100 * math.Pow(float64(level), 1.5))
}

// Experience returns experience accumulated toward the next level.
func (c *Character) Experience() float64 { return c.experience }

// AddExperience accumulates xp and levels the character up as often as the
// total allows. It returns the number of levels gained. Health and resource
// are restored on level up.
func (c *Character) AddExperience(xp float64) int {
	if xp <= 0 {
		return 0
	}
	c.experience += xp

	gained := 0
	for c.level < stats.MaxLevel {
		need := ExperienceToLevel(c.level)
		if c.experience < need {
			break
		}
		c.experience -= need
		c.level++
		gained++
	}
	if c.level == stats.MaxLevel {
		c.experience = 0
	}
	if gained > 0 {
		c.health = c.MaxHealth()
		if !c.resourceType.BuildsUp() {
			c.resource = c.MaxResource()
		}
	}
	return gained
}

// Gold returns the character's gold.
func (c *Character) Gold() float64 { return c.gold }

// AddGold adds amount gold.
func (c *Character) AddGold(amount float64) {
	c.gold = math.Max(0, c.gold+amount)
}

// Honor returns the character's honor.
func (c *Character) Honor() float64 { return c.honor }

// AddHonor adds delta honor, which may be negative. Honor never drops
// below zero.
func (c *Character) AddHonor(delta float64) {
	c.honor = math.Max(0, c.honor+delta)
}
