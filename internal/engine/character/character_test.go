package character_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type CharacterTestSuite struct {
	suite.Suite
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) TestNewStartsFull() {
	hero := builders.NewCharacterBuilder().MustBuild(s.T())

	s.Equal(100.0, hero.Health())
	s.Equal(100.0, hero.Resource())
	s.True(hero.IsAlive())
	s.True(hero.IsPlayer())
	s.Equal("player", hero.GetType())

	fury := builders.NewCharacterBuilder().WithResourceType(character.Fury).MustBuild(s.T())
	s.Equal(0.0, fury.Resource(), "build-up gauges start empty")
}

func (s *CharacterTestSuite) TestConfigValidation() {
	testCases := []struct {
		name  string
		build func() *builders.CharacterBuilder
	}{
		{"missing id", func() *builders.CharacterBuilder { return builders.NewCharacterBuilder().WithID("") }},
		{"level zero", func() *builders.CharacterBuilder { return builders.NewCharacterBuilder().WithLevel(0) }},
		{"no speed", func() *builders.CharacterBuilder { return builders.NewCharacterBuilder().WithStat(stats.Speed, 0) }},
		{"resistance above one", func() *builders.CharacterBuilder {
			return builders.NewCharacterBuilder().WithResistance(stats.StunResistance, 1.5)
		}},
		{"too many skills", func() *builders.CharacterBuilder {
			sk := &skill.ActiveSkill{ID: "x"}
			return builders.NewCharacterBuilder().WithSkills(sk, sk, sk, sk, sk, sk)
		}},
		{"unknown stat", func() *builders.CharacterBuilder {
			return builders.NewCharacterBuilder().WithStat("Luck", 3)
		}},
		{"unknown resource", func() *builders.CharacterBuilder {
			return builders.NewCharacterBuilder().WithResourceType("Rage")
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := tc.build().Build()
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *CharacterTestSuite) TestConfigRejectsUnknownEnums() {
	_, err := character.New(&character.Config{
		ID:           "odd",
		Name:         "Odd",
		Kind:         "npc",
		Level:        1,
		ResourceType: "Rage",
		Stats: map[stats.Name]character.StatSpec{
			stats.MaxHealth: {Base: 10},
			stats.Speed:     {Base: 10},
		},
	})
	s.Require().Error(err)

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Equal([]string{"must be one of: player, enemy"}, fields["kind"])
	s.Equal([]string{"must be one of: Mana, Fury, Momentum"}, fields["resource_type"])
}

func (s *CharacterTestSuite) TestDamageAndHealClamp() {
	hero := builders.NewCharacterBuilder().MustBuild(s.T())

	s.Equal(30.0, hero.TakeDamage(30))
	s.Equal(30.0, hero.Heal(50), "heal stops at max health")
	s.Equal(100.0, hero.TakeDamage(150), "health never goes below zero")
	s.False(hero.IsAlive())
	s.Equal(0.0, hero.Heal(10), "the dead cannot be healed")
	s.Equal(0.0, hero.TakeDamage(10))
}

func (s *CharacterTestSuite) TestResourceGauge() {
	hero := builders.NewCharacterBuilder().MustBuild(s.T())

	hero.SpendResource(30)
	s.Equal(70.0, hero.Resource())
	s.Equal(5.0, hero.RegenResource())
	s.Equal(75.0, hero.Resource())

	hero.SpendResource(500)
	s.Equal(0.0, hero.Resource())

	s.Equal(100.0, hero.GainResource(250))
	s.True(hero.ResourceFull())
}

func (s *CharacterTestSuite) TestNoResourceRegen() {
	hero := builders.NewCharacterBuilder().MustBuild(s.T())
	hero.SpendResource(50)

	hero.Passives().ToggleInnate(passive.NewInnate(hero, "berserk", passive.NoResourceRegen, nil))
	s.Equal(0.0, hero.RegenResource())
	s.Equal(50.0, hero.Resource())
}

func (s *CharacterTestSuite) TestStatValueIncludesPassives() {
	hero := builders.NewCharacterBuilder().
		WithStat(stats.PhysicalDefense, 20).
		MustBuild(s.T())

	hero.Passives().Add(passive.NewInnate(hero, "guard", passive.StatChange, passive.StatPayload{
		Stat: stats.TotalDefense, Kind: stats.Additive, Magnitude: 5,
	}))
	hero.Passives().Add(passive.NewTimed(hero, "sunder", passive.Debuff, passive.StatPayload{
		Stat: stats.PhysicalDefense, Kind: stats.Relative, Magnitude: -0.5,
	}, 2, 1))

	// 20 * 0.5 + 5
	s.Equal(15.0, hero.StatValue(stats.PhysicalDefense))
	s.Equal(5.0, hero.StatValue(stats.TotalDefense), "pools evaluate from zero")
}

func (s *CharacterTestSuite) TestScaleModifiersTerminateOnCycles() {
	hero := builders.NewCharacterBuilder().
		WithStat(stats.PhysicalDefense, 40).
		MustBuild(s.T())

	hero.Passives().Add(passive.NewInnate(hero, "bulwark", passive.ScaleStat, passive.ScalePayload{
		Stat: stats.MinAttack, From: stats.PhysicalDefense, Kind: stats.Additive, Factor: 0.5,
	}))
	hero.Passives().Add(passive.NewInnate(hero, "spikes", passive.ScaleStat, passive.ScalePayload{
		Stat: stats.PhysicalDefense, From: stats.MinAttack, Kind: stats.Additive, Factor: 0.1,
	}))

	// MinAttack reads PhysicalDefense, whose scale modifier reads MinAttack
	// without its own scale modifiers: 40 + 0.1*10 = 41; 10 + 0.5*41.
	s.InDelta(30.5, hero.StatValue(stats.MinAttack), 1e-9)
}

func (s *CharacterTestSuite) TestTickModifiers() {
	hero := builders.NewCharacterBuilder().MustBuild(s.T())
	hero.Stat(stats.Speed).AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: 10, Source: "haste", Duration: 1})

	s.Equal(50.0, hero.StatValue(stats.Speed))
	hero.TickModifiers()
	s.Equal(40.0, hero.StatValue(stats.Speed))
}

func (s *CharacterTestSuite) TestResistance() {
	hero := builders.NewCharacterBuilder().
		WithResistance(stats.PoisonResistance, 0.25).
		MustBuild(s.T())

	r, ok := hero.Resistance(passive.Poison)
	s.True(ok)
	s.Equal(0.25, r)

	_, ok = hero.Resistance(passive.Shield)
	s.False(ok)
}

func (s *CharacterTestSuite) TestAddExperienceLevelsUp() {
	hero := builders.NewCharacterBuilder().
		WithGrowth(stats.MaxHealth, 100, 10).
		MustBuild(s.T())
	hero.TakeDamage(40)

	need := character.ExperienceToLevel(1) + character.ExperienceToLevel(2)
	s.Equal(2, hero.AddExperience(need+1))
	s.Equal(3, hero.Level())
	s.Equal(1.0, hero.Experience())
	s.Equal(120.0, hero.Health(), "level up restores health at the new maximum")
}

func (s *CharacterTestSuite) TestWallet() {
	hero := builders.NewCharacterBuilder().MustBuild(s.T())
	hero.AddGold(12)
	hero.AddHonor(3)
	hero.AddHonor(-10)

	s.Equal(12.0, hero.Gold())
	s.Equal(0.0, hero.Honor())
}

func (s *CharacterTestSuite) TestClearBattleState() {
	hero := builders.NewCharacterBuilder().MustBuild(s.T())
	hero.Passives().Add(passive.NewTimed(hero, "stun", passive.Stun, nil, 2, 1))
	hero.Passives().Add(passive.NewInnate(hero, "stance", passive.NoResourceRegen, nil))
	hero.Stat(stats.Speed).AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: 5, Source: "haste", Duration: 3})
	hero.Stat(stats.Speed).AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: 1, Source: "boots", Duration: stats.Infinite})

	hero.ClearBattleState()

	s.True(hero.Passives().CanMove())
	s.True(hero.Passives().Has(passive.NoResourceRegen))
	s.Equal(41.0, hero.StatValue(stats.Speed))
}
