package skill_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type SkillTestSuite struct {
	suite.Suite
}

func TestSkillSuite(t *testing.T) {
	suite.Run(t, new(SkillTestSuite))
}

func (s *SkillTestSuite) validSkill() *skill.ActiveSkill {
	return &skill.ActiveSkill{
		ID:         "slash",
		Name:       "Slash",
		ActionCost: 0.5,
		Accuracy:   90,
		HitCount:   1,
		Effects: []skill.Effect{
			skill.DealDamage{On: skill.Enemy, Base: skill.FlatBase(50), Type: skill.Physical},
		},
	}
}

func (s *SkillTestSuite) TestValidSkill() {
	s.NoError(s.validSkill().Validate())
}

func (s *SkillTestSuite) TestSkillValidation() {
	testCases := []struct {
		name   string
		mutate func(*skill.ActiveSkill)
		field  string
	}{
		{
			name:   "missing id",
			mutate: func(sk *skill.ActiveSkill) { sk.ID = "" },
			field:  "id",
		},
		{
			name:   "zero hit count",
			mutate: func(sk *skill.ActiveSkill) { sk.HitCount = 0 },
			field:  "hit_count",
		},
		{
			name:   "action cost above one",
			mutate: func(sk *skill.ActiveSkill) { sk.ActionCost = 1.5 },
			field:  "action_cost",
		},
		{
			name:   "no effects",
			mutate: func(sk *skill.ActiveSkill) { sk.Effects = nil },
			field:  "effects",
		},
		{
			name: "unknown DoT kind",
			mutate: func(sk *skill.ActiveSkill) {
				sk.Effects = append(sk.Effects, skill.InflictDoTStatusEffect{
					On: skill.Enemy, Status: passive.Stun, Strength: 1, Duration: 2, Chance: 0.5,
				})
			},
			field: "effects[1].status",
		},
		{
			name: "zero chance",
			mutate: func(sk *skill.ActiveSkill) {
				sk.Effects = append(sk.Effects, skill.InflictGenericStatusEffect{
					On: skill.Enemy, Status: passive.Stun, Duration: 1,
				})
			},
			field: "effects[1].chance",
		},
		{
			name: "flat base without amount",
			mutate: func(sk *skill.ActiveSkill) {
				sk.Effects[0] = skill.DealDamage{On: skill.Enemy, Base: skill.Base{Kind: skill.Flat, Strength: 1}, Type: skill.Physical}
			},
			field: "effects[0].base.amount",
		},
		{
			name: "item cost without alias",
			mutate: func(sk *skill.ActiveSkill) {
				sk.ItemCost = &skill.ItemCost{Count: 1}
			},
			field: "item_cost.alias",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sk := s.validSkill()
			tc.mutate(sk)

			err := sk.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}
}

func (s *SkillTestSuite) TestEffectValidation() {
	testCases := []struct {
		name   string
		effect skill.Effect
		valid  bool
	}{
		{"debuff stat", skill.DebuffStat{On: skill.Enemy, Stat: stats.Speed, Modifier: stats.Relative, Magnitude: 0.2, Duration: 2, Chance: 0.8}, true},
		{"debuff unknown stat", skill.DebuffStat{On: skill.Enemy, Stat: "Luck", Magnitude: 1, Duration: 2, Chance: 0.8}, false},
		{"debuff resistance on non resistance", skill.DebuffResistance{On: skill.Enemy, Resistance: stats.Speed, Magnitude: 0.1, Duration: 2, Chance: 1}, false},
		{"shield", skill.GainShield{On: skill.Self, Base: skill.Base{Kind: skill.CasterMaxHealth, Strength: 0.2}, Duration: 3}, true},
		{"toggle flag", skill.ToggleInnatePassiveEffect{On: skill.Self, Source: "rage", Type: passive.NoResourceRegen}, true},
		{"toggle stun", skill.ToggleInnatePassiveEffect{On: skill.Self, Source: "rage", Type: passive.Stun}, false},
		{"scale toggle without from", skill.ToggleInnatePassiveEffect{On: skill.Self, Source: "wall", Type: passive.ScaleStat, Stat: stats.MinAttack}, false},
		{"advance move", skill.AdvanceMove{On: skill.Self, Fraction: 0.3}, true},
		{"extend all dots", skill.ExtendDoT{On: skill.Enemy, Turns: 2}, true},
		{"extend stun", skill.ExtendDoT{On: skill.Enemy, Status: passive.Stun, Turns: 2}, false},
		{"clear shield", skill.ClearStatusEffect{On: skill.Self, Statuses: []passive.EffectType{passive.Shield}}, false},
		{"clear all", skill.ClearStatusEffect{On: skill.Self}, true},
		{"listener", skill.ToggleListenerPassiveEffect{On: skill.Self, Listener: "thorns", Strength: 0.3}, true},
		{"bad target", skill.HealTarget{On: skill.Target(7), Base: skill.FlatBase(10)}, false},
		{"life steal above one", skill.DealDamage{On: skill.Enemy, Base: skill.FlatBase(1), Type: skill.Magic, LifeSteal: 2}, false},
		{"trade health", skill.TradeHealthForResource{On: skill.Self, Base: skill.Base{Kind: skill.CasterMaxHealth, Strength: 0.1}, Ratio: 1}, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.effect.Validate()
			if tc.valid {
				s.NoError(err)
				return
			}
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *SkillTestSuite) TestEffectsOn() {
	sk := &skill.ActiveSkill{
		Effects: []skill.Effect{
			skill.BuffStat{On: skill.Self, Stat: stats.Speed, Magnitude: 5, Duration: 2},
			skill.DealDamage{On: skill.Enemy, Base: skill.FlatBase(10), Type: skill.Physical},
			skill.HealTarget{On: skill.Self, Base: skill.FlatBase(5)},
		},
	}

	s.True(sk.HasEnemyEffects())
	s.Len(sk.EffectsOn(skill.Self), 2)
	s.Equal("DealDamage", sk.EffectsOn(skill.Enemy)[0].Kind())
}
