package stats_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
)

// mapSource serves modifiers from a fixed map.
type mapSource map[stats.Name][]stats.Modifier

func (m mapSource) Modifiers(name stats.Name) []stats.Modifier {
	return m[name]
}

type StatTestSuite struct {
	suite.Suite
}

func TestStatSuite(t *testing.T) {
	suite.Run(t, new(StatTestSuite))
}

func (s *StatTestSuite) TestScaleClosedForms() {
	const base, growth = 100.0, 2.5

	s.Equal(base, stats.Scale(base, growth, 1))
	s.Equal(base, stats.Scale(base, growth, 0), "levels below 1 do not scale")
	s.Equal(base+9*growth, stats.Scale(base, growth, 10))
	s.Equal(base+9*growth+10*2*growth, stats.Scale(base, growth, 20))

	atFifty := base + 9*growth + 10*2*growth + 10*3*growth + 10*5*growth + 10*9*growth
	s.Equal(atFifty, stats.Scale(base, growth, 50))
	s.Equal(atFifty, stats.Scale(base, growth, 80), "level is capped at 50")
}

func (s *StatTestSuite) TestScaleStepsAtDecadeBoundaries() {
	s.Equal(2.0, stats.Scale(0, 1, 11)-stats.Scale(0, 1, 10))
	s.Equal(3.0, stats.Scale(0, 1, 21)-stats.Scale(0, 1, 20))
	s.Equal(5.0, stats.Scale(0, 1, 31)-stats.Scale(0, 1, 30))
	s.Equal(9.0, stats.Scale(0, 1, 41)-stats.Scale(0, 1, 40))
}

func (s *StatTestSuite) TestCombineTierOrder() {
	mods := []stats.Modifier{
		{Kind: stats.Absolute, Magnitude: 5},
		{Kind: stats.Multiplicative, Magnitude: 0.5},
		{Kind: stats.Additive, Magnitude: 10},
		{Kind: stats.Relative, Magnitude: 1},
	}

	// ((100 * 2) + 10) * 1.5 + 5
	s.Equal(320.0, stats.Combine(100, mods))
}

func (s *StatTestSuite) TestCombineOrderIsLoadBearing() {
	mods := []stats.Modifier{
		{Kind: stats.Relative, Magnitude: 1},
		{Kind: stats.Additive, Magnitude: 10},
		{Kind: stats.Multiplicative, Magnitude: 1},
		{Kind: stats.Absolute, Magnitude: 10},
	}
	got := stats.Combine(10, mods)

	// Additive before Relative: (10 + 10) * 2 * 2 + 10 = 90
	swapped := ((10.0+10)*2)*2 + 10
	// Absolute before Multiplicative: (10 * 2 + 10 + 10) * 2 = 80
	late := (10.0*2 + 10 + 10) * 2

	s.Equal(((10.0*2)+10)*2+10, got)
	s.NotEqual(swapped, got)
	s.NotEqual(late, got)
}

func (s *StatTestSuite) TestCombineRelativeStacksMultiplicatively() {
	mods := []stats.Modifier{
		{Kind: stats.Relative, Magnitude: 0.5},
		{Kind: stats.Relative, Magnitude: -0.5},
	}
	s.Equal(75.0, stats.Combine(100, mods))
}

func (s *StatTestSuite) TestValueMergesOwnSourceAndFamilies() {
	def := stats.New(stats.PhysicalDefense, 10, 1)
	def.AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: 4, Duration: stats.Infinite})

	src := mapSource{
		stats.PhysicalDefense: {{Kind: stats.Relative, Magnitude: 0.5}},
		stats.TotalDefense:    {{Kind: stats.Absolute, Magnitude: 3}},
		stats.MagicDefense:    {{Kind: stats.Absolute, Magnitude: 1000}},
	}

	// level 3 scaled: 10 + 2*1 = 12; 12*1.5 + 4 + 3
	s.Equal(25.0, def.Value(3, src))
	s.Equal(16.0, def.Value(3, nil))
}

func (s *StatTestSuite) TestResistanceFamilies() {
	res := stats.New(stats.BleedResistance, 0.1, 0)
	src := mapSource{
		stats.TotalResistanceMod:       {{Kind: stats.Additive, Magnitude: 0.1}},
		stats.DoTResistanceMod:         {{Kind: stats.Additive, Magnitude: 0.2}},
		stats.SuppressionResistanceMod: {{Kind: stats.Additive, Magnitude: 0.5}},
	}
	s.InDelta(0.4, res.Value(1, src), 1e-12)

	stun := stats.New(stats.StunResistance, 0, 0)
	s.InDelta(0.6, stun.Value(1, src), 1e-12)
}

func (s *StatTestSuite) TestTickPrunesExpired() {
	st := stats.New(stats.Speed, 40, 0)
	st.AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: 10, Source: "haste", Duration: 1})
	st.AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: 5, Source: "boots", Duration: stats.Infinite})
	st.AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: 1, Source: "wind", Duration: 2})

	s.Equal(56.0, st.Value(1, nil))

	st.Tick()
	s.Equal(46.0, st.Value(1, nil))
	s.Len(st.Modifiers(), 2)

	st.Tick()
	s.Equal(45.0, st.Value(1, nil))
	for _, m := range st.Modifiers() {
		s.GreaterOrEqual(m.Duration, stats.Infinite)
		s.NotEqual(0, m.Duration)
	}

	st.Tick()
	s.Equal(45.0, st.Value(1, nil))
}

func (s *StatTestSuite) TestRemoveSource() {
	st := stats.New(stats.Accuracy, 90, 0)
	st.AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: -10, Source: "blind", Duration: 3})
	st.AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: -10, Source: "blind", Duration: 3})
	st.AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: 5, Source: "focus", Duration: 3})

	s.Equal(2, st.RemoveSource("blind"))
	s.Equal(95.0, st.Value(1, nil))
}

func (s *StatTestSuite) TestPool() {
	src := mapSource{
		stats.ResourceCost: {{Kind: stats.Relative, Magnitude: -0.25}},
	}
	s.Equal(30.0, stats.Pool(stats.ResourceCost, 40, src))
	s.Equal(40.0, stats.Pool(stats.ResourceCost, 40, nil))
	s.Equal(0.0, stats.Pool(stats.CritSaveChance, 0, src))
}

func (s *StatTestSuite) TestModifierKindRoundTrip() {
	for _, k := range []stats.ModifierKind{stats.Relative, stats.Additive, stats.Multiplicative, stats.Absolute} {
		parsed, ok := stats.ParseModifierKind(k.String())
		s.True(ok)
		s.Equal(k, parsed)
	}
	_, ok := stats.ParseModifierKind("exponential")
	s.False(ok)
}
