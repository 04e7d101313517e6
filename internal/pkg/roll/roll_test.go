package roll_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/pkg/roll"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

type failingRoller struct{}

func (failingRoller) Roll(int) (int, error)         { return 0, errors.New("no entropy") }
func (failingRoller) RollN(int, int) ([]int, error) { return nil, errors.New("no entropy") }

type DiceTestSuite struct {
	suite.Suite
}

func TestDiceSuite(t *testing.T) {
	suite.Run(t, new(DiceTestSuite))
}

func (s *DiceTestSuite) TestChanceBoundsDoNotRoll() {
	roller := testutils.HighRoller()
	d := roll.New(roller)

	s.True(d.Chance(1))
	s.True(d.Chance(1.5))
	s.False(d.Chance(0))
	s.False(d.Chance(-1))
	s.Equal(0, roller.Calls())
}

func (s *DiceTestSuite) TestChanceUsesScriptedFraction() {
	d := roll.New(testutils.NewScriptedRoller(0, 0.25, 0.75))

	s.True(d.Chance(0.5))
	s.False(d.Chance(0.5))
	s.True(d.Chance(0.5), "fallback fraction is 0")
}

func (s *DiceTestSuite) TestPercent() {
	d := roll.New(testutils.NewScriptedRoller(0.5))
	s.True(d.Percent(60))
	s.False(d.Percent(40))
}

func (s *DiceTestSuite) TestBetween() {
	s.InDelta(10.0, roll.New(testutils.LowRoller()).Between(10, 20), 1e-9)
	s.InDelta(20.0, roll.New(testutils.HighRoller()).Between(20, 10), 1e-4)
	s.Equal(7.0, roll.New(testutils.HighRoller()).Between(7, 7))
}

func (s *DiceTestSuite) TestIntn() {
	s.Equal(0, roll.New(testutils.LowRoller()).Intn(4))
	s.Equal(3, roll.New(testutils.HighRoller()).Intn(4))
	s.Equal(0, roll.New(testutils.HighRoller()).Intn(1))
}

func (s *DiceTestSuite) TestRollerFailureDegradesToLowestFace() {
	d := roll.New(failingRoller{})
	s.Equal(0.0, d.Float())
	s.Equal(0, d.Intn(6))
}

func (s *DiceTestSuite) TestNilRollerUsesDefault() {
	d := roll.New(nil)
	v := d.Float()
	s.GreaterOrEqual(v, 0.0)
	s.Less(v, 1.0)
}
