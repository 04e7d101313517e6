package battle_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/passive"
	"github.com/KirkDiggler/rpg-battle/internal/engine/stats"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type UserTestSuite struct {
	suite.Suite
}

func TestUserSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) TestNewUserGrantsAllotment() {
	testCases := []struct {
		name  string
		speed float64
		value int
	}{
		{name: "speed 40", speed: 40, value: 250},
		{name: "truncates", speed: 3, value: 3333},
		{name: "speed 80", speed: 80, value: 125},
		{name: "never below one", speed: 20000, value: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := builders.NewCharacterBuilder().WithStat(stats.Speed, tc.speed).MustBuild(s.T())
			u := battle.NewUser(c, battle.Players)

			s.Equal(tc.value, u.ActionValue())
			s.Equal(tc.speed/2, u.MaxActionPointsBase())
			s.Equal(tc.speed/2, u.ActionPoints())
			s.False(u.Moved())
		})
	}
}

func (s *UserTestSuite) TestTryMoveGrantsTurnAtZero() {
	u := battle.NewUser(builders.NewCharacterBuilder().MustBuild(s.T()), battle.Players)

	for i := 0; i < 249; i++ {
		s.Require().False(u.TryMove())
	}
	s.True(u.TryMove())
	s.True(u.Moved())
	s.Equal(250, u.ActionValue())
}

func (s *UserTestSuite) TestResetActionAccumulates() {
	c := builders.NewCharacterBuilder().MustBuild(s.T())
	u := battle.NewUser(c, battle.Players)
	u.SpendActionPoints(15)
	s.Equal(5.0, u.ActionPoints())

	c.Stat(stats.Speed).AddModifier(stats.Modifier{Kind: stats.Additive, Magnitude: 60, Source: "haste", Duration: 2})
	u.ResetAction()

	s.Equal(350, u.ActionValue())
	s.Equal(50.0, u.MaxActionPointsBase())
	s.Equal(50.0, u.ActionPoints())
}

func (s *UserTestSuite) TestActionPointModifiers() {
	c := builders.NewCharacterBuilder().MustBuild(s.T())
	c.Passives().Add(passive.NewInnate(c, "swift", passive.StatChange, passive.StatPayload{
		Stat: stats.MaxActionPoints, Kind: stats.Relative, Magnitude: 0.5,
	}))
	u := battle.NewUser(c, battle.Players)

	s.Equal(20.0, u.MaxActionPointsBase())
	s.Equal(30.0, u.ActionPoints())
}

func (s *UserTestSuite) TestSpendNeverNegative() {
	u := battle.NewUser(builders.NewCharacterBuilder().MustBuild(s.T()), battle.Players)
	u.SpendActionPoints(100)
	s.Equal(0.0, u.ActionPoints())
}

func (s *UserTestSuite) TestAdvanceMove() {
	u := battle.NewUser(builders.NewCharacterBuilder().MustBuild(s.T()), battle.Players)

	s.Equal(125, u.AdvanceMove(0.5))
	s.Equal(125, u.ActionValue())

	s.Equal(124, u.AdvanceMove(1))
	s.Equal(1, u.ActionValue())

	s.Equal(0, u.AdvanceMove(0.5))
	s.True(u.TryMove())
}

func (s *UserTestSuite) TestTeamString() {
	s.Equal("players", battle.Players.String())
	s.Equal("enemies", battle.Enemies.String())
}
