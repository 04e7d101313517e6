package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/skill"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type PromptTestSuite struct {
	suite.Suite
	ctx    context.Context
	out    *bytes.Buffer
	strike *skill.ActiveSkill
	bash   *skill.ActiveSkill
	req    *battleengine.Request
}

func TestPromptSuite(t *testing.T) {
	suite.Run(t, new(PromptTestSuite))
}

func (s *PromptTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.out = &bytes.Buffer{}
	s.strike = &skill.ActiveSkill{ID: "strike", Name: "Strike", ActionCost: 0.5, HitCount: 1}
	s.bash = &skill.ActiveSkill{ID: "shield_bash", Name: "Shield Bash", ResourceCost: 20, ActionCost: 1, HitCount: 1}

	hero := builders.NewCharacterBuilder().WithName("Brom").MustBuild(s.T())
	wolf := builders.NewEnemyBuilder().WithID("wolf-1").WithName("Wolf").MustBuild(s.T())
	imp := builders.NewEnemyBuilder().WithID("imp-1").WithName("Imp").MustBuild(s.T())

	s.req = &battleengine.Request{
		BattleID: "battle_1",
		Round:    1,
		User:     battleengine.NewUser(hero, battleengine.Players),
		Skills:   []*skill.ActiveSkill{s.strike, s.bash},
		Opponents: []*battleengine.User{
			battleengine.NewUser(wolf, battleengine.Enemies),
			battleengine.NewUser(imp, battleengine.Enemies),
		},
	}
}

func (s *PromptTestSuite) choose(input string) (battleengine.Action, error) {
	return newPromptChooser(strings.NewReader(input), s.out).Choose(s.ctx, s.req)
}

func (s *PromptTestSuite) TestSkillAndTarget() {
	act, err := s.choose("2\n2\n")
	s.Require().NoError(err)
	s.Equal(battleengine.UseSkill, act.Kind)
	s.Same(s.bash, act.Skill)
	s.Same(s.req.Opponents[1], act.Target)

	s.Contains(s.out.String(), "Brom  HP 100/100")
	s.Contains(s.out.String(), "2) Shield Bash (cost 20, 1 AP)")
	s.Contains(s.out.String(), "2) Imp  HP 100/100")
}

func (s *PromptTestSuite) TestSingleOpponentNeedsNoTarget() {
	s.req.Opponents = s.req.Opponents[:1]

	act, err := s.choose("1\n")
	s.Require().NoError(err)
	s.Same(s.strike, act.Skill)
	s.Same(s.req.Opponents[0], act.Target)
	s.NotContains(s.out.String(), "target>")
}

func (s *PromptTestSuite) TestBadInputIsAskedAgain() {
	act, err := s.choose("9\nfight\n1\nx\n1\n")
	s.Require().NoError(err)
	s.Same(s.strike, act.Skill)
	s.Same(s.req.Opponents[0], act.Target)
	s.Equal(2, strings.Count(s.out.String(), "pick 1-2 or p"))
	s.Equal(1, strings.Count(s.out.String(), "pick 1-2\n"))
}

func (s *PromptTestSuite) TestPassAndEscape() {
	act, err := s.choose("P\n")
	s.Require().NoError(err)
	s.Equal(battleengine.Pass, act.Kind)

	act, err = s.choose("e\np\n")
	s.Require().NoError(err)
	s.Equal(battleengine.Pass, act.Kind, "escape is not offered")

	s.req.CanEscape = true
	act, err = s.choose("e\n")
	s.Require().NoError(err)
	s.Equal(battleengine.Escape, act.Kind)
}

func (s *PromptTestSuite) TestClosedInput() {
	_, err := s.choose("")
	s.True(errors.IsCanceled(err))

	_, err = s.choose("1\n")
	s.True(errors.IsCanceled(err), "input ends before a target is picked")
}

func (s *PromptTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := newPromptChooser(strings.NewReader("1\n1\n"), s.out).Choose(ctx, s.req)
	s.True(errors.IsCanceled(err))
}
