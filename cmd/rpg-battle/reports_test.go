package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	battleengine "github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle/mock"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battlereport"
)

type ReportsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *battlemock.MockService
	ctx     context.Context
	out     *bytes.Buffer
}

func TestReportsSuite(t *testing.T) {
	suite.Run(t, new(ReportsTestSuite))
}

func (s *ReportsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = battlemock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.out = &bytes.Buffer{}
}

func (s *ReportsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportsTestSuite) TestListReports() {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.service.EXPECT().ListReports(s.ctx, &battle.ListReportsInput{Limit: 5}).Return(&battle.ListReportsOutput{
		Reports: []*battlereport.Report{
			{ID: "battle_2", Result: battleengine.EnemyVictory, Rounds: 7, Location: battleengine.Location{DungeonType: "crypt"}, UpdatedAt: at},
			{ID: "battle_1", Result: battleengine.PlayerVictory, Rounds: 2, Location: battleengine.Location{DungeonType: "cave"}, UpdatedAt: at},
		},
	}, nil)

	s.Require().NoError(listReports(s.ctx, s.service, s.out, 5))
	lines := bytes.Split(bytes.TrimSpace(s.out.Bytes()), []byte("\n"))
	s.Require().Len(lines, 2)
	s.Contains(string(lines[0]), "battle_2")
	s.Contains(string(lines[0]), "enemy_victory")
	s.Contains(string(lines[0]), "crypt")
	s.Contains(string(lines[0]), "2026-03-14 12:00:00")
	s.Contains(string(lines[1]), "battle_1")
}

func (s *ReportsTestSuite) TestListReportsEmpty() {
	s.service.EXPECT().ListReports(s.ctx, gomock.Any()).Return(&battle.ListReportsOutput{}, nil)

	s.Require().NoError(listReports(s.ctx, s.service, s.out, 20))
	s.Equal("No reports\n", s.out.String())
}

func (s *ReportsTestSuite) TestPrintReport() {
	s.service.EXPECT().GetBattle(s.ctx, &battle.GetBattleInput{BattleID: "battle_1"}).Return(&battle.GetBattleOutput{
		Report: &battlereport.Report{ID: "battle_1", Result: battleengine.Escaped, Rounds: 3},
	}, nil)

	s.Require().NoError(printReport(s.ctx, s.service, s.out, "battle_1"))

	var got battlereport.Report
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &got))
	s.Equal("battle_1", got.ID)
	s.Equal(battleengine.Escaped, got.Result)
	s.Equal(3, got.Rounds)
}

func (s *ReportsTestSuite) TestPrintReportNotFound() {
	s.service.EXPECT().GetBattle(s.ctx, gomock.Any()).Return(nil, errors.NotFound("battle report battle_9 not found"))

	err := printReport(s.ctx, s.service, s.out, "battle_9")
	s.True(errors.IsNotFound(err))
	s.Empty(s.out.String())
}
