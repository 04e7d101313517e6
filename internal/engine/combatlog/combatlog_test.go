package combatlog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
)

type CombatLogTestSuite struct {
	suite.Suite
}

func TestCombatLogSuite(t *testing.T) {
	suite.Run(t, new(CombatLogTestSuite))
}

func (s *CombatLogTestSuite) TestWriterStampsRound() {
	rec := combatlog.NewRecorder()
	w := combatlog.NewWriter(rec)

	w.Log(combatlog.KindSkill, "Hero", "Wolf", "%s uses %s", "Hero", "Slash")
	w.SetRound(3)
	w.Notice("Not enough mana")
	w.Refresh()

	entries := rec.Entries()
	s.Require().Len(entries, 3)
	s.Equal(0, entries[0].Round)
	s.Equal("Hero uses Slash", entries[0].Message)
	s.Equal("Wolf", entries[0].Target)
	s.Equal(3, entries[1].Round)
	s.Equal(combatlog.KindNotice, entries[1].Kind)

	s.Equal([]string{"Hero uses Slash", "Not enough mana"}, rec.Messages())
}

func (s *CombatLogTestSuite) TestNilSinkDiscards() {
	w := combatlog.NewWriter(nil)
	s.NotPanics(func() { w.Notice("dropped") })

	var nilWriter *combatlog.Writer
	s.NotPanics(func() { nilWriter.Notice("dropped") })
}

func (s *CombatLogTestSuite) TestMultiAndSlogSink() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rec := combatlog.NewRecorder()
	var seen []combatlog.Entry
	sink := combatlog.Multi(rec, nil, combatlog.NewSlogSink(logger, slog.LevelInfo, "battle_id", "b-1"),
		combatlog.Func(func(e combatlog.Entry) { seen = append(seen, e) }))

	w := combatlog.NewWriter(sink)
	w.Log(combatlog.KindDamage, "Hero", "Wolf", "Wolf takes 12 damage")
	w.Refresh()

	s.Len(rec.Entries(), 2)
	s.Len(seen, 2)
	s.Contains(buf.String(), "Wolf takes 12 damage")
	s.Contains(buf.String(), "battle_id=b-1")
	s.Contains(buf.String(), "actor=Hero")
	s.Equal(1, bytes.Count(buf.Bytes(), []byte("\n")), "refresh pings are not logged")
}
