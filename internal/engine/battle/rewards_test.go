package battle_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	resolvemock "github.com/KirkDiggler/rpg-battle/internal/engine/resolve/mock"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/roll"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type RewardsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
}

func TestRewardsSuite(t *testing.T) {
	suite.Run(t, new(RewardsTestSuite))
}

func (s *RewardsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
}

func (s *RewardsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// won builds a battle against enemies and kills them all.
func (s *RewardsTestSuite) won(roller *testutils.ScriptedRoller, loc battle.Location, enemies ...*character.Character) *battle.Battle {
	b, err := battle.New(&battle.Config{
		ID:       "battle-rewards-1",
		Players:  []*character.Character{builders.NewCharacterBuilder().MustBuild(s.T())},
		Enemies:  enemies,
		Dice:     roll.New(roller),
		Location: loc,
		BossDrops: map[character.Category]string{
			character.Undead: "phylactery_shard",
		},
	})
	s.Require().NoError(err)
	for _, e := range enemies {
		e.TakeDamage(1e6)
	}
	s.Require().Equal(battle.PlayerVictory, b.CheckResult())
	return b
}

func (s *RewardsTestSuite) TestGoldFormula() {
	s.Equal(5.0, battle.Gold(5, 1, battle.Location{}))
	s.Equal(8.0, battle.Gold(5, 1, battle.Location{DungeonType: "crypt", DungeonLevel: 2}))
	s.Equal(13.0, battle.Gold(10, 4, battle.Location{DungeonType: "unknown"}))
}

func (s *RewardsTestSuite) TestExperienceFloor() {
	s.InDelta(10.0, battle.Experience(10, 5, 5, 0), 1e-9)
	s.InDelta(15.0, battle.Experience(10, 10, 5, 0), 1e-9)
	s.InDelta(1.0, battle.Experience(10, 1, 30, 0), 1e-9)
	s.InDelta(1.2, battle.Experience(10, 1, 30, 2), 1e-9)
}

func (s *RewardsTestSuite) TestVictoryRewards() {
	enemy := builders.NewEnemyBuilder().
		AsEnemy(character.EnemyTraits{
			BaseExperience: 10,
			BaseGold:       5,
			DropTable:      []character.Drop{{Item: "bone", Chance: 0.5, Count: 2}},
		}).
		MustBuild(s.T())
	b := s.won(testutils.LowRoller(), battle.Location{DungeonType: "crypt", DungeonLevel: 2, Floor: 3}, enemy)

	r, err := b.Rewards()
	s.Require().NoError(err)
	s.Equal(8.0, r.Gold)
	s.Equal(1.0, r.Honor)
	s.InDelta(12.0, r.Experience["hero-test-1"], 1e-9)
	s.Equal([]battle.ItemDrop{
		{Item: "supply_bag", Count: 1},
		{Item: "weapon_bag", Count: 1},
		{Item: "armor_bag", Count: 1},
		{Item: "galdurite_bag", Count: 1},
		{Item: "bone", Count: 2},
	}, r.Items)
	s.Equal([]battle.QuestProgress{
		{Kind: battle.QuestKill, DungeonType: "crypt", Target: "Test Enemy"},
		{Kind: battle.QuestDescend, DungeonType: "crypt", Floor: 3},
	}, r.Quests)

	again, err := b.Rewards()
	s.Require().NoError(err)
	s.Same(r, again)
}

func (s *RewardsTestSuite) TestUnluckyRewards() {
	enemy := builders.NewEnemyBuilder().
		AsEnemy(character.EnemyTraits{
			BaseGold:  5,
			DropTable: []character.Drop{{Item: "bone", Chance: 0.5}, {Item: "key", Chance: 1}},
		}).
		MustBuild(s.T())
	b := s.won(testutils.HighRoller(), battle.Location{}, enemy)

	r, err := b.Rewards()
	s.Require().NoError(err)
	s.Equal([]battle.ItemDrop{{Item: "key", Count: 1}}, r.Items)
}

func (s *RewardsTestSuite) TestHonorOnlyForStrongEnemies() {
	weak := builders.NewEnemyBuilder().WithID("weak").MustBuild(s.T())
	strong := builders.NewEnemyBuilder().WithID("strong").WithLevel(3).MustBuild(s.T())
	b, err := battle.New(&battle.Config{
		ID: "battle-honor",
		Players: []*character.Character{
			builders.NewCharacterBuilder().WithLevel(2).MustBuild(s.T()),
		},
		Enemies: []*character.Character{weak, strong},
		Dice:    roll.New(testutils.HighRoller()),
	})
	s.Require().NoError(err)
	weak.TakeDamage(1e6)
	strong.TakeDamage(1e6)
	s.Require().Equal(battle.PlayerVictory, b.CheckResult())

	r, err := b.Rewards()
	s.Require().NoError(err)
	s.Equal(1.0, r.Honor)
}

func (s *RewardsTestSuite) TestBossDrops() {
	lich := builders.NewEnemyBuilder().
		AsEnemy(character.EnemyTraits{Boss: true, Categories: []character.Category{character.Demon, character.Undead}}).
		MustBuild(s.T())
	b := s.won(testutils.HighRoller(), battle.Location{}, lich)

	r, err := b.Rewards()
	s.Require().NoError(err)
	s.Equal([]battle.ItemDrop{{Item: "phylactery_shard", Count: 1}}, r.Items)
}

func (s *RewardsTestSuite) TestBossWithoutMapping() {
	alpha := builders.NewEnemyBuilder().
		AsEnemy(character.EnemyTraits{Boss: true, Categories: []character.Category{character.Beast}}).
		MustBuild(s.T())
	b := s.won(testutils.HighRoller(), battle.Location{}, alpha)

	_, err := b.Rewards()
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RewardsTestSuite) TestNoRewardsWithoutVictory() {
	b, err := battle.New(&battle.Config{
		ID:      "battle-ongoing",
		Players: []*character.Character{builders.NewCharacterBuilder().MustBuild(s.T())},
		Enemies: []*character.Character{builders.NewEnemyBuilder().MustBuild(s.T())},
		Dice:    roll.New(nil),
	})
	s.Require().NoError(err)

	_, err = b.Rewards()
	s.True(errors.IsFailedPrecondition(err))
}

func (s *RewardsTestSuite) TestApply() {
	inv := resolvemock.NewMockInventory(s.ctrl)
	first := builders.NewCharacterBuilder().MustBuild(s.T())
	second := builders.NewCharacterBuilder().WithID("hero-test-2").MustBuild(s.T())

	r := &battle.Rewards{
		Gold:       15,
		Honor:      2,
		Experience: map[string]float64{"hero-test-1": 150, "hero-test-2": 10},
		Items:      []battle.ItemDrop{{Item: "supply_bag", Count: 2}},
	}
	inv.EXPECT().Grant("supply_bag", 2).Return(nil)

	s.Require().NoError(r.Apply([]*character.Character{first, second}, inv))
	s.Equal(7.0, first.Gold())
	s.Equal(7.0, second.Gold())
	s.Equal(2.0, first.Honor())
	s.Equal(2, first.Level())
	s.Equal(1, second.Level())
	s.Equal(10.0, second.Experience())
}

func (s *RewardsTestSuite) TestApplyGrantFailure() {
	inv := resolvemock.NewMockInventory(s.ctrl)
	r := &battle.Rewards{Items: []battle.ItemDrop{{Item: "armor_bag", Count: 1}}}
	inv.EXPECT().Grant("armor_bag", 1).Return(errors.Unavailable("inventory full"))

	err := r.Apply([]*character.Character{builders.NewCharacterBuilder().MustBuild(s.T())}, inv)
	s.Error(err)
}
